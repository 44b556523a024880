package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/juanmuller24/text-based-battle/internal/save"
)

// Environment variables read by LoadConfig.
const (
	EnvSaveFile  = "BATTLE_SAVE_FILE"
	EnvSeed      = "BATTLE_SEED"
	EnvLogFile   = "BATTLE_LOG_FILE"
	EnvLogLevel  = "BATTLE_LOG_LEVEL"
	EnvPlain     = "BATTLE_PLAIN"
	EnvTelemetry = "BATTLE_TELEMETRY"
)

// Config holds game configuration options.
type Config struct {
	// SaveFile is where the game is saved and loaded.
	SaveFile string
	// Seed for random number generation. A seed of 0 means a time based seed.
	Seed int64
	// LogFile receives JSON logs. Empty discards them.
	LogFile string
	// LogLevel is a logrus level name.
	LogLevel string
	// Plain selects the line-oriented console instead of the full-screen one.
	Plain bool
	// Telemetry enables trace export.
	Telemetry bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		SaveFile: save.DefaultFile,
		LogFile:  "battle.log",
		LogLevel: "info",
	}
}

// LoadConfig reads the configuration from the environment, starting from
// DefaultConfig. Malformed numbers and booleans are reported, not ignored.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvSaveFile); ok && v != "" {
		cfg.SaveFile = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{EnvPlain, &cfg.Plain},
		{EnvTelemetry, &cfg.Telemetry},
	} {
		v, ok := lookup(b.name)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", b.name, err)
		}
		*b.dst = parsed
	}
	return cfg, nil
}
