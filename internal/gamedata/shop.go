package gamedata

// ShopDef lists what the shop sells.
type ShopDef struct {
	Weapons     []string `json:"weapons"`
	Spells      []string `json:"spells"`
	PotionPrice int      `json:"potionPrice"`
}

// LoadShop loads the shop listing from the embedded shop.json file.
func LoadShop() (*ShopDef, error) {
	def, err := Load[ShopDef]("shop.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}
