package component

// MarketSlot is one offer in the shop. A bought slot stays disabled until the next renew.
type MarketSlot struct {
	Index   int
	Tag     string
	Name    string
	Tier    int
	Rarity  int
	Price   int
	Enabled bool
}
