package engine

import (
	"verse-trader/internal/catalog"
	"verse-trader/internal/uex"
)

// testEngine builds an engine over a small Stanton slice: Laranite is bought
// at Everus Harbor and sold at Port Tressler and Baijini Point for the same
// price, WiDoW flows from the Daymar outpost to Lorville, and only the
// whitelisted stations take the Hull C.
func testEngine() *Engine {
	cat := &uex.Catalog{
		Ships: []uex.Ship{
			{Code: "HULLC", Name: "Hull C", Manufacturer: "MISC", SCU: 1000, Implemented: true,
				BuyAt: []uex.ShipPoint{{Tradeport: "TRESS", Price: 15000000}}},
			{Code: "FREE", Name: "Freelancer", Manufacturer: "MISC", SCU: 66, Implemented: true},
			{Code: "MERL", Name: "P-52 Merlin", Manufacturer: "KRIG", SCU: 0, Implemented: true},
		},
		Commodities: []uex.Commodity{
			{Code: "LARA", Name: "Laranite", Kind: "Metal", Tradable: true, Minable: true, TradePriceBuy: 10, TradePriceSell: 25},
			{Code: "WIDO", Name: "WiDoW", Kind: "Drug", Tradable: true, Illegal: true, TradePriceSell: 100},
		},
		Systems: []uex.StarSystem{{Code: "ST", Name: "Stanton", Available: true}},
		Planets: []uex.Planet{
			{Code: "HUR", Name: "Hurston", System: "ST", Available: true},
			{Code: "MIC", Name: "microTech", System: "ST", Available: true},
		},
		Satellites: []uex.Satellite{{Code: "DAY", Name: "Daymar", Planet: "HUR", Available: true}},
		Cities:     []uex.City{{Code: "LORV", Name: "Lorville", System: "ST", Planet: "HUR", Available: true}},
		Tradeports: []uex.Tradeport{
			{
				Code: "EVERUS", Name: "Everus Harbor", System: "ST", Planet: "HUR",
				Space: true, Visible: true,
				Prices: map[string]uex.PriceListing{
					"LARA": {Name: "Laranite", Kind: "Metal", Operation: "buy", PriceBuy: 10},
				},
			},
			{
				Code: "TRESS", Name: "Port Tressler", System: "ST", Planet: "MIC",
				Space: true, Visible: true,
				Prices: map[string]uex.PriceListing{
					"LARA": {Name: "Laranite", Kind: "Metal", Operation: "sell", PriceSell: 25},
				},
			},
			{
				Code: "BAJ", Name: "Baijini Point", System: "ST", Planet: "MIC",
				Space: true, Visible: true,
				Prices: map[string]uex.PriceListing{
					"LARA": {Name: "Laranite", Kind: "Metal", Operation: "sell", PriceSell: 25},
				},
			},
			{
				Code: "CBD", Name: "Central Business District", System: "ST", Planet: "HUR", City: "LORV",
				Visible: true,
				Prices: map[string]uex.PriceListing{
					"WIDO": {Name: "WiDoW", Kind: "Drug", Operation: "sell", PriceSell: 100},
				},
			},
			{
				Code: "SAL2", Name: "Shubin Mining Facility SAL-2", System: "ST", Planet: "HUR", Satellite: "DAY",
				Visible: true,
				Prices: map[string]uex.PriceListing{
					"WIDO": {Name: "WiDoW", Kind: "Drug", Operation: "buy", PriceBuy: 40},
				},
			},
			{
				Code: "PARA", Name: "Paradise Cove", System: "ST", Planet: "HUR",
				Visible: true,
				Prices: map[string]uex.PriceListing{
					"WIDO": {Name: "WiDoW", Kind: "Drug", Operation: "sell", PriceSell: 90},
				},
			},
			{
				Code: "HURL1", Name: "HUR-L1 Ashland Station", System: "ST", Planet: "HUR",
				Space: true, Visible: true,
			},
		},
	}
	return New(catalog.Build(cat))
}

func (e *Engine) mustShip(name string) *catalog.Ship           { return e.ix.ShipByName(name) }
func (e *Engine) mustCommodity(name string) *catalog.Commodity { return e.ix.CommodityByName(name) }
