package catalog

import (
	"regexp"
	"strings"

	"verse-trader/internal/uex"
)

// SchemaVersion tags snapshots; a snapshot written by a different engine
// version is discarded on load.
const SchemaVersion = "v6"

// Hull trading is restricted to a fixed set of stations with a cargo deck
// and to the ships built for external cargo grids.
var hullTradingTradeports = map[string]bool{
	"Baijini Point":    true,
	"Everus Harbor":    true,
	"Magnus Gateway":   true,
	"Pyro Gateway":     true,
	"Seraphim Station": true,
	"Terra Gateway":    true,
	"Port Tressler":    true,
}

var hullTradingShips = map[string]bool{
	"Hull C": true,
}

// Manufacturers maps manufacturer codes to full company names for display.
var Manufacturers = map[string]string{
	"AEGS": "Aegis Dynamics",
	"ANVL": "Anvil Aerospace",
	"AOPO": "Aopoa",
	"ARGO": "ARGO Astronautics",
	"BANU": "Banu",
	"CNOU": "Consolidated Outland",
	"CRUS": "Crusader Industries",
	"DRAK": "Drake Interplanetary",
	"ESPR": "Esperia",
	"GATA": "Gatac",
	"GRIN": "Greycat Industrial",
	"KRIG": "Kruger Intergalactic",
	"MIRA": "Mirai",
	"MISC": "Musashi Industrial & Starflight Concern",
	"ORIG": "Origin Jumpworks",
	"RSIN": "Roberts Space Industries",
	"TMBL": "Tumbril Land Systems",
	"VNDL": "Vanduul",
}

// Lagrange-point station names look like "<PLANETCODE>-L<n> ..." and carry a
// planet parent in the feed even though they sit in open space.
var lagrangeName = regexp.MustCompile(`^L\d+$`)

// Build converts a raw fetch into a fully indexed catalog. Unimplemented
// ships, unavailable systems/planets/satellites/cities, and invisible
// tradeports are dropped; derived capability flags are attached here so the
// rest of the engine never consults whitelists.
func Build(cat *uex.Catalog) *Index {
	ix := &Index{}

	for _, s := range cat.Ships {
		if !s.Implemented {
			continue
		}
		ship := &Ship{
			Code:             s.Code,
			Name:             s.Name,
			ManufacturerCode: s.Manufacturer,
			SCU:              float64(s.SCU),
			PriceUSD:         float64(s.PriceUSD),
			HullTrading:      hullTradingShips[s.Name],
		}
		for _, p := range s.BuyAt {
			ship.BuyAt = append(ship.BuyAt, convertShipPoint(p))
		}
		for _, p := range s.RentAt {
			ship.RentAt = append(ship.RentAt, convertShipPoint(p))
		}
		ix.Ships = append(ix.Ships, ship)
	}

	for _, c := range cat.Commodities {
		ix.Commodities = append(ix.Commodities, &Commodity{
			Code:           c.Code,
			Name:           c.Name,
			Kind:           c.Kind,
			TradePriceBuy:  float64(c.TradePriceBuy),
			TradePriceSell: float64(c.TradePriceSell),
			Tradable:       bool(c.Tradable),
			Illegal:        bool(c.Illegal),
			Minable:        bool(c.Minable),
			Harvestable:    bool(c.Harvestable),
		})
	}

	planetCodes := make(map[string]bool)
	for _, p := range cat.Planets {
		if !p.Available {
			continue
		}
		ix.Planets = append(ix.Planets, &Planet{
			Code:       p.Code,
			Name:       p.Name,
			SystemCode: p.System,
		})
		planetCodes[p.Code] = true
	}

	for _, s := range cat.Systems {
		if !s.Available {
			continue
		}
		ix.Systems = append(ix.Systems, &System{Code: s.Code, Name: s.Name})
	}

	for _, s := range cat.Satellites {
		if !s.Available {
			continue
		}
		ix.Satellites = append(ix.Satellites, &Satellite{
			Code:       s.Code,
			Name:       s.Name,
			PlanetCode: s.Planet,
		})
	}

	for _, c := range cat.Cities {
		if !c.Available {
			continue
		}
		ix.Cities = append(ix.Cities, &City{
			Code:       c.Code,
			Name:       c.Name,
			SystemCode: c.System,
			PlanetCode: c.Planet,
		})
	}

	for _, t := range cat.Tradeports {
		if !t.Visible {
			continue
		}
		tp := &Tradeport{
			Code:          t.Code,
			Name:          t.Name,
			SystemCode:    t.System,
			PlanetCode:    t.Planet,
			SatelliteCode: t.Satellite,
			CityCode:      t.City,
			Space:         bool(t.Space),
			HullTrading:   hullTradingTradeports[t.Name],
			BuyListings:   make(map[string]Listing),
			SellListings:  make(map[string]Listing),
		}
		if isLagrangeStation(tp, planetCodes) {
			tp.PlanetCode = ""
		}
		for code, p := range t.Prices {
			listing := Listing{
				CommodityCode: code,
				CommodityName: p.Name,
				Kind:          p.Kind,
				PriceBuy:      float64(p.PriceBuy),
				PriceSell:     float64(p.PriceSell),
			}
			switch p.Operation {
			case "buy":
				tp.BuyListings[key(code)] = listing
			case "sell":
				tp.SellListings[key(code)] = listing
			}
		}
		ix.Tradeports = append(ix.Tradeports, tp)
	}

	ix.index()
	return ix
}

// isLagrangeStation reports whether a space tradeport's name marks it as a
// Lagrange-point station of a known planet ("HUR-L1 ...", "CRU-L5 ...").
func isLagrangeStation(tp *Tradeport, planetCodes map[string]bool) bool {
	if !tp.Space {
		return false
	}
	short, _, _ := strings.Cut(tp.Name, " ")
	parts := strings.Split(short, "-")
	return len(parts) == 2 && planetCodes[parts[0]] && lagrangeName.MatchString(parts[1])
}

func convertShipPoint(p uex.ShipPoint) ShipPoint {
	return ShipPoint{
		TradeportCode: p.Tradeport,
		SystemName:    p.SystemName,
		PlanetName:    p.PlanetName,
		SatelliteName: p.SatelliteName,
		CityName:      p.CityName,
		StoreName:     p.StoreName,
		Price:         float64(p.Price),
	}
}
