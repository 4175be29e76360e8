package engine

import (
	"fmt"
	"math"
	"strings"

	"verse-trader/internal/catalog"
)

// Search failure messages, spoken to the player verbatim.
const (
	msgNoStartHull  = "No valid start position given. Make sure to provide a start point compatible with your ship."
	msgNoStart      = "No valid start position given. Try a different position or just name a planet or star system."
	msgNoEnd        = "No valid end position given."
	msgSamePosition = "Start and end position are the same."
	msgNoCapacity   = "You dont have enough cargo space or money to trade."
)

// BestRoute finds the single most profitable buy/sell pairing for the given
// parameters. Ship must be non-nil. On failure the returned error is a
// *RouteError whose message explains the failure to the player.
func (e *Engine) BestRoute(p RouteParams) (*Route, error) {
	start := e.startTradeports(p)
	if len(start) == 0 {
		if p.Ship.HullTrading {
			return nil, &RouteError{Message: msgNoStartHull}
		}
		return nil, &RouteError{Message: msgNoStart}
	}

	end := e.ix.TradeportsAt(p.EndName, false)
	if len(end) == 0 && p.EndName != "" {
		return nil, &RouteError{Message: msgNoEnd}
	}
	if len(end) == 0 {
		end = e.ix.TradeportsInSystem(start[0].SystemCode)
	}
	// A start without same-system company still gets the whole verse to
	// sell in.
	if len(end) == 0 {
		end = e.ix.Tradeports
	}
	if p.EndName != "" && len(end) == 1 && len(start) == 1 && end[0].Code == start[0].Code {
		return nil, &RouteError{Message: msgSamePosition}
	}
	if p.Ship.HullTrading {
		end = filterHullTrading(end)
	}

	cargoSpace := p.Ship.SCU
	if p.FreeCargo > 0 {
		cargoSpace = p.FreeCargo
		if cargoSpace > p.Ship.SCU {
			cargoSpace = p.Ship.SCU
		}
	}
	budget := -1.0
	if p.Budget >= 1 {
		budget = math.Floor(p.Budget)
	}
	if cargoSpace <= 0 {
		return nil, &RouteError{Message: msgNoCapacity}
	}

	best := e.searchRoutes(start, end, p, cargoSpace, budget)
	if len(best.Start) == 0 {
		return nil, &RouteError{Message: fmt.Sprintf(
			"No route found for your %s starting from %s. Try a different route.",
			p.Ship.Name, p.StartName)}
	}
	return best, nil
}

// startTradeports expands the start position, restricted to hull-trading
// stations when the ship needs an external cargo grid.
func (e *Engine) startTradeports(p RouteParams) []*catalog.Tradeport {
	start := e.ix.TradeportsAt(p.StartName, false)
	if p.Ship.HullTrading {
		start = filterHullTrading(start)
	}
	return start
}

// searchRoutes runs the exhaustive pairing scan. The most profitable pairing
// wins; a pairing matching the winner's profit for the same commodity extends
// the winner's endpoint alternatives instead.
func (e *Engine) searchRoutes(start, end []*catalog.Tradeport, p RouteParams, cargoSpace, budget float64) *Route {
	best := &Route{}
	for _, ts := range start {
		for code, buy := range ts.BuyListings {
			if p.Commodity != nil && lc(p.Commodity.Code) != code {
				continue
			}
			if !p.IllegalAllowed && buy.Kind == "Drug" {
				continue
			}
			if buy.PriceBuy <= 0 {
				continue
			}
			for _, te := range end {
				sell, ok := te.SellListings[code]
				if !ok || sell.PriceSell <= buy.PriceBuy {
					continue
				}
				cargo := cargoSpace
				if budget >= 1 {
					if byMoney := math.Floor(budget / buy.PriceBuy); byMoney < cargo {
						cargo = byMoney
					}
				}
				if cargo < 1 {
					continue
				}
				profit := int64(math.Round(cargo * (sell.PriceSell - buy.PriceBuy)))
				switch {
				case profit > best.Profit:
					best = &Route{
						Start:         []*catalog.Tradeport{ts},
						End:           []*catalog.Tradeport{te},
						CommodityCode: buy.CommodityCode,
						CommodityName: buy.CommodityName,
						Profit:        profit,
						Cargo:         cargo,
						BuyTotal:      buy.PriceBuy * cargo,
						SellTotal:     sell.PriceSell * cargo,
					}
				case profit == best.Profit && strings.EqualFold(best.CommodityCode, buy.CommodityCode):
					best.Start = appendTradeport(best.Start, ts)
					best.End = appendTradeport(best.End, te)
				}
			}
		}
	}
	return best
}

func filterHullTrading(tps []*catalog.Tradeport) []*catalog.Tradeport {
	var out []*catalog.Tradeport
	for _, tp := range tps {
		if tp.HullTrading {
			out = append(out, tp)
		}
	}
	return out
}

func appendTradeport(tps []*catalog.Tradeport, tp *catalog.Tradeport) []*catalog.Tradeport {
	for _, t := range tps {
		if t.Code == tp.Code {
			return tps
		}
	}
	return append(tps, tp)
}
