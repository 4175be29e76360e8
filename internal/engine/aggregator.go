package engine

import (
	"sort"

	"verse-trader/internal/catalog"
)

// MultiRouteParams extends a route search with the number of routes to keep.
type MultiRouteParams struct {
	RouteParams
	MaxRoutes int // < 1 = DefaultMaxRoutes
}

// MultiRoutes surveys the route space and returns the most profitable routes,
// best first, capped at MaxRoutes. Without a commodity filter one best route
// is searched per commodity; with one, every buying/selling tradeport pair is
// tried. Sub-searches that fail are skipped, so an empty result just means
// nothing profitable exists for the parameters.
func (e *Engine) MultiRoutes(p MultiRouteParams) []*Route {
	maxRoutes := p.MaxRoutes
	if maxRoutes < 1 {
		maxRoutes = DefaultMaxRoutes
	}

	var routes []*Route
	if p.Commodity == nil {
		for _, name := range e.ix.CommodityNames {
			q := p.RouteParams
			q.Commodity = e.ix.CommodityByName(name)
			if r, err := e.BestRoute(q); err == nil {
				routes = append(routes, r)
			}
		}
	} else {
		routes = e.routesPerTradeportPair(p.RouteParams)
	}

	sort.SliceStable(routes, func(i, j int) bool { return routes[i].Profit > routes[j].Profit })
	if len(routes) > maxRoutes {
		routes = routes[:maxRoutes]
	}
	return routes
}

// routesPerTradeportPair fans a fixed-commodity search out over every pair of
// start tradeport buying and end tradeport selling that commodity.
func (e *Engine) routesPerTradeportPair(p RouteParams) []*Route {
	starts := e.ix.TradeportsAt(p.StartName, false)
	ends := e.ix.Tradeports
	if p.EndName != "" {
		ends = e.ix.TradeportsAt(p.EndName, false)
	}

	code := lc(p.Commodity.Code)
	var routes []*Route
	for _, ts := range starts {
		if _, ok := ts.BuyListings[code]; !ok {
			continue
		}
		for _, te := range ends {
			if _, ok := te.SellListings[code]; !ok {
				continue
			}
			q := p
			q.StartName = ts.Name
			q.EndName = te.Name
			if r, err := e.BestRoute(q); err == nil {
				routes = append(routes, r)
			}
		}
	}
	return routes
}

// RankSellLocations groups every candidate tradeport by the total price paid
// for selling amount units of the commodity there and returns the top
// maxLocations price levels, best first. An empty positionName considers the
// whole verse.
func (e *Engine) RankSellLocations(c *catalog.Commodity, ship *catalog.Ship, positionName string, amount float64, maxLocations int) []PriceGroup {
	return e.rankLocations(c, ship, positionName, amount, maxLocations, e.SellPrice, true)
}

// RankBuyLocations is the buying mirror of RankSellLocations: cheapest total
// price first.
func (e *Engine) RankBuyLocations(c *catalog.Commodity, ship *catalog.Ship, positionName string, amount float64, maxLocations int) []PriceGroup {
	return e.rankLocations(c, ship, positionName, amount, maxLocations, e.BuyPrice, false)
}

func (e *Engine) rankLocations(
	c *catalog.Commodity, ship *catalog.Ship, positionName string,
	amount float64, maxLocations int,
	price func(*catalog.Tradeport, *catalog.Commodity, *catalog.Ship, float64) (float64, bool),
	descending bool,
) []PriceGroup {
	if amount < 1 {
		amount = DefaultAmount
	}
	if maxLocations < 1 {
		maxLocations = DefaultMaxLocations
	}

	tps := e.ix.Tradeports
	if positionName != "" {
		tps = e.ix.TradeportsAt(positionName, false)
	}

	byPrice := make(map[float64][]*catalog.Tradeport)
	for _, tp := range tps {
		if total, ok := price(tp, c, ship, amount); ok {
			byPrice[total] = append(byPrice[total], tp)
		}
	}

	groups := make([]PriceGroup, 0, len(byPrice))
	for total, members := range byPrice {
		groups = append(groups, PriceGroup{Price: total, Tradeports: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		if descending {
			return groups[i].Price > groups[j].Price
		}
		return groups[i].Price < groups[j].Price
	})
	if len(groups) > maxLocations {
		groups = groups[:maxLocations]
	}
	return groups
}
