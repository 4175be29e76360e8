package engine

import (
	"strconv"
	"strings"

	"verse-trader/internal/catalog"
)

// formatNumber renders a price or quantity without a trailing ".0" so that
// whole values read naturally in spoken responses.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAUEC renders an aUEC amount for output.
func FormatAUEC(v float64) string { return formatNumber(v) + " aUEC" }

// FormatSCU renders a cargo quantity for output.
func FormatSCU(v float64) string { return formatNumber(v) + " SCU" }

// TradeportBreadcrumb describes where a tradeport sits, top-down, skipping
// levels the tradeport does not have: "(Star-System: Stanton >> Planet:
// microTech >> Trade Point: Port Tressler)".
func (e *Engine) TradeportBreadcrumb(tp *catalog.Tradeport) string {
	var route []string
	if n := e.ix.SystemNameByCode(tp.SystemCode); n != "" {
		route = append(route, "Star-System: "+n)
	}
	if n := e.ix.PlanetNameByCode(tp.PlanetCode); n != "" {
		route = append(route, "Planet: "+n)
	}
	if n := e.ix.SatelliteNameByCode(tp.SatelliteCode); n != "" {
		route = append(route, "Satellite: "+n)
	}
	if n := e.ix.CityNameByCode(tp.CityCode); n != "" {
		route = append(route, "City: "+n)
	}
	route = append(route, "Trade Point: "+tp.Name)
	return "(" + strings.Join(route, " >> ") + ")"
}

// joinBreadcrumbs renders endpoint alternatives; tradeports tying on profit
// are interchangeable, so they read as one "A OR B" choice.
func (e *Engine) joinBreadcrumbs(tps []*catalog.Tradeport) string {
	parts := make([]string, 0, len(tps))
	for _, tp := range tps {
		parts = append(parts, e.TradeportBreadcrumb(tp))
	}
	return strings.Join(parts, " OR ")
}

// DescribeRoute converts a route into its spoken-output shape.
func (e *Engine) DescribeRoute(r *Route) RouteDisplay {
	return RouteDisplay{
		Start:     e.joinBreadcrumbs(r.Start),
		End:       e.joinBreadcrumbs(r.End),
		Commodity: r.CommodityName,
		Profit:    FormatAUEC(float64(r.Profit)),
		Cargo:     FormatSCU(r.Cargo),
		Buy:       FormatAUEC(r.BuyTotal),
		Sell:      FormatAUEC(r.SellTotal),
	}
}
