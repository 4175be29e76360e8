package engine

import "verse-trader/internal/catalog"

// SellPrice returns the total aUEC received for selling amount units of the
// commodity at the tradeport, false when the commodity cannot be sold there.
// A hull-trading ship gates the lookup to hull-trading stations.
func (e *Engine) SellPrice(tp *catalog.Tradeport, c *catalog.Commodity, ship *catalog.Ship, amount float64) (float64, bool) {
	if tp == nil || c == nil {
		return 0, false
	}
	if ship != nil && ship.HullTrading && !tp.HullTrading {
		return 0, false
	}
	if amount < 1 {
		amount = DefaultAmount
	}
	l, ok := tp.SellListings[lc(c.Code)]
	if !ok {
		return 0, false
	}
	return l.PriceSell * amount, true
}

// BuyPrice returns the total aUEC spent buying amount units of the commodity
// at the tradeport, false when the commodity cannot be bought there.
func (e *Engine) BuyPrice(tp *catalog.Tradeport, c *catalog.Commodity, ship *catalog.Ship, amount float64) (float64, bool) {
	if tp == nil || c == nil {
		return 0, false
	}
	if ship != nil && ship.HullTrading && !tp.HullTrading {
		return 0, false
	}
	if amount < 1 {
		amount = DefaultAmount
	}
	l, ok := tp.BuyListings[lc(c.Code)]
	if !ok {
		return 0, false
	}
	return l.PriceBuy * amount, true
}
