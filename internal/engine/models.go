package engine

import "verse-trader/internal/catalog"

const (
	// DefaultMaxRoutes is the aggregator's top-K when the caller gives none.
	DefaultMaxRoutes = 2
	// DefaultMaxLocations bounds the buy/sell location rankings.
	DefaultMaxLocations = 3
	// DefaultAmount is the trade amount assumed by the price rankings.
	DefaultAmount = 1
)

// RouteParams holds the resolved inputs for a best-route search. Names are
// canonical catalog names; fuzzy resolution happens before the engine runs.
type RouteParams struct {
	Ship      *catalog.Ship
	StartName string
	EndName   string             // "" = default to the start's star system
	Commodity *catalog.Commodity // nil = consider every commodity
	Budget    float64            // < 1 = unconstrained
	FreeCargo float64            // > 0 caps cargo below the ship's capacity
	// IllegalAllowed admits listings of kind "Drug" into the search.
	IllegalAllowed bool
}

// Route is a winning buy/sell pairing. Start and End carry every tradeport
// tying on profit for the same commodity; alternatives at one endpoint are
// interchangeable.
type Route struct {
	Start         []*catalog.Tradeport
	End           []*catalog.Tradeport
	CommodityCode string
	CommodityName string
	Profit        int64   // aUEC, rounded
	Cargo         float64 // SCU moved
	BuyTotal      float64 // aUEC spent at the start
	SellTotal     float64 // aUEC received at the end
}

// RouteDisplay is the formatted shape embedded as JSON in responses.
type RouteDisplay struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Commodity string `json:"commodity"`
	Profit    string `json:"profit"`
	Cargo     string `json:"cargo"`
	Buy       string `json:"buy"`
	Sell      string `json:"sell"`
}

// RouteError is a search failure whose message is spoken to the user as-is.
type RouteError struct {
	Message string
}

func (e *RouteError) Error() string { return e.Message }

// PriceGroup collects the tradeports sharing one total price for a given
// commodity and amount.
type PriceGroup struct {
	Price      float64
	Tradeports []*catalog.Tradeport
}
