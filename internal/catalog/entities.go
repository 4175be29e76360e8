package catalog

// Canonical entities built from the raw UEX feed. Immutable after Build;
// display formatting lives in internal/engine and never touches these.

// System is a star system.
type System struct {
	Code string
	Name string
}

// Planet belongs to a system.
type Planet struct {
	Code       string
	Name       string
	SystemCode string
}

// Satellite (moon) belongs to a planet.
type Satellite struct {
	Code       string
	Name       string
	PlanetCode string
}

// City belongs to a planet.
type City struct {
	Code       string
	Name       string
	SystemCode string
	PlanetCode string
}

// Listing is one commodity price entry at a tradeport. Kind carries the
// commodity category ("Drug" marks illegal goods).
type Listing struct {
	CommodityCode string
	CommodityName string
	Kind          string
	PriceBuy      float64
	PriceSell     float64
}

// Tradeport is a location where commodities are bought and sold. The feed
// delivers one listing per commodity carrying a single operation; buy and
// sell sides are kept in separate maps so a both-direction feed could never
// silently overwrite one with the other.
type Tradeport struct {
	Code          string
	Name          string
	SystemCode    string
	PlanetCode    string
	SatelliteCode string
	CityCode      string
	Space         bool
	HullTrading   bool
	BuyListings   map[string]Listing // commodity code -> player buys here
	SellListings  map[string]Listing // commodity code -> player sells here
}

// ShipPoint is one buy/rent offer for a ship.
type ShipPoint struct {
	TradeportCode string
	SystemName    string
	PlanetName    string
	SatelliteName string
	CityName      string
	StoreName     string
	Price         float64
}

// Ship is a flyable ship with cargo capacity in SCU.
type Ship struct {
	Code             string
	Name             string
	ManufacturerCode string
	SCU              float64
	PriceUSD         float64
	HullTrading      bool
	BuyAt            []ShipPoint
	RentAt           []ShipPoint
}

// Commodity is a tradeable good.
type Commodity struct {
	Code           string
	Name           string
	Kind           string
	TradePriceBuy  float64
	TradePriceSell float64
	Tradable       bool
	Illegal        bool
	Minable        bool
	Harvestable    bool
}
