package engine

import (
	"sort"
	"strings"

	"verse-trader/internal/catalog"
)

// Readable output shapes. Field names follow the JSON the conversational
// model receives; empty levels are omitted entirely rather than sent blank.

// TradeportInfo is the readable form of a tradeport.
type TradeportInfo struct {
	Name                string `json:"name"`
	System              string `json:"system,omitempty"`
	Planet              string `json:"planet,omitempty"`
	City                string `json:"city,omitempty"`
	Satellite           string `json:"satellite,omitempty"`
	HullTrading         string `json:"hull_trading"`
	Type                string `json:"type"`
	BuyableCommodities  string `json:"buyable_commodities,omitempty"`
	SellableCommodities string `json:"sellable_commodities,omitempty"`
}

// CityInfo is the readable form of a city.
type CityInfo struct {
	Name           string `json:"name"`
	System         string `json:"system,omitempty"`
	Planet         string `json:"planet,omitempty"`
	Type           string `json:"type"`
	OptionsToTrade string `json:"options_to_trade,omitempty"`
}

// SatelliteInfo is the readable form of a satellite.
type SatelliteInfo struct {
	Name           string `json:"name"`
	System         string `json:"system,omitempty"`
	Planet         string `json:"planet,omitempty"`
	Type           string `json:"type"`
	OptionsToTrade string `json:"options_to_trade,omitempty"`
}

// PlanetInfo is the readable form of a planet.
type PlanetInfo struct {
	Name           string `json:"name"`
	System         string `json:"system,omitempty"`
	Type           string `json:"type"`
	OptionsToTrade string `json:"options_to_trade,omitempty"`
	Satellites     string `json:"satellites,omitempty"`
	Cities         string `json:"cities,omitempty"`
}

// SystemInfo is the readable form of a star system.
type SystemInfo struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	OptionsToTrade string `json:"options_to_trade,omitempty"`
	Planets        string `json:"planets,omitempty"`
}

// ShipPointInfo is one readable buy or rent offer for a ship.
type ShipPointInfo struct {
	Tradeport string `json:"tradeport,omitempty"`
	System    string `json:"system,omitempty"`
	Planet    string `json:"planet,omitempty"`
	Satellite string `json:"satellite,omitempty"`
	City      string `json:"city,omitempty"`
	Store     string `json:"store,omitempty"`
	Price     string `json:"price"`
}

// ShipInfo is the readable form of a ship. BuyAt and RentAt hold either a
// []ShipPointInfo or an explanatory string when there are no offers.
type ShipInfo struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Cargo        string `json:"cargo"`
	PriceUSD     string `json:"price_USD"`
	BuyAt        any    `json:"buy_at"`
	RentAt       any    `json:"rent_at"`
	Type         string `json:"type"`
	TradingInfo  string `json:"trading_info,omitempty"`
}

// CommodityInfo is the readable form of a commodity.
type CommodityInfo struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Buyable     string `json:"buyable"`
	Sellable    string `json:"sellable"`
	Minable     string `json:"minable"`
	Harvestable string `json:"harvestable"`
	Illegal     string `json:"illegal"`
}

// TradeportInfo converts a tradeport for output, memoized per catalog
// generation.
func (e *Engine) TradeportInfo(tp *catalog.Tradeport) TradeportInfo {
	cacheKey := "tradeport--" + tp.Code
	if v, ok := e.display.Get(cacheKey); ok {
		return v.(TradeportInfo)
	}

	info := TradeportInfo{
		Name:      tp.Name,
		System:    e.ix.SystemNameByCode(tp.SystemCode),
		Planet:    e.ix.PlanetNameByCode(tp.PlanetCode),
		City:      e.ix.CityNameByCode(tp.CityCode),
		Satellite: e.ix.SatelliteNameByCode(tp.SatelliteCode),
		Type:      "Tradeport",
	}
	if tp.HullTrading {
		info.HullTrading = "Trading with MISC Hull C is possible."
	} else {
		info.HullTrading = "Trading with MISC Hull C is not possible."
	}

	var buyable, sellable []string
	for _, l := range tp.BuyListings {
		buyable = append(buyable, l.CommodityName+" for "+formatNumber(l.PriceBuy)+" aUEC per SCU")
	}
	for _, l := range tp.SellListings {
		sellable = append(sellable, l.CommodityName+" for "+formatNumber(l.PriceSell)+" aUEC per SCU")
	}
	sort.Strings(buyable)
	sort.Strings(sellable)
	info.BuyableCommodities = joinComma(buyable)
	info.SellableCommodities = joinComma(sellable)

	e.display.SetDefault(cacheKey, info)
	return info
}

// CityInfo converts a city for output.
func (e *Engine) CityInfo(c *catalog.City) CityInfo {
	cacheKey := "city--" + c.Code
	if v, ok := e.display.Get(cacheKey); ok {
		return v.(CityInfo)
	}

	info := CityInfo{
		Name:           c.Name,
		System:         e.ix.SystemNameByCode(c.SystemCode),
		Planet:         e.ix.PlanetNameByCode(c.PlanetCode),
		Type:           "City",
		OptionsToTrade: e.tradeOptions(c.Name),
	}
	e.display.SetDefault(cacheKey, info)
	return info
}

// SatelliteInfo converts a satellite for output.
func (e *Engine) SatelliteInfo(s *catalog.Satellite) SatelliteInfo {
	cacheKey := "satellite--" + s.Code
	if v, ok := e.display.Get(cacheKey); ok {
		return v.(SatelliteInfo)
	}

	planet := e.ix.PlanetNameByCode(s.PlanetCode)
	var system string
	if p := e.planetByCode(s.PlanetCode); p != nil {
		system = e.ix.SystemNameByCode(p.SystemCode)
	}
	info := SatelliteInfo{
		Name:           s.Name,
		System:         system,
		Planet:         planet,
		Type:           "Satellite",
		OptionsToTrade: e.tradeOptions(s.Name),
	}
	e.display.SetDefault(cacheKey, info)
	return info
}

// PlanetInfo converts a planet for output.
func (e *Engine) PlanetInfo(p *catalog.Planet) PlanetInfo {
	cacheKey := "planet--" + p.Code
	if v, ok := e.display.Get(cacheKey); ok {
		return v.(PlanetInfo)
	}

	var satellites, cities []string
	for _, s := range e.ix.SatellitesByPlanet(p.Code) {
		satellites = append(satellites, s.Name)
	}
	for _, c := range e.ix.CitiesByPlanet(p.Code) {
		cities = append(cities, c.Name)
	}
	info := PlanetInfo{
		Name:           p.Name,
		System:         e.ix.SystemNameByCode(p.SystemCode),
		Type:           "Planet",
		OptionsToTrade: e.tradeOptions(p.Name),
		Satellites:     joinComma(satellites),
		Cities:         joinComma(cities),
	}
	e.display.SetDefault(cacheKey, info)
	return info
}

// SystemInfo converts a star system for output.
func (e *Engine) SystemInfo(s *catalog.System) SystemInfo {
	cacheKey := "system--" + s.Code
	if v, ok := e.display.Get(cacheKey); ok {
		return v.(SystemInfo)
	}

	var planets []string
	for _, p := range e.ix.PlanetsBySystem(s.Code) {
		planets = append(planets, p.Name)
	}
	info := SystemInfo{
		Name:           s.Name,
		Type:           "System",
		OptionsToTrade: e.tradeOptions(s.Name),
		Planets:        joinComma(planets),
	}
	e.display.SetDefault(cacheKey, info)
	return info
}

// ShipInfo converts a ship for output.
func (e *Engine) ShipInfo(s *catalog.Ship) ShipInfo {
	cacheKey := "ship--" + s.Code
	if v, ok := e.display.Get(cacheKey); ok {
		return v.(ShipInfo)
	}

	manufacturer := s.ManufacturerCode
	if full, ok := catalog.Manufacturers[s.ManufacturerCode]; ok {
		manufacturer = full
	}
	info := ShipInfo{
		Name:         s.Name,
		Manufacturer: manufacturer,
		Cargo:        FormatSCU(s.SCU),
		PriceUSD:     formatNumber(s.PriceUSD),
		Type:         "Ship",
	}
	if len(s.BuyAt) == 0 {
		info.BuyAt = "This ship cannot be bought."
	} else {
		info.BuyAt = e.shipPointInfos(s.BuyAt)
	}
	if len(s.RentAt) == 0 {
		info.RentAt = "This ship cannot be rented."
	} else {
		info.RentAt = e.shipPointInfos(s.RentAt)
	}
	if s.HullTrading {
		info.TradingInfo = "This ship can only trade on suitable space stations with a cargo deck."
	}

	e.display.SetDefault(cacheKey, info)
	return info
}

// CommodityInfo converts a commodity for output.
func (e *Engine) CommodityInfo(c *catalog.Commodity) CommodityInfo {
	cacheKey := "commodity--" + c.Code
	if v, ok := e.display.Get(cacheKey); ok {
		return v.(CommodityInfo)
	}

	info := CommodityInfo{
		Name:        c.Name,
		Kind:        c.Kind,
		Buyable:     "No",
		Sellable:    "No",
		Minable:     yesNo(c.Minable),
		Harvestable: yesNo(c.Harvestable),
		Illegal:     "No",
	}
	if c.TradePriceBuy != 0 {
		info.Buyable = "Yes (" + formatNumber(c.TradePriceBuy) + " aUEC per SCU)"
	}
	if c.TradePriceSell != 0 {
		info.Sellable = "Yes (" + formatNumber(c.TradePriceSell) + " aUEC per SCU)"
	}
	if c.Illegal {
		info.Illegal = "Yes, stay away from ship scanns to avoid fines and crimestat."
	}

	e.display.SetDefault(cacheKey, info)
	return info
}

// LocationInfo resolves a canonical location name to its readable form,
// trying tradeport, city, satellite, planet and system in that order.
func (e *Engine) LocationInfo(name string) (any, bool) {
	if tp := e.ix.TradeportByName(name); tp != nil {
		return e.TradeportInfo(tp), true
	}
	if c := e.ix.CityByName(name); c != nil {
		return e.CityInfo(c), true
	}
	if s := e.ix.SatelliteByName(name); s != nil {
		return e.SatelliteInfo(s), true
	}
	if p := e.ix.PlanetByName(name); p != nil {
		return e.PlanetInfo(p), true
	}
	if s := e.ix.SystemByName(name); s != nil {
		return e.SystemInfo(s), true
	}
	return nil, false
}

// ShipComparison converts several ships for a side-by-side answer, keyed by
// ship name.
func (e *Engine) ShipComparison(ships []*catalog.Ship) map[string]ShipInfo {
	out := make(map[string]ShipInfo, len(ships))
	for _, s := range ships {
		out[s.Name] = e.ShipInfo(s)
	}
	return out
}

// tradeOptions lists the tradeports directly at a location, comma separated.
func (e *Engine) tradeOptions(locationName string) string {
	tps := e.ix.TradeportsAt(locationName, true)
	names := make([]string, 0, len(tps))
	for _, tp := range tps {
		names = append(names, tp.Name)
	}
	return joinComma(names)
}

func (e *Engine) shipPointInfos(points []catalog.ShipPoint) []ShipPointInfo {
	out := make([]ShipPointInfo, 0, len(points))
	for _, p := range points {
		out = append(out, e.shipPointInfo(p))
	}
	return out
}

// shipPointInfo renders one offer. Offers tied to a tradeport take their
// location names from the catalog; free-standing offers carry their own.
func (e *Engine) shipPointInfo(p catalog.ShipPoint) ShipPointInfo {
	info := ShipPointInfo{Price: FormatAUEC(p.Price)}
	if tp := e.ix.TradeportByCode(p.TradeportCode); tp != nil {
		info.Tradeport = tp.Name
		info.System = e.ix.SystemNameByCode(tp.SystemCode)
		info.Planet = e.ix.PlanetNameByCode(tp.PlanetCode)
		info.Satellite = e.ix.SatelliteNameByCode(tp.SatelliteCode)
		info.City = e.ix.CityNameByCode(tp.CityCode)
		info.Store = "Refinery"
		return info
	}
	info.System = p.SystemName
	info.Planet = p.PlanetName
	info.Satellite = p.SatelliteName
	info.City = p.CityName
	info.Store = p.StoreName
	return info
}

func (e *Engine) planetByCode(code string) *catalog.Planet {
	for _, p := range e.ix.Planets {
		if p.Code == code {
			return p
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func joinComma(parts []string) string {
	return strings.Join(parts, ", ")
}
