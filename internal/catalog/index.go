package catalog

import "strings"

// Index holds all canonical entities plus the lookup structures derived from
// them. It is built in full by Build and never mutated afterwards; reload
// replaces the whole Index atomically.
type Index struct {
	Ships       []*Ship
	Commodities []*Commodity
	Systems     []*System
	Planets     []*Planet
	Satellites  []*Satellite
	Cities      []*City
	Tradeports  []*Tradeport

	// Display-name slices, in feed order, for resolver candidate sets.
	ShipNames      []string
	CommodityNames []string
	SystemNames    []string
	PlanetNames    []string
	SatelliteNames []string
	CityNames      []string
	TradeportNames []string

	shipByName      map[string]*Ship
	commodityByName map[string]*Commodity
	systemByName    map[string]*System
	planetByName    map[string]*Planet
	satelliteByName map[string]*Satellite
	cityByName      map[string]*City
	tradeportByName map[string]*Tradeport

	commodityByCode map[string]*Commodity
	systemByCode    map[string]*System
	planetByCode    map[string]*Planet
	satelliteByCode map[string]*Satellite
	cityByCode      map[string]*City
	tradeportByCode map[string]*Tradeport

	tradeportsBySystem    map[string][]*Tradeport
	tradeportsByPlanet    map[string][]*Tradeport
	tradeportsBySatellite map[string][]*Tradeport
	tradeportsByCity      map[string][]*Tradeport
	planetsBySystem       map[string][]*Planet
	satellitesByPlanet    map[string][]*Satellite
	citiesByPlanet        map[string][]*City
}

func key(s string) string { return strings.ToLower(s) }

// index (re)derives every lookup map from the entity slices.
func (ix *Index) index() {
	ix.shipByName = make(map[string]*Ship, len(ix.Ships))
	ix.ShipNames = ix.ShipNames[:0]
	for _, s := range ix.Ships {
		ix.shipByName[key(s.Name)] = s
		ix.ShipNames = append(ix.ShipNames, s.Name)
	}

	ix.commodityByName = make(map[string]*Commodity, len(ix.Commodities))
	ix.commodityByCode = make(map[string]*Commodity, len(ix.Commodities))
	ix.CommodityNames = ix.CommodityNames[:0]
	for _, c := range ix.Commodities {
		ix.commodityByName[key(c.Name)] = c
		ix.commodityByCode[key(c.Code)] = c
		ix.CommodityNames = append(ix.CommodityNames, c.Name)
	}

	ix.systemByName = make(map[string]*System, len(ix.Systems))
	ix.systemByCode = make(map[string]*System, len(ix.Systems))
	ix.SystemNames = ix.SystemNames[:0]
	for _, s := range ix.Systems {
		ix.systemByName[key(s.Name)] = s
		ix.systemByCode[key(s.Code)] = s
		ix.SystemNames = append(ix.SystemNames, s.Name)
	}

	ix.planetByName = make(map[string]*Planet, len(ix.Planets))
	ix.planetByCode = make(map[string]*Planet, len(ix.Planets))
	ix.planetsBySystem = make(map[string][]*Planet)
	ix.PlanetNames = ix.PlanetNames[:0]
	for _, p := range ix.Planets {
		ix.planetByName[key(p.Name)] = p
		ix.planetByCode[key(p.Code)] = p
		if p.SystemCode != "" {
			ix.planetsBySystem[key(p.SystemCode)] = append(ix.planetsBySystem[key(p.SystemCode)], p)
		}
		ix.PlanetNames = append(ix.PlanetNames, p.Name)
	}

	ix.satelliteByName = make(map[string]*Satellite, len(ix.Satellites))
	ix.satelliteByCode = make(map[string]*Satellite, len(ix.Satellites))
	ix.satellitesByPlanet = make(map[string][]*Satellite)
	ix.SatelliteNames = ix.SatelliteNames[:0]
	for _, s := range ix.Satellites {
		ix.satelliteByName[key(s.Name)] = s
		ix.satelliteByCode[key(s.Code)] = s
		if s.PlanetCode != "" {
			ix.satellitesByPlanet[key(s.PlanetCode)] = append(ix.satellitesByPlanet[key(s.PlanetCode)], s)
		}
		ix.SatelliteNames = append(ix.SatelliteNames, s.Name)
	}

	ix.cityByName = make(map[string]*City, len(ix.Cities))
	ix.cityByCode = make(map[string]*City, len(ix.Cities))
	ix.citiesByPlanet = make(map[string][]*City)
	ix.CityNames = ix.CityNames[:0]
	for _, c := range ix.Cities {
		ix.cityByName[key(c.Name)] = c
		ix.cityByCode[key(c.Code)] = c
		if c.PlanetCode != "" {
			ix.citiesByPlanet[key(c.PlanetCode)] = append(ix.citiesByPlanet[key(c.PlanetCode)], c)
		}
		ix.CityNames = append(ix.CityNames, c.Name)
	}

	ix.tradeportByName = make(map[string]*Tradeport, len(ix.Tradeports))
	ix.tradeportByCode = make(map[string]*Tradeport, len(ix.Tradeports))
	ix.tradeportsBySystem = make(map[string][]*Tradeport)
	ix.tradeportsByPlanet = make(map[string][]*Tradeport)
	ix.tradeportsBySatellite = make(map[string][]*Tradeport)
	ix.tradeportsByCity = make(map[string][]*Tradeport)
	ix.TradeportNames = ix.TradeportNames[:0]
	for _, t := range ix.Tradeports {
		ix.tradeportByName[key(t.Name)] = t
		ix.tradeportByCode[key(t.Code)] = t
		if t.SystemCode != "" {
			ix.tradeportsBySystem[key(t.SystemCode)] = append(ix.tradeportsBySystem[key(t.SystemCode)], t)
		}
		if t.PlanetCode != "" {
			ix.tradeportsByPlanet[key(t.PlanetCode)] = append(ix.tradeportsByPlanet[key(t.PlanetCode)], t)
		}
		if t.SatelliteCode != "" {
			ix.tradeportsBySatellite[key(t.SatelliteCode)] = append(ix.tradeportsBySatellite[key(t.SatelliteCode)], t)
		}
		if t.CityCode != "" {
			ix.tradeportsByCity[key(t.CityCode)] = append(ix.tradeportsByCity[key(t.CityCode)], t)
		}
		ix.TradeportNames = append(ix.TradeportNames, t.Name)
	}
}

// ShipByName returns the ship with the given display name, nil if unknown.
func (ix *Index) ShipByName(name string) *Ship {
	if name == "" {
		return nil
	}
	return ix.shipByName[key(name)]
}

// CommodityByName returns the commodity with the given display name.
func (ix *Index) CommodityByName(name string) *Commodity {
	if name == "" {
		return nil
	}
	return ix.commodityByName[key(name)]
}

// CommodityByCode returns the commodity with the given code.
func (ix *Index) CommodityByCode(code string) *Commodity {
	if code == "" {
		return nil
	}
	return ix.commodityByCode[key(code)]
}

// SystemByName returns the system with the given display name.
func (ix *Index) SystemByName(name string) *System {
	if name == "" {
		return nil
	}
	return ix.systemByName[key(name)]
}

// PlanetByName returns the planet with the given display name.
func (ix *Index) PlanetByName(name string) *Planet {
	if name == "" {
		return nil
	}
	return ix.planetByName[key(name)]
}

// SatelliteByName returns the satellite with the given display name.
func (ix *Index) SatelliteByName(name string) *Satellite {
	if name == "" {
		return nil
	}
	return ix.satelliteByName[key(name)]
}

// CityByName returns the city with the given display name.
func (ix *Index) CityByName(name string) *City {
	if name == "" {
		return nil
	}
	return ix.cityByName[key(name)]
}

// TradeportByName returns the tradeport with the given display name.
func (ix *Index) TradeportByName(name string) *Tradeport {
	if name == "" {
		return nil
	}
	return ix.tradeportByName[key(name)]
}

// TradeportByCode returns the tradeport with the given code.
func (ix *Index) TradeportByCode(code string) *Tradeport {
	if code == "" {
		return nil
	}
	return ix.tradeportByCode[key(code)]
}

// SystemNameByCode translates a system code to its display name, "" if the
// code is empty or unknown.
func (ix *Index) SystemNameByCode(code string) string {
	if s := ix.systemByCodeLookup(code); s != nil {
		return s.Name
	}
	return ""
}

func (ix *Index) systemByCodeLookup(code string) *System {
	if code == "" {
		return nil
	}
	return ix.systemByCode[key(code)]
}

// PlanetNameByCode translates a planet code to its display name.
func (ix *Index) PlanetNameByCode(code string) string {
	if code == "" {
		return ""
	}
	if p := ix.planetByCode[key(code)]; p != nil {
		return p.Name
	}
	return ""
}

// SatelliteNameByCode translates a satellite code to its display name.
func (ix *Index) SatelliteNameByCode(code string) string {
	if code == "" {
		return ""
	}
	if s := ix.satelliteByCode[key(code)]; s != nil {
		return s.Name
	}
	return ""
}

// CityNameByCode translates a city code to its display name.
func (ix *Index) CityNameByCode(code string) string {
	if code == "" {
		return ""
	}
	if c := ix.cityByCode[key(code)]; c != nil {
		return c.Name
	}
	return ""
}

// CommodityNameByCode translates a commodity code to its display name.
func (ix *Index) CommodityNameByCode(code string) string {
	if c := ix.CommodityByCode(code); c != nil {
		return c.Name
	}
	return ""
}

// PlanetsBySystem returns the planets under a system code.
func (ix *Index) PlanetsBySystem(code string) []*Planet {
	if code == "" {
		return nil
	}
	return ix.planetsBySystem[key(code)]
}

// SatellitesByPlanet returns the satellites under a planet code.
func (ix *Index) SatellitesByPlanet(code string) []*Satellite {
	if code == "" {
		return nil
	}
	return ix.satellitesByPlanet[key(code)]
}

// CitiesByPlanet returns the cities under a planet code.
func (ix *Index) CitiesByPlanet(code string) []*City {
	if code == "" {
		return nil
	}
	return ix.citiesByPlanet[key(code)]
}

// TradeportsInSystem returns every tradeport in the system with the given
// code.
func (ix *Index) TradeportsInSystem(code string) []*Tradeport {
	if code == "" {
		return nil
	}
	return ix.tradeportsBySystem[key(code)]
}

// LocationNames returns every name that may be used as a position argument,
// in resolver candidate order: tradeports, cities, satellites, planets,
// systems.
func (ix *Index) LocationNames() []string {
	out := make([]string, 0, len(ix.TradeportNames)+len(ix.CityNames)+
		len(ix.SatelliteNames)+len(ix.PlanetNames)+len(ix.SystemNames))
	out = append(out, ix.TradeportNames...)
	out = append(out, ix.CityNames...)
	out = append(out, ix.SatelliteNames...)
	out = append(out, ix.PlanetNames...)
	out = append(out, ix.SystemNames...)
	return out
}

// TradeportsAt expands a resolved location name to the tradeports under it.
// Precedence when one name shadows several collections: system, then planet,
// then satellite, then city, then the tradeport itself. With direct set, a
// system yields only its non-planetary tradeports and a planet only those
// not on a satellite — the ones directly "at" that level.
func (ix *Index) TradeportsAt(name string, direct bool) []*Tradeport {
	if name == "" {
		return nil
	}
	if sys := ix.SystemByName(name); sys != nil {
		var out []*Tradeport
		for _, t := range ix.tradeportsBySystem[key(sys.Code)] {
			if direct && t.PlanetCode != "" {
				continue
			}
			out = append(out, t)
		}
		return out
	}
	if planet := ix.PlanetByName(name); planet != nil {
		var out []*Tradeport
		for _, t := range ix.tradeportsByPlanet[key(planet.Code)] {
			if direct && t.SatelliteCode != "" {
				continue
			}
			out = append(out, t)
		}
		return out
	}
	if sat := ix.SatelliteByName(name); sat != nil {
		return ix.tradeportsBySatellite[key(sat.Code)]
	}
	if city := ix.CityByName(name); city != nil {
		return ix.tradeportsByCity[key(city.Code)]
	}
	if tp := ix.TradeportByName(name); tp != nil {
		return []*Tradeport{tp}
	}
	return nil
}
