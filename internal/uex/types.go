package uex

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Flag decodes the API's mixed boolean encodings ("1", 1, true) into a bool.
// The feed is inconsistent between endpoints and even between record versions.
type Flag bool

// UnmarshalJSON accepts bool, number, and string representations.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*f = false
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = s == "1" || s == "true"
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*f = Flag(b)
		return nil
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*f = n != 0
		return nil
	}
}

// Number decodes numeric fields that arrive either as JSON numbers or as
// numeric strings.
type Number float64

// UnmarshalJSON accepts number and string representations.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Ship mirrors a ships endpoint record.
type Ship struct {
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	Manufacturer string      `json:"manufacturer"`
	SCU          Number      `json:"scu"`
	PriceUSD     Number      `json:"price"`
	Implemented  Flag        `json:"implemented"`
	BuyAt        []ShipPoint `json:"buy_at"`
	RentAt       []ShipPoint `json:"rent_at"`
}

// ShipPoint is one buy/rent offer for a ship, either at a tradeport (code
// set) or described by loose location name fields.
type ShipPoint struct {
	Tradeport     string `json:"tradeport"`
	System        string `json:"system"`
	Planet        string `json:"planet"`
	Satellite     string `json:"satellite"`
	City          string `json:"city"`
	Store         string `json:"store"`
	SystemName    string `json:"system_name"`
	PlanetName    string `json:"planet_name"`
	SatelliteName string `json:"satellite_name"`
	CityName      string `json:"city_name"`
	StoreName     string `json:"store_name"`
	Price         Number `json:"price"`
}

// Commodity mirrors a commodities endpoint record.
type Commodity struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	TradePriceBuy  Number `json:"trade_price_buy"`
	TradePriceSell Number `json:"trade_price_sell"`
	Tradable       Flag   `json:"tradable"`
	Illegal        Flag   `json:"illegal"`
	Minable        Flag   `json:"minable"`
	Harvestable    Flag   `json:"harvestable"`
	Available      Flag   `json:"available"`
}

// StarSystem mirrors a star_systems endpoint record.
type StarSystem struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Available Flag   `json:"available"`
}

// Planet mirrors a planets endpoint record.
type Planet struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	System    string `json:"system"`
	Available Flag   `json:"available"`
}

// Satellite mirrors a satellites endpoint record.
type Satellite struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Planet    string `json:"planet"`
	Available Flag   `json:"available"`
}

// City mirrors a cities endpoint record.
type City struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	System    string `json:"system"`
	Planet    string `json:"planet"`
	Available Flag   `json:"available"`
}

// PriceListing is one commodity price entry inside a tradeport record.
type PriceListing struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Operation string `json:"operation"` // "buy" or "sell"
	PriceBuy  Number `json:"price_buy"`
	PriceSell Number `json:"price_sell"`
}

// Tradeport mirrors a tradeports endpoint record.
type Tradeport struct {
	Code      string                  `json:"code"`
	Name      string                  `json:"name"`
	System    string                  `json:"system"`
	Planet    string                  `json:"planet"`
	Satellite string                  `json:"satellite"`
	City      string                  `json:"city"`
	Space     Flag                    `json:"space"`
	Visible   Flag                    `json:"visible"`
	Prices    map[string]PriceListing `json:"prices"`
}

// Catalog bundles one full fetch of every collection.
type Catalog struct {
	Ships       []Ship      `json:"ships"`
	Commodities []Commodity `json:"commodities"`
	Systems     []StarSystem `json:"systems"`
	Tradeports  []Tradeport `json:"tradeports"`
	Planets     []Planet    `json:"planets"`
	Satellites  []Satellite `json:"satellites"`
	Cities      []City      `json:"cities"`
}
