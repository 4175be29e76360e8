package command

import (
	"context"
	"path/filepath"
	"testing"

	"verse-trader/internal/catalog"
	"verse-trader/internal/resolver"
	"verse-trader/internal/uex"
)

// fakeLoader serves a fixed catalog and counts how it was asked for it.
type fakeLoader struct {
	cat     *uex.Catalog
	calls   int
	reloads int
}

func (f *fakeLoader) Load(ctx context.Context, reload bool) (*catalog.Index, error) {
	f.calls++
	if reload {
		f.reloads++
	}
	return catalog.Build(f.cat), nil
}

func testUEXCatalog() *uex.Catalog {
	return &uex.Catalog{
		Ships: []uex.Ship{
			{Code: "HULLC", Name: "Hull C", Manufacturer: "MISC", SCU: 1000, Implemented: true},
			{Code: "FREE", Name: "Freelancer", Manufacturer: "MISC", SCU: 66, Implemented: true},
		},
		Commodities: []uex.Commodity{
			{Code: "LARA", Name: "Laranite", Kind: "Metal", Tradable: true, TradePriceBuy: 10, TradePriceSell: 25},
			{Code: "WIDO", Name: "WiDoW", Kind: "Drug", Tradable: true, Illegal: true, TradePriceSell: 100},
		},
		Systems: []uex.StarSystem{{Code: "ST", Name: "Stanton", Available: true}},
		Planets: []uex.Planet{
			{Code: "HUR", Name: "Hurston", System: "ST", Available: true},
			{Code: "MIC", Name: "microTech", System: "ST", Available: true},
		},
		Satellites: []uex.Satellite{{Code: "DAY", Name: "Daymar", Planet: "HUR", Available: true}},
		Cities:     []uex.City{{Code: "LORV", Name: "Lorville", System: "ST", Planet: "HUR", Available: true}},
		Tradeports: []uex.Tradeport{
			{
				Code: "EVERUS", Name: "Everus Harbor", System: "ST", Planet: "HUR",
				Space: true, Visible: true,
				Prices: map[string]uex.PriceListing{
					"LARA": {Name: "Laranite", Kind: "Metal", Operation: "buy", PriceBuy: 10},
				},
			},
			{
				Code: "TRESS", Name: "Port Tressler", System: "ST", Planet: "MIC",
				Space: true, Visible: true,
				Prices: map[string]uex.PriceListing{
					"LARA": {Name: "Laranite", Kind: "Metal", Operation: "sell", PriceSell: 25},
				},
			},
			{
				Code: "CBD", Name: "Central Business District", System: "ST", Planet: "HUR", City: "LORV",
				Visible: true,
				Prices: map[string]uex.PriceListing{
					"WIDO": {Name: "WiDoW", Kind: "Drug", Operation: "sell", PriceSell: 100},
				},
			},
			{
				Code: "SAL2", Name: "Shubin Mining Facility SAL-2", System: "ST", Planet: "HUR", Satellite: "DAY",
				Visible: true,
				Prices: map[string]uex.PriceListing{
					"WIDO": {Name: "WiDoW", Kind: "Drug", Operation: "buy", PriceBuy: 40},
				},
			},
		},
	}
}

func newTestEngine(t *testing.T) (*Engine, *fakeLoader) {
	t.Helper()
	loader := &fakeLoader{cat: testUEXCatalog()}
	e := NewEngine(Config{
		Loader:   loader,
		Resolver: resolver.New(nil, nil),
		Version:  "test",
		FaultLog: filepath.Join(t.TempDir(), "trader_error.log"),
	})
	if err := e.Load(context.Background(), false); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return e, loader
}

func dispatch(t *testing.T, e *Engine, name string, args Args) string {
	t.Helper()
	resp, err := e.Dispatch(context.Background(), name, args)
	if err != nil {
		t.Fatalf("Dispatch(%s): %v", name, err)
	}
	return resp
}
