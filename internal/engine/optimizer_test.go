package engine

import (
	"errors"
	"testing"

	"verse-trader/internal/catalog"
	"verse-trader/internal/uex"
)

func routeErr(t *testing.T, err error) *RouteError {
	t.Helper()
	var re *RouteError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *RouteError", err)
	}
	return re
}

func TestBestRouteHullShipDefaultEnd(t *testing.T) {
	e := testEngine()
	r, err := e.BestRoute(RouteParams{
		Ship:      e.mustShip("Hull C"),
		StartName: "Everus Harbor",
	})
	if err != nil {
		t.Fatalf("BestRoute: %v", err)
	}
	if r.CommodityName != "Laranite" {
		t.Fatalf("commodity = %q", r.CommodityName)
	}
	if r.Profit != 15000 || r.Cargo != 1000 {
		t.Fatalf("profit/cargo = %d/%v, want 15000/1000", r.Profit, r.Cargo)
	}
	if r.BuyTotal != 10000 || r.SellTotal != 25000 {
		t.Fatalf("buy/sell totals = %v/%v", r.BuyTotal, r.SellTotal)
	}
	if len(r.Start) != 1 || r.Start[0].Name != "Everus Harbor" {
		t.Fatalf("start = %+v", r.Start)
	}
	// Port Tressler and Baijini Point pay the same, so both are kept as
	// interchangeable endpoints.
	if len(r.End) != 2 {
		t.Fatalf("end alternatives = %d, want 2", len(r.End))
	}
}

func TestBestRouteDefaultEndFallsBackToAllTradeports(t *testing.T) {
	// The only start tradeport carries no system code, so the same-system
	// default end set is empty and the whole verse takes its place.
	e := New(catalog.Build(&uex.Catalog{
		Ships: []uex.Ship{
			{Code: "FREE", Name: "Freelancer", Manufacturer: "MISC", SCU: 66, Implemented: true},
		},
		Commodities: []uex.Commodity{
			{Code: "LARA", Name: "Laranite", Kind: "Metal", Tradable: true},
		},
		Systems: []uex.StarSystem{{Code: "ST", Name: "Stanton", Available: true}},
		Tradeports: []uex.Tradeport{
			{
				Code: "LONE", Name: "Lone Outpost", Visible: true,
				Prices: map[string]uex.PriceListing{
					"LARA": {Name: "Laranite", Kind: "Metal", Operation: "buy", PriceBuy: 10},
				},
			},
			{
				Code: "TRESS", Name: "Port Tressler", System: "ST",
				Space: true, Visible: true,
				Prices: map[string]uex.PriceListing{
					"LARA": {Name: "Laranite", Kind: "Metal", Operation: "sell", PriceSell: 25},
				},
			},
		},
	}))

	r, err := e.BestRoute(RouteParams{
		Ship:      e.mustShip("Freelancer"),
		StartName: "Lone Outpost",
	})
	if err != nil {
		t.Fatalf("BestRoute: %v", err)
	}
	if r.Profit != 990 || r.End[0].Name != "Port Tressler" {
		t.Fatalf("route = %+v", r)
	}
}

func TestBestRouteBudgetCapsCargo(t *testing.T) {
	e := testEngine()
	r, err := e.BestRoute(RouteParams{
		Ship:      e.mustShip("Freelancer"),
		StartName: "Everus Harbor",
		Budget:    50,
	})
	if err != nil {
		t.Fatalf("BestRoute: %v", err)
	}
	if r.Cargo != 5 {
		t.Fatalf("cargo = %v, want floor(50/10)", r.Cargo)
	}
	if r.Profit != 75 || r.BuyTotal != 50 || r.SellTotal != 125 {
		t.Fatalf("profit/buy/sell = %d/%v/%v", r.Profit, r.BuyTotal, r.SellTotal)
	}
}

func TestBestRouteFreeCargoCappedByShip(t *testing.T) {
	e := testEngine()

	r, err := e.BestRoute(RouteParams{
		Ship:      e.mustShip("Freelancer"),
		StartName: "Everus Harbor",
		FreeCargo: 10,
	})
	if err != nil {
		t.Fatalf("BestRoute: %v", err)
	}
	if r.Cargo != 10 || r.Profit != 150 {
		t.Fatalf("cargo/profit = %v/%d", r.Cargo, r.Profit)
	}

	// Claimed free space beyond the hull is a mistake; the ship wins.
	r, err = e.BestRoute(RouteParams{
		Ship:      e.mustShip("Hull C"),
		StartName: "Everus Harbor",
		FreeCargo: 2000,
	})
	if err != nil {
		t.Fatalf("BestRoute: %v", err)
	}
	if r.Cargo != 1000 {
		t.Fatalf("cargo = %v, want clamped to 1000", r.Cargo)
	}
}

func TestBestRouteIllegalFilter(t *testing.T) {
	e := testEngine()
	ship := e.mustShip("Freelancer")

	_, err := e.BestRoute(RouteParams{Ship: ship, StartName: "Daymar"})
	re := routeErr(t, err)
	want := "No route found for your Freelancer starting from Daymar. Try a different route."
	if re.Message != want {
		t.Fatalf("message = %q, want %q", re.Message, want)
	}

	r, err := e.BestRoute(RouteParams{Ship: ship, StartName: "Daymar", IllegalAllowed: true})
	if err != nil {
		t.Fatalf("BestRoute: %v", err)
	}
	if r.CommodityName != "WiDoW" || r.Profit != 3960 {
		t.Fatalf("route = %s/%d", r.CommodityName, r.Profit)
	}
	if len(r.End) != 1 || r.End[0].Name != "Central Business District" {
		t.Fatalf("end = %+v, want only the best seller", r.End)
	}
}

func TestBestRouteCommodityFilter(t *testing.T) {
	e := testEngine()
	_, err := e.BestRoute(RouteParams{
		Ship:           e.mustShip("Freelancer"),
		StartName:      "Daymar",
		Commodity:      e.mustCommodity("Laranite"),
		IllegalAllowed: true,
	})
	if err == nil {
		t.Fatal("expected no route: Daymar does not buy Laranite")
	}
}

func TestBestRouteFailureMessages(t *testing.T) {
	e := testEngine()
	free := e.mustShip("Freelancer")
	hull := e.mustShip("Hull C")

	cases := []struct {
		name string
		p    RouteParams
		want string
	}{
		{"unknown start", RouteParams{Ship: free, StartName: "Nowhere"}, msgNoStart},
		{"hull-incompatible start", RouteParams{Ship: hull, StartName: "Lorville"}, msgNoStartHull},
		{"unknown end", RouteParams{Ship: free, StartName: "Everus Harbor", EndName: "Nowhere"}, msgNoEnd},
		{"same position", RouteParams{Ship: free, StartName: "Port Tressler", EndName: "Port Tressler"}, msgSamePosition},
		{"no cargo space", RouteParams{Ship: e.mustShip("P-52 Merlin"), StartName: "Everus Harbor"}, msgNoCapacity},
	}
	for _, tc := range cases {
		_, err := e.BestRoute(tc.p)
		if re := routeErr(t, err); re.Message != tc.want {
			t.Errorf("%s: message = %q, want %q", tc.name, re.Message, tc.want)
		}
	}
}

func TestBestRouteHullFilterAppliesToEnd(t *testing.T) {
	e := testEngine()
	// Lorville exists as an end position but has no cargo deck, so the Hull C
	// is left with nowhere to sell.
	_, err := e.BestRoute(RouteParams{
		Ship:      e.mustShip("Hull C"),
		StartName: "Everus Harbor",
		EndName:   "Lorville",
	})
	re := routeErr(t, err)
	want := "No route found for your Hull C starting from Everus Harbor. Try a different route."
	if re.Message != want {
		t.Fatalf("message = %q, want %q", re.Message, want)
	}
}
