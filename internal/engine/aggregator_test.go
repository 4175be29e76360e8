package engine

import "testing"

func TestMultiRoutesFansOutPerCommodity(t *testing.T) {
	e := testEngine()
	routes := e.MultiRoutes(MultiRouteParams{RouteParams: RouteParams{
		Ship:           e.mustShip("Freelancer"),
		StartName:      "Stanton",
		IllegalAllowed: true,
	}})
	if len(routes) != 2 {
		t.Fatalf("routes = %d, want one per profitable commodity", len(routes))
	}
	if routes[0].CommodityName != "WiDoW" || routes[0].Profit != 3960 {
		t.Fatalf("best route = %s/%d", routes[0].CommodityName, routes[0].Profit)
	}
	if routes[1].CommodityName != "Laranite" || routes[1].Profit != 990 {
		t.Fatalf("second route = %s/%d", routes[1].CommodityName, routes[1].Profit)
	}
}

func TestMultiRoutesSkipsIllegalByDefault(t *testing.T) {
	e := testEngine()
	routes := e.MultiRoutes(MultiRouteParams{RouteParams: RouteParams{
		Ship:      e.mustShip("Freelancer"),
		StartName: "Stanton",
	}})
	if len(routes) != 1 || routes[0].CommodityName != "Laranite" {
		t.Fatalf("routes = %+v, want only the legal commodity", routes)
	}
}

func TestMultiRoutesTrimsToMax(t *testing.T) {
	e := testEngine()
	p := MultiRouteParams{RouteParams: RouteParams{
		Ship:           e.mustShip("Freelancer"),
		StartName:      "Stanton",
		IllegalAllowed: true,
	}, MaxRoutes: 1}
	routes := e.MultiRoutes(p)
	if len(routes) != 1 || routes[0].CommodityName != "WiDoW" {
		t.Fatalf("routes = %+v, want only the most profitable", routes)
	}
}

func TestMultiRoutesPerTradeportPair(t *testing.T) {
	e := testEngine()
	// With a fixed commodity and no end position every selling tradeport in
	// the verse is a candidate endpoint, one route per pair.
	routes := e.MultiRoutes(MultiRouteParams{RouteParams: RouteParams{
		Ship:      e.mustShip("Freelancer"),
		StartName: "Everus Harbor",
		Commodity: e.mustCommodity("Laranite"),
	}})
	if len(routes) != 2 {
		t.Fatalf("routes = %d, want one per buy/sell pair", len(routes))
	}
	ends := map[string]bool{}
	for _, r := range routes {
		if r.Profit != 990 {
			t.Fatalf("profit = %d, want 990", r.Profit)
		}
		ends[r.End[0].Name] = true
	}
	if !ends["Port Tressler"] || !ends["Baijini Point"] {
		t.Fatalf("ends = %v", ends)
	}
}

func TestMultiRoutesEmptyWhenNothingProfitable(t *testing.T) {
	e := testEngine()
	routes := e.MultiRoutes(MultiRouteParams{RouteParams: RouteParams{
		Ship:      e.mustShip("Freelancer"),
		StartName: "Nowhere",
	}})
	if len(routes) != 0 {
		t.Fatalf("routes = %+v, want none", routes)
	}
}

func TestRankSellLocations(t *testing.T) {
	e := testEngine()
	free := e.mustShip("Freelancer")

	groups := e.RankSellLocations(e.mustCommodity("WiDoW"), free, "", 1, 3)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 price levels", len(groups))
	}
	if groups[0].Price != 100 || groups[1].Price != 90 {
		t.Fatalf("prices = %v/%v, want best first", groups[0].Price, groups[1].Price)
	}

	// Equal prices collapse into one group.
	groups = e.RankSellLocations(e.mustCommodity("Laranite"), free, "", 1, 3)
	if len(groups) != 1 || len(groups[0].Tradeports) != 2 {
		t.Fatalf("groups = %+v, want one group of two stations", groups)
	}
	if groups[0].Price != 25 {
		t.Fatalf("price = %v", groups[0].Price)
	}
}

func TestRankLocationsAmountMultiplies(t *testing.T) {
	e := testEngine()
	groups := e.RankSellLocations(e.mustCommodity("Laranite"), e.mustShip("Freelancer"), "", 10, 3)
	if len(groups) != 1 || groups[0].Price != 250 {
		t.Fatalf("groups = %+v, want total for 10 SCU", groups)
	}
}

func TestRankLocationsCap(t *testing.T) {
	e := testEngine()
	groups := e.RankSellLocations(e.mustCommodity("WiDoW"), e.mustShip("Freelancer"), "", 1, 1)
	if len(groups) != 1 || groups[0].Price != 100 {
		t.Fatalf("groups = %+v, want only the best level", groups)
	}
}

func TestRankLocationsHullGate(t *testing.T) {
	e := testEngine()
	groups := e.RankSellLocations(e.mustCommodity("WiDoW"), e.mustShip("Hull C"), "", 1, 3)
	if len(groups) != 0 {
		t.Fatalf("groups = %+v, want none for a hull ship at surface outposts", groups)
	}
}

func TestRankBuyLocationsAscending(t *testing.T) {
	e := testEngine()
	groups := e.RankBuyLocations(e.mustCommodity("Laranite"), e.mustShip("Freelancer"), "", 1, 3)
	if len(groups) != 1 || groups[0].Price != 10 {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].Tradeports[0].Name != "Everus Harbor" {
		t.Fatalf("buyer = %q", groups[0].Tradeports[0].Name)
	}
}

func TestRankLocationsScopedToPosition(t *testing.T) {
	e := testEngine()
	free := e.mustShip("Freelancer")

	groups := e.RankSellLocations(e.mustCommodity("Laranite"), free, "microTech", 1, 3)
	if len(groups) != 1 || len(groups[0].Tradeports) != 2 {
		t.Fatalf("groups = %+v, want both microTech stations", groups)
	}
	if groups := e.RankSellLocations(e.mustCommodity("Laranite"), free, "Hurston", 1, 3); len(groups) != 0 {
		t.Fatalf("groups = %+v, want none on Hurston", groups)
	}
}
