package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"verse-trader/internal/catalog"
	"verse-trader/internal/engine"
	"verse-trader/internal/logger"
	"verse-trader/internal/session"
)

// Session cache keys for the last-used argument values.
const (
	keyShip           = "shipName"
	keyCommodity      = "commodityName"
	keyLocation       = "locationName"
	keyLocationTarget = "locationNameTarget"
	keyIllegal        = "illegalCommoditesAllowed"
	keyMoney          = "money"
)

// Speakable validation messages. The conversational layer repeats these to
// the player, so the wording is part of the interface.
const (
	msgNoShip        = "No ship given. Ask for a ship. Dont say sorry."
	msgNoCommodity   = "No commodity given. Ask for a commodity."
	msgNoLocation    = "No location given. Ask for a location."
	msgNoStartPos    = "No start position given. Ask for a start position. (Station, Planet, Satellite, City or System)"
	msgNoRoutes      = "No trading routes found."
	msgReloaded      = "Reloaded current commodity prices from UEX corp."
	msgClarifyPrefix = "These given parameters do not exist in game. Exactly ask for clarification of these values: "

	multiRoutePrefix = "List possible commodites with just their profit and only give further information on request (e.g. 86 SCU Astantine for a profit of 45.567 aUEC)."
	multiRouteMore   = " Tell the player their might be more routes with lower profit, but they are not shown to keep it short. "

	shipComparisonPrefix = "Use this data to compare the ships. Keep the answer short and focus on the differences. JSON: "
	msgCachedValues      = "Please check the console for the cached function's argument values."
)

func (e *Engine) registerOperations() {
	routeParams := []Param{
		{Name: "shipName", Type: ParamString},
		{Name: "positionStartName", Type: ParamString},
		{Name: "moneyToSpend", Type: ParamNumber},
		{Name: "positionEndName", Type: ParamString},
		{Name: "freeCargoSpace", Type: ParamNumber},
		{Name: "commodityName", Type: ParamString},
		{Name: "illegalCommoditesAllowed", Type: ParamBoolean},
	}
	locationParams := []Param{
		{Name: "commodityName", Type: ParamString},
		{Name: "shipName", Type: ParamString},
		{Name: "positionName", Type: ParamString},
		{Name: "commodityAmount", Type: ParamNumber},
	}

	e.registry.mustRegister(Spec{
		Name:        "get_best_trading_route",
		Description: "Finds the best trade route for a given spaceship and position.",
		Params:      routeParams,
	}, e.bestTradingRoute)
	e.registry.mustRegister(Spec{
		Name:        "get_multiple_best_trading_routes",
		Description: "Finds all possible commodity trade options and gives back a selection of the best options. If an alternative route is searched for, execute this function.",
		Params:      append(append([]Param{}, routeParams...), Param{Name: "maximalNumberOfRoutes", Type: ParamNumber}),
	}, e.multipleBestTradingRoutes)
	e.registry.mustRegister(Spec{
		Name:        "get_best_location_to_sell_to",
		Description: "Finds the best location at what the player can sell cargo at.",
		Params:      locationParams,
	}, e.bestLocationToSellTo)
	e.registry.mustRegister(Spec{
		Name:        "get_multiple_best_locations_to_sell_to",
		Description: "Finds the best locations at what the player can sell cargo at. If an alternative sell location is searched for, execute this function.",
		Params:      append(append([]Param{}, locationParams...), Param{Name: "maximalNumberOfLocations", Type: ParamNumber}),
	}, e.multipleBestLocationsToSellTo)
	e.registry.mustRegister(Spec{
		Name:        "get_best_location_to_buy_from",
		Description: "Finds the best location at what the player can buy cargo at. Only give positionName if the player specifically wanted to filter for it.",
		Params:      locationParams,
	}, e.bestLocationToBuyFrom)
	e.registry.mustRegister(Spec{
		Name:        "get_multiple_best_locations_to_buy_from",
		Description: "Finds the best locations at what the player can buy cargo at. If an alternative buy location is searched for, execute this function. Only give positionName if the player specifically wanted to filter for it.",
		Params:      append(append([]Param{}, locationParams...), Param{Name: "maximalNumberOfLocations", Type: ParamNumber}),
	}, e.multipleBestLocationsToBuyFrom)
	e.registry.mustRegister(Spec{
		Name:        "get_location_information",
		Description: "Gives information and commodity prices of this location. Execute this if the player asks for all buy or sell options for a specific location.",
		Params:      []Param{{Name: "locationName", Type: ParamString}},
	}, e.locationInformation)
	e.registry.mustRegister(Spec{
		Name:        "get_ship_information",
		Description: "Gives information about the given ship. If a player asks to rent something or buy a ship, this function needs to be executed.",
		Params:      []Param{{Name: "shipName", Type: ParamString}},
	}, e.shipInformation)
	e.registry.mustRegister(Spec{
		Name:        "get_ship_comparison",
		Description: "Compares given ships with each other. If a player asks for a comparison of ships, this function needs to be executed.",
		Params:      []Param{{Name: "shipNames", Type: ParamStringList}},
	}, e.shipComparison)
	e.registry.mustRegister(Spec{
		Name:        "get_commodity_information",
		Description: "Gives information about the given commodity. If a player asks for information about a commodity, this function needs to be executed.",
		Params:      []Param{{Name: "commodityName", Type: ParamString}},
	}, e.commodityInformation)
	e.registry.mustRegister(Spec{
		Name:        "reload_current_commodity_prices",
		Description: "Reloads the current commodity prices from UEX corp.",
	}, e.reloadCurrentCommodityPrices)
	e.registry.mustRegister(Spec{
		Name:        "show_cached_function_values",
		Description: "Prints the cached function's argument values to the console.",
	}, e.showCachedFunctionValues)
}

// textArg reads a string parameter, optionally falling back to the session
// cache under cacheKey when the caller left it out or said "current".
func (e *Engine) textArg(a Args, param, cacheKey string, readCache bool) string {
	v := a.stringArg(param)
	if readCache {
		s, _ := e.session.Resolve(cacheKey, v).(string)
		return s
	}
	if raw, ok := v.Supplied(); ok {
		s, _ := raw.(string)
		return s
	}
	return ""
}

// resolveName maps raw free text to a canonical candidate name. On failure
// the clarification label is recorded; on success the resolved name is
// optionally written back to the session cache.
func (e *Engine) resolveName(ctx context.Context, raw string, candidates []string, label, writeKey string, misunderstood *[]string) string {
	if raw == "" {
		return ""
	}
	resolved, ok := e.res.Resolve(ctx, raw, candidates)
	if !ok {
		*misunderstood = append(*misunderstood, label+": "+raw)
		return ""
	}
	if writeKey != "" {
		e.session.Set(writeKey, resolved)
	}
	return resolved
}

// illegalAllowed applies the tri-state illegal-goods policy: an explicit
// argument wins and is remembered, otherwise the remembered value, otherwise
// allowed.
func (e *Engine) illegalAllowed(a Args) bool {
	if v, given := a.boolArg(keyIllegal); given {
		e.session.Set(keyIllegal, v)
		return v
	}
	if cached, ok := e.session.Resolve(keyIllegal, session.Absent()).(bool); ok {
		return cached
	}
	return true
}

// routeParams runs the shared argument pipeline of both route operations.
// The returned message is non-empty when validation already decided the
// response.
func (e *Engine) routeParams(ctx context.Context, a Args) (engine.RouteParams, string) {
	eng := e.engine()
	ix := eng.Index()

	illegal := e.illegalAllowed(a)
	shipName := e.textArg(a, "shipName", keyShip, true)
	if shipName == "" {
		return engine.RouteParams{}, msgNoShip
	}
	// Deliberately not read from the session: the player's position changes
	// too often for a remembered start to be helpful.
	positionStart := e.textArg(a, "positionStartName", "", false)
	if positionStart == "" {
		return engine.RouteParams{}, msgNoStartPos
	}
	positionEnd := e.textArg(a, "positionEndName", "", false)
	commodityName := e.textArg(a, "commodityName", "", false)

	money, moneyGiven := a.numberArg("moneyToSpend")
	if moneyGiven && money < 1 {
		moneyGiven = false
	}
	freeCargo, freeCargoGiven := a.numberArg("freeCargoSpace")
	if freeCargoGiven && freeCargo < 1 {
		freeCargoGiven = false
	}

	var misunderstood []string
	locations := ix.LocationNames()
	resolvedShip := e.resolveName(ctx, shipName, ix.ShipNames, "Ship", keyShip, &misunderstood)
	resolvedStart := e.resolveName(ctx, positionStart, locations, "Position Start", keyLocation, &misunderstood)
	resolvedEnd := e.resolveName(ctx, positionEnd, locations, "Position End", keyLocationTarget, &misunderstood)
	resolvedCommodity := e.resolveName(ctx, commodityName, ix.CommodityNames, "Commodity", keyCommodity, &misunderstood)

	if moneyGiven {
		e.session.Set(keyMoney, money)
	} else {
		e.session.Set(keyMoney, nil)
	}

	if len(misunderstood) > 0 {
		return engine.RouteParams{}, msgClarifyPrefix + strings.Join(misunderstood, ", ")
	}

	p := engine.RouteParams{
		Ship:           ix.ShipByName(resolvedShip),
		StartName:      resolvedStart,
		EndName:        resolvedEnd,
		Commodity:      ix.CommodityByName(resolvedCommodity),
		IllegalAllowed: illegal,
	}
	if moneyGiven {
		p.Budget = money
	}
	if freeCargoGiven {
		p.FreeCargo = freeCargo
	}
	return p, ""
}

func (e *Engine) bestTradingRoute(ctx context.Context, a Args) string {
	p, msg := e.routeParams(ctx, a)
	if msg != "" {
		return msg
	}
	eng := e.engine()
	r, err := eng.BestRoute(p)
	if err != nil {
		return err.Error()
	}
	payload, _ := json.Marshal(eng.DescribeRoute(r))
	return string(payload)
}

func (e *Engine) multipleBestTradingRoutes(ctx context.Context, a Args) string {
	p, msg := e.routeParams(ctx, a)
	if msg != "" {
		return msg
	}
	mp := engine.MultiRouteParams{RouteParams: p}
	if n, ok := a.numberArg("maximalNumberOfRoutes"); ok {
		mp.MaxRoutes = int(n)
	}

	eng := e.engine()
	routes := eng.MultiRoutes(mp)
	if len(routes) == 0 {
		return msgNoRoutes
	}

	displays := make([]engine.RouteDisplay, 0, len(routes))
	for _, r := range routes {
		displays = append(displays, eng.DescribeRoute(r))
	}
	payload, _ := json.Marshal(displays)

	maxRoutes := mp.MaxRoutes
	if maxRoutes < 1 {
		maxRoutes = engine.DefaultMaxRoutes
	}
	additional := ""
	if len(routes) == maxRoutes {
		additional = multiRouteMore
	}
	if len(routes) < maxRoutes {
		additional = fmt.Sprintf(" Tell the player there are only %d with different commodities available. ", len(routes))
	}
	return multiRoutePrefix + additional + "JSON: " + string(payload)
}

// rankParams is the shared argument pipeline of the four location-ranking
// operations.
func (e *Engine) rankParams(ctx context.Context, a Args) (c *catalog.Commodity, ship *catalog.Ship, position string, amount float64, msg string) {
	ix := e.engine().Index()

	commodityName := e.textArg(a, "commodityName", keyCommodity, true)
	shipName := e.textArg(a, "shipName", keyShip, true)
	if commodityName == "" {
		return nil, nil, "", 0, msgNoCommodity
	}
	positionName := e.textArg(a, "positionName", "", false)

	var misunderstood []string
	resolvedCommodity := e.resolveName(ctx, commodityName, ix.CommodityNames, "Commodity", keyCommodity, &misunderstood)
	resolvedShip := e.resolveName(ctx, shipName, ix.ShipNames, "Ship", keyShip, &misunderstood)
	resolvedPosition := e.resolveName(ctx, positionName, ix.LocationNames(), "Current Position", keyLocation, &misunderstood)
	if len(misunderstood) > 0 {
		return nil, nil, "", 0, msgClarifyPrefix + strings.Join(misunderstood, ", ")
	}

	amount = 1
	if n, ok := a.numberArg("commodityAmount"); ok && n >= 1 {
		amount = float64(int(n))
	}
	return ix.CommodityByName(resolvedCommodity), ix.ShipByName(resolvedShip), resolvedPosition, amount, ""
}

func (e *Engine) rankedLocationsResponse(groups []engine.PriceGroup, verb string, amount float64, commodity *catalog.Commodity) string {
	eng := e.engine()
	messages := []string{fmt.Sprintf("Here are the best %d locations to %s %s %s:",
		len(groups), verb, engine.FormatSCU(amount), commodity.Name)}
	for _, g := range groups {
		messages = append(messages, engine.FormatAUEC(g.Price)+":")
		for _, tp := range g.Tradeports {
			messages = append(messages, eng.TradeportBreadcrumb(tp))
		}
	}
	return strings.Join(messages, "\n")
}

func (e *Engine) multipleBestLocationsToSellTo(ctx context.Context, a Args) string {
	c, ship, position, amount, msg := e.rankParams(ctx, a)
	if msg != "" {
		return msg
	}
	maxLocations := 0
	if n, ok := a.numberArg("maximalNumberOfLocations"); ok {
		maxLocations = int(n)
	}
	groups := e.engine().RankSellLocations(c, ship, position, amount, maxLocations)
	return e.rankedLocationsResponse(groups, "sell", amount, c)
}

func (e *Engine) bestLocationToSellTo(ctx context.Context, a Args) string {
	c, ship, position, amount, msg := e.rankParams(ctx, a)
	if msg != "" {
		return msg
	}
	groups := e.engine().RankSellLocations(c, ship, position, amount, 1)
	return e.rankedLocationsResponse(groups, "sell", amount, c)
}

func (e *Engine) multipleBestLocationsToBuyFrom(ctx context.Context, a Args) string {
	c, ship, position, amount, msg := e.rankParams(ctx, a)
	if msg != "" {
		return msg
	}
	maxLocations := 0
	if n, ok := a.numberArg("maximalNumberOfLocations"); ok {
		maxLocations = int(n)
	}
	groups := e.engine().RankBuyLocations(c, ship, position, amount, maxLocations)
	return e.rankedLocationsResponse(groups, "buy", amount, c)
}

func (e *Engine) bestLocationToBuyFrom(ctx context.Context, a Args) string {
	c, ship, position, amount, msg := e.rankParams(ctx, a)
	if msg != "" {
		return msg
	}
	groups := e.engine().RankBuyLocations(c, ship, position, amount, 1)
	return e.rankedLocationsResponse(groups, "buy", amount, c)
}

func (e *Engine) locationInformation(ctx context.Context, a Args) string {
	eng := e.engine()
	ix := eng.Index()

	locationName := e.textArg(a, "locationName", keyLocation, true)
	if locationName == "" {
		return msgNoLocation
	}

	var misunderstood []string
	// Not written back to the session: asking about a place does not mean
	// the player is there.
	resolved := e.resolveName(ctx, locationName, ix.LocationNames(), "Location", "", &misunderstood)
	if len(misunderstood) > 0 {
		return msgClarifyPrefix + strings.Join(misunderstood, ", ")
	}

	info, ok := eng.LocationInfo(resolved)
	if !ok {
		return msgClarifyPrefix + "Location: " + locationName
	}
	payload, _ := json.Marshal(info)
	return string(payload)
}

func (e *Engine) shipInformation(ctx context.Context, a Args) string {
	eng := e.engine()
	ix := eng.Index()

	shipName := e.textArg(a, "shipName", keyShip, true)
	if shipName == "" {
		return msgNoShip
	}

	var misunderstood []string
	resolved := e.resolveName(ctx, shipName, ix.ShipNames, "Ship", "", &misunderstood)
	if len(misunderstood) > 0 {
		return msgClarifyPrefix + strings.Join(misunderstood, ", ")
	}

	payload, _ := json.Marshal(eng.ShipInfo(ix.ShipByName(resolved)))
	return string(payload)
}

func (e *Engine) shipComparison(ctx context.Context, a Args) string {
	eng := e.engine()
	ix := eng.Index()

	names := a.stringListArg("shipNames")
	if len(names) == 0 {
		return msgNoShip
	}

	var misunderstood []string
	var ships []*catalog.Ship
	for _, name := range names {
		if resolved := e.resolveName(ctx, name, ix.ShipNames, "Ship", "", &misunderstood); resolved != "" {
			ships = append(ships, ix.ShipByName(resolved))
		}
	}
	if len(misunderstood) > 0 {
		return msgClarifyPrefix + strings.Join(misunderstood, ", ")
	}

	payload, _ := json.Marshal(eng.ShipComparison(ships))
	return shipComparisonPrefix + string(payload)
}

func (e *Engine) commodityInformation(ctx context.Context, a Args) string {
	eng := e.engine()
	ix := eng.Index()

	commodityName := e.textArg(a, "commodityName", keyCommodity, true)
	if commodityName == "" {
		return msgNoCommodity
	}

	var misunderstood []string
	resolved := e.resolveName(ctx, commodityName, ix.CommodityNames, "Commodity", "", &misunderstood)
	if len(misunderstood) > 0 {
		return msgClarifyPrefix + strings.Join(misunderstood, ", ")
	}

	payload, _ := json.Marshal(eng.CommodityInfo(ix.CommodityByName(resolved)))
	return string(payload)
}

func (e *Engine) reloadCurrentCommodityPrices(ctx context.Context, _ Args) string {
	if err := e.Load(ctx, true); err != nil {
		logger.Error("Command", fmt.Sprintf("Reload failed: %v", err))
		return "Could not reload the commodity prices from UEX corp. Please try again later."
	}
	return msgReloaded
}

func (e *Engine) showCachedFunctionValues(_ context.Context, _ Args) string {
	logger.Info("Command", fmt.Sprintf("Cached argument values: %v", e.session.Snapshot()))
	if e.aliases != nil {
		aliases, err := e.aliases.Aliases()
		if err != nil {
			logger.Warn("Command", fmt.Sprintf("Alias list failed: %v", err))
		} else {
			logger.Info("Command", fmt.Sprintf("Learned name aliases: %v", aliases))
		}
	}
	return msgCachedValues
}
