package uex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"verse-trader/internal/logger"
)

// Client is a rate-limited HTTP client for the UEX catalog API.
type Client struct {
	BaseURL string
	apiKey  string
	http    *http.Client
	sem     chan struct{}
}

// NewClient creates a client with the given base URL and API key.
// Concurrency is capped at 8 in-flight requests; the per-system fan-out in
// the loader would otherwise burst well past the API's comfort zone.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		sem:     make(chan struct{}, 8),
	}
}

// envelope is the standard UEX response wrapper.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// get fetches an endpoint and decodes the enveloped data payload into dst.
func (c *Client) get(ctx context.Context, endpoint string, dst interface{}) error {
	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	url := fmt.Sprintf("%s/%s", c.BaseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api_key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("uex %s: HTTP %d: %s", endpoint, resp.StatusCode, body)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("uex %s: decode: %w", endpoint, err)
	}
	if env.Status != "ok" {
		return fmt.Errorf("uex %s: status %q", endpoint, env.Status)
	}
	return json.Unmarshal(env.Data, dst)
}

// FetchShips returns all ship records.
func (c *Client) FetchShips(ctx context.Context) ([]Ship, error) {
	var out []Ship
	err := c.get(ctx, "ships", &out)
	return out, err
}

// FetchCommodities returns all commodity records.
func (c *Client) FetchCommodities(ctx context.Context) ([]Commodity, error) {
	var out []Commodity
	err := c.get(ctx, "commodities", &out)
	return out, err
}

// FetchSystems returns all star system records.
func (c *Client) FetchSystems(ctx context.Context) ([]StarSystem, error) {
	var out []StarSystem
	err := c.get(ctx, "star_systems", &out)
	return out, err
}

// FetchTradeports returns the tradeports of one system.
func (c *Client) FetchTradeports(ctx context.Context, systemCode string) ([]Tradeport, error) {
	var out []Tradeport
	err := c.get(ctx, "tradeports/system/"+systemCode, &out)
	return out, err
}

// FetchPlanets returns the planets of one system.
func (c *Client) FetchPlanets(ctx context.Context, systemCode string) ([]Planet, error) {
	var out []Planet
	err := c.get(ctx, "planets/system/"+systemCode, &out)
	return out, err
}

// FetchSatellites returns the satellites of one system.
func (c *Client) FetchSatellites(ctx context.Context, systemCode string) ([]Satellite, error) {
	var out []Satellite
	err := c.get(ctx, "satellites/system/"+systemCode, &out)
	return out, err
}

// FetchCities returns the cities of one system.
func (c *Client) FetchCities(ctx context.Context, systemCode string) ([]City, error) {
	var out []City
	err := c.get(ctx, "cities/system/"+systemCode, &out)
	return out, err
}

// FetchCatalog pulls every collection: the three global endpoints first,
// then the four per-system endpoints fanned out over all available systems.
// A failing endpoint contributes an empty slice rather than failing the
// whole fetch; the caller decides whether the result is usable.
func (c *Client) FetchCatalog(ctx context.Context) (*Catalog, error) {
	cat := &Catalog{}

	var err error
	cat.Ships, err = c.FetchShips(ctx)
	warnEmpty("ships", err)
	cat.Commodities, err = c.FetchCommodities(ctx)
	warnEmpty("commodities", err)
	cat.Systems, err = c.FetchSystems(ctx)
	warnEmpty("star_systems", err)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, sys := range cat.Systems {
		if !sys.Available {
			continue
		}
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			tps, err := c.FetchTradeports(ctx, code)
			warnEmpty("tradeports/system/"+code, err)
			planets, err := c.FetchPlanets(ctx, code)
			warnEmpty("planets/system/"+code, err)
			sats, err := c.FetchSatellites(ctx, code)
			warnEmpty("satellites/system/"+code, err)
			cities, err := c.FetchCities(ctx, code)
			warnEmpty("cities/system/"+code, err)

			mu.Lock()
			cat.Tradeports = append(cat.Tradeports, tps...)
			cat.Planets = append(cat.Planets, planets...)
			cat.Satellites = append(cat.Satellites, sats...)
			cat.Cities = append(cat.Cities, cities...)
			mu.Unlock()
		}(sys.Code)
	}
	wg.Wait()

	if len(cat.Systems) == 0 || len(cat.Ships) == 0 {
		return nil, fmt.Errorf("uex: catalog unusable (systems=%d ships=%d)",
			len(cat.Systems), len(cat.Ships))
	}
	return cat, nil
}

func warnEmpty(endpoint string, err error) {
	if err != nil {
		logger.Warn("UEX", fmt.Sprintf("%s failed, treating as empty: %v", endpoint, err))
	}
}
