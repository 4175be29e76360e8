package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"verse-trader/internal/api"
	"verse-trader/internal/catalog"
	"verse-trader/internal/command"
	"verse-trader/internal/logger"
	"verse-trader/internal/resolver"
	"verse-trader/internal/snapshot"
	"verse-trader/internal/uex"
)

var version = "dev"

func main() {
	port := flag.Int("port", 13370, "HTTP server port")
	ttl := flag.Duration("snapshot-ttl", 24*time.Hour, "catalog snapshot lifetime before a refetch")
	flag.Parse()

	logger.Banner(version)

	wd, _ := os.Getwd()
	dataDir := filepath.Join(wd, "data")
	os.MkdirAll(dataDir, 0755)

	store, err := snapshot.Open(filepath.Join(dataDir, "verse-trader.db"))
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer store.Close()

	uexClient := uex.NewClient(
		envOrDefault("UEX_BASE_URL", "https://portal.uexcorp.space/api"),
		os.Getenv("UEX_API_KEY"),
		0,
	)
	loader := &catalog.Loader{Client: uexClient, Store: store, TTL: *ttl}

	// Without an oracle key ambiguous names fall back to the resolver's
	// local similarity bar.
	var oracle resolver.Oracle
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		oracle = resolver.NewChatOracle(
			envOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			key,
			os.Getenv("OPENAI_MODEL"),
			0,
		)
	} else {
		logger.Warn("Resolver", "OPENAI_API_KEY not set, name disambiguation runs without the oracle")
	}

	engine := command.NewEngine(command.Config{
		Loader:   loader,
		Resolver: resolver.New(oracle, store),
		Aliases:  store,
		Version:  version,
		FaultLog: filepath.Join(dataDir, "trader_error.log"),
	})

	// Load the catalog in the background so the server comes up immediately;
	// the API reports not-ready until this finishes.
	go func() {
		if err := engine.Load(context.Background(), false); err != nil {
			logger.Error("Catalog", fmt.Sprintf("Load failed: %v", err))
			return
		}
		logger.Success("Catalog", "Trading engine ready")
	}()

	srv := api.NewServer(engine, version)

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
