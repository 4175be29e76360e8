package command

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"verse-trader/internal/catalog"
	"verse-trader/internal/engine"
	"verse-trader/internal/logger"
	"verse-trader/internal/resolver"
	"verse-trader/internal/session"
)

// Engine owns the process-wide trading state: the current catalog engine,
// the fuzzy resolver, the session argument cache and the operation registry.
// Handlers receive it implicitly as methods; nothing trading-related lives in
// package globals.
type Engine struct {
	loader   CatalogLoader
	res      *resolver.Resolver
	session  *session.ArgCache
	aliases  AliasLister
	registry *Registry
	version  string
	faultLog string

	mu  sync.RWMutex
	eng *engine.Engine
}

// CatalogLoader is the slice of catalog.Loader the command engine needs;
// tests substitute a fixture-backed fake.
type CatalogLoader interface {
	Load(ctx context.Context, reload bool) (*catalog.Index, error)
}

// AliasLister reads back the name aliases the resolver has learned, for the
// diagnostic operation. May be nil when nothing persists them.
type AliasLister interface {
	Aliases() (map[string]string, error)
}

// Config wires an Engine together.
type Config struct {
	Loader   CatalogLoader
	Resolver *resolver.Resolver
	Aliases  AliasLister // optional; surfaces learned aliases in diagnostics
	Version  string
	FaultLog string // path of the persistent fault log
}

// NewEngine creates the engine and registers every operation. The catalog is
// not loaded yet; call Load before dispatching.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		loader:   cfg.Loader,
		res:      cfg.Resolver,
		session:  session.NewArgCache(),
		aliases:  cfg.Aliases,
		registry: NewRegistry(),
		version:  cfg.Version,
		faultLog: cfg.FaultLog,
	}
	e.registerOperations()
	return e
}

// Load fetches or restores the catalog and swaps it in. On reload every
// cache keyed on the previous catalog generation is dropped: the resolver
// memos, the session arguments and the display cache (replaced with the
// engine).
func (e *Engine) Load(ctx context.Context, reload bool) error {
	ix, err := e.loader.Load(ctx, reload)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.eng = engine.New(ix)
	e.mu.Unlock()

	e.res.Flush()
	e.session.Reset()
	return nil
}

// Ready reports whether a catalog has been loaded.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.eng != nil
}

// engine returns the current catalog engine for one operation's duration.
func (e *Engine) engine() *engine.Engine {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.eng
}

// Operations returns the registered operation specs.
func (e *Engine) Operations() []Spec {
	return e.registry.Specs()
}

// Dispatch runs one operation by name. Unknown names are an error for the
// transport layer; everything a handler produces, including its validation
// failures, is speakable text. A handler panic is contained, logged with full
// context and converted to a generic apology.
func (e *Engine) Dispatch(ctx context.Context, name string, args Args) (response string, err error) {
	spec, ok := e.registry.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown operation %q", name)
	}
	if !e.Ready() {
		return "", fmt.Errorf("catalog not loaded yet")
	}

	defer func() {
		if cause := recover(); cause != nil {
			response = e.logFault(name, args, cause)
			err = nil
		}
	}()
	return spec.handler(ctx, args), nil
}

// logFault appends a full-context block to the persistent fault log and
// returns the generic response. The fault id links the spoken apology to the
// log entry.
func (e *Engine) logFault(name string, args Args, cause any) string {
	id := uuid.NewString()
	block := fmt.Sprintf(
		"========================================================================================\n"+
			"Fault %s while executing operation: %s\n"+
			"With parameters: %v\n"+
			"On date: %s\n"+
			"Version: %s\n"+
			"Cause: %v\n"+
			"========================================================================================\n",
		id, name, args, time.Now().Format(time.RFC3339), e.version, cause)

	f, ferr := os.OpenFile(e.faultLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if ferr != nil {
		logger.Error("Command", fmt.Sprintf("Fault log unwritable: %v", ferr))
	} else {
		if _, werr := f.WriteString(block); werr != nil {
			logger.Error("Command", fmt.Sprintf("Fault log write failed: %v", werr))
		}
		f.Close()
	}
	logger.Error("Command", fmt.Sprintf("Operation %s failed, fault %s", name, id))

	return fmt.Sprintf("Error while executing operation: %s\n"+
		"Tell the user there seems to be an error in the code and that fault %s should be reported to the verse trader developers.",
		name, id)
}
