package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/singleflight"

	"verse-trader/internal/logger"
	"verse-trader/internal/uex"
)

// Snapshot is one wholesale persisted copy of the raw catalog.
type Snapshot struct {
	Timestamp int64
	Version   string
	Catalog   uex.Catalog
}

// SnapshotStore persists catalog snapshots between runs.
type SnapshotStore interface {
	LoadSnapshot() (*Snapshot, bool, error)
	SaveSnapshot(*Snapshot) error
}

// Loader builds the Index from a valid snapshot or a fresh fetch. Concurrent
// load requests for the same mode are coalesced into one fetch.
type Loader struct {
	Client *uex.Client
	Store  SnapshotStore
	TTL    time.Duration

	group singleflight.Group
}

// Load returns a freshly built Index. With reload set, the snapshot is
// bypassed and the catalog is refetched wholesale; the snapshot is rewritten
// after any successful fetch.
func (l *Loader) Load(ctx context.Context, reload bool) (*Index, error) {
	mode := "load"
	if reload {
		mode = "reload"
	}
	v, err, _ := l.group.Do(mode, func() (interface{}, error) {
		return l.load(ctx, reload)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Index), nil
}

func (l *Loader) load(ctx context.Context, reload bool) (*Index, error) {
	if !reload {
		if snap := l.validSnapshot(); snap != nil {
			logger.Info("Catalog", fmt.Sprintf("Using snapshot from %s", humanize.Time(time.Unix(snap.Timestamp, 0))))
			ix := Build(&snap.Catalog)
			ix.logStats()
			return ix, nil
		}
	}

	logger.Info("Catalog", "Fetching catalog...")
	cat, err := l.Client.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	if l.Store != nil {
		snap := &Snapshot{
			Timestamp: time.Now().Unix(),
			Version:   SchemaVersion,
			Catalog:   *cat,
		}
		if err := l.Store.SaveSnapshot(snap); err != nil {
			logger.Warn("Catalog", fmt.Sprintf("Snapshot save failed: %v", err))
		}
	}

	ix := Build(cat)
	ix.logStats()
	return ix, nil
}

// validSnapshot returns the stored snapshot if it is fresh enough and was
// written by this engine version, else nil.
func (l *Loader) validSnapshot() *Snapshot {
	if l.Store == nil {
		return nil
	}
	snap, ok, err := l.Store.LoadSnapshot()
	if err != nil {
		logger.Warn("Catalog", fmt.Sprintf("Snapshot load failed: %v", err))
		return nil
	}
	if !ok {
		return nil
	}
	if snap.Version != SchemaVersion {
		return nil
	}
	if time.Unix(snap.Timestamp, 0).Add(l.TTL).Before(time.Now()) {
		return nil
	}
	return snap
}

func (ix *Index) logStats() {
	logger.Section("Catalog Statistics")
	logger.Stats("Systems", len(ix.Systems))
	logger.Stats("Planets", len(ix.Planets))
	logger.Stats("Satellites", len(ix.Satellites))
	logger.Stats("Cities", len(ix.Cities))
	logger.Stats("Tradeports", len(ix.Tradeports))
	logger.Stats("Ships", len(ix.Ships))
	logger.Stats("Commodities", len(ix.Commodities))
}
