// Package snapshot holds the in-memory copy of the remote sheet document.
// All read paths serve from here; the remote API is only touched by the
// refresher and by explicit refresh requests.
package snapshot

//go:generate go run go.uber.org/mock/mockgen -source=./snapshot.go -destination=./mocks/snapshot_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"majlis/config"
	"majlis/infras/otel"
	"majlis/infras/sheetapi"
	"majlis/shared"
	"majlis/shared/cache"
	"majlis/shared/constant"
	"majlis/shared/failure"
)

const cacheSnapshotDocument = "snapshot:document"

type Store interface {
	// Current returns the last successfully fetched document. Before the
	// first fetch completes it fails with a service-unavailable error.
	Current(ctx context.Context) (sheetapi.Document, error)
	// Refresh fetches a new document and replaces the held one atomically.
	// On failure the previous document stays in place.
	Refresh(ctx context.Context) error
	// Age reports how long ago the held document was fetched. The boolean
	// is false while the store is still empty.
	Age() (time.Duration, bool)
	// StartRefresher begins periodic refreshing on the configured interval.
	StartRefresher()
	// Stop cancels the refresher and waits for it to exit.
	Stop()
}

type storeImpl struct {
	client sheetapi.Client
	cache  cache.RedisCache
	cfg    *config.Config
	otel   otel.Otel

	mu        sync.RWMutex
	doc       sheetapi.Document
	fetchedAt time.Time
	loaded    bool

	cancel context.CancelFunc
	done   chan struct{}
}

func New(client sheetapi.Client, redisCache cache.RedisCache, cfg *config.Config, ot otel.Otel) Store {
	return &storeImpl{
		client: client,
		cache:  redisCache,
		cfg:    cfg,
		otel:   ot,
	}
}

func (s *storeImpl) Current(ctx context.Context) (sheetapi.Document, error) {
	s.mu.RLock()
	doc, loaded := s.doc, s.loaded
	s.mu.RUnlock()

	if loaded {
		return doc, nil
	}

	// A freshly restarted instance may still have a mirrored document in
	// redis from before the restart.
	if doc, ok := s.warmFromCache(ctx); ok {
		return doc, nil
	}

	return sheetapi.Document{}, failure.SnapshotUnavailable
}

func (s *storeImpl) Refresh(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSnapshotScopeName, constant.OtelSnapshotScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err := s.client.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("snapshot refresh failed, keeping previous document")

		return failure.Upstream(err)
	}

	s.replace(doc, time.Now())

	if cacheErr := s.cache.Save(ctx, shared.BuildCacheKey(cacheSnapshotDocument), doc, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("failed to mirror snapshot into cache")
	}

	return nil
}

func (s *storeImpl) Age() (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return 0, false
	}

	return time.Since(s.fetchedAt), true
}

func (s *storeImpl) StartRefresher() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	interval := time.Duration(s.cfg.Sheet.RefreshIntervalSeconds) * time.Second

	go func() {
		defer close(s.done)

		if err := s.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("initial snapshot fetch failed")
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					log.Warn().Err(err).Msg("periodic snapshot refresh failed")
				}
			}
		}
	}()

	log.Info().Dur("interval", interval).Msg("snapshot refresher started")
}

func (s *storeImpl) Stop() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.done

	log.Info().Msg("snapshot refresher stopped")
}

func (s *storeImpl) replace(doc sheetapi.Document, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc
	s.fetchedAt = fetchedAt
	s.loaded = true
}

func (s *storeImpl) warmFromCache(ctx context.Context) (sheetapi.Document, bool) {
	var doc sheetapi.Document

	if err := s.cache.Get(ctx, shared.BuildCacheKey(cacheSnapshotDocument), &doc); err != nil {
		return sheetapi.Document{}, false
	}

	s.replace(doc, time.Now())

	log.Info().Msg("snapshot warmed from cache mirror")

	return doc, true
}
