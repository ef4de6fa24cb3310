package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

const (
	LABEL_TTL = time.Second * 600
)

type LabelFetcher interface {
	Label(ctx context.Context, network string, address string) (*clear.ClearLabel, error)
}

// LabelCache holds the label descriptor of the deposit target. An expired
// label keeps being served while a fresh one is fetched in the background.
type LabelCache struct {
	labelCache *ttlcache.Cache[string, *clear.ClearLabel]
	fetcher    LabelFetcher
	network    string
	address    string

	ctx        context.Context
	lock       sync.RWMutex
	last       *clear.ClearLabel
	refreshing atomic.Bool
}

func NewLabelCache(ctx context.Context, fetcher LabelFetcher, network string, address string, ttl time.Duration) *LabelCache {
	if ttl == 0 {
		ttl = LABEL_TTL
	}
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *clear.ClearLabel](ttl),
		ttlcache.WithDisableTouchOnHit[string, *clear.ClearLabel](),
	)

	lc := &LabelCache{
		labelCache: cache,
		fetcher:    fetcher,
		network:    network,
		address:    address,
		ctx:        ctx,
	}

	go cache.Start()
	go lc.watch(ctx)
	return lc
}

// Label returns the cached label or the last fetched one if the cache expired.
func (c *LabelCache) Label() (*clear.ClearLabel, bool) {
	item := c.labelCache.Get(c.key())
	if item != nil {
		return item.Value(), true
	}

	c.lock.RLock()
	last := c.last
	c.lock.RUnlock()

	if last != nil && c.refreshing.CompareAndSwap(false, true) {
		go func() {
			defer c.refreshing.Store(false)
			_, _ = c.Refresh(c.ctx)
		}()
	}
	return last, last != nil
}

// Refresh fetches the label from the Clear API. A failed fetch keeps the
// previous label.
func (c *LabelCache) Refresh(ctx context.Context) (*clear.ClearLabel, error) {
	if c.address == "" {
		return nil, fmt.Errorf("label address not configured")
	}

	label, err := c.fetcher.Label(ctx, c.network, c.address)
	if err != nil {
		log.Warn().Err(err).Msgf("Failed fetching label %s", c.key())
		return nil, err
	}

	log.Debug().Msgf("Fetched label %s with token %s", c.key(), label.TokenSymbol)
	c.labelCache.Set(c.key(), label, ttlcache.DefaultTTL)
	c.lock.Lock()
	c.last = label
	c.lock.Unlock()
	return label, nil
}

func (c *LabelCache) key() string {
	return fmt.Sprintf("%s/%s", c.network, c.address)
}

func (c *LabelCache) watch(ctx context.Context) {
	<-ctx.Done()
	c.labelCache.Stop()
}
