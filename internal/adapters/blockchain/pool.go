package blockchain

import (
	"context"
	"log/slog"
	"sync"
)

// Pool shares one Provider per node URL
type Pool struct {
	opts Options
	log  *slog.Logger
	dial func(ctx context.Context, url string, opts Options, log *slog.Logger) (*Provider, error)

	mu        sync.Mutex
	providers map[string]*Provider
}

func NewPool(opts Options, log *slog.Logger) *Pool {
	return &Pool{
		opts:      opts,
		log:       log,
		dial:      Dial,
		providers: make(map[string]*Provider),
	}
}

// Get returns the provider for url, dialing it on first use.
// chainID overrides the expected chain id of the pool options when non-zero.
func (p *Pool) Get(ctx context.Context, url string, chainID uint64) (*Provider, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if provider, ok := p.providers[url]; ok {
		return provider, nil
	}
	opts := p.opts
	if chainID != 0 {
		opts.ChainID = chainID
	}
	provider, err := p.dial(ctx, url, opts, p.log)
	if err != nil {
		return nil, err
	}
	p.providers[url] = provider
	return provider, nil
}
