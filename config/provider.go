package config

import (
	"sync/atomic"
)

// Provider hands out the current configuration to components that need it per
// request. The pointer swap on Update is atomic, so readers never see a
// half-written config; they may see the previous one for the duration of a
// request, which is acceptable.
type Provider struct {
	config atomic.Pointer[Config]
}

func NewProvider(cfg *Config) *Provider {
	p := &Provider{}
	p.config.Store(cfg)
	return p
}

// Get returns the current configuration. The returned value must be treated
// as read-only.
func (p *Provider) Get() *Config {
	return p.config.Load()
}

// Update replaces the current configuration.
func (p *Provider) Update(cfg *Config) {
	p.config.Store(cfg)
}
