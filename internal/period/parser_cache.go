package period

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// WithCache memoizes successful parses by input string for ttl. Expired entries
// are purged every cleanup interval. Failed parses are never cached.
func WithCache(ttl, cleanup time.Duration) ParserOption {
	return func(p *Parser) {
		p.cache = cache.New(ttl, cleanup)
	}
}

func (p *Parser) lookup(input string) (Period, bool) {
	if p.cache == nil {
		return Period{}, false
	}
	v, ok := p.cache.Get(input)
	if !ok {
		return Period{}, false
	}
	cached, ok := v.(Period)
	return cached, ok
}

func (p *Parser) store(input string, result Period) {
	if p.cache == nil {
		return
	}
	p.cache.SetDefault(input, result)
}

// CachedEntries returns the number of memoized inputs, including expired ones not yet purged.
func (p *Parser) CachedEntries() int {
	if p.cache == nil {
		return 0
	}
	return p.cache.ItemCount()
}
