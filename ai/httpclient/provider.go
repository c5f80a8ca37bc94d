package httpclient

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"sync"

	"github.com/expki/go-constructsim/config"
)

// Provider is one configured model endpoint group. A provider may list
// several base urls for the same service; requests are spread across them
// by in-flight count.
type Provider struct {
	Cfg   config.Provider
	Token string

	mu        sync.Mutex
	endpoints []*endpoint
}

type endpoint struct {
	uri      url.URL
	inflight int64
}

func NewProvider(cfg config.Provider) (provider *Provider, err error) {
	provider = &Provider{
		Cfg:       cfg,
		endpoints: make([]*endpoint, 0, len(cfg.ApiBase)),
	}
	// Parse base urls
	for _, cfgUrl := range cfg.ApiBase {
		uriPointer, err := url.Parse(cfgUrl)
		if err != nil {
			return provider, errors.Join(fmt.Errorf("unable to parse provider url %q", cfgUrl), err)
		} else if uriPointer == nil {
			return provider, errors.New("parsed provider url is nil")
		}
		provider.endpoints = append(provider.endpoints, &endpoint{
			uri: *uriPointer,
		})
	}
	provider.Token = cfg.Key()
	return provider, nil
}

// Url picks the endpoint with the fewest in-flight requests, ties broken
// randomly. The returned done function releases the slot.
func (p *Provider) Url() (uri url.URL, done func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.endpoints) == 0 {
		return uri, func() {}
	}

	// Shuffle so equal loads do not always land on the first entry
	rand.Shuffle(len(p.endpoints), func(i, j int) {
		p.endpoints[i], p.endpoints[j] = p.endpoints[j], p.endpoints[i]
	})

	// Least in-flight wins
	chosen := p.endpoints[0]
	for _, candidate := range p.endpoints[1:] {
		if candidate.inflight < chosen.inflight {
			chosen = candidate
		}
	}
	chosen.inflight++

	return chosen.uri, func() {
		p.mu.Lock()
		chosen.inflight--
		p.mu.Unlock()
	}
}
