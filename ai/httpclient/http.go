package httpclient

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/expki/go-constructsim/config"
	"github.com/expki/go-constructsim/logger"
	"golang.org/x/net/http2"
)

func NewClientManager(tlsClientConfig *tls.Config, dialer *net.Dialer) *ClientManager {
	return &ClientManager{
		tlsClientConfig: tlsClientConfig,
		dialer:          dialer,
		pool:            make(map[string]*pooledClient),
	}
}

type ClientManager struct {
	tlsClientConfig *tls.Config
	dialer          *net.Dialer

	mu   sync.RWMutex
	pool map[string]*pooledClient
}

type pooledClient struct {
	address string
	client  *http.Client

	closeMu   sync.Mutex
	closeConn func() error

	countMu sync.Mutex
	active  int64
	issued  uint64
}

// acquire reserves a request slot. It refuses once the client has issued
// HTTP_CLIENT_MAX_REQUESTS so the connection gets recycled.
func (c *pooledClient) acquire() bool {
	c.countMu.Lock()
	defer c.countMu.Unlock()
	if c.issued >= config.HTTP_CLIENT_MAX_REQUESTS {
		return false
	}
	c.issued++
	c.active++
	return true
}

// release frees a request slot and closes the worn-out connection once the
// last in-flight request on it finishes.
func (c *pooledClient) release() {
	c.countMu.Lock()
	c.active--
	retire := c.active <= 0 && c.issued >= config.HTTP_CLIENT_MAX_REQUESTS
	c.countMu.Unlock()
	if !retire {
		return
	}
	c.closeMu.Lock()
	logger.Sugar().Debugf("closing http client: %s", c.address)
	if c.closeConn != nil {
		c.closeConn()
	}
	c.closeMu.Unlock()
}

// GetHttpClient returns a pooled client for the address. The done function
// must be called after the request completes.
func (m *ClientManager) GetHttpClient(address string) (client *http.Client, done func()) {
	// Reuse the current client while it has request slots left
	m.mu.RLock()
	c, ok := m.pool[address]
	m.mu.RUnlock()
	if ok && c.acquire() {
		return c.client, c.release
	}

	// Create a replacement client
	c = &pooledClient{
		address: address,
		active:  1,
		issued:  1,
	}
	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			logger.Sugar().Debugf("opening http tcp client: %s", address)
			conn, err := m.dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			c.closeMu.Lock()
			c.closeConn = conn.Close
			c.closeMu.Unlock()
			return conn, nil
		},
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			logger.Sugar().Debugf("opening http tls client: %s", address)
			// TCP connect
			conn, err := m.dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			c.closeMu.Lock()
			c.closeConn = conn.Close
			c.closeMu.Unlock()

			// TLS upgrade
			tlsConn := tls.Client(conn, m.tlsClientConfig)
			if err := tlsConn.HandshakeContext(ctx); err != nil {
				conn.Close()
				return nil, err
			}

			return tlsConn, nil
		},
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 50,
		MaxConnsPerHost:     100,
	}
	http2.ConfigureTransport(transport)
	c.client = &http.Client{
		Transport: transport,
	}

	// Replace the worn-out client in the pool
	m.mu.Lock()
	m.pool[address] = c
	m.mu.Unlock()

	return c.client, c.release
}
