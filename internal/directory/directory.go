// Package directory owns the connection lifecycle for one logical directory
// operation: open, bind, search, release. It consumes the go-ldap transport
// and knows nothing about record normalization.
package directory

import (
	"context"
	"crypto/tls"
	"net"
	"sync"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// Settings carries everything needed to establish and authenticate one
// connection. Values are copied from the facade configuration and never
// mutated here.
type Settings struct {
	ServerURL   string
	DialTimeout time.Duration
	IdleTimeout time.Duration
	TLSConfig   *tls.Config
	StartTLS    bool

	// Kerberos bind is used instead of a simple bind when Realm is set.
	KerberosRealm      string
	KerberosConfigPath string
	KerberosSPN        string
}

// Conn is the slice of the transport client this package consumes. Close is
// idempotent on every implementation.
type Conn interface {
	Bind(username, password string) error
	GSSAPIBind(client ldap.GSSAPIClient, servicePrincipal string) error
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
}

// Dialer establishes a connection from settings. Swappable for tests.
type Dialer func(ctx context.Context, settings *Settings) (Conn, error)

// Logger receives structured diagnostics. The facade's logger satisfies it.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// ldapConn wraps *ldap.Conn so that a double release cannot fault: the
// session always closes on exit, and callers may also close defensively.
type ldapConn struct {
	conn *ldap.Conn
	once sync.Once
}

func (c *ldapConn) Bind(username, password string) error {
	return c.conn.Bind(username, password)
}

func (c *ldapConn) GSSAPIBind(client ldap.GSSAPIClient, servicePrincipal string) error {
	return c.conn.GSSAPIBind(client, servicePrincipal, "")
}

func (c *ldapConn) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	return c.conn.Search(req)
}

func (c *ldapConn) Close() error {
	var err error
	c.once.Do(func() {
		if c.conn != nil {
			err = c.conn.Close()
		}
	})
	return err
}

// Dial opens a single connection. ldaps:// URLs apply the TLS configuration
// at dial time; StartTLS upgrades a plaintext connection after dialing.
func Dial(ctx context.Context, settings *Settings) (Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := []ldap.DialOpt{
		ldap.DialWithDialer(&net.Dialer{Timeout: settings.DialTimeout}),
	}
	if settings.TLSConfig != nil {
		opts = append(opts, ldap.DialWithTLSConfig(settings.TLSConfig))
	}

	conn, err := ldap.DialURL(settings.ServerURL, opts...)
	if err != nil {
		return nil, err
	}

	if settings.IdleTimeout > 0 {
		conn.SetTimeout(settings.IdleTimeout)
	}

	if settings.StartTLS {
		tlsConfig := settings.TLSConfig
		if tlsConfig == nil {
			tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		if err := conn.StartTLS(tlsConfig); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	return &ldapConn{conn: conn}, nil
}
