package adtools

import (
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-ldap/ldap/v3"
)

// SearchOptions holds the default search parameters applied to every
// operation. Scope and SizeLimit always come from here; Filter is a fallback
// used only when neither the operation nor the caller supplies one.
type SearchOptions struct {
	Scope      string `default:"sub"` // "base", "one", or "sub"
	Filter     string
	SizeLimit  int
	Attributes []string
}

// Config is supplied once at construction and reused to parameterize every
// call. It is never mutated after NewClient returns.
type Config struct {
	// ServerURL is the directory server, e.g. "ldaps://dc.example.com:636".
	ServerURL string

	// URL is the legacy name for ServerURL. It is adopted once at
	// construction when ServerURL is blank, with a deprecation warning.
	//
	// Deprecated: set ServerURL.
	URL string

	// BaseDN is the default search base, e.g. "DC=example,DC=com".
	BaseDN string

	Search SearchOptions

	IdleTimeout time.Duration `default:"10s"`
	DialTimeout time.Duration `default:"10s"`

	// TLSConfig applies to ldaps:// dials and StartTLS upgrades.
	TLSConfig *tls.Config
	StartTLS  bool

	// KerberosRealm switches the bind step to GSSAPI using the supplied
	// credentials. KerberosConfigPath defaults to /etc/krb5.conf;
	// KerberosSPN overrides the SPN derived from ServerURL.
	KerberosRealm      string
	KerberosConfigPath string
	KerberosSPN        string

	// Logger receives all diagnostics. Defaults to an hclog-backed logger.
	Logger Logger
}

// normalize applies the legacy alias shim and library defaults. The alias
// adoption is a one-time migration step, not ongoing polymorphism.
func (c *Config) normalize() error {
	if c.Logger == nil {
		c.Logger = NewHCLogger(nil)
	}

	if c.ServerURL == "" && c.URL != "" {
		c.ServerURL = c.URL
		c.Logger.Warn("config field URL is deprecated, use ServerURL", map[string]any{
			"server_url": c.ServerURL,
		})
	}

	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("apply config defaults: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.ServerURL == "" {
		return errors.New("adtools: ServerURL is required")
	}
	if c.BaseDN == "" {
		return errors.New("adtools: BaseDN is required")
	}
	if _, err := scopeValue(c.Search.Scope); err != nil {
		return err
	}
	return nil
}

// scopeValue maps the configured scope name onto the protocol constant.
func scopeValue(scope string) (int, error) {
	switch scope {
	case "base":
		return ldap.ScopeBaseObject, nil
	case "one":
		return ldap.ScopeSingleLevel, nil
	case "sub", "":
		return ldap.ScopeWholeSubtree, nil
	default:
		return 0, fmt.Errorf("adtools: unknown search scope %q", scope)
	}
}

// mergeSearch builds the effective search request for one call.
//
// Precedence is explicit, not spread-style: a call-level filter replaces the
// operation's filter entirely; the configured fixed filter applies only when
// neither is set; a call-level base replaces only the base; scope and size
// limit always come from the configuration.
func (c *Client) mergeSearch(opFilter string, opAttributes []string, o *callOpts) *ldap.SearchRequest {
	base := c.cfg.BaseDN
	if o.base != "" {
		base = o.base
	}

	filter := o.filter
	if filter == "" {
		filter = opFilter
	}
	if filter == "" {
		filter = c.cfg.Search.Filter
	}

	attributes := opAttributes
	if len(c.cfg.Search.Attributes) > 0 {
		attributes = c.cfg.Search.Attributes
	}
	if len(o.attributes) > 0 {
		attributes = o.attributes
	}

	return ldap.NewSearchRequest(
		base,
		c.scope,
		ldap.NeverDerefAliases,
		c.cfg.Search.SizeLimit,
		0, // time limit delegated to the transport idle timeout
		false,
		filter,
		attributes,
		nil,
	)
}
