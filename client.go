package adtools

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-ldap/ldap/v3"

	"github.com/tastypackets/go-ad-tools/decode"
	"github.com/tastypackets/go-ad-tools/internal/directory"
)

// Programmer-error sentinels, reported before any network interaction.
var (
	// ErrEmptyCredentials rejects blank usernames or passwords up front. An
	// empty-password simple bind would otherwise succeed as an
	// unauthenticated bind (RFC 4513, section 5.1.2).
	ErrEmptyCredentials = errors.New("adtools: username and password must be non-empty")

	// ErrNoRecord marks an authenticated bind whose account search matched
	// nothing visible under the search base.
	ErrNoRecord = errors.New("adtools: no directory record matched the supplied account")
)

// ReasonNoRecord distinguishes a missing record from a credential rejection
// in the result's Reason field.
const ReasonNoRecord = "No matching account found"

// Default filters and projections per operation.
const (
	groupFilter  = "(objectCategory=group)"
	personFilter = "(&(objectClass=user)(objectCategory=person))"
)

var (
	userAttributes = []string{
		"objectGUID", "objectSid", "memberOf", "telephoneNumber",
		"name", "mail", "distinguishedName",
		"sAMAccountName", "userPrincipalName",
	}
	groupNameAttributes   = []string{"name"}
	groupDetailAttributes = []string{
		"name", "distinguishedName", "objectGUID",
		"description", "whenCreated", "whenChanged",
	}
)

// Client is the directory-facing facade. It is safe for concurrent use:
// configuration is immutable and every call owns its own connection from
// dial through release.
type Client struct {
	cfg   Config
	scope int
	dial  directory.Dialer
}

// NewClient validates the configuration and returns a ready client. No
// connection is opened here; each operation dials on demand.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	scope, err := scopeValue(cfg.Search.Scope)
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:   cfg,
		scope: scope,
		dial:  directory.Dial,
	}, nil
}

// Authenticate binds the supplied credentials and fetches the matching
// identity record. The logon-name style decides the filter attribute: UPNs
// match userPrincipalName, DNs match distinguishedName, and legacy
// DOMAIN\user names are stripped to the bare account name and match
// sAMAccountName. The bind itself always uses the name exactly as supplied.
//
// Record uniqueness is the directory's responsibility: if several entries
// match, the first is returned and the rest are silently ignored.
func (c *Client) Authenticate(ctx context.Context, username, password string, opts ...CallOption) AuthResult {
	if username == "" || password == "" {
		return AuthResult{Cause: ErrEmptyCredentials}
	}

	o := applyOpts(opts)
	logonType := decode.DetectLogonType(username)
	account := username
	if logonType == decode.LogonSAMAccountName {
		account = decode.CleanSAMA(username)
	}

	filter := fmt.Sprintf("(&(objectClass=user)(%s=%s))", logonType, ldap.EscapeFilter(account))
	req := c.mergeSearch(filter, userAttributes, o)

	res, reason, cause := c.run(ctx, username, password, req)
	if cause != nil {
		return AuthResult{Reason: reason, Cause: cause}
	}

	if len(res.Entries) == 0 {
		c.cfg.Logger.Debug("authenticated bind matched no record", map[string]any{
			"logon_type": string(logonType),
			"filter":     req.Filter,
		})
		return AuthResult{Reason: ReasonNoRecord, Cause: ErrNoRecord}
	}

	return AuthResult{Success: true, Entry: res.Entries[0]}
}

// ListGroups binds the supplied credentials and returns every group visible
// under the search base. Plain names by default; WithDetail yields decoded
// GroupRecords instead.
func (c *Client) ListGroups(ctx context.Context, username, password string, opts ...CallOption) GroupsResult {
	if username == "" || password == "" {
		return GroupsResult{Cause: ErrEmptyCredentials}
	}

	o := applyOpts(opts)
	attributes := groupNameAttributes
	if o.detailed {
		attributes = groupDetailAttributes
	}
	req := c.mergeSearch(groupFilter, attributes, o)

	res, reason, cause := c.run(ctx, username, password, req)
	if cause != nil {
		return GroupsResult{Reason: reason, Cause: cause}
	}

	if o.detailed {
		records := make([]decode.GroupRecord, 0, len(res.Entries))
		for _, entry := range res.Entries {
			record, err := decode.CreateGroupObj(entry)
			if err != nil {
				return GroupsResult{Cause: err}
			}
			records = append(records, record)
		}
		return GroupsResult{Success: true, Detailed: records}
	}

	names := make([]string, 0, len(res.Entries))
	for _, entry := range res.Entries {
		names = append(names, entry.GetAttributeValue("name"))
	}
	return GroupsResult{Success: true, Groups: names}
}

// ListUsers binds the supplied credentials and returns every person-category
// user visible under the search base. Raw entries by default; WithFormatting
// yields normalized UserRecords instead.
func (c *Client) ListUsers(ctx context.Context, username, password string, opts ...CallOption) UsersResult {
	if username == "" || password == "" {
		return UsersResult{Cause: ErrEmptyCredentials}
	}

	o := applyOpts(opts)
	req := c.mergeSearch(personFilter, userAttributes, o)

	res, reason, cause := c.run(ctx, username, password, req)
	if cause != nil {
		return UsersResult{Reason: reason, Cause: cause}
	}

	if o.formatted {
		users := make([]decode.UserRecord, 0, len(res.Entries))
		for _, entry := range res.Entries {
			user, err := decode.CreateUserObj(entry)
			if err != nil {
				return UsersResult{Cause: err}
			}
			users = append(users, user)
		}
		return UsersResult{Success: true, Users: users}
	}

	return UsersResult{Success: true, Entries: res.Entries}
}

// session assembles the per-operation orchestrator from the immutable
// configuration.
func (c *Client) session() *directory.Session {
	return &directory.Session{
		Settings: &directory.Settings{
			ServerURL:          c.cfg.ServerURL,
			DialTimeout:        c.cfg.DialTimeout,
			IdleTimeout:        c.cfg.IdleTimeout,
			TLSConfig:          c.cfg.TLSConfig,
			StartTLS:           c.cfg.StartTLS,
			KerberosRealm:      c.cfg.KerberosRealm,
			KerberosConfigPath: c.cfg.KerberosConfigPath,
			KerberosSPN:        c.cfg.KerberosSPN,
		},
		Dial: c.dial,
		Log:  c.cfg.Logger,
	}
}

// run executes a single search under a fresh connection and splits failures
// per the result contract: rejected binds get a classified reason with the
// raw diagnostic as cause, transport and search faults get only a cause.
func (c *Client) run(ctx context.Context, username, password string, req *ldap.SearchRequest) (*ldap.SearchResult, string, error) {
	results, err := c.session().Run(ctx, username, password, req)
	if err != nil {
		var bindErr *directory.BindError
		if errors.As(err, &bindErr) {
			return nil, decode.ResolveBindError(bindErr.Err), bindErr.Err
		}
		return nil, "", err
	}
	return results[0], "", nil
}
