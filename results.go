package adtools

import (
	"github.com/go-ldap/ldap/v3"

	"github.com/tastypackets/go-ad-tools/decode"
)

// AuthResult is the outcome of Authenticate. On failure, Reason carries the
// classified message when the directory rejected the credentials and Cause
// always carries the raw error; transport faults have a Cause but no Reason.
type AuthResult struct {
	Success bool
	Entry   *ldap.Entry // the matching raw record
	Reason  string
	Cause   error
}

// GroupsResult is the outcome of ListGroups. Groups holds plain names;
// Detailed is populated instead when WithDetail was requested.
type GroupsResult struct {
	Success  bool
	Groups   []string
	Detailed []decode.GroupRecord
	Reason   string
	Cause    error
}

// UsersResult is the outcome of ListUsers. Entries holds raw records; Users
// is populated instead when WithFormatting was requested.
type UsersResult struct {
	Success bool
	Entries []*ldap.Entry
	Users   []decode.UserRecord
	Reason  string
	Cause   error
}

// callOpts collects per-call overrides. Zero values defer to the client
// configuration and the operation's own defaults.
type callOpts struct {
	base       string
	filter     string
	attributes []string
	detailed   bool
	formatted  bool
}

// CallOption adjusts a single operation without touching the client
// configuration.
type CallOption func(*callOpts)

// WithBase overrides the search base for this call only. Scope and size
// limit still come from the configuration.
func WithBase(baseDN string) CallOption {
	return func(o *callOpts) { o.base = baseDN }
}

// WithFilter replaces the search filter for this call entirely; it is never
// merged with the operation's default filter.
func WithFilter(filter string) CallOption {
	return func(o *callOpts) { o.filter = filter }
}

// WithAttributes overrides the attribute projection for this call.
func WithAttributes(attributes ...string) CallOption {
	return func(o *callOpts) { o.attributes = attributes }
}

// WithDetail makes ListGroups return fully decoded GroupRecords instead of
// plain names.
func WithDetail() CallOption {
	return func(o *callOpts) { o.detailed = true }
}

// WithFormatting makes ListUsers return normalized UserRecords instead of
// raw entries.
func WithFormatting() CallOption {
	return func(o *callOpts) { o.formatted = true }
}

func applyOpts(opts []CallOption) *callOpts {
	o := &callOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
