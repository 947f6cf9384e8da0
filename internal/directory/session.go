package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// Session executes one logical operation against the directory. Each Run
// owns exactly one connection: no pooling, no reuse across calls.
type Session struct {
	Settings *Settings
	Dial     Dialer // nil means the package Dial
	Log      Logger // nil means silent
}

// Run opens a connection, binds the supplied credentials, executes the given
// searches in order, and returns one result per request. The connection is
// released exactly once on every exit path; this is the session's core
// correctness obligation, since the transport does not auto-close on error.
//
// A rejected bind is returned as *BindError with the raw diagnostic
// attached. Connect and search faults are returned as plain wrapped errors.
func (s *Session) Run(ctx context.Context, username, password string, reqs ...*ldap.SearchRequest) ([]*ldap.SearchResult, error) {
	dial := s.Dial
	if dial == nil {
		dial = Dial
	}

	start := time.Now()
	conn, err := dial(ctx, s.Settings)
	if err != nil {
		s.logError("connection failed", map[string]any{
			"server": s.Settings.ServerURL,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("connect %s: %w", s.Settings.ServerURL, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	if err := s.bind(conn, username, password); err != nil {
		s.logError("bind rejected", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, &BindError{Err: err}
	}

	results := make([]*ldap.SearchResult, 0, len(reqs))
	for _, req := range reqs {
		res, err := conn.Search(req)
		if err != nil {
			s.logError("search failed", map[string]any{
				"base_dn": req.BaseDN,
				"filter":  req.Filter,
				"error":   err.Error(),
			})
			return nil, fmt.Errorf("search %q: %w", req.Filter, err)
		}
		results = append(results, res)
	}

	s.logDebug("operation completed", map[string]any{
		"searches":    len(reqs),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return results, nil
}

// bind authenticates the connection, selecting GSSAPI when a Kerberos realm
// is configured and a simple bind otherwise.
func (s *Session) bind(conn Conn, username, password string) error {
	if s.Settings.KerberosRealm != "" {
		return s.bindGSSAPI(conn, username, password)
	}
	return conn.Bind(username, password)
}

func (s *Session) logDebug(msg string, fields map[string]any) {
	if s.Log != nil {
		s.Log.Debug(msg, fields)
	}
}

func (s *Session) logError(msg string, fields map[string]any) {
	if s.Log != nil {
		s.Log.Error(msg, fields)
	}
}
