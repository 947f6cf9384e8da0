package adtools

import (
	"testing"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger records messages for assertions.
type captureLogger struct {
	debugs []string
	infos  []string
	warns  []string
	errs   []string
}

func (l *captureLogger) Debug(msg string, _ map[string]any) { l.debugs = append(l.debugs, msg) }
func (l *captureLogger) Info(msg string, _ map[string]any)  { l.infos = append(l.infos, msg) }
func (l *captureLogger) Warn(msg string, _ map[string]any)  { l.warns = append(l.warns, msg) }
func (l *captureLogger) Error(msg string, _ map[string]any) { l.errs = append(l.errs, msg) }

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Config{
		ServerURL: "ldaps://dc.domain.com:636",
		BaseDN:    "DC=domain,DC=com",
	})
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, client.cfg.IdleTimeout)
	assert.Equal(t, 10*time.Second, client.cfg.DialTimeout)
	assert.Equal(t, "sub", client.cfg.Search.Scope)
	assert.Equal(t, ldap.ScopeWholeSubtree, client.scope)
	assert.NotNil(t, client.cfg.Logger)
}

func TestNewClientLegacyURLAlias(t *testing.T) {
	logger := &captureLogger{}
	client, err := NewClient(Config{
		URL:    "ldap://legacy.domain.com",
		BaseDN: "DC=domain,DC=com",
		Logger: logger,
	})
	require.NoError(t, err)

	assert.Equal(t, "ldap://legacy.domain.com", client.cfg.ServerURL)
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "deprecated")
}

func TestNewClientExplicitURLWins(t *testing.T) {
	logger := &captureLogger{}
	client, err := NewClient(Config{
		ServerURL: "ldap://new.domain.com",
		URL:       "ldap://legacy.domain.com",
		BaseDN:    "DC=domain,DC=com",
		Logger:    logger,
	})
	require.NoError(t, err)

	assert.Equal(t, "ldap://new.domain.com", client.cfg.ServerURL)
	assert.Empty(t, logger.warns)
}

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing server URL", Config{BaseDN: "DC=domain,DC=com"}},
		{"missing base DN", Config{ServerURL: "ldap://dc.domain.com"}},
		{
			"unknown scope",
			Config{
				ServerURL: "ldap://dc.domain.com",
				BaseDN:    "DC=domain,DC=com",
				Search:    SearchOptions{Scope: "everything"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestScopeValue(t *testing.T) {
	tests := []struct {
		scope    string
		expected int
	}{
		{"base", ldap.ScopeBaseObject},
		{"one", ldap.ScopeSingleLevel},
		{"sub", ldap.ScopeWholeSubtree},
		{"", ldap.ScopeWholeSubtree},
	}
	for _, tt := range tests {
		got, err := scopeValue(tt.scope)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}

	_, err := scopeValue("tree")
	assert.Error(t, err)
}

func TestMergeSearchPrecedence(t *testing.T) {
	client, err := NewClient(Config{
		ServerURL: "ldap://dc.domain.com",
		BaseDN:    "DC=domain,DC=com",
		Search: SearchOptions{
			Scope:     "one",
			Filter:    "(configured)",
			SizeLimit: 25,
		},
	})
	require.NoError(t, err)

	t.Run("operation filter wins over configured", func(t *testing.T) {
		req := client.mergeSearch("(op)", []string{"name"}, &callOpts{})
		assert.Equal(t, "(op)", req.Filter)
		assert.Equal(t, "DC=domain,DC=com", req.BaseDN)
		assert.Equal(t, ldap.ScopeSingleLevel, req.Scope)
		assert.Equal(t, 25, req.SizeLimit)
		assert.Equal(t, []string{"name"}, req.Attributes)
	})

	t.Run("call filter replaces entirely", func(t *testing.T) {
		req := client.mergeSearch("(op)", nil, &callOpts{filter: "(call)"})
		assert.Equal(t, "(call)", req.Filter)
	})

	t.Run("configured filter is the fallback", func(t *testing.T) {
		req := client.mergeSearch("", nil, &callOpts{})
		assert.Equal(t, "(configured)", req.Filter)
	})

	t.Run("base override replaces only the base", func(t *testing.T) {
		req := client.mergeSearch("(op)", nil, &callOpts{base: "OU=Other,DC=domain,DC=com"})
		assert.Equal(t, "OU=Other,DC=domain,DC=com", req.BaseDN)
		assert.Equal(t, "(op)", req.Filter)
		assert.Equal(t, ldap.ScopeSingleLevel, req.Scope)
		assert.Equal(t, 25, req.SizeLimit)
	})
}

func TestMergeSearchAttributePrecedence(t *testing.T) {
	client, err := NewClient(Config{
		ServerURL: "ldap://dc.domain.com",
		BaseDN:    "DC=domain,DC=com",
		Search:    SearchOptions{Attributes: []string{"configured"}},
	})
	require.NoError(t, err)

	req := client.mergeSearch("(op)", []string{"op"}, &callOpts{})
	assert.Equal(t, []string{"configured"}, req.Attributes)

	req = client.mergeSearch("(op)", []string{"op"}, &callOpts{attributes: []string{"call"}})
	assert.Equal(t, []string{"call"}, req.Attributes)
}
