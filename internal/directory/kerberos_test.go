package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicePrincipal(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		expected string
		wantErr  bool
	}{
		{
			name:     "derived from server URL without port",
			settings: Settings{ServerURL: "ldaps://dc01.domain.com:636"},
			expected: "ldap/dc01.domain.com",
		},
		{
			name:     "derived from plain URL",
			settings: Settings{ServerURL: "ldap://dc01.domain.com"},
			expected: "ldap/dc01.domain.com",
		},
		{
			name:     "explicit SPN overrides derivation",
			settings: Settings{ServerURL: "ldaps://dc01.domain.com", KerberosSPN: "ldap/alias.domain.com"},
			expected: "ldap/alias.domain.com",
		},
		{
			name:     "no hostname",
			settings: Settings{ServerURL: "ldap://"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spn, err := servicePrincipal(&tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spn)
		})
	}
}

func TestSplitPrincipal(t *testing.T) {
	tests := []struct {
		username   string
		configured string
		principal  string
		realm      string
	}{
		{"user@DOMAIN.COM", "", "user", "DOMAIN.COM"},
		{"user@DOMAIN.COM", "OTHER.COM", "user", "DOMAIN.COM"},
		{"user", "DOMAIN.COM", "user", "DOMAIN.COM"},
		{"user", "", "user", ""},
	}

	for _, tt := range tests {
		principal, realm := splitPrincipal(tt.username, tt.configured)
		assert.Equal(t, tt.principal, principal)
		assert.Equal(t, tt.realm, realm)
	}
}
