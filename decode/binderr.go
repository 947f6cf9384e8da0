package decode

import (
	"errors"
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// User-facing bind failure classifications.
const (
	ReasonUnknownAuthError   = "Unknown Auth Error"
	ReasonInvalidCredentials = "Invalid username or password"
	ReasonAccountLocked      = "Account is locked out"
)

// ResolveBindError maps a raw bind failure to one of the classification
// strings above.
//
// Anything that is not an invalid-credentials result carrying a diagnostic
// message is reported as ReasonUnknownAuthError. For invalid-credentials
// results the diagnostic is scanned for the Active Directory sub-code 775
// (account lockout); any other diagnostic is treated as a wrong username or
// password. This is a best-effort substring heuristic over an opaque
// message: disabled and expired accounts are indistinguishable from a bad
// password here.
func ResolveBindError(err error) string {
	var ldapErr *ldap.Error
	if !errors.As(err, &ldapErr) ||
		ldapErr.ResultCode != ldap.LDAPResultInvalidCredentials ||
		ldapErr.Err == nil {
		return ReasonUnknownAuthError
	}

	if strings.Contains(ldapErr.Err.Error(), "775") {
		return ReasonAccountLocked
	}
	return ReasonInvalidCredentials
}
