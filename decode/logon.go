package decode

import "strings"

// LogonType identifies the style of a supplied logon name; its value is the
// matching directory attribute name, so it can be used directly in a filter.
type LogonType string

const (
	LogonUserPrincipalName LogonType = "userPrincipalName" // user@domain.com
	LogonDistinguishedName LogonType = "distinguishedName" // CN=User,DC=domain,DC=com
	LogonSAMAccountName    LogonType = "sAMAccountName"    // DOMAIN\user or bare user
)

// DetectLogonType classifies a logon name. Any name containing "@" is a UPN;
// a name containing "DC=" (case-insensitive) is a distinguished name;
// everything else is a legacy SAM account name.
func DetectLogonType(username string) LogonType {
	switch {
	case strings.Contains(username, "@"):
		return LogonUserPrincipalName
	case strings.Contains(strings.ToUpper(username), "DC="):
		return LogonDistinguishedName
	default:
		return LogonSAMAccountName
	}
}

// CleanSAMA strips a DOMAIN\ prefix from a legacy logon name, returning the
// segment after the last backslash. Names without a backslash pass through
// unchanged.
func CleanSAMA(value string) string {
	if i := strings.LastIndex(value, `\`); i >= 0 {
		return value[i+1:]
	}
	return value
}
