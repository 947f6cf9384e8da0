package decode

import (
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// ResolveGroups extracts group names from the entry's memberOf attribute.
// Each value is a full distinguished name such as
// "CN=Group1,OU=Test,DC=domain,DC=com".
//
// Directory transports collapse a single-valued multi-value attribute to a
// scalar, and the two encodings are normalized through different paths:
//
//   - exactly one value: the whole string is split on commas and every
//     CN=-bearing token is kept, so a flattened string can contribute
//     several names;
//   - multiple values: only the leading token before the first comma of
//     each value is taken.
//
// The asymmetry is long-standing observable behavior and is preserved
// deliberately. An absent memberOf yields an empty slice, never nil.
func ResolveGroups(entry *ldap.Entry) ([]string, error) {
	if entry == nil {
		return nil, &DecodeError{Attribute: "memberOf", Reason: "entry has no attribute set"}
	}

	values := entry.GetAttributeValues("memberOf")
	switch len(values) {
	case 0:
		return []string{}, nil
	case 1:
		groups := []string{}
		for _, token := range strings.Split(values[0], ",") {
			if strings.Contains(token, "CN=") {
				groups = append(groups, strings.Replace(token, "CN=", "", 1))
			}
		}
		return groups, nil
	default:
		groups := make([]string, 0, len(values))
		for _, dn := range values {
			leading := dn
			if i := strings.Index(dn, ","); i >= 0 {
				leading = dn[:i]
			}
			groups = append(groups, strings.Replace(leading, "CN=", "", 1))
		}
		return groups, nil
	}
}
