package decode

import (
	"fmt"

	"github.com/bwmarrin/go-objectsid"
	"github.com/go-ldap/ldap/v3"
)

// ResolveSID extracts the binary objectSid attribute from a raw directory
// entry and renders it in the familiar "S-1-5-21-..." form.
func ResolveSID(entry *ldap.Entry) (string, error) {
	if entry == nil {
		return "", &DecodeError{Attribute: "objectSid", Reason: "entry has no attribute set"}
	}

	raw := entry.GetRawAttributeValue("objectSid")
	if len(raw) == 0 {
		return "", &DecodeError{Attribute: "objectSid", Reason: "attribute not present"}
	}
	if err := validateSIDBytes(raw); err != nil {
		return "", err
	}

	sid := objectsid.Decode(raw)
	return sid.String(), nil
}

// resolveSIDSafe returns an empty string instead of an error for entries
// without a usable objectSid.
func resolveSIDSafe(entry *ldap.Entry) string {
	sid, err := ResolveSID(entry)
	if err != nil {
		return ""
	}
	return sid
}

// validateSIDBytes checks the declared sub-authority count against the
// actual length before handing the value to the decoder, which assumes a
// well-formed buffer.
func validateSIDBytes(raw []byte) error {
	if len(raw) < 8 {
		return &DecodeError{Attribute: "objectSid", Reason: fmt.Sprintf("truncated SID: %d bytes", len(raw))}
	}
	if want := 8 + 4*int(raw[1]); len(raw) != want {
		return &DecodeError{
			Attribute: "objectSid",
			Reason:    fmt.Sprintf("expected %d bytes for %d sub-authorities, got %d", want, raw[1], len(raw)),
		}
	}
	return nil
}
