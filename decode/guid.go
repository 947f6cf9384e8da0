package decode

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
)

// GUID is always 16 bytes on the wire.
const guidBytesLength = 16

// guidByteOrder rearranges the raw objectGUID bytes into RFC 4122 order.
// Active Directory stores the first three GUID groups little-endian and the
// last two big-endian, so Data1 is reversed four bytes, Data2 and Data3 are
// reversed pairs, and Data4 keeps its wire order.
var guidByteOrder = [guidBytesLength]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// ResolveGUID extracts the objectGUID attribute from a raw directory entry
// and renders it as the canonical 36-character hyphenated string.
//
// The conversion is deterministic and byte-order-sensitive: the reference
// input 10e7d4174d627849900b8549cb753699 must yield
// "17d4e710-624d-4978-900b-8549cb753699".
func ResolveGUID(entry *ldap.Entry) (string, error) {
	if entry == nil {
		return "", &DecodeError{Attribute: "objectGUID", Reason: "entry has no attribute set"}
	}

	raw := entry.GetRawAttributeValue("objectGUID")
	if len(raw) == 0 {
		return "", &DecodeError{Attribute: "objectGUID", Reason: "attribute not present"}
	}
	if len(raw) != guidBytesLength {
		return "", &DecodeError{
			Attribute: "objectGUID",
			Reason:    fmt.Sprintf("expected %d bytes, got %d", guidBytesLength, len(raw)),
		}
	}

	var ordered [guidBytesLength]byte
	for dst, src := range guidByteOrder {
		ordered[dst] = raw[src]
	}

	id, err := uuid.FromBytes(ordered[:])
	if err != nil {
		return "", &DecodeError{Attribute: "objectGUID", Reason: err.Error()}
	}
	return id.String(), nil
}
