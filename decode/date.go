package decode

import (
	"strconv"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// ConvertToDate parses an Active Directory generalized-time value such as
// "20190103201240.0Z" into a UTC instant with zero sub-second precision.
// The format carries no zone designator; it is always interpreted as UTC.
//
// Fields are taken from fixed offsets rather than a layout string so that
// trailing fraction and zone markers are ignored identically regardless of
// their shape.
func ConvertToDate(value string) (time.Time, error) {
	if len(value) < 14 {
		return time.Time{}, &DecodeError{Attribute: "timestamp", Reason: "value shorter than YYYYMMDDHHMMSS"}
	}

	fields := make([]int, 6)
	for i, span := range [6][2]int{{0, 4}, {4, 6}, {6, 8}, {8, 10}, {10, 12}, {12, 14}} {
		n, err := strconv.Atoi(value[span[0]:span[1]])
		if err != nil {
			return time.Time{}, &DecodeError{Attribute: "timestamp", Reason: "non-numeric field in " + value[:14]}
		}
		fields[i] = n
	}

	return time.Date(fields[0], time.Month(fields[1]), fields[2],
		fields[3], fields[4], fields[5], 0, time.UTC), nil
}

// convertEntryDate parses the named timestamp attribute of an entry,
// returning the zero time when the attribute is absent.
func convertEntryDate(entry *ldap.Entry, attribute string) (time.Time, error) {
	value := entry.GetAttributeValue(attribute)
	if value == "" {
		return time.Time{}, nil
	}
	return ConvertToDate(value)
}
