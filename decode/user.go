package decode

import (
	"time"

	"github.com/go-ldap/ldap/v3"
)

// UserRecord is the normalized application-facing view of a directory user.
// Phone, Name, Mail, and SID default to empty strings when the underlying
// attribute is absent; Groups is never nil.
type UserRecord struct {
	Groups []string `json:"groups"`
	Phone  string   `json:"phone"`
	Name   string   `json:"name"`
	Mail   string   `json:"mail"`
	GUID   string   `json:"guid"`
	DN     string   `json:"dn"`
	SID    string   `json:"sid,omitempty"`
}

// GroupRecord is the normalized detailed view of a directory group.
type GroupRecord struct {
	Name        string    `json:"name"`
	DN          string    `json:"dn"`
	GUID        string    `json:"guid"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	ChangedAt   time.Time `json:"changedAt"`
}

// CreateUserObj normalizes one raw directory entry into a UserRecord. Group
// membership and GUID decoding follow ResolveGroups and ResolveGUID; a
// malformed or missing objectGUID fails the whole conversion.
func CreateUserObj(entry *ldap.Entry) (UserRecord, error) {
	if entry == nil {
		return UserRecord{}, &DecodeError{Reason: "entry is not a structured record"}
	}

	groups, err := ResolveGroups(entry)
	if err != nil {
		return UserRecord{}, err
	}
	guid, err := ResolveGUID(entry)
	if err != nil {
		return UserRecord{}, err
	}

	return UserRecord{
		Groups: groups,
		Phone:  entry.GetAttributeValue("telephoneNumber"),
		Name:   entry.GetAttributeValue("name"),
		Mail:   entry.GetAttributeValue("mail"),
		GUID:   guid,
		DN:     entry.DN,
		SID:    resolveSIDSafe(entry),
	}, nil
}

// CreateGroupObj normalizes one raw directory entry into a GroupRecord.
// Timestamps are zero when the directory omits them.
func CreateGroupObj(entry *ldap.Entry) (GroupRecord, error) {
	if entry == nil {
		return GroupRecord{}, &DecodeError{Reason: "entry is not a structured record"}
	}

	guid, err := ResolveGUID(entry)
	if err != nil {
		return GroupRecord{}, err
	}
	created, err := convertEntryDate(entry, "whenCreated")
	if err != nil {
		return GroupRecord{}, err
	}
	changed, err := convertEntryDate(entry, "whenChanged")
	if err != nil {
		return GroupRecord{}, err
	}

	dn := entry.DN
	if dn == "" {
		dn = entry.GetAttributeValue("distinguishedName")
	}

	return GroupRecord{
		Name:        entry.GetAttributeValue("name"),
		DN:          dn,
		GUID:        guid,
		Description: entry.GetAttributeValue("description"),
		CreatedAt:   created,
		ChangedAt:   changed,
	}, nil
}
