/*
Package decode converts raw Active Directory entries into normalized,
application-friendly values.

Every function here is pure: no I/O, no mutable state, no live connection.
They can be used standalone for offline record processing and are the same
functions the facade applies to search results.

  - ResolveGUID: mixed-endian objectGUID bytes to canonical hyphenated form
  - ResolveSID: binary objectSid to "S-1-5-..." form
  - ResolveGroups: memberOf DN chains to plain group names
  - ResolveBindError: raw bind failures to user-facing classifications
  - CreateUserObj / CreateGroupObj: whole-entry normalization
  - DetectLogonType / CleanSAMA / ConvertToDate: small field helpers

Malformed input is reported through *DecodeError.
*/
package decode
