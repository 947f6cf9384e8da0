/*
Package adtools is an Active Directory authentication connector: it binds a
username/password pair against a directory server, retrieves the matching
identity record, and normalizes directory-specific encodings into stable
application values.

# Operations

A Client exposes three operations, each owning one connection from dial
through release:

  - Authenticate: bind the supplied credentials and fetch the single
    matching user record
  - ListGroups: enumerate groups visible to the authenticated principal
  - ListUsers: enumerate person-category users, raw or normalized

Every operation returns a result struct with a Success flag; expected
failures (bad credentials, lockout, no matching record, unreachable server)
never surface as errors, only as Reason/Cause fields on the result.

# Normalization

The decode subpackage holds the pure record-normalization functions (GUID
and SID byte decoding, memberOf chain extraction, timestamp parsing,
logon-name classification). They work on raw entries without a live
connection and are usable standalone.

# Configuration

Config is supplied once to NewClient and is immutable afterwards. Bind is a
simple bind by default; setting KerberosRealm switches it to GSSAPI. All
diagnostics flow through the Logger injected at construction.
*/
package adtools
