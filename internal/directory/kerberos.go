package directory

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-ldap/ldap/v3/gssapi"
	krb5client "github.com/jcmturner/gokrb5/v8/client"
)

const defaultKrb5Conf = "/etc/krb5.conf"

// bindGSSAPI authenticates the supplied credentials via Kerberos instead of
// a simple bind. The principal is the supplied username; a realm suffix in
// the username ("user@REALM") overrides the configured realm.
func (s *Session) bindGSSAPI(conn Conn, username, password string) error {
	principal, realm := splitPrincipal(username, s.Settings.KerberosRealm)
	if realm == "" {
		return fmt.Errorf("kerberos realm is required (configure it or include it in the username)")
	}

	confPath := s.Settings.KerberosConfigPath
	if confPath == "" {
		confPath = defaultKrb5Conf
	}

	client, err := gssapi.NewClientWithPassword(principal, realm, password, confPath,
		krb5client.DisablePAFXFAST(true))
	if err != nil {
		return fmt.Errorf("create GSSAPI client: %w", err)
	}
	defer func() {
		_ = client.DeleteSecContext()
	}()

	spn, err := servicePrincipal(s.Settings)
	if err != nil {
		return err
	}

	return conn.GSSAPIBind(client, spn)
}

// splitPrincipal separates an optional realm suffix from the username.
func splitPrincipal(username, configuredRealm string) (principal, realm string) {
	if at := strings.LastIndex(username, "@"); at >= 0 {
		return username[:at], username[at+1:]
	}
	return username, configuredRealm
}

// servicePrincipal derives the LDAP service principal from the server URL.
// An explicit SPN in the settings overrides derivation. The SPN never
// includes a port.
func servicePrincipal(settings *Settings) (string, error) {
	if settings.KerberosSPN != "" {
		return settings.KerberosSPN, nil
	}

	parsed, err := url.Parse(settings.ServerURL)
	if err != nil {
		return "", fmt.Errorf("parse server URL for SPN: %w", err)
	}
	hostname := parsed.Hostname()
	if hostname == "" {
		return "", fmt.Errorf("no hostname in server URL %q", settings.ServerURL)
	}

	return "ldap/" + hostname, nil
}
