// Package auth resolves Salesforce credentials. Credentials come from a
// force:// auth URL, usually via the SF_AUTH_URL environment variable,
// and can be persisted in the OS keychain for later runs.
package auth

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// EnvAuthURL is the environment variable the CLI reads credentials from.
const EnvAuthURL = "SF_AUTH_URL"

// Credentials is everything a client needs to talk to one org.
type Credentials struct {
	InstanceURL string `json:"instance_url"`
	AccessToken string `json:"access_token"`
}

// ParseAuthURL parses a force://ACCESS_TOKEN@INSTANCE_HOST auth URL.
// The instance host becomes an https instance URL.
func ParseAuthURL(raw string) (Credentials, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Credentials{}, fmt.Errorf("auth: parse auth url: %w", err)
	}
	if u.Scheme != "force" {
		return Credentials{}, fmt.Errorf("auth: unexpected scheme %q, want force://", u.Scheme)
	}
	if u.User == nil || u.User.Username() == "" {
		return Credentials{}, errors.New("auth: auth url carries no access token")
	}
	if u.Host == "" {
		return Credentials{}, errors.New("auth: auth url carries no instance host")
	}
	token := u.User.Username()
	if pass, ok := u.User.Password(); ok {
		// sfdx-style URLs join token segments with colons.
		token = token + ":" + pass
	}
	return Credentials{
		InstanceURL: "https://" + u.Host,
		AccessToken: token,
	}, nil
}

// FromEnv reads credentials from SF_AUTH_URL.
func FromEnv() (Credentials, error) {
	raw := strings.TrimSpace(os.Getenv(EnvAuthURL))
	if raw == "" {
		return Credentials{}, fmt.Errorf("auth: %s is not set", EnvAuthURL)
	}
	return ParseAuthURL(raw)
}
