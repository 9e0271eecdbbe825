package ssoauth

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/cczukit/cczukit-go/pkg/errx"
)

// decodeVPNIdentity parses the WebVPN session cookie value: base64 of a
// UTF-8 JSON object carrying the login identity.
func decodeVPNIdentity(cookieValue string) (*VPNIdentity, error) {
	raw, err := base64.StdEncoding.DecodeString(cookieValue)
	if err != nil {
		return nil, errx.LoginFailed("identity cookie is not base64: " + err.Error())
	}
	if !utf8.Valid(raw) {
		return nil, errx.LoginFailed("identity cookie is not valid UTF-8")
	}

	var identity VPNIdentity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, errx.LoginFailed("identity cookie is not valid JSON: " + err.Error())
	}
	if identity.UserID == "" {
		return nil, errx.LoginFailed("identity cookie carries no userid")
	}
	return &identity, nil
}

// identityCookie finds the named identity cookie in the jar for u.
func (c *Client) identityCookie(u *url.URL) (*http.Cookie, bool) {
	for _, cookie := range c.httpClient.Jar.Cookies(u) {
		if cookie.Name == vpnIdentityCookie {
			return cookie, true
		}
	}
	return nil, false
}
