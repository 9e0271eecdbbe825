package ssoauth

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/cczukit/cczukit-go/pkg/errx"
	"github.com/cczukit/cczukit-go/pkg/slogx"
)

// UniversalLogin probes the SSO portal and runs whichever login path the
// probe indicates. A 3xx probe response means the institution is only
// reachable through the WebVPN reverse proxy; a 200 means direct SSO. On
// success the session cookies are in the shared jar, the mode is recorded,
// and the returned identity is non-nil exactly in VPN mode.
func (c *Client) UniversalLogin(ctx context.Context) (*VPNIdentity, error) {
	log := slogx.FromContext(ctx)

	probeURL, err := url.Parse(c.ssoLoginURL)
	if err != nil {
		return nil, errx.InvalidResponse("invalid sso login url: " + err.Error())
	}

	_, resp, err := c.get(ctx, probeURL, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case isRedirect(resp.StatusCode):
		log.Debug("sso probe redirected, using webvpn path", "status", resp.StatusCode)
		identity, err := c.vpnLogin(ctx, probeURL, resp)
		if err != nil {
			return nil, err
		}
		c.setMode(ModeVPN, identity)
		log.Info("sso login complete", "mode", ModeVPN, "userid", identity.UserID)
		return identity, nil

	case resp.StatusCode == http.StatusOK:
		log.Debug("sso probe answered directly, using direct path")
		if _, _, err := c.ServiceLogin(ctx, ""); err != nil {
			return nil, err
		}
		c.setMode(ModeDirect, nil)
		log.Info("sso login complete", "mode", ModeDirect)
		return nil, nil

	default:
		return nil, errx.LoginFailedStatus(resp.StatusCode)
	}
}

// vpnLogin completes the WebVPN-tunneled login: walk the probe redirect to
// the proxied login page, scrape its hidden fields, submit credentials,
// follow the post-login redirect once, then decode the identity cookie the
// proxy set along the way.
func (c *Client) vpnLogin(ctx context.Context, probeURL *url.URL, probe *http.Response) (*VPNIdentity, error) {
	location := probe.Header.Get("Location")
	if location == "" {
		return nil, errx.LoginFailed("probe redirect without Location header")
	}
	redirectURL, err := probeURL.Parse(location)
	if err != nil {
		return nil, errx.LoginFailed("unparseable probe redirect location " + location)
	}

	page, loginPageURL, _, err := c.followRedirects(ctx, redirectURL)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(page) {
		return nil, errx.InvalidResponse("login page is not valid UTF-8")
	}

	form := parseHiddenFields(string(page))
	form["username"] = c.credential.Username
	form["password"] = base64.StdEncoding.EncodeToString([]byte(c.credential.Password))

	loginResp, err := c.postForm(ctx, loginPageURL, form, nil)
	if err != nil {
		return nil, err
	}

	loginLocation := loginResp.Header.Get("Location")
	if loginLocation == "" {
		return nil, errx.LoginFailed("login response carries no redirect")
	}
	targetURL, err := loginPageURL.Parse(loginLocation)
	if err != nil {
		return nil, errx.LoginFailed("unparseable login redirect location " + loginLocation)
	}

	if _, _, err := c.get(ctx, targetURL, map[string]string{"Referer": c.vpnRootURL}); err != nil {
		return nil, err
	}

	cookie, ok := c.identityCookie(targetURL)
	if !ok {
		return nil, errx.LoginFailed("no identity cookie after login")
	}
	return decodeVPNIdentity(cookie.Value)
}

// ServiceLogin runs the direct SSO flow against <sso-root>?service=...,
// returning the body and response of the final hop. An empty service logs
// into the portal itself. A 302 on the initial GET means the session is
// already authenticated and only the redirect chain needs walking; after a
// form submission both 302 and 200 count as success, some deployments
// re-serve 200 when the session is already logged in.
func (c *Client) ServiceLogin(ctx context.Context, service string) ([]byte, *http.Response, error) {
	raw := c.ssoLoginURL
	if service != "" {
		raw += "?service=" + url.QueryEscape(service)
	}
	loginURL, err := url.Parse(raw)
	if err != nil {
		return nil, nil, errx.InvalidResponse("invalid service login url: " + err.Error())
	}

	body, resp, err := c.get(ctx, loginURL, nil)
	if err != nil {
		return nil, nil, err
	}

	if isRedirect(resp.StatusCode) {
		location := resp.Header.Get("Location")
		if location == "" {
			return nil, nil, errx.InvalidResponse("redirect without Location header")
		}
		next, err := loginURL.Parse(location)
		if err != nil {
			return nil, nil, errx.InvalidResponse("unparseable redirect location " + location)
		}
		return c.walkToEnd(ctx, next)
	}

	if !utf8.Valid(body) {
		return nil, nil, errx.InvalidResponse("login page is not valid UTF-8")
	}

	form := parseHiddenFields(string(body))
	form["username"] = c.credential.Username
	form["password"] = base64.StdEncoding.EncodeToString([]byte(c.credential.Password))

	loginResp, err := c.postForm(ctx, loginURL, form, nil)
	if err != nil {
		return nil, nil, err
	}

	if isRedirect(loginResp.StatusCode) {
		location := loginResp.Header.Get("Location")
		if location == "" {
			return nil, nil, errx.LoginFailed("login response carries no redirect")
		}
		next, err := loginURL.Parse(location)
		if err != nil {
			return nil, nil, errx.LoginFailed("unparseable login redirect location " + location)
		}
		return c.walkToEnd(ctx, next)
	}

	if loginResp.StatusCode == http.StatusOK {
		return nil, loginResp, nil
	}

	return nil, nil, errx.LoginFailedStatus(loginResp.StatusCode)
}

func (c *Client) walkToEnd(ctx context.Context, u *url.URL) ([]byte, *http.Response, error) {
	body, _, resp, err := c.followRedirects(ctx, u)
	return body, resp, err
}

// postForm submits an application/x-www-form-urlencoded POST without
// following the response redirect; the caller inspects it.
func (c *Client) postForm(ctx context.Context, u *url.URL, form map[string]string, headers map[string]string) (*http.Response, error) {
	values := url.Values{}
	for key, value := range form {
		values.Set(key, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(values.Encode()))
	if err != nil {
		return nil, errx.InvalidResponse("build request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errx.Network(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp, nil
}
