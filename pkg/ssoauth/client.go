// Package ssoauth authenticates against the university SSO portal, probing
// whether the institution is reachable directly or only through the WebVPN
// reverse proxy, and leaves the resulting browser-equivalent session cookies
// in a jar shared with the downstream service clients.
package ssoauth

import (
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/cczukit/cczukit-go/pkg/httpx"
	"golang.org/x/net/publicsuffix"
)

// Credential is the identifier/secret pair for one campus identity. It is
// immutable and never persisted by the SDK.
type Credential struct {
	Username string
	Password string
}

// LoginMode records which path the authentication state machine resolved.
type LoginMode int

const (
	// ModeUnknown means no login has completed yet.
	ModeUnknown LoginMode = iota
	// ModeDirect means the SSO portal was reachable without a VPN hop.
	ModeDirect
	// ModeVPN means login went through the WebVPN reverse proxy; downstream
	// calls should use the proxied base URLs.
	ModeVPN
)

func (m LoginMode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeVPN:
		return "vpn"
	default:
		return "unknown"
	}
}

// VPNIdentity is the login-identity record the WebVPN proxy hands back in
// its session cookie. Present only after a VPN-mode login.
type VPNIdentity struct {
	UserID   string `json:"userid"`
	Username string `json:"username,omitempty"`
}

// Config holds the endpoints and bounds of the authentication flow. Zero
// values take the defaults below.
type Config struct {
	// SSOLoginURL is the SSO portal login endpoint.
	SSOLoginURL string
	// VPNRootURL is the WebVPN front-end, used as Referer when completing
	// the proxied login.
	VPNRootURL string
	// MaxRedirects bounds every redirect chain the client walks.
	MaxRedirects int
	// Timeout applies per HTTP call.
	Timeout time.Duration
	// Transport overrides the underlying RoundTripper. Tests use this;
	// production code keeps the default httpx transport.
	Transport http.RoundTripper
}

const (
	defaultSSOLoginURL  = "http://sso.cczu.edu.cn/sso/login"
	defaultVPNRootURL   = "https://zmvpn.cczu.edu.cn"
	defaultMaxRedirects = 10
	defaultTimeout      = 30 * time.Second

	// vpnIdentityCookie is the WebVPN cookie carrying the base64-encoded
	// identity JSON.
	vpnIdentityCookie = "clientInfo"
)

// Client owns one authenticated identity: the credential, the shared cookie
// jar, and the resolved login mode. Methods are safe for concurrent use;
// login itself should not be raced against other calls on the same client.
type Client struct {
	credential   Credential
	ssoLoginURL  string
	vpnRootURL   string
	maxRedirects int
	httpClient   *http.Client

	mu       sync.RWMutex
	mode     LoginMode
	identity *VPNIdentity
}

// New builds a Client with a fresh publicsuffix-aware cookie jar. Redirects
// are never followed automatically: the state machine inspects every 3xx
// itself.
func New(credential Credential, cfg Config) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	if cfg.SSOLoginURL == "" {
		cfg.SSOLoginURL = defaultSSOLoginURL
	}
	if cfg.VPNRootURL == "" {
		cfg.VPNRootURL = defaultVPNRootURL
	}
	if cfg.MaxRedirects <= 0 {
		cfg.MaxRedirects = defaultMaxRedirects
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	transport := cfg.Transport
	if transport == nil {
		transport = httpx.NewTransport(httpx.Options{Limit: httpx.PortalLimit})
	}

	return &Client{
		credential:   credential,
		ssoLoginURL:  cfg.SSOLoginURL,
		vpnRootURL:   cfg.VPNRootURL,
		maxRedirects: cfg.MaxRedirects,
		httpClient: &http.Client{
			Jar:       jar,
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// Credential returns the identity this client authenticates as.
func (c *Client) Credential() Credential { return c.credential }

// HTTPClient exposes the cookie-bearing client so downstream services share
// the authenticated session.
func (c *Client) HTTPClient() *http.Client { return c.httpClient }

// Mode reports which login path was taken, or ModeUnknown before login.
func (c *Client) Mode() LoginMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// VPNIdentity returns the identity decoded from the WebVPN cookie. It is
// non-nil exactly when Mode is ModeVPN.
func (c *Client) VPNIdentity() *VPNIdentity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identity
}

func (c *Client) setMode(mode LoginMode, identity *VPNIdentity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
	c.identity = identity
}
