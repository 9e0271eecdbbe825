// Package httpx is the outbound HTTP plumbing shared by the SDK: a
// RoundTripper that stamps default headers and a request-correlation ID on
// every call, logs through the context logger, and holds requests behind a
// client-side token bucket. Campus portals throttle aggressively and answer
// bursts with captchas, so the SDK paces itself instead of finding out.
package httpx

import (
	"net/http"

	"github.com/cczukit/cczukit-go/pkg/idx"
	"github.com/cczukit/cczukit-go/pkg/slogx"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the correlation ID on outbound requests. The
// portals ignore it; it exists so proxy logs and SDK logs line up.
const RequestIDHeader = "X-Request-Id"

// BrowserHeaders are the default headers every portal request carries. The
// SSO and WebVPN front-ends serve different HTML to non-browser agents, so
// the SDK identifies as one.
var BrowserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "zh-CN,zh;q=0.9,en;q=0.8",
}

// Options configures a Transport.
type Options struct {
	// Base is the underlying RoundTripper (default http.DefaultTransport).
	Base http.RoundTripper

	// Headers are set on every request unless the request already carries
	// the header. Defaults to BrowserHeaders.
	Headers map[string]string

	// Limit paces outbound requests. The zero value disables pacing.
	Limit RateLimitConfig
}

// Transport implements http.RoundTripper.
type Transport struct {
	base    http.RoundTripper
	headers map[string]string
	limiter *rate.Limiter
}

// NewTransport builds a Transport from opts.
func NewTransport(opts Options) *Transport {
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport
	}
	headers := opts.Headers
	if headers == nil {
		headers = BrowserHeaders
	}

	var limiter *rate.Limiter
	if opts.Limit.RequestsPerWindow > 0 && opts.Limit.Window > 0 {
		perSecond := float64(opts.Limit.RequestsPerWindow) / opts.Limit.Window.Seconds()
		burst := opts.Limit.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}

	return &Transport{base: base, headers: headers, limiter: limiter}
}

// RoundTrip paces, stamps, and logs the request before handing it to the
// base transport. The incoming request is cloned; RoundTrippers must not
// mutate their argument.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	out := req.Clone(ctx)
	for key, value := range t.headers {
		if out.Header.Get(key) == "" {
			out.Header.Set(key, value)
		}
	}

	reqID := out.Header.Get(RequestIDHeader)
	if reqID == "" {
		reqID = idx.New().String()
		out.Header.Set(RequestIDHeader, reqID)
	}

	log := slogx.FromContext(ctx).With("req_id", reqID)
	log.Debug("http request", "method", out.Method, "url", out.URL.Redacted())

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		log.Debug("http request failed", "method", out.Method, "url", out.URL.Redacted(), "err", err)
		return nil, err
	}

	log.Debug("http response", "method", out.Method, "url", out.URL.Redacted(), "status", resp.StatusCode)
	return resp, nil
}
