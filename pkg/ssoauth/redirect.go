package ssoauth

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/cczukit/cczukit-go/pkg/errx"
)

// get issues a single GET without following redirects and returns the fully
// read body alongside the response.
func (c *Client) get(ctx context.Context, u *url.URL, headers map[string]string) ([]byte, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, nil, errx.InvalidResponse("build request: " + err.Error())
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errx.Network(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errx.Network(err)
	}
	return body, resp, nil
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// followRedirects walks a redirect chain starting at u and returns the body,
// final URL and response of the first non-redirect hop. Relative Location
// values resolve against the current URL, not the origin. The walk is bounded
// by the client's MaxRedirects independent of any wall-clock timeout; a 3xx
// without a Location header is a hard failure.
func (c *Client) followRedirects(ctx context.Context, u *url.URL) ([]byte, *url.URL, *http.Response, error) {
	current := u
	for hop := 0; ; hop++ {
		body, resp, err := c.get(ctx, current, nil)
		if err != nil {
			return nil, nil, nil, err
		}
		if !isRedirect(resp.StatusCode) {
			return body, current, resp, nil
		}

		location := resp.Header.Get("Location")
		if location == "" {
			return nil, nil, nil, errx.InvalidResponse("redirect without Location header")
		}
		if hop >= c.maxRedirects {
			return nil, nil, nil, errx.TooManyRedirects(c.maxRedirects)
		}

		next, err := current.Parse(location)
		if err != nil {
			return nil, nil, nil, errx.InvalidResponse("unparseable redirect location " + location)
		}
		current = next
	}
}
