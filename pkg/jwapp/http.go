package jwapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cczukit/cczukit-go/pkg/errx"
)

// do performs one API call. A non-nil payload is sent as JSON. When auth is
// set the bearer token is attached, and a 401-class answer invalidates the
// stored token so later calls fail fast with not_logged_in.
func (s *Session) do(ctx context.Context, method, path string, payload any, auth bool) ([]byte, *http.Response, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, errx.Decoding(err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return nil, nil, errx.InvalidResponse("build request: " + err.Error())
	}
	req.Header.Set("Referer", s.webRoot+"/")
	req.Header.Set("Origin", s.webRoot)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if auth {
		token, _, err := s.authenticated()
		if err != nil {
			return nil, nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, errx.Network(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errx.Network(err)
	}

	if auth && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		s.invalidateToken()
		return nil, nil, &errx.Error{Kind: errx.KindNotLoggedIn, Description: "session token rejected"}
	}

	return body, resp, nil
}
