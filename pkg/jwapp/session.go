// Package jwapp maintains the authenticated session against the
// academic-affairs service (jwqywx) and wraps its endpoints: grades,
// credits/rank, terms, timetable, exams and the training plan.
//
// A Session is created from an already SSO-authenticated ssoauth.Client so
// both share one cookie jar. Login exchanges the credential for a bearer
// token plus an internal subject id; both live behind a single RWMutex, the
// only mutable state the session owns. Every endpoint that needs them reads
// under the lock and reports not_logged_in instead of firing a doomed call.
package jwapp

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/cczukit/cczukit-go/pkg/errx"
	"github.com/cczukit/cczukit-go/pkg/slogx"
	"github.com/cczukit/cczukit-go/pkg/ssoauth"
)

// Config holds the service endpoints. Zero values take the defaults.
type Config struct {
	// BaseURL is the API origin, port included.
	BaseURL string
	// WebRoot is the browser-facing origin, sent as Referer/Origin.
	WebRoot string
	// PlanPath is the training-plan endpoint. Deployment-specific and not
	// part of the stable API surface, hence configurable.
	PlanPath string
	// DisablePlanPrefetch turns off the best-effort background fetch of
	// the training plan after login.
	DisablePlanPrefetch bool
}

const (
	defaultBaseURL  = "http://jwqywx.cczu.edu.cn:8180"
	defaultWebRoot  = "http://jwqywx.cczu.edu.cn"
	defaultPlanPath = "/api/jxjh"
)

// Session is one authenticated identity against the academic-affairs
// service. Safe for concurrent use after Login returns.
type Session struct {
	baseURL    string
	webRoot    string
	planPath   string
	noPrefetch bool
	httpClient *http.Client
	credential ssoauth.Credential

	// mu guards the authenticated state below. Writes (login, logout,
	// token invalidation) exclude reads; endpoint wrappers only read.
	mu        sync.RWMutex
	token     string
	subjectID string
	prefetch  *PrefetchHandle
}

// NewSession builds a Session on top of an SSO-authenticated client,
// sharing its cookie jar and credential.
func NewSession(client *ssoauth.Client, cfg Config) *Session {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.WebRoot == "" {
		cfg.WebRoot = defaultWebRoot
	}
	if cfg.PlanPath == "" {
		cfg.PlanPath = defaultPlanPath
	}

	return &Session{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		webRoot:    strings.TrimSuffix(cfg.WebRoot, "/"),
		planPath:   cfg.PlanPath,
		noPrefetch: cfg.DisablePlanPrefetch,
		httpClient: client.HTTPClient(),
		credential: client.Credential(),
	}
}

// Login exchanges the credential for a bearer token and the internal
// subject id. The login call itself carries no Authorization header; some
// deployments reject a stale one. On success the token is published under
// the write lock before the background training-plan prefetch is started,
// so no concurrent reader can observe a half-initialized session.
func (s *Session) Login(ctx context.Context) (*Envelope[UserInfo], error) {
	log := slogx.FromContext(ctx)

	payload := map[string]string{
		"userid":  s.credential.Username,
		"userpwd": s.credential.Password,
	}

	body, resp, err := s.do(ctx, http.MethodPost, "/api/login", payload, false)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errx.LoginFailedStatus(resp.StatusCode)
	}

	env, err := decodeEnvelope[UserInfo](body)
	if err != nil {
		return nil, err
	}
	if env.Token == "" {
		return nil, errx.LoginFailed("no token received")
	}
	if len(env.Items) == 0 {
		return nil, errx.LoginFailed("no user data received")
	}

	user := env.Items[0]
	if user.ID == "" {
		// 200 with a token but no subject id: the service's way of
		// saying the password was wrong.
		return nil, errx.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.token = env.Token
	s.subjectID = user.ID
	s.mu.Unlock()

	log.Info("jwapp login complete", "subject", user.ID)

	if !s.noPrefetch {
		s.startPlanPrefetch(ctx)
	}

	return env, nil
}

// Logout invalidates the session token and subject id and cancels any
// running prefetch.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.subjectID = ""
	prefetch := s.prefetch
	s.prefetch = nil
	s.mu.Unlock()

	if prefetch != nil {
		prefetch.Cancel()
	}
}

// LoggedIn reports whether the session currently holds a token.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// authenticated returns the current token and subject id, or not_logged_in
// when login has not completed or the token was cleared.
func (s *Session) authenticated() (token, subjectID string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.subjectID == "" {
		return "", "", errx.ErrNotLoggedIn
	}
	return s.token, s.subjectID, nil
}

// invalidateToken drops the token after the service rejected it.
func (s *Session) invalidateToken() {
	s.mu.Lock()
	s.token = ""
	s.subjectID = ""
	s.mu.Unlock()
}
