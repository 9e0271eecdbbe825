// Package app wires the SDK packages into one ready-to-use application:
// config from the environment, structured logging, the SSO client and the
// academic-affairs session sharing its cookie jar.
package app

import (
	"context"
	"log/slog"

	"github.com/cczukit/cczukit-go/pkg/jwapp"
	"github.com/cczukit/cczukit-go/pkg/slogx"
	"github.com/cczukit/cczukit-go/pkg/ssoauth"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application bundles an authenticated identity and its service clients.
type Application struct {
	cfg    Config
	logger *slog.Logger

	sso     *ssoauth.Client
	session *jwapp.Session
}

// New builds an Application from cfg. It performs no network I/O; call
// Login to authenticate.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "cczukit",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	sso, err := ssoauth.New(
		ssoauth.Credential{Username: cfg.Username, Password: cfg.Password},
		ssoauth.Config{
			SSOLoginURL:  cfg.SSOLoginURL,
			VPNRootURL:   cfg.VPNRootURL,
			MaxRedirects: cfg.MaxRedirects,
			Timeout:      cfg.HTTPTimeout,
		},
	)
	if err != nil {
		return nil, err
	}
	app.sso = sso

	app.session = jwapp.NewSession(sso, jwapp.Config{
		BaseURL:             cfg.JWBaseURL,
		WebRoot:             cfg.JWWebRoot,
		PlanPath:            cfg.JWPlanPath,
		DisablePlanPrefetch: cfg.NoPlanPrefetch,
	})

	return app, nil
}

// Login runs the two-stage flow: SSO first (probing direct vs VPN), then the
// academic-affairs login that mints the bearer token.
func (app *Application) Login(ctx context.Context) error {
	ctx = slogx.WithContext(ctx, app.logger)

	if _, err := app.sso.UniversalLogin(ctx); err != nil {
		return err
	}
	if _, err := app.session.Login(ctx); err != nil {
		return err
	}
	return nil
}

// Context returns a base context carrying the application logger.
func (app *Application) Context(ctx context.Context) context.Context {
	return slogx.WithContext(ctx, app.logger)
}

func (app *Application) Logger() *slog.Logger    { return app.logger }
func (app *Application) SSO() *ssoauth.Client    { return app.sso }
func (app *Application) Session() *jwapp.Session { return app.session }
