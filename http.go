package passport

import (
	"net/http"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// RouteAuthenticator glues the Authenticator to the HTTP transport: it
// establishes a session cookie on login, restores the user from the session
// on every request, and tears the session down on logout. Session
// references live in the SessionStore keyed by an opaque session id; only
// the id travels in the cookie.
type RouteAuthenticator struct {
	auth           *Authenticator
	sessions       SessionStore
	cfg            Config
	cookieDuration time.Duration
	Logger         Logger
	ErrorHandler   func(c router.Context, err error) error
}

// NewHTTPAuthenticator returns a new RouteAuthenticator.
func NewHTTPAuthenticator(auth *Authenticator, sessions SessionStore, cfg Config) (*RouteAuthenticator, error) {
	cookieDuration := 24 * time.Hour
	if cfg.GetSessionDuration() > 0 {
		cookieDuration = time.Duration(cfg.GetSessionDuration()) * time.Hour
	}

	a := &RouteAuthenticator{
		auth:           auth,
		sessions:       sessions,
		cfg:            cfg,
		cookieDuration: cookieDuration,
		Logger:         defLogger{},
	}

	a.ErrorHandler = a.defaultErrHandler

	return a, nil
}

// Login runs the local strategy with the submitted payload and, on success,
// persists the session reference and sets the session cookie.
func (a *RouteAuthenticator) Login(c router.Context, payload LoginPayload) error {
	outcome := a.auth.Login(c.Context(), StrategyLocal, Credentials{
		Email:    payload.GetIdentifier(),
		Password: payload.GetPassword(),
	})

	return a.establishSession(c, outcome)
}

// Callback completes a federated login with the profile the provider
// delivered after the code exchange.
func (a *RouteAuthenticator) Callback(c router.Context, strategy string, profile Profile) error {
	outcome := a.auth.Login(c.Context(), strategy, profile)
	return a.establishSession(c, outcome)
}

// Logout destroys the session and clears the cookie.
func (a *RouteAuthenticator) Logout(c router.Context) {
	cookieName := a.cfg.GetSessionCookieName()
	if sid := c.Cookies(cookieName); sid != "" {
		if err := a.sessions.Delete(c.Context(), sid); err != nil {
			a.Logger.Error("failed to delete session: %v", err)
		}
	}
	a.cookieDel(c, cookieName)
}

// Session returns the middleware that restores the user from the session
// cookie on each request and attaches it to the request context. Requests
// without a session cookie pass through anonymous; a session reference that
// no longer resolves to an identity invalidates the session outright.
func (a *RouteAuthenticator) Session() router.MiddlewareFunc {
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			cookieName := a.cfg.GetSessionCookieName()
			sid := c.Cookies(cookieName)
			if sid == "" {
				return hf(c)
			}

			ref, err := a.sessions.Get(c.Context(), sid)
			if err != nil {
				if errors.IsNotFound(err) {
					a.cookieDel(c, cookieName)
					return hf(c)
				}
				return a.ErrorHandler(c, errors.Wrap(err, errors.CategoryInternal, "failed to read session"))
			}

			outcome := a.auth.RestoreSession(c.Context(), ref)
			if outcome.Kind() == OutcomeErrored {
				a.Logger.Error("session restore failed, invalidating session: %v", outcome.Err())
				if derr := a.sessions.Delete(c.Context(), sid); derr != nil {
					a.Logger.Error("failed to delete invalid session: %v", derr)
				}
				a.cookieDel(c, cookieName)
				return a.ErrorHandler(c, outcome.Err())
			}

			c.SetContext(WithContext(c.Context(), outcome.User()))

			return hf(c)
		}
	}
}

func (a *RouteAuthenticator) establishSession(c router.Context, outcome Outcome) error {
	switch outcome.Kind() {
	case OutcomeRejected:
		return errors.New(outcome.Reason(), errors.CategoryAuth).
			WithCode(errors.CodeUnauthorized)
	case OutcomeErrored:
		a.Logger.Error("login error: %v", outcome.Err())
		return errors.Wrap(outcome.Err(), errors.CategoryInternal, "authentication failed").
			WithCode(errors.CodeInternal)
	}

	ref := a.auth.SessionReference(outcome.User())
	sid := NewSessionID()

	if err := a.sessions.Put(c.Context(), sid, ref); err != nil {
		a.Logger.Error("failed to persist session: %v", err)
		return errors.Wrap(err, errors.CategoryInternal, "failed to persist session").
			WithCode(errors.CodeInternal)
	}

	a.setSessionCookie(c, sid, a.cookieDuration)
	c.SetContext(WithContext(c.Context(), outcome.User()))

	return nil
}

func (a *RouteAuthenticator) setSessionCookie(c router.Context, val string, duration time.Duration) {
	c.Cookie(&router.Cookie{
		Name:     a.cfg.GetSessionCookieName(),
		Value:    val,
		Expires:  time.Now().Add(duration),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}

func (a *RouteAuthenticator) cookieDel(c router.Context, name string) {
	c.Cookie(&router.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour * (24 * 365)),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}

func (a *RouteAuthenticator) defaultErrHandler(c router.Context, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	a.Logger.Info("authentication middleware error (%s): %s", richErr.Category, richErr.Message)

	switch richErr.Category {
	case errors.CategoryAuth, errors.CategoryAuthz:
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"error": "unauthorized",
		})
	default:
		// never leak internal causes to the end user
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error": "internal server error",
		})
	}
}
