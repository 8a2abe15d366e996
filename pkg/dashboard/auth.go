package dashboard

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"aquaview.xyz/water-quality-dashboard/pkg/backend"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
	"aquaview.xyz/water-quality-dashboard/pkg/session"
)

const (
	LandingRouteAdmin    = "/admin"
	LandingRouteCustomer = "/"

	msgSessionExpired  = "Session expired. Please login again."
	msgSessionInactive = "Session expired due to inactivity. Please login again."
)

func authLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)
}

func (d *Dashboard) login(ctx context.Context, creds models.Credentials) (*LoginResult, error) {
	logger := authLogger()

	resp, err := d.Backend.Login(ctx, creds)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			logger.Info("Login rejected by backend",
				zap.String("username", creds.Username),
				zap.Int("status", apiErr.Status))
			message := apiErr.Message
			if message == "" {
				message = "Invalid credentials"
			}
			return &LoginResult{Success: false, Message: message}, nil
		}
		return nil, err
	}

	if resp.Token == "" || resp.User.Username == "" {
		logger.Error("Login response missing token or user")
		return &LoginResult{Success: false, Message: "Invalid response from server"}, nil
	}

	if _, err := d.Sessions.Save(resp.Token, &resp.User); err != nil {
		return nil, err
	}

	route := LandingRouteCustomer
	if resp.User.IsAdmin() {
		route = LandingRouteAdmin
	}

	logger.Info("Login succeeded",
		zap.String("username", resp.User.Username),
		zap.String("landing_route", route))

	return &LoginResult{Success: true, LandingRoute: route, User: &resp.User}, nil
}

func (d *Dashboard) signup(ctx context.Context, req models.SignupRequest) (*LoginResult, error) {
	if err := d.Backend.Signup(ctx, req); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			// conflict/validation message passed through from the backend
			return &LoginResult{Success: false, Message: apiErr.Message}, nil
		}
		return nil, err
	}
	return &LoginResult{Success: true}, nil
}

// logout invalidates the server-side session best-effort and clears the
// local one unconditionally.
func (d *Dashboard) logout(ctx context.Context) {
	logger := authLogger()

	if err := d.Backend.Logout(ctx); err != nil {
		logger.Warn("Server-side logout failed, continuing local logout", zap.Error(err))
	}

	if err := d.Sessions.Clear(); err != nil {
		logger.Error("Failed to clear local session", zap.Error(err))
	}

	logger.Info("Logged out")
}

// checkSession evaluates only the local invariants: it never blocks on the
// network, so the route guard can call it on every request. A missing
// session is a normal logged-out state, not an error.
func (d *Dashboard) checkSession() SessionState {
	sess, user, err := d.Sessions.Load()
	if err != nil {
		return SessionState{LoggedIn: false}
	}

	switch err := session.Validate(sess, time.Now()); {
	case errors.Is(err, session.ErrExpired):
		d.Sessions.Clear()
		authLogger().Info("Session expired, cleared")
		return SessionState{LoggedIn: false, Message: msgSessionExpired}
	case errors.Is(err, session.ErrInactive):
		d.Sessions.Clear()
		authLogger().Info("Session inactive, cleared")
		return SessionState{LoggedIn: false, Message: msgSessionInactive}
	}

	return SessionState{LoggedIn: true, User: user}
}

// revalidate asks the backend whether the locally valid session still
// stands. Only an explicit 401 tears the session down; network failures
// are swallowed so a transient outage does not force a logout. On success
// the stored profile fields are refreshed.
func (d *Dashboard) revalidate(ctx context.Context) SessionState {
	state := d.checkSession()
	if !state.LoggedIn {
		return state
	}

	logger := authLogger()

	resp, err := d.Backend.Check(ctx)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			d.Sessions.Clear()
			logger.Info("Backend rejected session, cleared")
			return SessionState{LoggedIn: false, Message: msgSessionExpired}
		}
		logger.Warn("Session re-validation failed, keeping local session", zap.Error(err))
		return state
	}

	if !resp.Valid {
		d.Sessions.Clear()
		logger.Info("Backend reported session invalid, cleared")
		return SessionState{LoggedIn: false, Message: msgSessionExpired}
	}

	if resp.User != nil {
		if err := d.Sessions.UpdateUser(resp.User); err != nil {
			logger.Warn("Failed to refresh stored user profile", zap.Error(err))
		} else {
			state.User = resp.User
		}
	}
	return state
}

// recordActivity refreshes the inactivity clock; fired by the transport
// layer on every authenticated interaction.
func (d *Dashboard) recordActivity() {
	if err := d.Sessions.Touch(); err != nil {
		authLogger().Warn("Failed to record activity", zap.Error(err))
	}
}

type IAuthImpl struct {
	dashboard *Dashboard
}

func (ia *IAuthImpl) Login(ctx context.Context, creds models.Credentials) (*LoginResult, error) {
	return ia.dashboard.login(ctx, creds)
}

func (ia *IAuthImpl) Signup(ctx context.Context, req models.SignupRequest) (*LoginResult, error) {
	return ia.dashboard.signup(ctx, req)
}

func (ia *IAuthImpl) Logout(ctx context.Context) {
	ia.dashboard.logout(ctx)
}

func (ia *IAuthImpl) CheckSession() SessionState {
	return ia.dashboard.checkSession()
}

func (ia *IAuthImpl) Revalidate(ctx context.Context) SessionState {
	return ia.dashboard.revalidate(ctx)
}

func (ia *IAuthImpl) RecordActivity() {
	ia.dashboard.recordActivity()
}

func (d *Dashboard) GetIAuth() IAuth {
	return &IAuthImpl{dashboard: d}
}
