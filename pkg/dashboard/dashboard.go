package dashboard

import (
	"context"

	"go.uber.org/zap"
	"aquaview.xyz/water-quality-dashboard/pkg/backend"
	"aquaview.xyz/water-quality-dashboard/pkg/chart"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
	"aquaview.xyz/water-quality-dashboard/pkg/session"
	"aquaview.xyz/water-quality-dashboard/pkg/store"
)

// LoginResult is what the login screen renders: either a landing route or
// a message.
type LoginResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	LandingRoute string `json:"landing_route,omitempty"`
	User         *models.User `json:"user,omitempty"`
}

// SessionState is the local view of authentication used by the route
// guard. Message carries the "why" when a session was torn down.
type SessionState struct {
	LoggedIn bool         `json:"logged_in"`
	User     *models.User `json:"user,omitempty"`
	Message  string       `json:"message,omitempty"`
}

// CorrelationCharts are the two scatter plots of the home screen.
type CorrelationCharts struct {
	TemperatureVsPh []chart.ScatterPoint `json:"temperature_vs_ph"`
	TurbidityVsPh   []chart.ScatterPoint `json:"turbidity_vs_ph"`
}

type IAuth interface {
	Login(ctx context.Context, creds models.Credentials) (*LoginResult, error)
	Signup(ctx context.Context, req models.SignupRequest) (*LoginResult, error)
	Logout(ctx context.Context)
	CheckSession() SessionState
	Revalidate(ctx context.Context) SessionState
	RecordActivity()
}

type IData interface {
	Summary(ctx context.Context) (models.SummaryInsights, error)
	Warnings(ctx context.Context) ([]models.Warning, error)
	Recent(ctx context.Context, sortField string, ascending bool) ([]models.Reading, error)
	Correlation(ctx context.Context, location string) (*CorrelationCharts, error)
	AllReadings(ctx context.Context) ([]models.Reading, error)
	CreateReading(ctx context.Context, input models.ReadingInput) ([]models.Reading, error)
	UpdateReading(ctx context.Context, id int, input models.ReadingInput) ([]models.Reading, error)
	DeleteReading(ctx context.Context, id int) ([]models.Reading, error)
}

type ICharts interface {
	Series(ctx context.Context, startDate, endDate, location, dataType string) ([]models.GraphPoint, error)
	Comparison(ctx context.Context, startDate, endDate string, locations []string, dataType string) (*chart.ComparisonChart, error)
}

type ITheme interface {
	Current() models.Theme
	Set(theme models.Theme) error
	Toggle() (models.Theme, error)
}

// Dashboard is the application core: the local store, the backend client
// and the services built over them.
type Dashboard struct {
	Store    *store.Store
	Backend  *backend.Client
	Sessions *session.Store

	DefaultTheme models.Theme

	Auth   IAuth
	Data   IData
	Charts ICharts
	Theme  ITheme
	Users  IUsers
}

type ServiceOpts struct {
	Auth   IAuth
	Data   IData
	Charts ICharts
	Theme  ITheme
	Users  IUsers
}

func (d *Dashboard) WithServices(opts ServiceOpts) *Dashboard {
	if opts.Auth != nil {
		d.Auth = opts.Auth
	}
	if opts.Data != nil {
		d.Data = opts.Data
	}
	if opts.Charts != nil {
		d.Charts = opts.Charts
	}
	if opts.Theme != nil {
		d.Theme = opts.Theme
	}
	if opts.Users != nil {
		d.Users = opts.Users
	}
	return d
}

// New builds a core with the default service implementations and makes
// the auth side the single authority for session teardown: the backend
// client only reports a 401, the registered hook clears.
func New(local *store.Store, client *backend.Client, sessions *session.Store) *Dashboard {
	d := &Dashboard{
		Store:    local,
		Backend:  client,
		Sessions: sessions,
	}
	client.OnUnauthorized = func() {
		if err := d.Sessions.Clear(); err != nil {
			authLogger().Error("Failed to clear session after 401", zap.Error(err))
		}
	}
	d.WithServices(ServiceOpts{
		Auth:   d.GetIAuth(),
		Data:   d.GetIData(),
		Charts: d.GetICharts(),
		Theme:  d.GetITheme(),
		Users:  d.GetIUsers(),
	})
	return d
}
