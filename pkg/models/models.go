package models

import "time"

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeAdmin    UserType = "admin"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User mirrors the profile object returned by the backend on login and
// on session re-validation.
type User struct {
	ID        int      `json:"id"`
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	UserType  UserType `json:"user_type"`
}

func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// Session is the locally persisted proof of authentication. A session is
// valid when the expiry has not passed and the holder has been active
// within the inactivity window.
type Session struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Token        string `json:"token"`
	UserJSON     string `json:"-"`
	ExpiresAt    time.Time
	LastActivity time.Time
}

// ThemePreference is the single persisted light/dark choice.
type ThemePreference struct {
	ID    uint  `gorm:"primaryKey"`
	Theme Theme `gorm:"type:varchar(10)"`
}

// Reading is one sensor measurement record as served by the backend.
// Date is YYYY-MM-DD and Time is HH:mm:ss, both zero padded.
type Reading struct {
	ID          int     `json:"id"`
	Location    string  `json:"location"`
	PhValue     float64 `json:"ph_value"`
	Temperature float64 `json:"temperature"`
	Turbidity   float64 `json:"turbidity"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
}

// ReadingInput is the payload for admin create/update calls; the backend
// assigns id, date and time on create.
type ReadingInput struct {
	Location    string  `json:"location"`
	PhValue     float64 `json:"ph_value"`
	Temperature float64 `json:"temperature"`
	Turbidity   float64 `json:"turbidity"`
}

type ParameterExtreme struct {
	Value    float64 `json:"value"`
	Location string  `json:"location"`
}

type ParameterSummary struct {
	Highest []ParameterExtreme `json:"highest"`
	Lowest  []ParameterExtreme `json:"lowest"`
}

// SummaryInsights maps parameter name (ph_value, temperature, turbidity)
// to its 24h extremes.
type SummaryInsights map[string]ParameterSummary

type Warning struct {
	Parameter string   `json:"parameter"`
	Locations []string `json:"locations"`
	Message   string   `json:"message"`
}

// CorrelationData holds paired arrays for the scatter plots; index i of
// each slice belongs to the same underlying reading.
type CorrelationData struct {
	Temperature []float64 `json:"temperature"`
	Turbidity   []float64 `json:"turbidity"`
	PhValue     []float64 `json:"ph_value"`
}

// GraphPoint is one (date, daily average) pair of a location's series.
type GraphPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CheckResponse struct {
	Valid bool  `json:"valid"`
	User  *User `json:"user"`
}
