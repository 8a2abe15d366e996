package dashboard

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaview.xyz/water-quality-dashboard/pkg/models"
	"aquaview.xyz/water-quality-dashboard/pkg/session"
)

func TestLoginStoresSessionAndRoutesAdmin(t *testing.T) {
	d, _ := newTestDashboard(t, loginHandler(models.UserTypeAdmin))

	before := time.Now()
	result, err := d.Auth.Login(context.Background(), models.Credentials{Username: "carol", Password: "pw"})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, LandingRouteAdmin, result.LandingRoute)

	sess, user, err := d.Sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "test-token", sess.Token)
	assert.Equal(t, "carol", user.Username)
	assert.WithinDuration(t, before.Add(session.Duration), sess.ExpiresAt, 2*time.Second)
}

func TestLoginRoutesCustomerHome(t *testing.T) {
	d, _ := newTestDashboard(t, loginHandler(models.UserTypeCustomer))

	result, err := d.Auth.Login(context.Background(), models.Credentials{Username: "carol", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, LandingRouteCustomer, result.LandingRoute)
}

func TestLoginInvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid credentials"}`))
	})
	d, _ := newTestDashboard(t, mux)

	result, err := d.Auth.Login(context.Background(), models.Credentials{Username: "carol", Password: "nope"})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Message)

	_, _, loadErr := d.Sessions.Load()
	assert.ErrorIs(t, loadErr, session.ErrNotFound)
}

func TestLogoutClearsLocallyEvenWhenServerFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	d, _ := newTestDashboard(t, mux)

	_, err := d.Sessions.Save("token", &models.User{Username: "carol"})
	require.NoError(t, err)

	d.Auth.Logout(context.Background())

	_, _, loadErr := d.Sessions.Load()
	assert.ErrorIs(t, loadErr, session.ErrNotFound)
}

func TestCheckSessionMissingIsLoggedOutWithoutMessage(t *testing.T) {
	d, _ := newTestDashboard(t, http.NewServeMux())

	state := d.Auth.CheckSession()
	assert.False(t, state.LoggedIn)
	assert.Empty(t, state.Message)
}

func TestCheckSessionExpired(t *testing.T) {
	d, _ := newTestDashboard(t, http.NewServeMux())

	_, err := d.Sessions.Save("token", &models.User{Username: "carol"})
	require.NoError(t, err)
	require.NoError(t, d.Store.Conn.Model(&models.Session{}).
		Where("1 = 1").
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	state := d.Auth.CheckSession()
	assert.False(t, state.LoggedIn)
	assert.Equal(t, msgSessionExpired, state.Message)

	_, _, loadErr := d.Sessions.Load()
	assert.ErrorIs(t, loadErr, session.ErrNotFound, "expired session must be cleared")
}

func TestCheckSessionInactive(t *testing.T) {
	d, _ := newTestDashboard(t, http.NewServeMux())

	_, err := d.Sessions.Save("token", &models.User{Username: "carol"})
	require.NoError(t, err)
	require.NoError(t, d.Store.Conn.Model(&models.Session{}).
		Where("1 = 1").
		Update("last_activity", time.Now().Add(-session.InactivityTimeout-time.Minute)).Error)

	state := d.Auth.CheckSession()
	assert.False(t, state.LoggedIn)
	assert.Equal(t, msgSessionInactive, state.Message)
}

func TestRevalidateKeepsSessionOnNetworkError(t *testing.T) {
	// backend has no /check route; the 404 is an APIError, not a 401
	mux := http.NewServeMux()
	d, _ := newTestDashboard(t, mux)

	_, err := d.Sessions.Save("token", &models.User{Username: "carol"})
	require.NoError(t, err)

	state := d.Auth.Revalidate(context.Background())
	assert.True(t, state.LoggedIn, "transient failures must not force logout")

	_, _, loadErr := d.Sessions.Load()
	assert.NoError(t, loadErr)
}

func TestRevalidateClearsOn401(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/check", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	d, _ := newTestDashboard(t, mux)

	_, err := d.Sessions.Save("token", &models.User{Username: "carol"})
	require.NoError(t, err)

	state := d.Auth.Revalidate(context.Background())
	assert.False(t, state.LoggedIn)
	assert.Equal(t, msgSessionExpired, state.Message)

	_, _, loadErr := d.Sessions.Load()
	assert.ErrorIs(t, loadErr, session.ErrNotFound)
}

func TestRevalidateRefreshesProfileFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/check", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"valid": true, "user": {
			"id": 1, "username": "carol", "firstname": "Caroline",
			"user_type": "admin"}}`))
	})
	d, _ := newTestDashboard(t, mux)

	_, err := d.Sessions.Save("token", &models.User{ID: 1, Username: "carol", Firstname: "Carol"})
	require.NoError(t, err)

	state := d.Auth.Revalidate(context.Background())
	require.True(t, state.LoggedIn)
	assert.Equal(t, "Caroline", state.User.Firstname)

	_, stored, err := d.Sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "Caroline", stored.Firstname)
	assert.True(t, stored.IsAdmin())
}

func TestRecordActivityRefreshesInactivityClock(t *testing.T) {
	d, _ := newTestDashboard(t, http.NewServeMux())

	_, err := d.Sessions.Save("token", &models.User{Username: "carol"})
	require.NoError(t, err)
	require.NoError(t, d.Store.Conn.Model(&models.Session{}).
		Where("1 = 1").
		Update("last_activity", time.Now().Add(-20*time.Minute)).Error)

	d.Auth.RecordActivity()

	sess, _, err := d.Sessions.Load()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), sess.LastActivity, 2*time.Second)
}
