package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aquaview.xyz/water-quality-dashboard/pkg/backend"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
	"aquaview.xyz/water-quality-dashboard/pkg/session"
	"aquaview.xyz/water-quality-dashboard/pkg/store"
	_ "aquaview.xyz/water-quality-dashboard/pkg/testing"
)

// newTestDashboard wires a real core over an in-memory store and a fake
// backend. The previous test's session is cleared so tests stay
// independent despite the shared sqlite singleton.
func newTestDashboard(t *testing.T, backendHandler http.Handler) (*Dashboard, *httptest.Server) {
	t.Helper()
	common.SetTestLoggerNop()

	server := httptest.NewServer(backendHandler)
	t.Cleanup(server.Close)

	local := store.GetInstance(store.UseMemorySqliteDialector())
	sessions := session.NewStore(local)
	require.NoError(t, sessions.Clear())
	require.NoError(t, local.Conn.Where("1 = 1").Delete(&models.ThemePreference{}).Error)

	client := backend.NewClient(server.URL, sessions)
	client.RetryDelay = time.Millisecond

	return New(local, client, sessions), server
}

func loginHandler(userType models.UserType) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "test-token", "user": {
			"id": 1, "firstname": "Carol", "lastname": "Rivers",
			"username": "carol", "email": "carol@example.com",
			"user_type": "` + string(userType) + `"}}`))
	})
	return mux
}
