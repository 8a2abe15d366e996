package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
	_ "aquaview.xyz/water-quality-dashboard/pkg/testing"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(server *httptest.Server, token string) *Client {
	c := NewClient(server.URL, staticTokens(token))
	c.RetryDelay = time.Millisecond
	return c
}

func TestBearerTokenAttached(t *testing.T) {
	common.SetTestLoggerNop()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(server, "token-123")
	_, err := c.RecentData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestNoBearerWhenLoggedOut(t *testing.T) {
	common.SetTestLoggerNop()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"token":"t","user":{"id":1,"username":"u","user_type":"customer"}}`))
	}))
	defer server.Close()

	c := newTestClient(server, "")
	_, err := c.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedFiresHookOnce(t *testing.T) {
	common.SetTestLoggerNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := newTestClient(server, "stale-token")
	var hookCalls int32
	c.OnUnauthorized = func() { atomic.AddInt32(&hookCalls, 1) }

	_, err := c.RecentData(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	// retry helper must not re-attempt a dead session
	assert.EqualValues(t, 1, atomic.LoadInt32(&hookCalls))
}

func TestLoginFailureDoesNotFireHook(t *testing.T) {
	common.SetTestLoggerNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	c := newTestClient(server, "")
	hookCalled := false
	c.OnUnauthorized = func() { hookCalled = true }

	_, err := c.Login(context.Background(), models.Credentials{Username: "u", Password: "wrong"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.False(t, hookCalled)
}

func TestRetryOnIdempotentReads(t *testing.T) {
	common.SetTestLoggerNop()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"parameter":"ph_value","locations":["US"],"message":"Ph Value out of safe limits in: US"}]`))
	}))
	defer server.Close()

	c := newTestClient(server, "token")
	warnings, err := c.Warnings(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	require.Len(t, warnings, 1)
	assert.Equal(t, "ph_value", warnings[0].Parameter)
}

func TestNoRetryOnMutatingCalls(t *testing.T) {
	common.SetTestLoggerNop()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal Server Error"}`))
	}))
	defer server.Close()

	c := newTestClient(server, "token")
	err := c.CreateData(context.Background(), models.ReadingInput{Location: "US", PhValue: 7.1})
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestNoRetryOnAdminAllData(t *testing.T) {
	common.SetTestLoggerNop()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server, "token")
	_, err := c.AllData(context.Background())
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestNetworkErrorWrapped(t *testing.T) {
	common.SetTestLoggerNop()

	c := NewClient("http://127.0.0.1:1", staticTokens(""))
	c.RetryAttempts = 1
	c.HTTPClient.Timeout = 200 * time.Millisecond

	_, err := c.Warnings(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestQueryParametersSent(t *testing.T) {
	common.SetTestLoggerNop()

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(server, "token")
	_, err := c.CompareGraphData(context.Background(), "2025-01-01", "2025-01-31",
		[]string{"Amsterdam", "Oslo"}, "temperature")
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "startDate=2025-01-01")
	assert.Contains(t, gotQuery, "locations=Amsterdam%2COslo")
	assert.Contains(t, gotQuery, "dataType=temperature")
}
