package sessions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pricing-app/internal/domain/plans"
	"pricing-app/internal/domain/pricing"
	"pricing-app/internal/domain/selection"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	catalog := plans.DefaultCatalog()
	h := NewHandler(NewStore(catalog, pricing.NewEngine(catalog)))

	r := gin.New()
	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions/:id", h.GetSession)
	r.PUT("/sessions/:id/tier", h.SelectTier)
	r.PUT("/sessions/:id/seats", h.SetSeats)
	r.DELETE("/sessions/:id", h.DeleteSession)
	return r
}

func do(t *testing.T, r *gin.Engine, method, url, body string) (*httptest.ResponseRecorder, SessionResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var resp SessionResponse
	if w.Code == http.StatusOK || w.Code == http.StatusCreated {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestSessionLifecycle(t *testing.T) {
	r := newRouter(t)

	// Fresh load: defaults.
	w, created := do(t, r, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "pro", created.Tier)
	assert.Equal(t, 1, created.Seats)
	assert.Equal(t, 99, created.Summary.MonthlyPrice)

	// Tier click: scale promotes the seat count to 40.
	w, resp := do(t, r, http.MethodPut, "/sessions/"+created.ID+"/tier", `{"tier":"scale"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "scale", resp.Tier)
	assert.Equal(t, 40, resp.Seats)

	// Slider drop: 12 seats auto-selects team.
	w, resp = do(t, r, http.MethodPut, "/sessions/"+created.ID+"/seats", `{"seats":12}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "team", resp.Tier)
	assert.Equal(t, 12, resp.Seats)

	// Read back agrees.
	w, resp = do(t, r, http.MethodGet, "/sessions/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "team", resp.Tier)
	assert.Equal(t, 12, resp.Seats)

	// Teardown.
	w, _ = do(t, r, http.MethodDelete, "/sessions/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = do(t, r, http.MethodGet, "/sessions/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionSeatClamping(t *testing.T) {
	r := newRouter(t)
	_, created := do(t, r, http.MethodPost, "/sessions", "")

	w, resp := do(t, r, http.MethodPut, "/sessions/"+created.ID+"/seats", `{"seats":500}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 60, resp.Seats)
	assert.Equal(t, "scale", resp.Tier)

	w, resp = do(t, r, http.MethodPut, "/sessions/"+created.ID+"/seats", `{"seats":-1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, resp.Seats)
	assert.Equal(t, "pro", resp.Tier)
}

func TestSessionBadInput(t *testing.T) {
	r := newRouter(t)
	_, created := do(t, r, http.MethodPost, "/sessions", "")

	w, _ := do(t, r, http.MethodPut, "/sessions/"+created.ID+"/tier", `{"tier":"gold"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPut, "/sessions/"+created.ID+"/tier", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPut, "/sessions/"+created.ID+"/seats", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionUnknownID(t *testing.T) {
	r := newRouter(t)

	w, _ := do(t, r, http.MethodGet, "/sessions/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPut, "/sessions/nope/tier", `{"tier":"team"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPut, "/sessions/nope/seats", `{"seats":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/sessions/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStoreIsolatesSessions(t *testing.T) {
	catalog := plans.DefaultCatalog()
	store := NewStore(catalog, pricing.NewEngine(catalog))

	a, _ := store.Create()
	b, _ := store.Create()
	require.NotEqual(t, a, b)

	snap, ok := store.Update(a, func(c *selection.Controller) {
		c.SetSeatCount(40)
	})
	require.True(t, ok)
	assert.Equal(t, plans.TierScale, snap.Tier)

	// The other session is untouched.
	snap, ok = store.Get(b)
	require.True(t, ok)
	assert.Equal(t, plans.TierPro, snap.Tier)
	assert.Equal(t, 1, snap.Seats)
}
