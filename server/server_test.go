package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemroute/routing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouteEndpoint(t *testing.T) {
	r := New(routing.NewEngine())

	w := doJSON(t, r, http.MethodPost, "/route", map[string]interface{}{
		"start":   map[string]float64{"x": 0, "y": 0},
		"end":     map[string]float64{"x": 100, "y": 50},
		"options": map[string]interface{}{"avoidObstacles": true},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res routing.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Segments, 2)
	assert.Equal(t, 150.0, res.TotalLength)
	assert.Equal(t, 1, res.BendCount)
	assert.Equal(t, 1.0, res.Quality)
}

func TestRouteEndpointBadPayload(t *testing.T) {
	r := New(routing.NewEngine())

	req := httptest.NewRequest(http.MethodPost, "/route", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestObstacleLifecycle(t *testing.T) {
	engine := routing.NewEngine()
	r := New(engine)

	// Create.
	w := doJSON(t, r, http.MethodPost, "/obstacles", map[string]interface{}{
		"id":     "u1",
		"bounds": map[string]float64{"x": 40, "y": -30, "width": 20, "height": 60},
		"type":   "component",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Routing around it detours.
	w = doJSON(t, r, http.MethodPost, "/route", map[string]interface{}{
		"start":   map[string]float64{"x": 0, "y": 0},
		"end":     map[string]float64{"x": 100, "y": 0},
		"options": map[string]interface{}{"avoidObstacles": true},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var res routing.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Greater(t, res.TotalLength, 100.0)
	assert.Contains(t, res.Obstacles, "u1")

	// Update.
	w = doJSON(t, r, http.MethodPut, "/obstacles/u1", map[string]interface{}{
		"priority": 9,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// List.
	w = doJSON(t, r, http.MethodGet, "/obstacles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"u1"`)

	// Delete, then the straight route returns.
	w = doJSON(t, r, http.MethodDelete, "/obstacles/u1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodPost, "/route", map[string]interface{}{
		"start":   map[string]float64{"x": 0, "y": 0},
		"end":     map[string]float64{"x": 100, "y": 0},
		"options": map[string]interface{}{"avoidObstacles": true},
	})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 100.0, res.TotalLength)
}

func TestObstacleCreateWithoutID(t *testing.T) {
	r := New(routing.NewEngine())
	w := doJSON(t, r, http.MethodPost, "/obstacles", map[string]interface{}{
		"bounds": map[string]float64{"x": 0, "y": 0, "width": 10, "height": 10},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestObstacleUpdateUnknownID(t *testing.T) {
	r := New(routing.NewEngine())

	w := doJSON(t, r, http.MethodPut, "/obstacles/ghost", map[string]interface{}{"priority": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/obstacles/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConstraintsRoundTrip(t *testing.T) {
	r := New(routing.NewEngine())

	w := doJSON(t, r, http.MethodGet, "/constraints", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var c routing.Constraints
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Equal(t, 5.0, c.AvoidanceMargin)

	w = doJSON(t, r, http.MethodPut, "/constraints", map[string]interface{}{
		"avoidanceMargin": 12,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Equal(t, 12.0, c.AvoidanceMargin)
	assert.Equal(t, 4, c.MaxBendCount, "unpatched fields must survive")
}

func TestClearObstacles(t *testing.T) {
	engine := routing.NewEngine()
	r := New(engine)

	doJSON(t, r, http.MethodPost, "/obstacles", map[string]interface{}{
		"id": "a", "bounds": map[string]float64{"width": 10, "height": 10},
	})
	doJSON(t, r, http.MethodPost, "/obstacles", map[string]interface{}{
		"id": "b", "bounds": map[string]float64{"width": 10, "height": 10},
	})
	require.Equal(t, 2, engine.Registry().Len())

	w := doJSON(t, r, http.MethodDelete, "/obstacles", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, engine.Registry().Len())
}
