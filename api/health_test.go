package api

import (
	"net/http"
	"testing"

	"github.com/roshanpatil2000/web-analytics-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	a := newTestAPI(t)

	// Repeated calls never mutate stored state
	for i := 0; i < 3; i++ {
		w := doJSON(t, a, http.MethodGet, "/api/v1/health", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, true, body["success"])

		status, ok := body["serverStatus"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "OK", status["status"])
		assert.Contains(t, status, "uptime")
		assert.Contains(t, status, "timestamp")

		loadAvg, ok := status["loadAverage"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, loadAvg, "1min")
		assert.Contains(t, loadAvg, "5min")
		assert.Contains(t, loadAvg, "15min")

		memory, ok := status["memory"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, memory, "total")
		assert.Contains(t, memory, "free")
		assert.Contains(t, memory, "used")
	}

	var count int64
	require.NoError(t, a.DB.Model(model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
