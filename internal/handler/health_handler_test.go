package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newHealthRouter(status ServiceStatus) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHealthHandler(status)
	r.GET("/", h.GetRoot)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetRoot(t *testing.T) {
	r := newHealthRouter(ServiceStatus{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, res["status"], "ok")
	assert.Equal(t, res["version"], "1.0.0")
}

func TestGetHealth_ReportsServices(t *testing.T) {
	r := newHealthRouter(ServiceStatus{MarketData: true, News: true, AIAgent: true, History: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, res.Status, "healthy")
	assert.Equal(t, res.Services["market_data"], "available")
	assert.Equal(t, res.Services["ai_agent"], "available")
	assert.Equal(t, res.Services["history"], "unavailable")
}
