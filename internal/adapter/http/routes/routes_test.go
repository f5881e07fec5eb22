package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seguro_xpto/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Port:                 8080,
		StorageBackend:       config.StorageMemory,
		DefaultPenaltyPolicy: "flat",
		ReminderHorizonDays:  7,
	}
	r, err := NewRouter(context.Background(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	return r
}

func call(t *testing.T, r http.Handler, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	code, body := call(t, r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"pong"}`, string(body))
}

func TestRouter_EndToEnd(t *testing.T) {
	r := newTestRouter(t)

	code, _ := call(t, r, http.MethodPost, "/v1/products", `{"code":"BAS01","name":"Basic Health","premium":15000}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = call(t, r, http.MethodPost, "/v1/products", `{"code":"BAS01","name":"Again","premium":1}`)
	require.Equal(t, http.StatusConflict, code)

	code, body := call(t, r, http.MethodPatch, "/v1/products/BAS01", `{"premium":16000}`)
	require.Equal(t, http.StatusOK, code)
	var product map[string]any
	require.NoError(t, json.Unmarshal(body, &product))
	assert.Equal(t, "16000.00", product["premium"])
	assert.NotNil(t, product["updated_at"])

	code, _ = call(t, r, http.MethodPost, "/v1/policyholders", `{"policy_id":"PH1001","full_name":"Adaeze Okoye","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = call(t, r, http.MethodPost, "/v1/policyholders/PH1001/products", `{"product_code":"BAS01","start_date":"2024-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodPatch, "/v1/policyholders/PH1001/suspend", "")
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, r, http.MethodPost, "/v1/policyholders/PH1001/products", `{"product_code":"FAM10"}`)
	require.Equal(t, http.StatusForbidden, code)

	code, body = call(t, r, http.MethodPost, "/v1/payments", `{"policy_id":"PH1001","product_code":"BAS01","amount":15000,"due_date":"2024-01-01T00:00:00Z","paid_at":"2024-01-11T00:00:00Z","penalty_policy":"percent"}`)
	require.Equal(t, http.StatusCreated, code)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, "750.00", rec["penalty_applied"])
	assert.Equal(t, float64(10), rec["days_late"])

	code, _ = call(t, r, http.MethodPost, "/v1/payments", `{"policy_id":"PH1001","product_code":"BAS01","amount":0,"due_date":"2024-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, body = call(t, r, http.MethodGet, "/v1/payments/overdue", "")
	require.Equal(t, http.StatusOK, code)
	var overdue []map[string]any
	require.NoError(t, json.Unmarshal(body, &overdue))
	require.Len(t, overdue, 1)
	assert.Equal(t, "PH1001", overdue[0]["policy_id"])

	code, body = call(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, strings.Contains(string(body), `seguro_penalties_applied_total{policy="percent"} 1`))
}
