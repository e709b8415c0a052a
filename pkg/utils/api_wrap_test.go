package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("parse: %w", ErrInvalidInput), http.StatusBadRequest},
		{ErrCityNotFound, http.StatusNotFound},
		{fmt.Errorf("overpass: %w", ErrPOIDataUnavailable), http.StatusBadGateway},
		{ErrUpstreamUnavailable, http.StatusBadGateway},
		{ErrProviderNotConfigured, http.StatusServiceUnavailable},
		{ErrDatabaseError, http.StatusInternalServerError},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("trace_id", "trace-1")

		HandleServiceError(c, tc.err)

		assert.Equal(t, tc.code, w.Code, tc.err.Error())

		var body APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, tc.code, body.Code)
		assert.Equal(t, "trace-1", body.TraceID)
	}
}

func TestRespondSuccessWithoutTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, gin.H{"ok": true}, "done")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","code":200,"message":"done","data":{"ok":true}}`, w.Body.String())
}
