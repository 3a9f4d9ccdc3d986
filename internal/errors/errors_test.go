package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestResponders(t *testing.T) {
	tests := []struct {
		name    string
		respond func(c *gin.Context)
		status  int
		code    string
		message string
	}{
		{"not found default", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, ErrCodeNotFound, "Resource not found"},
		{"not found", func(c *gin.Context) { NotFound(c, "Organization not found") }, http.StatusNotFound, ErrCodeNotFound, "Organization not found"},
		{"bad request", func(c *gin.Context) { BadRequest(c, "Invalid status provided") }, http.StatusBadRequest, ErrCodeInvalidInput, "Invalid status provided"},
		{"invalid format", func(c *gin.Context) { InvalidFormat(c, "Invalid id") }, http.StatusBadRequest, ErrCodeInvalidFormat, "Invalid id"},
		{"conflict default", func(c *gin.Context) { Conflict(c, "") }, http.StatusConflict, ErrCodeConflict, "Resource conflict"},
		{"internal", func(c *gin.Context) { InternalError(c, "") }, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.respond(c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, tt.message, body["message"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestMissingFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	MissingFields(c, "User name and role are required", []string{"userName", "role"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, ErrCodeMissingField, body["code"])
	assert.Equal(t, map[string]interface{}{"fields": []interface{}{"userName", "role"}}, body["details"])
}
