package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/t", handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/t", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestOK(t *testing.T) {
	w := perform(func(c *gin.Context) {
		OK(c, gin.H{"value": 42})
	})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["value"] != float64(42) {
		t.Errorf("value = %v, expected 42", body["value"])
	}
}

func TestErrorShapes(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		status  int
		message string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "missing field") }, 400, "missing field"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "Unauthorized") }, 401, "Unauthorized"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "Access denied") }, 403, "Access denied"},
		{"not found", func(c *gin.Context) { NotFound(c, "Endpoint not found") }, 404, "Endpoint not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(tt.handler)

			if w.Code != tt.status {
				t.Errorf("status = %d, expected %d", w.Code, tt.status)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if body["error"] != tt.message {
				t.Errorf("error = %q, expected %q", body["error"], tt.message)
			}
		})
	}
}

func TestInternalError_HidesDetail(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	w := perform(func(c *gin.Context) {
		InternalError(c, errors.New("sql: connection refused"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected 500", w.Code)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "Internal server error" {
		t.Errorf("error = %q, internal detail must not leak in release mode", body["error"])
	}
}

func TestInternalError_DebugModeShowsDetail(t *testing.T) {
	gin.SetMode(gin.DebugMode)
	defer gin.SetMode(gin.TestMode)

	w := perform(func(c *gin.Context) {
		InternalError(c, errors.New("boom"))
	})

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "boom" {
		t.Errorf("error = %q, expected raw message in debug mode", body["error"])
	}
}
