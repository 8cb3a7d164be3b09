package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		level   string
		wantErr bool
	}{
		{"prod", "prod", "", false},
		{"dev", "dev", "", false},
		{"local with level", "local", "debug", false},
		{"unknown env", "staging", "", true},
		{"bad level", "prod", "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.env, tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger(%q, %q) error = %v, wantErr %v", tt.env, tt.level, err, tt.wantErr)
			}
			if err == nil && logger == nil {
				t.Error("NewLogger() returned nil logger")
			}
		})
	}
}

func TestSendJSONAndError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		send       func(c *gin.Context)
		wantCode   int
		wantStatus string
		wantMsg    string
	}{
		{
			name:       "success",
			send:       func(c *gin.Context) { SendJSON(c, http.StatusOK, "done", []int{1}) },
			wantCode:   http.StatusOK,
			wantStatus: "success",
			wantMsg:    "done",
		},
		{
			name:       "error",
			send:       func(c *gin.Context) { SendError(c, http.StatusNotFound, errors.New("movie not found")) },
			wantCode:   http.StatusNotFound,
			wantStatus: "error",
			wantMsg:    "movie not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.send(c)

			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			var resp JSONResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if resp.Status != tt.wantStatus || resp.Message != tt.wantMsg {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}
