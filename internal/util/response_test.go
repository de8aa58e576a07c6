package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFromErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{ErrUserNotFound, http.StatusNotFound},
		{ErrQuestionNotFound, http.StatusNotFound},
		{ErrCompanyNotFound, http.StatusNotFound},
		{ErrNoDiagnosis, http.StatusNotFound},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrUsernameTaken, http.StatusConflict},
		{ErrCompanyNameTaken, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrAccountLocked, http.StatusTooManyRequests},
		{ErrInvalidRole, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			FromError(c, tt.err)
			if w.Code != tt.want {
				t.Errorf("FromError(%v) wrote status %d, want %d", tt.err, w.Code, tt.want)
			}
		})
	}
}
