package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/employee-records-api/config"
)

func TestRateLimitAllow(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	cases := []struct {
		name          string
		exemptPrivate bool
		path, remote  string
		want          bool
	}{
		{"health always", false, "/api/health", "203.0.113.1:4000", true},
		{"metrics always", false, "/api/metrics", "203.0.113.1:4000", true},
		{"private counted by default", false, "/api/employees", "10.0.0.7:4000", false},
		{"private exempt when enabled", true, "/api/employees", "10.0.0.7:4000", true},
		{"public counted when enabled", true, "/api/employees", "203.0.113.1:4000", false},
	}
	for _, tc := range cases {
		allow := rateLimitAllow(&config.Config{RateLimitExemptPrivate: tc.exemptPrivate})
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, tc.path, nil)
		c.Request.RemoteAddr = tc.remote
		if got := allow(c); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
