package lib_test

import (
	"net/http/httptest"
	"testing"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwarded-for takes precedence",
			forwarded:  "203.0.113.7",
			realIP:     "198.51.100.2",
			remoteAddr: "10.0.0.1:443",
			want:       "203.0.113.7",
		},
		{
			name:       "first hop of forwarded chain",
			forwarded:  "203.0.113.7, 198.51.100.2, 10.0.0.1",
			remoteAddr: "10.0.0.1:443",
			want:       "203.0.113.7",
		},
		{
			name:       "real-ip fallback",
			realIP:     "198.51.100.2",
			remoteAddr: "10.0.0.1:443",
			want:       "198.51.100.2",
		},
		{
			name:       "remote addr without headers",
			remoteAddr: "10.0.0.1:443",
			want:       "10.0.0.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "10.0.0.1",
			want:       "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, lib.ClientIP(r))
		})
	}
}
