package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, remote: "1.1.1.1:80", want: "10.0.0.1"},
		{name: "single forwarded hop", headers: map[string]string{"X-Forwarded-For": " 10.0.0.9 "}, want: "10.0.0.9"},
		{name: "real ip header", headers: map[string]string{"X-Real-IP": "172.16.0.4"}, remote: "1.1.1.1:80", want: "172.16.0.4"},
		{name: "ipv4 peer", remote: "192.168.1.7:5555", want: "192.168.1.7"},
		{name: "ipv6 peer", remote: "[::1]:5555", want: "::1"},
		{name: "peer without port", remote: "192.168.1.7", want: "192.168.1.7"},
		{name: "no peer", remote: "", want: "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(req))
		})
	}
}

func TestClientMetadata(t *testing.T) {
	var ip, ua string
	h := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip = GetClientIP(r.Context())
		ua = GetUserAgent(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:9000"
	req.Header.Set("User-Agent", "dashboard-web/1.0")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "10.1.2.3", ip)
	assert.Equal(t, "dashboard-web/1.0", ua)
}
