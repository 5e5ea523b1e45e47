package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientIPGeneric_DirectRemote(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/v1/products", nil)
	req.RemoteAddr = "203.0.113.5:54321"
	ip := clientIPGeneric(req, nil)
	if ip != "203.0.113.5" {
		t.Fatalf("expected direct remote IP, got %s", ip)
	}
}

func TestClientIPGeneric_TrustedProxyXFF(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/v1/auth/login", nil)
	req.RemoteAddr = "198.51.100.10:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 198.51.100.10")
	// trustedCIDR contains the remote IP
	ip := clientIPGeneric(req, []string{"198.51.100.10"})
	if ip != "203.0.113.7" {
		t.Fatalf("expected X-Forwarded-For first value, got %s", ip)
	}
}

func TestClientIPGeneric_TrustedProxyCIDRRange(t *testing.T) {
	// TRUSTED_PROXIES entries may be CIDR ranges, the usual shape for an
	// ingress subnet in front of the API.
	req := httptest.NewRequest("GET", "http://example.local/v1/alerts/stats", nil)
	req.RemoteAddr = "10.0.3.25:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	ip := clientIPGeneric(req, []string{"10.0.0.0/16"})
	if ip != "203.0.113.9" {
		t.Fatalf("expected X-Forwarded-For via CIDR-trusted proxy, got %s", ip)
	}
}

func TestClientIPGeneric_TrustedProxyXRealIP(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/v1/products", nil)
	req.RemoteAddr = "10.0.3.25:443"
	req.Header.Set("X-Real-IP", "203.0.113.11")
	ip := clientIPGeneric(req, []string{"10.0.0.0/16"})
	if ip != "203.0.113.11" {
		t.Fatalf("expected X-Real-IP via trusted proxy, got %s", ip)
	}
}

func TestClientIPGeneric_UntrustedProxyIgnoresXFF(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/v1/auth/login", nil)
	req.RemoteAddr = "198.51.100.11:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.8, 198.51.100.11")
	ip := clientIPGeneric(req, []string{"198.51.100.10"})
	if ip != "198.51.100.11" {
		t.Fatalf("expected remote IP when proxy untrusted, got %s", ip)
	}
}

func TestIPRateLimiterBlocksOverLimit(t *testing.T) {
	l := NewIPRateLimiter(2, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remote string) int {
		req := httptest.NewRequest("GET", "http://example.local/v1/products", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("203.0.113.20:1000"); code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, code)
		}
	}
	if code := do("203.0.113.20:1000"); code != http.StatusTooManyRequests {
		t.Fatalf("over-limit request: got status %d, want 429", code)
	}
	// a different IP has its own window
	if code := do("203.0.113.21:1000"); code != http.StatusOK {
		t.Fatalf("other IP: got status %d, want 200", code)
	}
}
