package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MAX_REDIRECT_HOPS", "MIN_BODY_LENGTH", "WRITE_TIMEOUT", "UPSTREAM_TIMEOUT", "UTLS_DOMAINS", "GLOBAL_PROXIES", "GLOBAL_PROXY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.MaxRedirectHops != 5 {
		t.Errorf("MaxRedirectHops = %d, want 5", cfg.MaxRedirectHops)
	}
	if cfg.MinBodyLength != 1000 {
		t.Errorf("MinBodyLength = %d, want 1000", cfg.MinBodyLength)
	}
	if cfg.WriteTimeout != 0 {
		t.Errorf("WriteTimeout = %v, want 0", cfg.WriteTimeout)
	}
	if cfg.UpstreamTimeout != 0 {
		t.Errorf("UpstreamTimeout = %v, want 0", cfg.UpstreamTimeout)
	}
	if len(cfg.UTLSDomains) != 1 || cfg.UTLSDomains[0] != "tiktok.com" {
		t.Errorf("UTLSDomains = %v, want [tiktok.com]", cfg.UTLSDomains)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_REDIRECT_HOPS", "3")
	t.Setenv("UPSTREAM_TIMEOUT", "5")
	t.Setenv("FLARESOLVERR_TIMEOUT", "90s")
	t.Setenv("GLOBAL_PROXIES", "")
	t.Setenv("GLOBAL_PROXY", "socks5://127.0.0.1:1080")

	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.MaxRedirectHops != 3 {
		t.Errorf("MaxRedirectHops = %d, want 3", cfg.MaxRedirectHops)
	}
	if cfg.UpstreamTimeout != 5*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 5s", cfg.UpstreamTimeout)
	}
	if cfg.FlareSolverrTimeout != 90*time.Second {
		t.Errorf("FlareSolverrTimeout = %v, want 90s", cfg.FlareSolverrTimeout)
	}
	if len(cfg.GlobalProxies) != 1 || cfg.GlobalProxies[0] != "socks5://127.0.0.1:1080" {
		t.Errorf("GlobalProxies = %v", cfg.GlobalProxies)
	}
}

func TestParseTransportRoutes(t *testing.T) {
	routes := parseTransportRoutes("{URL=fbcdn.net, PROXY=socks5://p:1080}, {URL=twimg.com, DIRECT=true, DISABLE_SSL=true}")

	if len(routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(routes))
	}
	if routes[0].URLPattern != "fbcdn.net" || routes[0].Proxy != "socks5://p:1080" {
		t.Errorf("route 0 = %+v", routes[0])
	}
	if routes[1].URLPattern != "twimg.com" || !routes[1].Direct || !routes[1].DisableSSL {
		t.Errorf("route 1 = %+v", routes[1])
	}
	if parseTransportRoutes("") != nil {
		t.Error("empty input should yield nil")
	}
}
