package coingecko

import (
	"net/http"
	"regexp"
	"strings"
	"testing"
)

func TestLookupEndpoint(t *testing.T) {
	e, ok := LookupEndpoint(EndpointSimplePrice)
	if !ok {
		t.Fatal("simple_price should be registered")
	}
	if e.Path != "/simple/price" {
		t.Errorf("Path = %q, want /simple/price", e.Path)
	}
	if e.Method != http.MethodGet {
		t.Errorf("Method = %q, want GET", e.Method)
	}

	if _, ok := LookupEndpoint("nonexistent"); ok {
		t.Error("lookup of unregistered name should fail")
	}
}

func TestEndpointAllows(t *testing.T) {
	e, _ := LookupEndpoint(EndpointCoinsMarkets)

	if !e.allows("vs_currency") {
		t.Error("required param should be allowed")
	}
	if !e.allows("per_page") {
		t.Error("optional param should be allowed")
	}
	if e.allows("bogus") {
		t.Error("unknown param should not be allowed")
	}
}

// TestEndpointTableIntegrity checks invariants every descriptor must hold
func TestEndpointTableIntegrity(t *testing.T) {
	placeholderRe := regexp.MustCompile(`\{([^}]+)\}`)

	for _, name := range Endpoints() {
		e, _ := LookupEndpoint(name)

		t.Run(name, func(t *testing.T) {
			if e.Name != name {
				t.Errorf("descriptor name %q does not match table key %q", e.Name, name)
			}
			if !strings.HasPrefix(e.Path, "/") {
				t.Errorf("path %q must start with /", e.Path)
			}
			if e.Method != http.MethodGet {
				t.Errorf("unexpected verb %q, every registered route is GET", e.Method)
			}

			// Every path placeholder must be backed by a required parameter
			for _, match := range placeholderRe.FindAllStringSubmatch(e.Path, -1) {
				found := false
				for _, p := range e.Required {
					if p == match[1] {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("placeholder %q has no matching required parameter", match[1])
				}
			}

			// Parameter names must not overlap between required and optional
			for _, req := range e.Required {
				for _, opt := range e.Optional {
					if req == opt {
						t.Errorf("parameter %q listed as both required and optional", req)
					}
				}
			}
		})
	}
}
