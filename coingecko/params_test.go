package coingecko

import (
	"errors"
	"testing"
)

func TestSerializeParamValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		want     string
		wantSent bool
	}{
		{name: "string", value: "usd", want: "usd", wantSent: true},
		{name: "empty string omitted", value: "", wantSent: false},
		{name: "nil omitted", value: nil, wantSent: false},
		{name: "bool true", value: true, want: "true", wantSent: true},
		{name: "bool false", value: false, want: "false", wantSent: true},
		{name: "int", value: 250, want: "250", wantSent: true},
		{name: "int64", value: int64(1392577232), want: "1392577232", wantSent: true},
		{name: "float", value: 2.5, want: "2.5", wantSent: true},
		{name: "float without fraction", value: 30.0, want: "30", wantSent: true},
		{name: "list comma-joined order preserving", value: []string{"bitcoin", "ethereum"}, want: "bitcoin,ethereum", wantSent: true},
		{name: "single element list", value: []string{"bitcoin"}, want: "bitcoin", wantSent: true},
		{name: "empty list omitted", value: []string{}, wantSent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, sent := serializeParamValue(tt.value)
			if sent != tt.wantSent {
				t.Fatalf("serializeParamValue(%v) sent = %v, want %v", tt.value, sent, tt.wantSent)
			}
			if sent && got != tt.want {
				t.Errorf("serializeParamValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// Serialization of list values must be idempotent: serializing the same
// slice twice yields the same literal string
func TestSerializeParamValue_Idempotent(t *testing.T) {
	ids := []string{"bitcoin", "ethereum", "solana"}

	first, _ := serializeParamValue(ids)
	second, _ := serializeParamValue(ids)

	if first != second || first != "bitcoin,ethereum,solana" {
		t.Errorf("serialization not stable: %q vs %q", first, second)
	}
}

func TestResolveParams(t *testing.T) {
	simplePrice, _ := LookupEndpoint(EndpointSimplePrice)
	coinByID, _ := LookupEndpoint(EndpointCoinByID)
	coinContract, _ := LookupEndpoint(EndpointCoinContract)

	t.Run("valid params", func(t *testing.T) {
		path, query, err := resolveParams(simplePrice, Params{
			"ids":           []string{"bitcoin", "ethereum"},
			"vs_currencies": []string{"usd"},
		})
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if path != "/simple/price" {
			t.Errorf("path = %q, want /simple/price", path)
		}
		if query["ids"] != "bitcoin,ethereum" {
			t.Errorf("ids = %q, want bitcoin,ethereum", query["ids"])
		}
		if query["vs_currencies"] != "usd" {
			t.Errorf("vs_currencies = %q, want usd", query["vs_currencies"])
		}
	})

	t.Run("unknown param rejected", func(t *testing.T) {
		_, _, err := resolveParams(simplePrice, Params{
			"ids":           []string{"bitcoin"},
			"vs_currencies": []string{"usd"},
			"bogus":         "value",
		})

		var paramErr *InvalidParameterError
		if !errors.As(err, &paramErr) {
			t.Fatalf("expected InvalidParameterError, got %v", err)
		}
		if paramErr.Name != "bogus" {
			t.Errorf("offending param = %q, want bogus", paramErr.Name)
		}
	})

	t.Run("missing required rejected", func(t *testing.T) {
		_, _, err := resolveParams(simplePrice, Params{
			"ids": []string{"bitcoin"},
		})

		var paramErr *InvalidParameterError
		if !errors.As(err, &paramErr) {
			t.Fatalf("expected InvalidParameterError, got %v", err)
		}
		if paramErr.Name != "vs_currencies" {
			t.Errorf("missing param = %q, want vs_currencies", paramErr.Name)
		}
	})

	t.Run("empty required value treated as missing", func(t *testing.T) {
		_, _, err := resolveParams(simplePrice, Params{
			"ids":           []string{},
			"vs_currencies": []string{"usd"},
		})

		var paramErr *InvalidParameterError
		if !errors.As(err, &paramErr) {
			t.Fatalf("expected InvalidParameterError, got %v", err)
		}
	})

	t.Run("placeholder filled and removed from query", func(t *testing.T) {
		path, query, err := resolveParams(coinByID, Params{
			"id":      "bitcoin",
			"tickers": true,
		})
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if path != "/coins/bitcoin" {
			t.Errorf("path = %q, want /coins/bitcoin", path)
		}
		if _, ok := query["id"]; ok {
			t.Error("id should not remain in query after filling the path")
		}
		if query["tickers"] != "true" {
			t.Errorf("tickers = %q, want true", query["tickers"])
		}
	})

	t.Run("multiple placeholders", func(t *testing.T) {
		path, query, err := resolveParams(coinContract, Params{
			"id":               "ethereum",
			"contract_address": "0xdac17f958d2ee523a2206206994597c13d831ec7",
		})
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if path != "/coins/ethereum/contract/0xdac17f958d2ee523a2206206994597c13d831ec7" {
			t.Errorf("unexpected path %q", path)
		}
		if len(query) != 0 {
			t.Errorf("expected empty query, got %v", query)
		}
	})

	t.Run("placeholder value is path escaped", func(t *testing.T) {
		path, _, err := resolveParams(coinByID, Params{"id": "weird/id"})
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if path != "/coins/weird%2Fid" {
			t.Errorf("path = %q, want escaped id segment", path)
		}
	})

	t.Run("unset optionals omitted", func(t *testing.T) {
		_, query, err := resolveParams(simplePrice, Params{
			"ids":           []string{"bitcoin"},
			"vs_currencies": []string{"usd"},
			"precision":     "",
		})
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if _, ok := query["precision"]; ok {
			t.Error("empty precision should be omitted from query")
		}
	})
}
