package service

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"invoicer/internal/model"
)

func TestConvertIdentitySkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	env := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	svc := NewCurrencyService(env.api, testLogger())

	result := svc.Convert(context.Background(), mustDec("10"), model.CurrencyUSD, model.CurrencyUSD)

	if calls.Load() != 0 {
		t.Fatalf("identity conversion hit the backend %d times", calls.Load())
	}
	if !result.Converted || result.Display != "$10.00" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestConvertCachesResult(t *testing.T) {
	var calls atomic.Int64
	env := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("from") != "USD" || r.URL.Query().Get("to") != "EUR" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]any{"converted_amount": 8.5})
	}))
	svc := NewCurrencyService(env.api, testLogger())

	for i := 0; i < 3; i++ {
		result := svc.Convert(context.Background(), mustDec("10"), model.CurrencyUSD, model.CurrencyEUR)
		if !result.Converted {
			t.Fatalf("call %d: conversion not marked converted", i)
		}
		if result.Display != "€8.50" {
			t.Fatalf("call %d: display = %q", i, result.Display)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected a single backend call, got %d", calls.Load())
	}
}

func TestConvertFailureDegradesToSource(t *testing.T) {
	env := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	svc := NewCurrencyService(env.api, testLogger())

	result := svc.Convert(context.Background(), mustDec("10"), model.CurrencyUSD, model.CurrencyNGN)

	if result.Converted {
		t.Fatal("failed conversion must not claim success")
	}
	if !result.Amount.Equal(mustDec("10")) || result.Currency != model.CurrencyUSD {
		t.Fatalf("degraded result should carry the source amount, got %+v", result)
	}
	if result.Display != "$10.00" {
		t.Fatalf("degraded display = %q, want source-currency formatting", result.Display)
	}
}

func TestRatesCached(t *testing.T) {
	var calls atomic.Int64
	env := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"base":  "USD",
			"rates": map[string]float64{"EUR": 0.85, "NGN": 1500},
		})
	}))
	svc := NewCurrencyService(env.api, testLogger())

	for i := 0; i < 2; i++ {
		resp, err := svc.Rates(context.Background(), model.CurrencyUSD)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Base != "USD" || len(resp.Rates) != 2 {
			t.Fatalf("unexpected rates response: %+v", resp)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected a single backend call, got %d", calls.Load())
	}
}
