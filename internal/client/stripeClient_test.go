package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-server/internal/config"
)

func TestCreatePaymentIntent(t *testing.T) {
	var gotAuth, gotAmount, gotCurrency string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotAuth = r.Header.Get("Authorization")
		gotAmount = r.PostForm.Get("amount")
		gotCurrency = r.PostForm.Get("currency")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret","status":"requires_payment_method"}`))
	}))
	defer ts.Close()

	c := NewStripeClient(&config.Stripe{
		BaseApiURL: ts.URL,
		SecretKey:  "sk_test_123",
	})

	intent, err := c.CreatePaymentIntent(context.Background(), 2550, "usd")
	if err != nil {
		t.Fatalf("create payment intent: %v", err)
	}

	if gotAuth != "Bearer sk_test_123" {
		t.Errorf("expected bearer secret key, got %q", gotAuth)
	}
	if gotAmount != "2550" {
		t.Errorf("expected amount 2550, got %q", gotAmount)
	}
	if gotCurrency != "usd" {
		t.Errorf("expected currency usd, got %q", gotCurrency)
	}
	if intent.ClientSecret != "pi_1_secret" {
		t.Errorf("expected client secret, got %q", intent.ClientSecret)
	}
}

func TestCreatePaymentIntentUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"card declined"}}`))
	}))
	defer ts.Close()

	c := NewStripeClient(&config.Stripe{BaseApiURL: ts.URL, SecretKey: "sk"})

	if _, err := c.CreatePaymentIntent(context.Background(), 100, "usd"); err == nil {
		t.Error("expected error on non-2xx response")
	}
}
