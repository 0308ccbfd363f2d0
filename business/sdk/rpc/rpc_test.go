package rpc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/granazap/painel/foundation/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
}

func TestCall(t *testing.T) {
	var gotPath string
	var gotBody string
	var gotAPIKey string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"name":"Mercado"},{"name":"Transporte"}],"error":null}`))
	}))
	defer srv.Close()

	client := New(Config{
		Log:     newTestLogger(),
		BaseURL: srv.URL,
		APIKey:  "anon-key",
		Token:   func() string { return "access-token" },
	})

	rows, err := client.Call(context.Background(), "get_categories_by_phone", map[string]string{"p_phone": "+5511999999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/rpc/get_categories_by_phone" {
		t.Errorf("path = %s, want /rpc/get_categories_by_phone", gotPath)
	}
	if gotBody != `{"p_phone":"+5511999999999"}` {
		t.Errorf("body = %s", gotBody)
	}
	if gotAPIKey != "anon-key" {
		t.Errorf("apikey = %s, want anon-key", gotAPIKey)
	}
	if gotAuth != "Bearer access-token" {
		t.Errorf("authorization = %s, want Bearer access-token", gotAuth)
	}

	type row struct {
		Name string `json:"name"`
	}

	decoded, err := DecodeRows[row](rows)
	if err != nil {
		t.Fatalf("decode rows: %v", err)
	}

	want := []row{{Name: "Mercado"}, {Name: "Transporte"}}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCallNilArgs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != "{}" {
			t.Errorf("body = %s, want {}", body)
		}
		w.Write([]byte(`{"data":[],"error":null}`))
	}))
	defer srv.Close()

	client := New(Config{Log: newTestLogger(), BaseURL: srv.URL})

	rows, err := client.Call(context.Background(), "get_my_tenant", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestCallNullData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null,"error":null}`))
	}))
	defer srv.Close()

	client := New(Config{Log: newTestLogger(), BaseURL: srv.URL})

	rows, err := client.Call(context.Background(), "get_monthly_summary_by_phone", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestCallProcedureError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"data":null,"error":{"message":"permission denied"}}`))
	}))
	defer srv.Close()

	client := New(Config{Log: newTestLogger(), BaseURL: srv.URL})

	_, err := client.Call(context.Background(), "create_transaction", nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var pErr *ProcedureError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *ProcedureError", err)
	}
	if pErr.Message != "permission denied" {
		t.Errorf("message = %s, want permission denied", pErr.Message)
	}
	if pErr.Procedure != "create_transaction" {
		t.Errorf("procedure = %s, want create_transaction", pErr.Procedure)
	}
}

func TestCallMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("authorization = %s, want empty", got)
		}
		w.Write([]byte(`{"data":[],"error":null}`))
	}))
	defer srv.Close()

	client := New(Config{
		Log:     newTestLogger(),
		BaseURL: srv.URL,
		Token:   func() string { return "" },
	})

	if _, err := client.Call(context.Background(), "get_my_tenant", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
