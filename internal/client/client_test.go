// ABOUTME: Tests for the shop admin API client
// ABOUTME: Uses httptest to mock backend responses

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/markalston/mocha-admin/internal/models"
)

func TestHealth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected path /health, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
}

func TestHealth_ConnectionError(t *testing.T) {
	c := New("http://localhost:99999")
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected connection error, got nil")
	}
	if !strings.Contains(err.Error(), "cannot connect to backend") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestHealth_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(models.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Health(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context, got nil")
	}
	if err.Error() != "request canceled" {
		t.Errorf("expected 'request canceled', got %q", err.Error())
	}
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		var body models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Address != "0xABC123" {
			t.Errorf("expected address 0xABC123, got %q", body.Address)
		}
		w.Write([]byte(`{"token":"t1","user":{"wallet_address":"0xABC123","created_at":"2024-01-15T00:00:00Z"}}`))
	}))
	defer server.Close()

	resp, err := New(server.URL).Login(context.Background(), "0xABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token != "t1" {
		t.Errorf("expected token t1, got %q", resp.Token)
	}
	if resp.User.WalletAddress != "0xABC123" {
		t.Errorf("expected wallet 0xABC123, got %q", resp.User.WalletAddress)
	}
}

func TestLogin_ErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantMessage string
		malformed   bool
	}{
		{"backend message", http.StatusUnauthorized, `{"error":"Unknown wallet"}`, 401, "Unknown wallet", false},
		{"no body", http.StatusInternalServerError, ``, 500, "", false},
		{"missing token", http.StatusOK, `{"user":{"wallet_address":"0x1","created_at":"2024-01-15T00:00:00Z"}}`, 0, "", true},
		{"missing user", http.StatusOK, `{"token":"t1"}`, 0, "", true},
		{"not json", http.StatusOK, `<html>`, 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(server.URL).Login(context.Background(), "0x1")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.malformed {
				if !errors.Is(err, models.ErrMalformedResponse) {
					t.Errorf("expected ErrMalformedResponse, got %v", err)
				}
				return
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestWithToken_SetsBearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer t1" {
			t.Errorf("expected bearer header, got %q", got)
		}
		json.NewEncoder(w).Encode([]models.Product{{ID: 1, Name: "Kenyan AA", Type: "coffee_bag", Price: 19.99, Stock: 80}})
	}))
	defer server.Close()

	base := New(server.URL)
	c := base.WithToken("t1")
	if base.HasToken() {
		t.Error("WithToken must not mutate the original client")
	}

	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Row().Status != models.StatusInStock {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestDeleteProduct_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/products/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := New(server.URL).WithToken("t").DeleteProduct(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateProduct_ValidatesBeforeSending(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	_, err := New(server.URL).CreateProduct(context.Background(), models.ProductInput{Name: "x"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("invalid input must not reach the backend")
	}
}

func TestIsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid token"})
	}))
	defer server.Close()

	_, err := New(server.URL).WithToken("stale").Orders(context.Background())
	if !IsUnauthorized(err) {
		t.Errorf("expected unauthorized error, got %v", err)
	}
	if IsStatus(err, http.StatusForbidden) {
		t.Error("IsStatus should not match a different code")
	}
}

func TestDashboard_FetchesAllSections(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/stats/overview", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalRevenue":{"value":12000,"change":4.2},"nftsMinted":{"value":2288,"change":1},"activeUsers":{"value":300,"change":-2},"productsSold":{"value":940,"change":0}}`))
	})
	mux.HandleFunc("/stats/sales", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"month":"Jan","sales":100},{"month":"Feb","sales":150}]`))
	})
	mux.HandleFunc("/stats/top-products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"Kenyan AA","sales":12,"revenue":"$240"}]`))
	})
	mux.HandleFunc("/stats/blockchain", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transactions":1200,"smartContracts":3}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	data, err := New(server.URL).WithToken("t").Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Overview.TotalRevenue.Value != 12000 {
		t.Errorf("unexpected overview: %+v", data.Overview)
	}
	if data.SalesGrowth != "+50.0%" {
		t.Errorf("SalesGrowth = %q, want +50.0%%", data.SalesGrowth)
	}
	if len(data.TopProducts) != 1 || data.Blockchain.SmartContracts != 3 {
		t.Errorf("unexpected sections: %+v", data)
	}
}

func TestDashboard_FailsOnAnySection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/stats/blockchain" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := New(server.URL).Dashboard(context.Background())
	if err == nil {
		t.Fatal("expected error when a section fails")
	}
}

func TestSignUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.SignRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.ParamsToSign["timestamp"] != "1700000000" {
			t.Errorf("unexpected params: %+v", req.ParamsToSign)
		}
		json.NewEncoder(w).Encode(models.SignResponse{Signature: "abc"})
	}))
	defer server.Close()

	sig, err := New(server.URL).WithToken("t").SignUpload(context.Background(), map[string]string{"timestamp": "1700000000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig != "abc" {
		t.Errorf("signature = %q, want abc", sig)
	}
}
