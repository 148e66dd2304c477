package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tradex-app/tradex/internal/gateway/mock"
	"github.com/tradex-app/tradex/internal/kv/memory"
	"github.com/tradex-app/tradex/internal/store/session"
)

func authMux(t *testing.T) *http.ServeMux {
	t.Helper()
	store := session.New(memory.New(), mock.NewAuthGatewayWithDelay(0), testLogger())
	t.Cleanup(store.Close)
	store.Hydrate(t.Context())

	h := NewAuthHandler(store, testLogger())
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/otp", h.SendOTP)
	mux.HandleFunc("POST /api/auth/otp/verify", h.VerifyOTP)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/session", h.GetSession)
	return mux
}

func postJSON(mux *http.ServeMux, url, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSendOTP(t *testing.T) {
	mux := authMux(t)

	rec := postJSON(mux, "/api/auth/otp", `{"phone":"9876543210"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("valid phone: status = %d", rec.Code)
	}

	rec = postJSON(mux, "/api/auth/otp", `{"phone":"12345"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid phone: status = %d, want 400", rec.Code)
	}

	rec = postJSON(mux, "/api/auth/otp", `{broken`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", rec.Code)
	}
}

func TestVerifyOTPFlow(t *testing.T) {
	mux := authMux(t)

	// Wrong code: 200, verified=false, no user.
	rec := postJSON(mux, "/api/auth/otp/verify", `{"phone":"9876543210","code":"000000"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("wrong code: status = %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["verified"] != false {
		t.Errorf("wrong code verified = %v", resp["verified"])
	}
	if _, ok := resp["user"]; ok {
		t.Error("wrong code returned a user")
	}

	// Right code: verified=true with the user.
	rec = postJSON(mux, "/api/auth/otp/verify", `{"phone":"9876543210","code":"123456"}`)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["verified"] != true {
		t.Fatalf("right code verified = %v", resp["verified"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["phoneNumber"] != "9876543210" {
		t.Errorf("user = %v", resp["user"])
	}

	// Session endpoint reflects the login.
	rec2 := httptest.NewRecorder()
	mux.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	if err := json.Unmarshal(rec2.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["hydrated"] != true || resp["user"] == nil {
		t.Errorf("session = %v", resp)
	}

	// Logout clears it.
	postJSON(mux, "/api/auth/logout", "")
	rec2 = httptest.NewRecorder()
	mux.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	if err := json.Unmarshal(rec2.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["user"] != nil {
		t.Errorf("user after logout = %v", resp["user"])
	}
}
