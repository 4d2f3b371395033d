package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/apexsales/admin-console/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Test server
// ---------------------------------------------------------------------------

// recordedRequest captures what the client actually sent.
type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   []byte
}

// newTestServer serves a canned handler and records every request.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second, discardLogger), &requests
}

func envelopeBody(t *testing.T, data any) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"response": map[string]any{"data": data}})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

// ---------------------------------------------------------------------------
// Envelope decoding and failure normalization
// ---------------------------------------------------------------------------

func TestApplications_List_DecodesEnvelope(t *testing.T) {
	apps := []domain.Application{
		{ID: 1, FirstName: "Ann", ApplicationStatus: domain.ApplicationIncomplete},
		{ID: 2, FirstName: "Bob", ApplicationStatus: domain.ApplicationCompleted},
	}
	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelopeBody(t, apps))
	})

	got := NewApplications(c).List(context.Background(), "tok")
	if len(got) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(got))
	}
	if got[0].FirstName != "Ann" || got[1].ApplicationStatus != domain.ApplicationCompleted {
		t.Errorf("decoded rows wrong: %+v", got)
	}

	req := (*reqs)[0]
	if req.Path != "/api/v1/applications" {
		t.Errorf("path = %q", req.Path)
	}
	if req.Auth != "Bearer tok" {
		t.Errorf("auth header = %q", req.Auth)
	}
}

func TestApplications_List_NonOKStatusYieldsNil(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if got := NewApplications(c).List(context.Background(), "tok"); got != nil {
		t.Fatalf("expected nil on server error, got %v", got)
	}
}

func TestApplications_List_TransportFailureYieldsNil(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond, discardLogger)
	if got := NewApplications(c).List(context.Background(), "tok"); got != nil {
		t.Fatalf("expected nil on transport failure, got %v", got)
	}
}

func TestApplications_List_MalformedBodyYieldsNil(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	if got := NewApplications(c).List(context.Background(), "tok"); got != nil {
		t.Fatalf("expected nil on malformed body, got %v", got)
	}
}

// ---------------------------------------------------------------------------
// Mutation status codes
// ---------------------------------------------------------------------------

func TestApplications_Create_Wants201(t *testing.T) {
	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	ok := NewApplications(c).Create(context.Background(), "tok", domain.NewApplication{FirstName: "Ann"})
	if !ok {
		t.Fatal("expected create to succeed on 201")
	}
	req := (*reqs)[0]
	if req.Method != http.MethodPost || req.Path != "/api/v1/applications/create" {
		t.Errorf("got %s %s", req.Method, req.Path)
	}
}

func TestApplications_Create_RejectsPlain200(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if NewApplications(c).Create(context.Background(), "tok", domain.NewApplication{}) {
		t.Fatal("create must require 201, 200 is a failure")
	}
}

func TestApplications_Delete_Wants200(t *testing.T) {
	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if !NewApplications(c).Delete(context.Background(), "tok", 7) {
		t.Fatal("expected delete to succeed on 200")
	}
	req := (*reqs)[0]
	if req.Method != http.MethodDelete || req.Path != "/api/v1/applications/delete/7" {
		t.Errorf("got %s %s", req.Method, req.Path)
	}
}

func TestCommissions_MarkPaid_PathAndMethod(t *testing.T) {
	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if !NewCommissions(c).MarkPaid(context.Background(), "tok", 12) {
		t.Fatal("expected mark-paid to succeed")
	}
	req := (*reqs)[0]
	if req.Method != http.MethodPut || req.Path != "/api/v1/commissions/mark-paid/12" {
		t.Errorf("got %s %s", req.Method, req.Path)
	}
}

// ---------------------------------------------------------------------------
// User creation pins the role per endpoint
// ---------------------------------------------------------------------------

func TestUsers_CreateSalesAgent_SendsAgentRole(t *testing.T) {
	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	nu := domain.NewUser{FirstName: "Ann", LastName: "Smith", Email: "ann@example.com", Mobile: "555"}
	if !NewUsers(c).CreateSalesAgent(context.Background(), "tok", nu) {
		t.Fatal("expected create to succeed")
	}

	req := (*reqs)[0]
	if req.Path != "/api/v1/users/sales-agents" {
		t.Errorf("path = %q", req.Path)
	}
	var sent domain.NewUser
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatalf("payload not decodable: %v", err)
	}
	if sent.Role != domain.RoleSalesAgent {
		t.Errorf("payload role = %q, want %q", sent.Role, domain.RoleSalesAgent)
	}
}

func TestUsers_CreateSalesCoach_RegistersWithCoachRole(t *testing.T) {
	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	nu := domain.NewUser{FirstName: "Cora", LastName: "Lee", Email: "cora@example.com", Mobile: "556"}
	if !NewUsers(c).CreateSalesCoach(context.Background(), "tok", nu) {
		t.Fatal("expected create to succeed")
	}

	req := (*reqs)[0]
	if req.Path != "/api/v1/auth/register" {
		t.Errorf("path = %q", req.Path)
	}
	var sent domain.NewUser
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatalf("payload not decodable: %v", err)
	}
	if sent.Role != domain.RoleSalesCoach {
		t.Errorf("payload role = %q, want %q", sent.Role, domain.RoleSalesCoach)
	}
}

// ---------------------------------------------------------------------------
// Single-record endpoints take the first envelope element
// ---------------------------------------------------------------------------

func TestUsers_UserInfo_TakesFirstElement(t *testing.T) {
	users := []domain.User{
		{ID: 1, FirstName: "Ann", Role: domain.RoleAdmin},
		{ID: 2, FirstName: "Bob"},
	}
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelopeBody(t, users))
	})

	got := NewUsers(c).UserInfo(context.Background(), "tok")
	if got == nil || got.ID != 1 || got.Role != domain.RoleAdmin {
		t.Fatalf("expected first user, got %+v", got)
	}
}

func TestUsers_UserInfo_EmptyDataYieldsNil(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelopeBody(t, []domain.User{}))
	})
	if got := NewUsers(c).UserInfo(context.Background(), "tok"); got != nil {
		t.Fatalf("expected nil for empty data, got %+v", got)
	}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

func TestAuth_VerifyToken_OnlyOKCounts(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		if NewAuth(c).VerifyToken(context.Background(), "tok") {
			t.Errorf("status %d must not verify", status)
		}
	}

	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if !NewAuth(c).VerifyToken(context.Background(), "tok") {
		t.Fatal("200 must verify")
	}
	if (*reqs)[0].Path != "/api/v1/auth/verifyToken" {
		t.Errorf("path = %q", (*reqs)[0].Path)
	}
}

func TestAuth_Login_Success(t *testing.T) {
	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelopeBody(t, []domain.LoginResult{{
			Token:   "jwt-token",
			Message: domain.Message{Title: "Welcome", Description: "Signed in"},
		}}))
	})

	result, err := NewAuth(c).Login(context.Background(), "ann@example.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "jwt-token" || result.Message.Title != "Welcome" {
		t.Errorf("result wrong: %+v", result)
	}

	req := (*reqs)[0]
	if req.Method != http.MethodPost || req.Path != "/api/v1/auth/login" {
		t.Errorf("got %s %s", req.Method, req.Path)
	}
	if req.Auth != "" {
		t.Errorf("login must not carry a bearer token, got %q", req.Auth)
	}
}

func TestAuth_Login_RejectedCredentialsStillDecode(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write(envelopeBody(t, []domain.LoginResult{{
			Message: domain.Message{Title: "Login failed", Description: "Wrong email or password"},
		}}))
	})

	result, err := NewAuth(c).Login(context.Background(), "ann@example.com", "bad")
	if err != nil {
		t.Fatalf("a rejection is not a transport error: %v", err)
	}
	if result.Token != "" {
		t.Errorf("rejected login must carry no token, got %q", result.Token)
	}
	if result.Message.Title != "Login failed" {
		t.Errorf("message = %+v", result.Message)
	}
}

func TestAuth_Login_TransportFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond, discardLogger)
	_, err := NewAuth(c).Login(context.Background(), "ann@example.com", "pw")
	if err != domain.ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Raw exports
// ---------------------------------------------------------------------------

func TestUsers_ExportSalesAgents_ReturnsBody(t *testing.T) {
	payload := "First Name,Last Name\r\n\"Ann\",\"Smith\"\r\n"
	c, reqs := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	got := NewUsers(c).ExportSalesAgents(context.Background(), "tok")
	if string(got) != payload {
		t.Fatalf("got %q", got)
	}
	if (*reqs)[0].Path != "/api/v1/users/export-sales-agents" {
		t.Errorf("path = %q", (*reqs)[0].Path)
	}
}

func TestUsers_ExportSalesAgents_FailureYieldsNil(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	if got := NewUsers(c).ExportSalesAgents(context.Background(), "tok"); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
