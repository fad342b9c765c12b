package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

// recorder is a backend that records every request it receives and answers
// everything with an empty JSON object (or array, per path suffix).
type recorder struct {
	calls    atomic.Int32
	lastPath string
	lastBody []byte
}

func newRecordedAPI(t *testing.T) (*API, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.calls.Add(1)
		rec.lastPath = r.URL.RequestURI()
		rec.lastBody, _ = io.ReadAll(r.Body)
		w.Write([]byte("{}"))
	}))
	t.Cleanup(server.Close)

	c := client.NewWithTokens(server.URL, client.NewMemoryTokenStore())
	return New(c), rec
}

func TestTransactionListSplitsMonthFilter(t *testing.T) {
	api, rec := newRecordedAPI(t)

	// Lists decode into a slice, so answer with an array for this one.
	_, err := api.Transactions.List(context.Background(), &models.TransactionFilters{
		TransactionType: models.TransactionOutgoing,
		Month:           "2026-01",
	})
	// The empty-object body fails slice decoding; the query is still what
	// we are checking.
	_ = err

	parsed, parseErr := url.Parse(rec.lastPath)
	if parseErr != nil {
		t.Fatalf("parse recorded path: %v", parseErr)
	}
	q := parsed.Query()
	if got := q.Get("due_date__month"); got != "01" {
		t.Errorf("due_date__month = %q, want 01", got)
	}
	if got := q.Get("due_date__year"); got != "2026" {
		t.Errorf("due_date__year = %q, want 2026", got)
	}
	if got := q.Get("transaction_type"); got != "outgoing" {
		t.Errorf("transaction_type = %q, want outgoing", got)
	}
}

func TestTransactionListRejectsBadMonth(t *testing.T) {
	api, rec := newRecordedAPI(t)

	_, err := api.Transactions.List(context.Background(), &models.TransactionFilters{Month: "January"})
	if err == nil {
		t.Fatal("expected validation error for month format")
	}
	if got := rec.calls.Load(); got != 0 {
		t.Errorf("requests sent = %d, want 0 (validation must fail before the network)", got)
	}
}

func TestTransactionCreateValidation(t *testing.T) {
	api, rec := newRecordedAPI(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.CreateTransactionRequest
	}{
		{"missing identifier", models.CreateTransactionRequest{
			DueDate: "2026-01-10", TotalAmount: "10.00", TransactionType: models.TransactionOutgoing,
		}},
		{"non-numeric amount", models.CreateTransactionRequest{
			DueDate: "2026-01-10", TotalAmount: "ten", TransactionIdentifier: "x", TransactionType: models.TransactionOutgoing,
		}},
		{"negative amount", models.CreateTransactionRequest{
			DueDate: "2026-01-10", TotalAmount: "-5.00", TransactionIdentifier: "x", TransactionType: models.TransactionOutgoing,
		}},
		{"bad date", models.CreateTransactionRequest{
			DueDate: "10/01/2026", TotalAmount: "10.00", TransactionIdentifier: "x", TransactionType: models.TransactionOutgoing,
		}},
		{"bad type", models.CreateTransactionRequest{
			DueDate: "2026-01-10", TotalAmount: "10.00", TransactionIdentifier: "x", TransactionType: "sideways",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := api.Transactions.Create(ctx, tc.req); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if got := rec.calls.Load(); got != 0 {
		t.Errorf("requests sent = %d, want 0", got)
	}
}

func TestTransactionPayBody(t *testing.T) {
	api, rec := newRecordedAPI(t)

	if _, err := api.Transactions.Pay(context.Background(), 5, true); err != nil {
		t.Fatalf("Pay: %v", err)
	}

	if rec.lastPath != "/transactions/transactions/5/pay/" {
		t.Errorf("path = %q", rec.lastPath)
	}
	var body map[string]bool
	if err := json.Unmarshal(rec.lastBody, &body); err != nil {
		t.Fatalf("unmarshal recorded body: %v", err)
	}
	if !body["update_sub_transactions"] {
		t.Error("update_sub_transactions not set in pay body")
	}
}

func TestActorStatsQuery(t *testing.T) {
	api, rec := newRecordedAPI(t)

	_, err := api.Actors.Stats(context.Background(), &models.ActorStatsFilters{
		DueDateStart: "2026-01-01",
		DueDateEnd:   "2026-01-31",
	})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	parsed, parseErr := url.Parse(rec.lastPath)
	if parseErr != nil {
		t.Fatal(parseErr)
	}
	q := parsed.Query()
	if q.Get("due_date_start") != "2026-01-01" || q.Get("due_date_end") != "2026-01-31" {
		t.Errorf("query = %q", rec.lastPath)
	}
}

func TestAICallsQueryIncludesModel(t *testing.T) {
	api, rec := newRecordedAPI(t)

	_, err := api.AI.CallsStats(context.Background(), &models.AIDateFilters{
		DueDateStart: "2026-01-01",
		DueDateEnd:   "2026-01-31",
		Model:        "gemini-2.5-flash-lite",
	})
	if err != nil {
		t.Fatalf("CallsStats: %v", err)
	}

	parsed, parseErr := url.Parse(rec.lastPath)
	if parseErr != nil {
		t.Fatal(parseErr)
	}
	if got := parsed.Query().Get("model"); got != "gemini-2.5-flash-lite" {
		t.Errorf("model = %q", got)
	}
	if parsed.Path != "/ai/ai-calls/stats/" {
		t.Errorf("path = %q", parsed.Path)
	}
}

func TestAuthLoginRequiresCredentials(t *testing.T) {
	api, rec := newRecordedAPI(t)

	if _, err := api.Auth.Login(context.Background(), "", "password123"); err == nil {
		t.Error("expected error for empty email")
	}
	if _, err := api.Auth.Login(context.Background(), "demo@example.com", ""); err == nil {
		t.Error("expected error for empty password")
	}
	if got := rec.calls.Load(); got != 0 {
		t.Errorf("requests sent = %d, want 0", got)
	}
}

func TestAuthLoginStoresTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken:  "acc",
			RefreshToken: "ref",
			User:         models.User{ID: 1, Email: "demo@example.com"},
		})
	}))
	t.Cleanup(server.Close)

	tokens := client.NewMemoryTokenStore()
	api := New(client.NewWithTokens(server.URL, tokens))

	resp, err := api.Auth.Login(context.Background(), "demo@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.ID != 1 {
		t.Errorf("user.ID = %d, want 1", resp.User.ID)
	}
	if tokens.GetAccessToken() != "acc" || tokens.GetRefreshToken() != "ref" {
		t.Error("token pair not stored after login")
	}
}

func TestChatPathsHaveNoTrailingSlash(t *testing.T) {
	api, rec := newRecordedAPI(t)

	if _, err := api.Chat.Ask(context.Background(), 3, "qual meu saldo?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if rec.lastPath != "/ai/chat/3/ask" {
		t.Errorf("ask path = %q, want /ai/chat/3/ask", rec.lastPath)
	}
}

func TestSubTransactionPayPath(t *testing.T) {
	api, rec := newRecordedAPI(t)

	if _, err := api.SubTransactions.Pay(context.Background(), 8); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if rec.lastPath != "/transactions/sub_transactions/8/pay/" {
		t.Errorf("path = %q", rec.lastPath)
	}
}
