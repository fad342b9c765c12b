package mockapi

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/config"
	"github.com/fintrack-labs/fintrack-go/models"
	"github.com/fintrack-labs/fintrack-go/services"
	"github.com/fintrack-labs/fintrack-go/utils"
)

func testConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:          "0",
		JWTSecret:     "test-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		Seed:          true,
		AllowedOrigin: "http://localhost:3000",
	}
}

// newTestBackend serves the seeded mock backend and returns an API bound to
// it through an in-memory token store.
func newTestBackend(t *testing.T) (*services.API, *client.Client, *Server) {
	t.Helper()

	server, err := NewServer(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	c := client.NewWithTokens(ts.URL, client.NewMemoryTokenStore())
	return services.New(c), c, server
}

func login(t *testing.T, api *services.API) *models.LoginResponse {
	t.Helper()
	resp, err := api.Auth.Login(context.Background(), DemoEmail, DemoPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return resp
}

func TestLoginAndCurrentUser(t *testing.T) {
	api, c, _ := newTestBackend(t)
	ctx := context.Background()

	resp := login(t, api)
	if resp.User.Email != DemoEmail {
		t.Errorf("user.Email = %q, want %q", resp.User.Email, DemoEmail)
	}
	if c.Tokens.GetAccessToken() == "" {
		t.Fatal("no access token stored after login")
	}

	user, err := api.Users.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if user.Profile == nil || user.Profile.Salary != 8500 {
		t.Errorf("profile = %+v, want seeded salary 8500", user.Profile)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	api, c, _ := newTestBackend(t)

	_, err := api.Auth.Login(context.Background(), DemoEmail, "wrong")
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 401 {
		t.Fatalf("err = %v, want 401 APIError", err)
	}
	if c.Tokens.GetAccessToken() != "" {
		t.Error("tokens stored despite failed login")
	}
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()

	req := models.RegisterRequest{
		Email:     "nova@example.com",
		Password:  "senha-segura",
		FirstName: "Nova",
		LastName:  "Conta",
	}
	user, err := api.Auth.Register(ctx, req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != req.Email {
		t.Errorf("user.Email = %q", user.Email)
	}

	if _, err := api.Auth.Register(ctx, req); err == nil {
		t.Error("expected duplicate-email error")
	}
}

// An expired access token plus a valid refresh token must be healed
// transparently by the dispatcher.
func TestExpiredAccessTokenIsRefreshed(t *testing.T) {
	api, c, _ := newTestBackend(t)
	ctx := context.Background()

	login(t, api)

	expired, err := utils.GenerateToken("test-secret", 1, DemoEmail, "access", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Tokens.SetTokens(expired, c.Tokens.GetRefreshToken()); err != nil {
		t.Fatal(err)
	}

	user, err := api.Users.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("GetCurrentUser with expired access token: %v", err)
	}
	if user.Email != DemoEmail {
		t.Errorf("user.Email = %q", user.Email)
	}
	if c.Tokens.GetAccessToken() == expired {
		t.Error("access token was not rotated")
	}
}

func TestInvalidSessionEndsWithHook(t *testing.T) {
	api, c, _ := newTestBackend(t)
	ctx := context.Background()

	if err := c.Tokens.SetTokens("garbage", "also-garbage"); err != nil {
		t.Fatal(err)
	}
	var hookFired bool
	c.OnSessionExpired = func() { hookFired = true }

	_, err := api.Users.GetCurrentUser(ctx)
	if !errors.Is(err, client.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if !hookFired {
		t.Error("OnSessionExpired not fired")
	}
	if c.Tokens.GetAccessToken() != "" || c.Tokens.GetRefreshToken() != "" {
		t.Error("tokens not cleared")
	}
}

func TestUpdateProfile(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	bio := "Nova bio"
	salary := 9000.0
	user, err := api.Users.UpdateProfile(ctx, models.UpdateProfileRequest{Bio: &bio, Salary: &salary})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if user.Profile == nil || user.Profile.Bio != "Nova bio" || user.Profile.Salary != 9000 {
		t.Errorf("profile = %+v", user.Profile)
	}
}

func TestTransactionLifecycle(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	created, err := api.Transactions.Create(ctx, models.CreateTransactionRequest{
		DueDate:               "2026-02-10",
		TotalAmount:           "150.00",
		TransactionIdentifier: "teste-fevereiro",
		TransactionType:       models.TransactionOutgoing,
		Category:              "leisure",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The new transaction shows up under its month only.
	feb, err := api.Transactions.List(ctx, &models.TransactionFilters{Month: "2026-02"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(feb) != 1 || feb[0].ID != created.ID {
		t.Fatalf("feb list = %+v, want just the created transaction", feb)
	}

	newAmount := "175.50"
	updated, err := api.Transactions.Update(ctx, created.ID, models.UpdateTransactionRequest{TotalAmount: &newAmount})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.TotalAmount != "175.50" {
		t.Errorf("TotalAmount = %q", updated.TotalAmount)
	}

	if err := api.Transactions.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := api.Transactions.Get(ctx, created.ID); !client.IsNotFound(err) {
		t.Errorf("Get after delete = %v, want 404", err)
	}
}

func TestPayToggleCascades(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	// Seeded January card invoice is unpaid and has sub-transactions.
	jan, err := api.Transactions.List(ctx, &models.TransactionFilters{
		Month:           "2026-01",
		TransactionType: models.TransactionOutgoing,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var card *models.Transaction
	for i := range jan {
		if strings.HasPrefix(jan[i].TransactionIdentifier, "fatura-cartao") {
			card = &jan[i]
			break
		}
	}
	if card == nil {
		t.Fatal("seeded card invoice not found")
	}

	if _, err := api.Transactions.Pay(ctx, card.ID, true); err != nil {
		t.Fatalf("Pay: %v", err)
	}

	detail, err := api.Transactions.Get(ctx, card.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.PaidAt == "" {
		t.Error("transaction not marked paid")
	}
	for _, sub := range detail.SubTransactions {
		if sub.PaidAt == "" {
			t.Errorf("sub %d not paid despite cascade", sub.ID)
		}
	}

	// Paying again un-pays.
	if _, err := api.Transactions.Pay(ctx, card.ID, true); err != nil {
		t.Fatalf("second Pay: %v", err)
	}
	detail, err = api.Transactions.Get(ctx, card.ID)
	if err != nil {
		t.Fatal(err)
	}
	if detail.PaidAt != "" {
		t.Error("transaction still paid after toggle")
	}
	for _, sub := range detail.SubTransactions {
		if sub.PaidAt != "" {
			t.Errorf("sub %d still paid after toggle", sub.ID)
		}
	}
}

// Splitting a share to an actor duplicates the sub-transaction: the
// duplicate carries the share and the new actor, the original is reduced
// and keeps its own actor.
func TestDivideSubTransactionForActor(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	created, err := api.Transactions.Create(ctx, models.CreateTransactionRequest{
		DueDate:               "2026-04-10",
		TotalAmount:           "100.00",
		TransactionIdentifier: "divisao-teste",
		TransactionType:       models.TransactionOutgoing,
	})
	if err != nil {
		t.Fatal(err)
	}
	sub, err := api.SubTransactions.Create(ctx, models.CreateSubTransactionRequest{
		Date:          "2026-04-05",
		Description:   "Conta compartilhada",
		Amount:        "100.00",
		TransactionID: created.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	joao, err := api.Actors.Create(ctx, models.CreateActorRequest{Name: "João"})
	if err != nil {
		t.Fatal(err)
	}

	divide := true
	share := 40.0
	updated, err := api.SubTransactions.Update(ctx, sub.ID, models.UpdateSubTransactionRequest{
		ActorID:              &joao.ID,
		ActorAmount:          &share,
		ShouldDivideForActor: &divide,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Amount != "60.00" {
		t.Errorf("original amount = %q, want 60.00", updated.Amount)
	}
	if updated.ActorID != 0 {
		t.Errorf("original actor = %d, want none (actor goes to the duplicate)", updated.ActorID)
	}

	detail, err := api.Transactions.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.SubTransactions) != 2 {
		t.Fatalf("sub-transactions = %d, want 2 (original + duplicated actor share)", len(detail.SubTransactions))
	}

	var part *models.SubTransaction
	for i := range detail.SubTransactions {
		if detail.SubTransactions[i].ID != sub.ID {
			part = &detail.SubTransactions[i]
		}
	}
	if part == nil {
		t.Fatal("duplicated sub-transaction not found")
	}
	if part.Amount != "40.00" {
		t.Errorf("duplicate amount = %q, want 40.00", part.Amount)
	}
	if part.ActorID != joao.ID {
		t.Errorf("duplicate actor = %d, want %d", part.ActorID, joao.ID)
	}
	if !strings.Contains(part.UserProvidedDescription, "Parte de João") {
		t.Errorf("duplicate description = %q, want the actor's share label", part.UserProvidedDescription)
	}
}

// When the original already belongs to an actor, the split must not steal
// it: the original keeps its actor, the duplicate gets the new one.
func TestDivideKeepsOriginalActor(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	created, err := api.Transactions.Create(ctx, models.CreateTransactionRequest{
		DueDate:               "2026-04-20",
		TotalAmount:           "100.00",
		TransactionIdentifier: "divisao-com-ator",
		TransactionType:       models.TransactionOutgoing,
	})
	if err != nil {
		t.Fatal(err)
	}
	maria, err := api.Actors.Create(ctx, models.CreateActorRequest{Name: "Maria"})
	if err != nil {
		t.Fatal(err)
	}
	sub, err := api.SubTransactions.Create(ctx, models.CreateSubTransactionRequest{
		Date:          "2026-04-18",
		Description:   "Despesa da Maria",
		Amount:        "100.00",
		TransactionID: created.ID,
		ActorID:       maria.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	joao, err := api.Actors.Create(ctx, models.CreateActorRequest{Name: "João"})
	if err != nil {
		t.Fatal(err)
	}

	divide := true
	share := 40.0
	updated, err := api.SubTransactions.Update(ctx, sub.ID, models.UpdateSubTransactionRequest{
		ActorID:              &joao.ID,
		ActorAmount:          &share,
		ShouldDivideForActor: &divide,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ActorID != maria.ID {
		t.Errorf("original actor = %d, want Maria (%d)", updated.ActorID, maria.ID)
	}
	if updated.Amount != "60.00" {
		t.Errorf("original amount = %q, want 60.00", updated.Amount)
	}
}

// A recurrent transaction fans out into numbered installments 30 days
// apart, all linked to the first.
func TestRecurrentTransactionInstallments(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	first, err := api.Transactions.Create(ctx, models.CreateTransactionRequest{
		DueDate:               "2026-04-15",
		TotalAmount:           "500.00",
		TransactionIdentifier: "parcelado-teste",
		TransactionType:       models.TransactionOutgoing,
		IsRecurrent:           true,
		RecurrenceCount:       3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := api.Transactions.Get(ctx, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if detail.InstallmentNumber != 1 {
		t.Errorf("first InstallmentNumber = %d, want 1", detail.InstallmentNumber)
	}
	if detail.MainTransaction != nil {
		t.Errorf("first MainTransaction = %v, want nil", *detail.MainTransaction)
	}

	may, err := api.Transactions.List(ctx, &models.TransactionFilters{Month: "2026-05"})
	if err != nil {
		t.Fatal(err)
	}
	if len(may) != 1 {
		t.Fatalf("may installments = %d, want 1", len(may))
	}
	if may[0].DueDate != "2026-05-15" {
		t.Errorf("second due date = %q, want 2026-05-15 (30 days later)", may[0].DueDate)
	}
	second, err := api.Transactions.Get(ctx, may[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if second.InstallmentNumber != 2 {
		t.Errorf("second InstallmentNumber = %d, want 2", second.InstallmentNumber)
	}
	if second.MainTransaction == nil || *second.MainTransaction != first.ID {
		t.Errorf("second MainTransaction = %v, want %d", second.MainTransaction, first.ID)
	}

	jun, err := api.Transactions.List(ctx, &models.TransactionFilters{Month: "2026-06"})
	if err != nil {
		t.Fatal(err)
	}
	if len(jun) != 1 || jun[0].DueDate != "2026-06-14" {
		t.Errorf("june installments = %+v, want one due 2026-06-14", jun)
	}
}

func TestRecalculateAmount(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	created, err := api.Transactions.Create(ctx, models.CreateTransactionRequest{
		DueDate:               "2026-03-10",
		TotalAmount:           "1.00",
		TransactionIdentifier: "recalc-teste",
		TransactionType:       models.TransactionOutgoing,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, amount := range []string{"10.00", "15.50"} {
		_, err := api.SubTransactions.Create(ctx, models.CreateSubTransactionRequest{
			Date:          "2026-03-01",
			Description:   "item",
			Amount:        amount,
			TransactionID: created.ID,
		})
		if err != nil {
			t.Fatalf("create sub: %v", err)
		}
	}

	if _, err := api.Transactions.RecalculateAmount(ctx, created.ID); err != nil {
		t.Fatalf("RecalculateAmount: %v", err)
	}

	detail, err := api.Transactions.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if detail.TotalAmount != "25.50" {
		t.Errorf("TotalAmount = %q, want 25.50", detail.TotalAmount)
	}
}

func TestGuessSubTransactionsCategory(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	created, err := api.Transactions.Create(ctx, models.CreateTransactionRequest{
		DueDate:               "2026-03-15",
		TotalAmount:           "100.00",
		TransactionIdentifier: "categorias-teste",
		TransactionType:       models.TransactionOutgoing,
	})
	if err != nil {
		t.Fatal(err)
	}
	sub, err := api.SubTransactions.Create(ctx, models.CreateSubTransactionRequest{
		Date:          "2026-03-12",
		Description:   "Compra no supermercado Extra",
		Amount:        "100.00",
		TransactionID: created.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := api.Transactions.GuessSubTransactionsCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("GuessSubTransactionsCategory: %v", err)
	}
	if !strings.HasPrefix(resp.Message, "1 ") {
		t.Errorf("message = %q, want one updated", resp.Message)
	}

	updated, err := api.SubTransactions.Get(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Category != "food_grocery" {
		t.Errorf("category = %q, want food_grocery", updated.Category)
	}
}

func TestTransactionStats(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	stats, err := api.Transactions.Stats(ctx, &models.TransactionStatsFilters{DueDate: "2026-01-01"})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.IncomingTotal != 8500 {
		t.Errorf("IncomingTotal = %v, want 8500", stats.IncomingTotal)
	}
	wantOutgoing := 2347.80 + 1800 + 230
	if diff := stats.OutgoingTotal - wantOutgoing; diff > 0.01 || diff < -0.01 {
		t.Errorf("OutgoingTotal = %v, want %v", stats.OutgoingTotal, wantOutgoing)
	}
	if diff := stats.Balance - (8500 - wantOutgoing); diff > 0.01 || diff < -0.01 {
		t.Errorf("Balance = %v", stats.Balance)
	}
	if stats.OutgoingFromActors <= 0 {
		t.Error("OutgoingFromActors should include seeded actor sub-transactions")
	}
}

func TestActorLifecycleAndStats(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	actors, err := api.Actors.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(actors) != 5 {
		t.Fatalf("seeded actors = %d, want 5", len(actors))
	}

	created, err := api.Actors.Create(ctx, models.CreateActorRequest{Name: "Fernanda"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	renamed, err := api.Actors.Update(ctx, created.ID, models.UpdateActorRequest{Name: "Fernanda Silva"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if renamed.Name != "Fernanda Silva" {
		t.Errorf("Name = %q", renamed.Name)
	}
	if err := api.Actors.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	stats, err := api.Actors.Stats(ctx, &models.ActorStatsFilters{
		DueDateStart: "2026-01-01",
		DueDateEnd:   "2026-01-31",
	})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	// January seeds: Ana 189.50, Bruno 320.45.
	if stats.BiggestSpender != "Bruno" {
		t.Errorf("BiggestSpender = %q, want Bruno", stats.BiggestSpender)
	}
	if stats.SmallestSpender != "Ana" {
		t.Errorf("SmallestSpender = %q, want Ana", stats.SmallestSpender)
	}
	if stats.ActiveActors != 2 {
		t.Errorf("ActiveActors = %d, want 2", stats.ActiveActors)
	}
	if diff := stats.TotalSpent - 509.95; diff > 0.01 || diff < -0.01 {
		t.Errorf("TotalSpent = %v, want 509.95", stats.TotalSpent)
	}
}

func TestBillsAndUpload(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	bills, err := api.Bills.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("seeded bills = %d, want 1", len(bills))
	}

	detail, err := api.Bills.Get(ctx, bills[0].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(detail.Transactions) == 0 {
		t.Error("bill detail has no line items")
	}

	uploaded, err := api.Bills.UploadBill(ctx, "nova-fatura.pdf",
		strings.NewReader("%PDF-1.4 fake"), "senha", "gemini-2.5-flash-lite")
	if err != nil {
		t.Fatalf("UploadBill: %v", err)
	}
	if uploaded.FileName != "nova-fatura.pdf" {
		t.Errorf("FileName = %q", uploaded.FileName)
	}

	after, err := api.Bills.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != 2 {
		t.Errorf("bills after upload = %d, want 2", len(after))
	}
}

func TestChatFlowAndUsage(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	started, err := api.Chat.Start(ctx, "Quanto foi meu gasto este mês?", "")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if started.AIMessage.Role != models.RoleAssistant || started.AIMessage.Content == "" {
		t.Errorf("ai message = %+v", started.AIMessage)
	}
	if started.AIMessage.AICall == nil || started.AIMessage.AICall.Model != models.DefaultLLMModel {
		t.Errorf("ai call = %+v, want default model usage", started.AIMessage.AICall)
	}

	reply, err := api.Chat.Ask(ctx, started.Conversation.ID, "E qual é meu saldo?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !strings.Contains(strings.ToLower(reply.AIMessage.Content), "saldo") {
		t.Errorf("reply = %q, want balance answer", reply.AIMessage.Content)
	}

	conversations, err := api.Chat.ListConversations(ctx)
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(conversations) != 1 {
		t.Fatalf("conversations = %d, want 1", len(conversations))
	}

	messages, err := api.Chat.Messages(ctx, started.Conversation.ID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(messages) != 4 {
		t.Errorf("messages = %d, want 4", len(messages))
	}

	// Every reply leaves a usage row behind.
	calls, err := api.AI.Calls(ctx, nil)
	if err != nil {
		t.Fatalf("Calls: %v", err)
	}
	if len(calls) != 2 {
		t.Errorf("ai calls = %d, want 2", len(calls))
	}

	stats, err := api.AI.CallsStats(ctx, nil)
	if err != nil {
		t.Fatalf("CallsStats: %v", err)
	}
	if stats.TotalCalls != 2 || stats.TotalTokens == 0 {
		t.Errorf("stats = %+v", stats)
	}
	if _, ok := stats.ModelsStats[models.DefaultLLMModel]; !ok {
		t.Errorf("no per-model stats for %s", models.DefaultLLMModel)
	}
}

func TestAskUnknownConversation(t *testing.T) {
	api, _, _ := newTestBackend(t)
	login(t, api)

	_, err := api.Chat.Ask(context.Background(), 999, "oi")
	if !client.IsNotFound(err) {
		t.Errorf("err = %v, want 404", err)
	}
}

func TestEmbeddingsEndpoints(t *testing.T) {
	api, _, _ := newTestBackend(t)
	ctx := context.Background()
	login(t, api)

	items, err := api.AI.Embeddings(ctx, nil)
	if err != nil {
		t.Fatalf("Embeddings: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("embeddings = %d, want 2 seeded rows", len(items))
	}

	stats, err := api.AI.EmbeddingsStats(ctx, &models.AIDateFilters{
		DueDateStart: "2026-01-01",
		DueDateEnd:   "2026-01-02",
	})
	if err != nil {
		t.Fatalf("EmbeddingsStats: %v", err)
	}
	if stats.TotalEmbeddings != 1 {
		t.Errorf("TotalEmbeddings = %d, want 1 (date filter)", stats.TotalEmbeddings)
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	api, c, _ := newTestBackend(t)

	_, err := api.Transactions.List(context.Background(), nil)
	if !errors.Is(err, client.ErrSessionExpired) {
		t.Errorf("err = %v, want ErrSessionExpired", err)
	}
	if c.Tokens.GetAccessToken() != "" {
		t.Error("tokens present without login")
	}
}
