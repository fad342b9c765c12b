// Package services provides one typed wrapper per backend operation. Each
// wrapper builds the URL and payload for its endpoint, performs the
// documented client-side validation, and delegates to the client dispatcher.
package services

import "github.com/fintrack-labs/fintrack-go/client"

// API bundles every per-resource service around one shared client.
type API struct {
	Auth            *AuthService
	Users           *UserService
	Transactions    *TransactionService
	SubTransactions *SubTransactionService
	Actors          *ActorService
	Bills           *BillService
	Chat            *ChatService
	AI              *AIService
}

func New(c *client.Client) *API {
	return &API{
		Auth:            NewAuthService(c),
		Users:           NewUserService(c),
		Transactions:    NewTransactionService(c),
		SubTransactions: NewSubTransactionService(c),
		Actors:          NewActorService(c),
		Bills:           NewBillService(c),
		Chat:            NewChatService(c),
		AI:              NewAIService(c),
	}
}
