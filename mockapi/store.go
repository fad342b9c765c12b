// Package mockapi is the in-memory stand-in for the Fintrack backend. It
// serves the same HTTP contract against mutable in-memory state so the
// client can be developed and tested offline. It is development scaffolding,
// not a real backend: invariants are enforced only as far as the client
// needs them.
package mockapi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fintrack-labs/fintrack-go/models"
)

type userRecord struct {
	models.User
	passwordHash string
}

// Store holds all mock state behind one RWMutex. Handlers are the only
// callers; each public method is one atomic operation.
type Store struct {
	mu sync.RWMutex

	users           []*userRecord
	actors          []models.Actor
	transactions    []models.Transaction
	installments    map[int]installmentInfo
	subTransactions []models.SubTransaction
	bills           []models.Bill
	conversations   []models.ChatConversation
	aiCalls         []models.AICallItem
	embeddings      []models.EmbeddingItem

	nextUserID         int
	nextActorID        int
	nextTransactionID  int
	nextSubID          int
	nextBillID         int
	nextConversationID int
	nextMessageID      int
	nextAICallID       int
}

// installmentInfo links one installment of a recurrent transaction to its
// position in the series and to the first installment.
type installmentInfo struct {
	number int
	main   *int
}

func NewStore() *Store {
	return &Store{
		installments:       make(map[int]installmentInfo),
		nextUserID:         1,
		nextActorID:        1,
		nextTransactionID:  1,
		nextSubID:          1,
		nextBillID:         1,
		nextConversationID: 1,
		nextMessageID:      1,
		nextAICallID:       1,
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// ============================================================================
// USERS
// ============================================================================

var ErrEmailTaken = fmt.Errorf("user with this email already exists")

func (s *Store) CreateUser(email, firstName, lastName, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}

	rec := &userRecord{
		User: models.User{
			ID:        s.nextUserID,
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
		},
		passwordHash: passwordHash,
	}
	s.nextUserID++
	s.users = append(s.users, rec)

	user := rec.User
	return &user, nil
}

// FindUserByEmail returns the user and its password hash.
func (s *Store) FindUserByEmail(email string) (*models.User, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u.User
			return &user, u.passwordHash, true
		}
	}
	return nil, "", false
}

func (s *Store) GetUser(id int) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u.User
			return &user, true
		}
	}
	return nil, false
}

func (s *Store) UpdateProfile(id int, req models.UpdateProfileRequest) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID != id {
			continue
		}
		if u.Profile == nil {
			u.Profile = &models.Profile{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
		}
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
			u.Profile.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
			u.Profile.LastName = *req.LastName
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		if req.Bio != nil {
			u.Profile.Bio = *req.Bio
		}
		if req.Salary != nil {
			u.Profile.Salary = *req.Salary
		}
		user := u.User
		return &user, true
	}
	return nil, false
}

// ============================================================================
// ACTORS
// ============================================================================

func (s *Store) ListActors() []models.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actors := make([]models.Actor, len(s.actors))
	for i, a := range s.actors {
		actors[i] = a
		actors[i].TotalSpent = s.actorTotalLocked(a.ID, false)
	}
	return actors
}

func (s *Store) GetActor(id int) (*models.Actor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.actors {
		if a.ID == id {
			actor := a
			actor.TotalSpent = s.actorTotalLocked(id, false)
			actor.SubTransactions = s.subsByActorLocked(id)
			return &actor, true
		}
	}
	return nil, false
}

func (s *Store) CreateActor(name string) models.Actor {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor := models.Actor{ID: s.nextActorID, Name: name}
	s.nextActorID++
	s.actors = append(s.actors, actor)
	return actor
}

func (s *Store) UpdateActor(id int, name string) (*models.Actor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.actors {
		if s.actors[i].ID == id {
			s.actors[i].Name = name
			actor := s.actors[i]
			return &actor, true
		}
	}
	return nil, false
}

func (s *Store) DeleteActor(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.actors {
		if s.actors[i].ID == id {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			// Detach, don't delete, the actor's sub-transactions.
			for j := range s.subTransactions {
				if s.subTransactions[j].ActorID == id {
					s.subTransactions[j].ActorID = 0
					s.subTransactions[j].Actor = nil
				}
			}
			return true
		}
	}
	return false
}

// ActorStats aggregates spending per actor, bounded to a due-date range on
// the parent transactions when both bounds are given.
func (s *Store) ActorStats(dueDateStart, dueDateEnd string) models.ActorStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type bucket struct {
		name      string
		total     float64
		totalPaid float64
	}

	inRange := func(sub models.SubTransaction) bool {
		if dueDateStart == "" || dueDateEnd == "" {
			return true
		}
		parent, ok := s.transactionByIDLocked(sub.TransactionID)
		if !ok {
			return false
		}
		return parent.DueDate >= dueDateStart && parent.DueDate <= dueDateEnd
	}

	buckets := map[int]*bucket{}
	for _, sub := range s.subTransactions {
		if sub.ActorID == 0 || !inRange(sub) {
			continue
		}
		b, ok := buckets[sub.ActorID]
		if !ok {
			b = &bucket{name: s.actorNameLocked(sub.ActorID)}
			buckets[sub.ActorID] = b
		}
		amount := parseAmount(sub.Amount)
		b.total += amount
		if sub.PaidAt != "" {
			b.totalPaid += amount
		}
	}

	var stats models.ActorStats
	if len(buckets) == 0 {
		return stats
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].total > sorted[j].total })

	for _, b := range sorted {
		stats.TotalSpent += b.total
		stats.TotalSpentPaid += b.totalPaid
		if b.total > 0 {
			stats.ActiveActors++
		}
	}
	stats.BiggestSpender = sorted[0].name
	stats.BiggestSpenderAmount = sorted[0].total
	stats.SmallestSpender = sorted[len(sorted)-1].name
	stats.SmallestSpenderAmount = sorted[len(sorted)-1].total
	stats.AverageSpent = stats.TotalSpent / float64(len(sorted))
	return stats
}

func (s *Store) actorNameLocked(id int) string {
	for _, a := range s.actors {
		if a.ID == id {
			return a.Name
		}
	}
	return ""
}

func (s *Store) actorRefLocked(id int) *models.Actor {
	for _, a := range s.actors {
		if a.ID == id {
			return &models.Actor{ID: a.ID, Name: a.Name}
		}
	}
	return nil
}

func (s *Store) actorTotalLocked(id int, paidOnly bool) float64 {
	var total float64
	for _, sub := range s.subTransactions {
		if sub.ActorID != id {
			continue
		}
		if paidOnly && sub.PaidAt == "" {
			continue
		}
		total += parseAmount(sub.Amount)
	}
	return total
}

func (s *Store) subsByActorLocked(id int) []models.SubTransaction {
	var subs []models.SubTransaction
	for _, sub := range s.subTransactions {
		if sub.ActorID == id {
			subs = append(subs, sub)
		}
	}
	return subs
}

// ============================================================================
// TRANSACTIONS
// ============================================================================

func (s *Store) ListTransactions(month, year string, transactionType models.TransactionType) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Transaction{}
	for _, t := range s.transactions {
		if transactionType != "" && t.TransactionType != transactionType {
			continue
		}
		if month != "" && year != "" && !matchesMonth(t.DueDate, year, month) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func (s *Store) GetTransactionDetail(id int) (*models.TransactionDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactionByIDLocked(id)
	if !ok {
		return nil, false
	}

	detail := models.TransactionDetail{Transaction: *t, SubTransactions: []models.SubTransaction{}}
	for _, sub := range s.subTransactions {
		if sub.TransactionID == id {
			detail.SubTransactions = append(detail.SubTransactions, sub)
		}
	}
	if info, ok := s.installments[id]; ok {
		detail.InstallmentNumber = info.number
		detail.MainTransaction = info.main
	}
	return &detail, true
}

// CreateTransaction inserts a transaction. A recurrent one with a
// recurrence_count fans out into that many installments, due dates 30 days
// apart, each numbered and linked back to the first; the first installment
// is returned.
func (s *Store) CreateTransaction(req models.CreateTransactionRequest) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !req.IsRecurrent || req.RecurrenceCount == 0 {
		return s.insertTransactionLocked(req)
	}

	var first models.Transaction
	dueDate := req.DueDate
	for i := 0; i < req.RecurrenceCount; i++ {
		installment := req
		installment.DueDate = dueDate
		t := s.insertTransactionLocked(installment)

		info := installmentInfo{number: i + 1}
		if i == 0 {
			first = t
		} else {
			mainID := first.ID
			info.main = &mainID
		}
		s.installments[t.ID] = info
		dueDate = nextDueDate(dueDate)
	}
	return first
}

func (s *Store) insertTransactionLocked(req models.CreateTransactionRequest) models.Transaction {
	t := models.Transaction{
		ID:                    s.nextTransactionID,
		DueDate:               req.DueDate,
		TotalAmount:           req.TotalAmount,
		TransactionIdentifier: req.TransactionIdentifier,
		TransactionType:       req.TransactionType,
		IsSalary:              req.IsSalary,
		IsRecurrent:           req.IsRecurrent,
		RecurrenceCount:       req.RecurrenceCount,
		Category:              req.Category,
		CreatedAt:             now(),
	}
	s.nextTransactionID++
	s.transactions = append(s.transactions, t)
	return t
}

func nextDueDate(dueDate string) string {
	date, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return dueDate
	}
	return date.AddDate(0, 0, 30).Format("2006-01-02")
}

func (s *Store) UpdateTransaction(id int, req models.UpdateTransactionRequest) (*models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		t := &s.transactions[i]
		if req.DueDate != nil {
			t.DueDate = *req.DueDate
		}
		if req.TotalAmount != nil {
			t.TotalAmount = *req.TotalAmount
		}
		if req.TransactionIdentifier != nil {
			t.TransactionIdentifier = *req.TransactionIdentifier
		}
		if req.TransactionType != nil {
			t.TransactionType = *req.TransactionType
		}
		if req.IsSalary != nil {
			t.IsSalary = *req.IsSalary
		}
		if req.IsRecurrent != nil {
			t.IsRecurrent = *req.IsRecurrent
		}
		if req.Category != nil {
			t.Category = *req.Category
		}
		out := *t
		return &out, true
	}
	return nil, false
}

func (s *Store) DeleteTransaction(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			delete(s.installments, id)
			kept := s.subTransactions[:0]
			for _, sub := range s.subTransactions {
				if sub.TransactionID != id {
					kept = append(kept, sub)
				}
			}
			s.subTransactions = kept
			return true
		}
	}
	return false
}

// PayTransaction toggles the paid state: paying an already-paid transaction
// unpays it. With cascade the same toggle is applied to its
// sub-transactions.
func (s *Store) PayTransaction(id int, cascade bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		t := &s.transactions[i]
		paying := t.PaidAt == ""
		if paying {
			t.PaidAt = now()
		} else {
			t.PaidAt = ""
		}
		t.IsPaid = paying

		if cascade {
			for j := range s.subTransactions {
				if s.subTransactions[j].TransactionID != id {
					continue
				}
				if paying {
					s.subTransactions[j].PaidAt = t.PaidAt
				} else {
					s.subTransactions[j].PaidAt = ""
				}
			}
		}
		return true
	}
	return false
}

// RecalculateAmount sets the transaction total to the sum of its
// sub-transaction amounts.
func (s *Store) RecalculateAmount(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		var total float64
		for _, sub := range s.subTransactions {
			if sub.TransactionID == id {
				total += parseAmount(sub.Amount)
			}
		}
		s.transactions[i].TotalAmount = formatAmount(total)
		return true
	}
	return false
}

// GuessCategories assigns a category to every uncategorized sub-transaction
// of the transaction, keyword-matching the description the way the real
// backend's LLM call would. Returns the number updated, or -1 when the
// transaction does not exist.
func (s *Store) GuessCategories(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactionByIDLocked(id); !ok {
		return -1
	}

	updated := 0
	for i := range s.subTransactions {
		sub := &s.subTransactions[i]
		if sub.TransactionID != id || sub.Category != "" {
			continue
		}
		sub.Category = guessCategory(sub.Description)
		updated++
	}
	return updated
}

func (s *Store) TransactionStats(dueDate string) models.TransactionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var year, month string
	if dueDate != "" {
		parts := strings.SplitN(dueDate, "-", 3)
		if len(parts) >= 2 {
			year, month = parts[0], parts[1]
		}
	}

	var stats models.TransactionStats
	included := map[int]bool{}
	for _, t := range s.transactions {
		if year != "" && !matchesMonth(t.DueDate, year, month) {
			continue
		}
		included[t.ID] = true
		amount := parseAmount(t.TotalAmount)
		if t.TransactionType == models.TransactionIncoming {
			stats.IncomingTotal += amount
			if t.PaidAt != "" {
				stats.IncomingTotalPaid += amount
			}
		} else {
			stats.OutgoingTotal += amount
		}
	}
	stats.Balance = stats.IncomingTotal - stats.OutgoingTotal

	for _, sub := range s.subTransactions {
		if !included[sub.TransactionID] || sub.ActorID == 0 {
			continue
		}
		amount := parseAmount(sub.Amount)
		stats.OutgoingFromActors += amount
		if sub.PaidAt != "" {
			stats.OutgoingFromActorsPaid += amount
		}
	}
	return stats
}

func (s *Store) transactionByIDLocked(id int) (*models.Transaction, bool) {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return &s.transactions[i], true
		}
	}
	return nil, false
}

// ============================================================================
// SUB-TRANSACTIONS
// ============================================================================

func (s *Store) ListSubTransactions() []models.SubTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]models.SubTransaction, len(s.subTransactions))
	copy(subs, s.subTransactions)
	return subs
}

func (s *Store) GetSubTransaction(id int) (*models.SubTransaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subTransactions {
		if sub.ID == id {
			out := sub
			return &out, true
		}
	}
	return nil, false
}

var ErrNoParent = fmt.Errorf("transaction not found")

func (s *Store) CreateSubTransaction(req models.CreateSubTransactionRequest) (*models.SubTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := s.transactionByIDLocked(req.TransactionID)
	if !ok {
		return nil, ErrNoParent
	}

	sub := models.SubTransaction{
		ID:                      s.nextSubID,
		Date:                    req.Date,
		Description:             req.Description,
		Amount:                  req.Amount,
		InstallmentInfo:         req.InstallmentInfo,
		TransactionIdentifier:   parent.TransactionIdentifier,
		TransactionID:           req.TransactionID,
		ActorID:                 req.ActorID,
		Actor:                   s.actorRefLocked(req.ActorID),
		UserProvidedDescription: req.UserProvidedDescription,
		Category:                req.Category,
	}
	s.nextSubID++
	s.subTransactions = append(s.subTransactions, sub)

	out := sub
	return &out, nil
}

// UpdateSubTransaction applies the changed fields. With
// should_divide_for_actor plus an actor and an actor_amount, the actor's
// share is split off into a duplicated sub-transaction: the duplicate
// carries the share and the new actor, while the original keeps its own
// actor and is reduced by the share.
func (s *Store) UpdateSubTransaction(id int, req models.UpdateSubTransactionRequest) (*models.SubTransaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subTransactions {
		if s.subTransactions[i].ID != id {
			continue
		}

		dividing := req.ShouldDivideForActor != nil && *req.ShouldDivideForActor &&
			req.ActorID != nil && req.ActorAmount != nil
		if dividing {
			s.givePartToActorLocked(i, *req.ActorID, *req.ActorAmount)
		}

		sub := &s.subTransactions[i]
		if req.Date != nil {
			sub.Date = *req.Date
		}
		if req.Description != nil {
			sub.Description = *req.Description
		}
		if req.Amount != nil && !dividing {
			sub.Amount = *req.Amount
		}
		if req.InstallmentInfo != nil {
			sub.InstallmentInfo = *req.InstallmentInfo
		}
		// The new actor goes to the duplicate; the original keeps its own.
		if req.ActorID != nil && !dividing {
			sub.ActorID = *req.ActorID
			sub.Actor = s.actorRefLocked(*req.ActorID)
		}
		if req.UserProvidedDescription != nil {
			sub.UserProvidedDescription = *req.UserProvidedDescription
		}
		if req.Category != nil {
			sub.Category = *req.Category
		}
		out := *sub
		return &out, true
	}
	return nil, false
}

// givePartToActorLocked duplicates the sub-transaction at index i with the
// actor's share and reduces the original by that share. Caller holds the
// write lock; the append happens before the original is touched so the
// index stays valid.
func (s *Store) givePartToActorLocked(i, actorID int, share float64) {
	duplicate := s.subTransactions[i]
	duplicate.ID = s.nextSubID
	s.nextSubID++
	duplicate.Amount = formatAmount(share)
	duplicate.ActorID = actorID
	duplicate.Actor = s.actorRefLocked(actorID)
	duplicate.UserProvidedDescription = "Parte de " + s.actorNameLocked(actorID)
	s.subTransactions = append(s.subTransactions, duplicate)

	remaining := parseAmount(s.subTransactions[i].Amount) - share
	s.subTransactions[i].Amount = formatAmount(remaining)
}

func (s *Store) DeleteSubTransaction(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subTransactions {
		if s.subTransactions[i].ID == id {
			s.subTransactions = append(s.subTransactions[:i], s.subTransactions[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) PaySubTransaction(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subTransactions {
		if s.subTransactions[i].ID != id {
			continue
		}
		if s.subTransactions[i].PaidAt == "" {
			s.subTransactions[i].PaidAt = now()
		} else {
			s.subTransactions[i].PaidAt = ""
		}
		return true
	}
	return false
}

// ============================================================================
// HELPERS
// ============================================================================

func parseAmount(value string) float64 {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return amount
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// matchesMonth checks a "YYYY-MM-DD" date against year/month filter values,
// tolerating unpadded months ("1" vs "01").
func matchesMonth(date, year, month string) bool {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		return false
	}
	if parts[0] != year {
		return false
	}
	m1, err1 := strconv.Atoi(parts[1])
	m2, err2 := strconv.Atoi(month)
	return err1 == nil && err2 == nil && m1 == m2
}

func guessCategory(description string) string {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "mercado") || strings.Contains(desc, "supermercado"):
		return "food_grocery"
	case strings.Contains(desc, "restaurante") || strings.Contains(desc, "lanche"):
		return "food_restaurant"
	case strings.Contains(desc, "netflix") || strings.Contains(desc, "spotify") || strings.Contains(desc, "assinatura"):
		return "subscriptions"
	case strings.Contains(desc, "combust") || strings.Contains(desc, "gasolina"):
		return "transport_fuel"
	case strings.Contains(desc, "uber") || strings.Contains(desc, "99"):
		return "transport_apps"
	case strings.Contains(desc, "farm") || strings.Contains(desc, "remédio"):
		return "health_pharmacy"
	case strings.Contains(desc, "aluguel"):
		return "housing_rent"
	case strings.Contains(desc, "luz") || strings.Contains(desc, "energia"):
		return "bill_electricity"
	case strings.Contains(desc, "internet"):
		return "bill_internet"
	default:
		return "other"
	}
}
