package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"solpay/internal/metrics"
	"solpay/internal/repository"
)

var ErrSenderNotFound error = errors.New("sender is not a registered user")
var ErrSenderNoAddress error = errors.New("sender has no wallet address on record")
var ErrNoMatchingRequest error = errors.New("no matching payment request found")

// unknownSender is shown when a request's sender never registered a
// username. Applied when listing, never written to the row.
const unknownSender = "Unknown User"

// Ledger manages outstanding payment requests: a sender asks an address for
// money, the recipient later settles the request by paying.
type Ledger struct {
	repo     RequestStore
	payments PaymentStore
	names    NameCache
	logs     *zap.SugaredLogger
	metrics  *metrics.Metrics
}

func NewLedger(repo RequestStore, payments PaymentStore, names NameCache, logger *zap.SugaredLogger, m *metrics.Metrics) *Ledger {
	return &Ledger{
		repo:     repo,
		payments: payments,
		names:    names,
		logs:     logger,
		metrics:  m,
	}
}

// CreateRequest records that the user behind subjectID wants amount from
// recipientPublicKey. The sender must already exist and have a registered
// wallet address, since settlement matches on it.
func (l *Ledger) CreateRequest(ctx context.Context, subjectID, recipientPublicKey, amount, description string) (PendingRequest, error) {
	sender, err := l.repo.GetUserBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return PendingRequest{}, ErrSenderNotFound
		}
		return PendingRequest{}, fmt.Errorf("get sender: %w", err)
	}
	if sender.PublicKey == nil || *sender.PublicKey == "" {
		return PendingRequest{}, ErrSenderNoAddress
	}

	row, err := l.repo.CreatePendingRequest(ctx, sender.ID, *sender.PublicKey, recipientPublicKey, amount, description)
	if err != nil {
		return PendingRequest{}, fmt.Errorf("create request: %w", err)
	}

	if sender.Username != nil {
		l.names.Put(ctx, *sender.PublicKey, *sender.Username)
	}

	return PendingRequest{
		ID:                 row.ID,
		SenderUsername:     usernameOrFallback(sender.Username),
		SenderPublicKey:    row.SenderPublicKey,
		RecipientPublicKey: row.RecipientPublicKey,
		Amount:             row.Amount,
		Description:        row.Description,
		CreatedAt:          row.CreatedAt,
	}, nil
}

// ListPending returns the unsettled requests aimed at the address, newest
// first, with each sender's username resolved cache-first.
func (l *Ledger) ListPending(ctx context.Context, recipientPublicKey string) ([]PendingRequest, error) {
	rows, err := l.repo.ListUnsettledByRecipient(ctx, recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}

	requests := make([]PendingRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, PendingRequest{
			ID:                 row.ID,
			SenderUsername:     l.resolveSender(ctx, row),
			SenderPublicKey:    row.SenderPublicKey,
			RecipientPublicKey: row.RecipientPublicKey,
			Amount:             row.Amount,
			Description:        row.Description,
			CreatedAt:          row.CreatedAt,
		})
	}

	return requests, nil
}

// Settle marks every unsettled request matching the tuple as completed and
// reports how many rows it touched. Matching is by value, not id: the payer
// knows the addresses and the amount, never the request's id.
func (l *Ledger) Settle(ctx context.Context, recipientPublicKey, senderPublicKey, amount string) (int64, error) {
	count, err := l.repo.SettlePendingRequests(ctx, recipientPublicKey, senderPublicKey, amount)
	if err != nil {
		return 0, fmt.Errorf("settle requests: %w", err)
	}
	if count == 0 {
		return 0, ErrNoMatchingRequest
	}

	l.metrics.RequestsSettled.Add(float64(count))
	return count, nil
}

// RecordTransaction persists a completed broadcast on behalf of the user
// behind subjectID. The unique signature index absorbs duplicate reports, so
// recorded is false when the signature was already on file.
func (l *Ledger) RecordTransaction(ctx context.Context, subjectID, signature, from, to, amount, priorityFee string) (bool, error) {
	user, err := l.repo.GetUserBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, ErrSenderNotFound
		}
		return false, fmt.Errorf("get user: %w", err)
	}

	recorded, err := l.payments.SaveTransaction(ctx, repository.Transaction{
		Signature:   signature,
		From:        from,
		To:          to,
		Amount:      amount,
		PriorityFee: priorityFee,
		UserID:      user.ID,
	})
	if err != nil {
		return false, fmt.Errorf("save transaction: %w", err)
	}
	if !recorded {
		l.logs.Infow("duplicate transaction report ignored", "signature", signature)
	}

	return recorded, nil
}

func (l *Ledger) resolveSender(ctx context.Context, row repository.PendingPayment) string {
	if username, ok := l.names.Get(ctx, row.SenderPublicKey); ok {
		return username
	}

	if row.Sender.Username != nil && *row.Sender.Username != "" {
		l.names.Put(ctx, row.SenderPublicKey, *row.Sender.Username)
		return *row.Sender.Username
	}

	return unknownSender
}

func usernameOrFallback(username *string) string {
	if username == nil || *username == "" {
		return unknownSender
	}
	return *username
}
