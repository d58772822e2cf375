package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"solpay/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrContactNotFound error = errors.New("contact not found")

type PaymentRepository struct {
	db Storage
}

func NewPaymentRepository(db Storage) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

func (r *PaymentRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Contact{}, &PendingPayment{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// UpsertUser returns the user registered for the identity-provider subject,
// creating one on first visit. The subject id is immutable; username and
// public key are only filled in when the row is first written.
func (r *PaymentRepository) UpsertUser(ctx context.Context, subjectID string, username, publicKey *string) (User, bool, error) {
	var existing User
	err := r.db.GetOneBy(ctx, "subject_id", subjectID, &existing)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return User{}, false, fmt.Errorf("get user by subject: %w", err)
	}

	user := User{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		Username:  username,
		PublicKey: publicKey,
	}

	created, err := r.db.CreateIgnore(ctx, &user, "subject_id")
	if err != nil {
		return User{}, false, fmt.Errorf("create user: %w", err)
	}
	if !created {
		// lost the race to a concurrent first visit
		if err := r.db.GetOneBy(ctx, "subject_id", subjectID, &existing); err != nil {
			return User{}, false, fmt.Errorf("get user after conflict: %w", err)
		}
		return existing, false, nil
	}

	return user, true, nil
}

func (r *PaymentRepository) GetUserBySubject(ctx context.Context, subjectID string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "subject_id", subjectID, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by subject: %w", err)
	}
	return user, nil
}

// CreateContact adds a contact for the owner, or returns the existing row when
// the (owner, address) pair is already present. The unique index makes the
// insert race-free.
func (r *PaymentRepository) CreateContact(ctx context.Context, ownerID, username, publicKey string) (Contact, bool, error) {
	contact := Contact{
		ID:        uuid.NewString(),
		AddedByID: ownerID,
		Username:  username,
		PublicKey: publicKey,
	}

	created, err := r.db.CreateIgnore(ctx, &contact, "added_by_id", "public_key")
	if err != nil {
		return Contact{}, false, fmt.Errorf("create contact: %w", err)
	}
	if created {
		return contact, true, nil
	}

	existing, err := r.GetContactByAddress(ctx, ownerID, publicKey)
	if err != nil {
		return Contact{}, false, fmt.Errorf("get contact after conflict: %w", err)
	}
	return existing, false, nil
}

func (r *PaymentRepository) ListContacts(ctx context.Context, ownerID string) ([]Contact, error) {
	contacts := []Contact{}
	err := r.db.FindWhere(ctx, &contacts, "created_at DESC", map[string]any{"added_by_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (r *PaymentRepository) GetContactByAddress(ctx context.Context, ownerID, publicKey string) (Contact, error) {
	contacts := []Contact{}
	err := r.db.FindWhere(ctx, &contacts, "", map[string]any{
		"added_by_id": ownerID,
		"public_key":  publicKey,
	})
	if err != nil {
		return Contact{}, fmt.Errorf("get contact by address: %w", err)
	}
	if len(contacts) == 0 {
		return Contact{}, ErrContactNotFound
	}
	return contacts[0], nil
}

func (r *PaymentRepository) SearchContacts(ctx context.Context, ownerID, term string, page, limit int) ([]Contact, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	contacts := []Contact{}
	total, err := r.db.SearchPage(ctx, &contacts,
		map[string]any{"added_by_id": ownerID},
		[]string{"username", "public_key"},
		term, "created_at DESC", offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("search contacts: %w", err)
	}

	return contacts, total, nil
}

func (r *PaymentRepository) CreatePendingRequest(ctx context.Context, senderID, senderPublicKey, recipientPublicKey, amount, description string) (PendingPayment, error) {
	request := PendingPayment{
		ID:                 uuid.NewString(),
		SenderID:           senderID,
		SenderPublicKey:    senderPublicKey,
		RecipientPublicKey: recipientPublicKey,
		Amount:             amount,
		Description:        description,
		IsCompleted:        false,
	}

	if err := r.db.Create(ctx, &request); err != nil {
		return PendingPayment{}, fmt.Errorf("create pending request: %w", err)
	}

	return request, nil
}

func (r *PaymentRepository) ListUnsettledByRecipient(ctx context.Context, recipientPublicKey string) ([]PendingPayment, error) {
	requests := []PendingPayment{}
	err := r.db.FindWhere(ctx, &requests, "created_at DESC", map[string]any{
		"recipient_public_key": recipientPublicKey,
		"is_completed":         false,
	}, "Sender")
	if err != nil {
		return nil, fmt.Errorf("list unsettled requests: %w", err)
	}
	return requests, nil
}

// SettlePendingRequests marks every unsettled request matching the value tuple
// as completed. The is_completed guard inside the single UPDATE makes repeated
// calls idempotent: a second settle of the same tuple touches zero rows.
func (r *PaymentRepository) SettlePendingRequests(ctx context.Context, recipientPublicKey, senderPublicKey, amount string) (int64, error) {
	count, err := r.db.UpdateWhere(ctx, &PendingPayment{},
		map[string]any{
			"recipient_public_key": recipientPublicKey,
			"sender_public_key":    senderPublicKey,
			"amount":               amount,
			"is_completed":         false,
		},
		map[string]any{"is_completed": true})
	if err != nil {
		return 0, fmt.Errorf("settle pending requests: %w", err)
	}
	return count, nil
}

// SaveTransaction records a confirmed broadcast. The unique signature index
// silently drops duplicate submissions; created reports whether a new row was
// written.
func (r *PaymentRepository) SaveTransaction(ctx context.Context, record Transaction) (bool, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.PriorityFee == "" {
		record.PriorityFee = "disabled"
	}

	created, err := r.db.CreateIgnore(ctx, &record, "signature")
	if err != nil {
		return false, fmt.Errorf("save transaction: %w", err)
	}
	return created, nil
}
