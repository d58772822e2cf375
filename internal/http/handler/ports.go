package handler

import (
	"context"
	"net/http"

	"solpay/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

// SessionValidator checks a bearer token and returns the identity-provider
// subject it belongs to.
//
//counterfeiter:generate -o fake -fake-name SessionValidator . SessionValidator
type SessionValidator interface {
	Validate(token string) (string, error)
}

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Register(ctx context.Context, subjectID string, username, publicKey *string) (core.Account, bool, error)
	Account(ctx context.Context, subjectID string) (core.Account, error)
	AddContact(ctx context.Context, subjectID, username, publicKey string) (core.Contact, bool, error)
	ListContacts(ctx context.Context, subjectID string) ([]core.Contact, error)
	AllContacts(ctx context.Context, subjectID string) ([]core.Contact, error)
	SearchContacts(ctx context.Context, subjectID, term string, page, limit int) (core.ContactPage, error)
	FindRecipient(ctx context.Context, subjectID, publicKey string) (core.Contact, error)
}

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	CreateRequest(ctx context.Context, subjectID, recipientPublicKey, amount, description string) (core.PendingRequest, error)
	ListPending(ctx context.Context, recipientPublicKey string) ([]core.PendingRequest, error)
	Settle(ctx context.Context, recipientPublicKey, senderPublicKey, amount string) (int64, error)
	RecordTransaction(ctx context.Context, subjectID, signature, from, to, amount, priorityFee string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name PaymentService . PaymentService
type PaymentService interface {
	Submit(ctx context.Context, sub core.Submission) (core.Receipt, error)
}
