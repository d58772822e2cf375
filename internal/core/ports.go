package core

import (
	"context"

	sol "github.com/gagliardetto/solana-go"

	"solpay/internal/repository"
	"solpay/internal/solana"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name FeeEstimator . FeeEstimator
type FeeEstimator interface {
	CheckAffordable(ctx context.Context, address string, lamports uint64) bool
	EstimatePriorityFee(ctx context.Context) uint64
}

//counterfeiter:generate -o fake -fake-name TxBuilder . TxBuilder
type TxBuilder interface {
	RecentBlockhash(ctx context.Context) (solana.Blockhash, error)
	Build(sender, recipient string, lamports uint64, bh solana.Blockhash, priorityFee *uint64) (*sol.Transaction, error)
}

// Signer is the external wallet boundary: it authorizes and broadcasts a
// built transaction on behalf of the address it holds.
//
//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	Address() string
	SignAndSend(ctx context.Context, tx *sol.Transaction) (sol.Signature, error)
}

//counterfeiter:generate -o fake -fake-name Waiter . Waiter
type Waiter interface {
	AwaitTerminal(ctx context.Context, signature sol.Signature, lastValidBlockHeight uint64) error
}

//counterfeiter:generate -o fake -fake-name PaymentStore . PaymentStore
type PaymentStore interface {
	SaveTransaction(ctx context.Context, record repository.Transaction) (bool, error)
	SettlePendingRequests(ctx context.Context, recipientPublicKey, senderPublicKey, amount string) (int64, error)
}

//counterfeiter:generate -o fake -fake-name RequestStore . RequestStore
type RequestStore interface {
	GetUserBySubject(ctx context.Context, subjectID string) (repository.User, error)
	CreatePendingRequest(ctx context.Context, senderID, senderPublicKey, recipientPublicKey, amount, description string) (repository.PendingPayment, error)
	ListUnsettledByRecipient(ctx context.Context, recipientPublicKey string) ([]repository.PendingPayment, error)
	SettlePendingRequests(ctx context.Context, recipientPublicKey, senderPublicKey, amount string) (int64, error)
}

//counterfeiter:generate -o fake -fake-name AccountStore . AccountStore
type AccountStore interface {
	UpsertUser(ctx context.Context, subjectID string, username, publicKey *string) (repository.User, bool, error)
	GetUserBySubject(ctx context.Context, subjectID string) (repository.User, error)
	CreateContact(ctx context.Context, ownerID, username, publicKey string) (repository.Contact, bool, error)
	ListContacts(ctx context.Context, ownerID string) ([]repository.Contact, error)
	GetContactByAddress(ctx context.Context, ownerID, publicKey string) (repository.Contact, error)
	SearchContacts(ctx context.Context, ownerID, term string, page, limit int) ([]repository.Contact, int64, error)
}

// NameCache is the best-effort address-to-username cache. A miss or an
// unavailable cache simply sends the caller to the repository.
//
//counterfeiter:generate -o fake -fake-name NameCache . NameCache
type NameCache interface {
	Get(ctx context.Context, address string) (string, bool)
	Put(ctx context.Context, address, username string)
}
