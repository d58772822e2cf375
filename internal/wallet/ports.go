package wallet

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Sender is the RPC surface the keypair signer needs to broadcast.
//
//counterfeiter:generate -o fake -fake-name Sender . Sender
type Sender interface {
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}
