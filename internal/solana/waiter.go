package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

var ErrBlockhashExpired error = errors.New("transaction expired before confirmation")
var ErrTransactionFailed error = errors.New("transaction failed on chain")

const defaultPollInterval = 2 * time.Second

// ConfirmWaiter polls signature statuses until a submitted transaction
// reaches a terminal outcome.
type ConfirmWaiter struct {
	client       RPCClient
	logs         *zap.SugaredLogger
	pollInterval time.Duration
}

func NewConfirmWaiter(client RPCClient, logger *zap.SugaredLogger) *ConfirmWaiter {
	return &ConfirmWaiter{
		client:       client,
		logs:         logger,
		pollInterval: defaultPollInterval,
	}
}

// AwaitTerminal blocks until the signature is confirmed or finalized, the
// transaction fails on chain, or the blockhash it was built against expires.
// Expiry means the transaction will never land, not that it failed: the
// cluster has moved past the last block height at which it was valid.
func (w *ConfirmWaiter) AwaitTerminal(ctx context.Context, signature solana.Signature, lastValidBlockHeight uint64) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		status, err := w.checkStatus(ctx, signature)
		if err == nil && status != nil {
			if status.Err != nil {
				return fmt.Errorf("%w: %v", ErrTransactionFailed, status.Err)
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}
		if err != nil {
			w.logs.Errorw("signature status query failed", "error", err, "signature", signature.String())
		}

		// Unknown signatures stay retriable until the blockhash window
		// closes; only then is the transaction provably dead.
		if status == nil {
			height, heightErr := w.client.GetBlockHeight(ctx, rpc.CommitmentConfirmed)
			if heightErr != nil {
				w.logs.Errorw("block height query failed", "error", heightErr)
			} else if height > lastValidBlockHeight {
				return ErrBlockhashExpired
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *ConfirmWaiter) checkStatus(ctx context.Context, signature solana.Signature) (*rpc.SignatureStatusesResult, error) {
	result, err := w.client.GetSignatureStatuses(ctx, false, signature)
	if err != nil {
		return nil, fmt.Errorf("get signature statuses: %w", err)
	}
	if result == nil || len(result.Value) == 0 {
		return nil, nil
	}
	return result.Value[0], nil
}
