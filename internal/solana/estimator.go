package solana

import (
	"context"
	"sort"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// PriorityFeeFloor is the minimum bid in micro-lamports per compute unit. A
// lower bid starves under congestion, so estimates are clamped up to it.
const PriorityFeeFloor uint64 = 1000

type FeeEstimator struct {
	client RPCClient
	logs   *zap.SugaredLogger
}

func NewFeeEstimator(client RPCClient, logger *zap.SugaredLogger) *FeeEstimator {
	return &FeeEstimator{
		client: client,
		logs:   logger,
	}
}

// CheckAffordable reports whether the address holds at least the requested
// lamports. It fails closed: any balance-query error counts as unaffordable.
func (e *FeeEstimator) CheckAffordable(ctx context.Context, address string, lamports uint64) bool {
	account, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return false
	}

	result, err := e.client.GetBalance(ctx, account, rpc.CommitmentConfirmed)
	if err != nil {
		e.logs.Errorw("balance query failed", "error", err, "address", address)
		return false
	}

	return result.Value >= lamports
}

// EstimatePriorityFee derives a bid from the recently observed per-transaction
// priority fees. The median resists outlier fee spikes better than the mean.
// No samples, or an RPC failure, falls back to the floor.
func (e *FeeEstimator) EstimatePriorityFee(ctx context.Context) uint64 {
	samples, err := e.client.GetRecentPrioritizationFees(ctx, nil)
	if err != nil {
		e.logs.Errorw("priority fee query failed", "error", err)
		return PriorityFeeFloor
	}
	if len(samples) == 0 {
		return PriorityFeeFloor
	}

	fees := make([]uint64, len(samples))
	for i, sample := range samples {
		fees[i] = sample.PrioritizationFee
	}
	sort.Slice(fees, func(i, j int) bool { return fees[i] < fees[j] })

	var median uint64
	mid := len(fees) / 2
	if len(fees)%2 == 0 {
		median = (fees[mid-1] + fees[mid]) / 2
	} else {
		median = fees[mid]
	}

	if median < PriorityFeeFloor {
		return PriorityFeeFloor
	}
	return median
}
