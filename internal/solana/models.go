package solana

import "github.com/gagliardetto/solana-go"

// Blockhash pairs a recent blockhash with the last block height at which the
// network will still accept transactions bound to it.
type Blockhash struct {
	Hash                 solana.Hash
	LastValidBlockHeight uint64
}
