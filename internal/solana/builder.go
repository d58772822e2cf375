package solana

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
)

var ErrInvalidRecipient error = errors.New("recipient address is not a valid public key")
var ErrInvalidSender error = errors.New("sender address is not a valid public key")

var computeBudgetProgramID = solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")

const setComputeUnitLimitInstruction uint8 = 2
const setComputeUnitPriceInstruction uint8 = 3

// transferComputeUnitLimit bounds a plain transfer well under the 200k
// default so the priority fee bid stays cheap.
const transferComputeUnitLimit uint32 = 100_000

// TxBuilder assembles native SOL transfer transactions.
type TxBuilder struct {
	client RPCClient
}

func NewTxBuilder(client RPCClient) *TxBuilder {
	return &TxBuilder{
		client: client,
	}
}

// RecentBlockhash fetches a blockhash the network will accept for the next
// few minutes, along with its expiry height.
func (b *TxBuilder) RecentBlockhash(ctx context.Context) (Blockhash, error) {
	result, err := b.client.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return Blockhash{}, fmt.Errorf("get latest blockhash: %w", err)
	}

	return Blockhash{
		Hash:                 result.Value.Blockhash,
		LastValidBlockHeight: result.Value.LastValidBlockHeight,
	}, nil
}

// Build assembles an unsigned transfer of lamports from sender to recipient.
// When priorityFee is non-nil a compute-unit price instruction is prepended;
// a nil priorityFee produces exactly the plain transfer message.
func (b *TxBuilder) Build(sender, recipient string, lamports uint64, bh Blockhash, priorityFee *uint64) (*solana.Transaction, error) {
	from, err := solana.PublicKeyFromBase58(sender)
	if err != nil {
		return nil, ErrInvalidSender
	}

	to, err := solana.PublicKeyFromBase58(recipient)
	if err != nil {
		return nil, ErrInvalidRecipient
	}

	if lamports == 0 {
		return nil, ErrInvalidAmount
	}

	instructions := []solana.Instruction{}
	if priorityFee != nil {
		instructions = append(instructions,
			computeUnitLimitInstruction(transferComputeUnitLimit),
			computeUnitPriceInstruction(*priorityFee),
		)
	}
	instructions = append(instructions, system.NewTransferInstruction(lamports, from, to).Build())

	tx, err := solana.NewTransaction(
		instructions,
		bh.Hash,
		solana.TransactionPayer(from),
	)
	if err != nil {
		return nil, fmt.Errorf("assemble transaction: %w", err)
	}

	return tx, nil
}

// computeUnitPriceInstruction bids microLamports per compute unit. The data
// layout is the SetComputeUnitPrice discriminator followed by the price as a
// little-endian u64.
func computeUnitPriceInstruction(microLamports uint64) solana.Instruction {
	data := make([]byte, 9)
	data[0] = setComputeUnitPriceInstruction
	binary.LittleEndian.PutUint64(data[1:], microLamports)

	return solana.NewInstruction(computeBudgetProgramID, solana.AccountMetaSlice{}, data)
}

func computeUnitLimitInstruction(units uint32) solana.Instruction {
	data := make([]byte, 5)
	data[0] = setComputeUnitLimitInstruction
	binary.LittleEndian.PutUint32(data[1:], units)

	return solana.NewInstruction(computeBudgetProgramID, solana.AccountMetaSlice{}, data)
}
