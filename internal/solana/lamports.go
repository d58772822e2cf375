package solana

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const lamportsPerSOL = 1_000_000_000
const solDecimals = 9

var ErrInvalidAmount error = errors.New("amount must be a positive number")

// LamportsFromSOL converts a decimal SOL string to lamports without going
// through a float, so "1.5" is exactly 1500000000 and sub-lamport precision
// is rejected rather than rounded.
func LamportsFromSOL(amount string) (uint64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, ErrInvalidAmount
	}

	whole, frac := amount, ""
	if idx := strings.IndexByte(amount, '.'); idx >= 0 {
		whole, frac = amount[:idx], amount[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > solDecimals {
		return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, solDecimals)
	}

	wholePart, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	var fracPart uint64
	if frac != "" {
		padded := frac + strings.Repeat("0", solDecimals-len(frac))
		fracPart, err = strconv.ParseUint(padded, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
	}

	if wholePart > (1<<64-1)/lamportsPerSOL {
		return 0, fmt.Errorf("%w: value out of range", ErrInvalidAmount)
	}

	lamports := wholePart * lamportsPerSOL
	if lamports > (1<<64-1)-fracPart {
		return 0, fmt.Errorf("%w: value out of range", ErrInvalidAmount)
	}
	lamports += fracPart
	if lamports == 0 {
		return 0, ErrInvalidAmount
	}

	return lamports, nil
}
