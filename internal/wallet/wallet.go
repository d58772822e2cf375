package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

var ErrUserDeclined error = errors.New("transaction was declined")
var ErrInvalidTransaction error = errors.New("transaction references an invalid account")
var ErrSigningFailed error = errors.New("signing or sending the transaction failed")

// KeypairSigner signs with a locally held private key and broadcasts through
// the RPC node. It stands in for a browser wallet in server-side flows.
type KeypairSigner struct {
	key    solana.PrivateKey
	client Sender
}

func NewKeypairSigner(secret string, client Sender) (*KeypairSigner, error) {
	key, err := solana.PrivateKeyFromBase58(secret)
	if err != nil {
		return nil, fmt.Errorf("parse wallet secret: %w", err)
	}

	return &KeypairSigner{
		key:    key,
		client: client,
	}, nil
}

// PublicKey returns the signer's wallet address.
func (s *KeypairSigner) PublicKey() solana.PublicKey {
	return s.key.PublicKey()
}

// Address returns the wallet address in base58 form.
func (s *KeypairSigner) Address() string {
	return s.key.PublicKey().String()
}

// SignAndSend signs the transaction and submits it to the network. Errors
// are classified so callers can surface the right message.
func (s *KeypairSigner) SignAndSend(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(s.key.PublicKey()) {
			return &s.key
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %s", ErrSigningFailed, err)
	}

	signature, err := s.client.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, Classify(err)
	}

	return signature, nil
}

// Classify maps a raw wallet or RPC error onto the sentinel the payment flow
// keys its user-facing messages off.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUserDeclined) || errors.Is(err, ErrInvalidTransaction) || errors.Is(err, ErrSigningFailed) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "user rejected"):
		return fmt.Errorf("%w: %s", ErrUserDeclined, err)
	case strings.Contains(msg, "invalid account"):
		return fmt.Errorf("%w: %s", ErrInvalidTransaction, err)
	default:
		return fmt.Errorf("%w: %s", ErrSigningFailed, err)
	}
}
