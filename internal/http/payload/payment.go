package payload

import (
	"github.com/jellydator/validation"

	"solpay/internal/core"
)

type CreatePaymentRequest struct {
	RecipientPublicKey string `json:"recipientPublicKey"`
	Amount             string `json:"amount"`
	Description        string `json:"description"`
}

func (p CreatePaymentRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.RecipientPublicKey, validation.Required, validation.Length(32, 44)),
		validation.Field(&p.Amount, amountRules()...),
		validation.Field(&p.Description, validation.Length(0, 256)),
	)
}

type SettlePaymentRequest struct {
	RecipientPublicKey string `json:"recipientPublicKey"`
	SenderPublicKey    string `json:"senderPublicKey"`
	Amount             string `json:"amount"`
}

func (p SettlePaymentRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.RecipientPublicKey, validation.Required, validation.Length(32, 44)),
		validation.Field(&p.SenderPublicKey, validation.Required, validation.Length(32, 44)),
		validation.Field(&p.Amount, amountRules()...),
	)
}

type StoreTransactionRequest struct {
	Signature   string `json:"signature"`
	From        string `json:"from"`
	To          string `json:"to"`
	Amount      string `json:"amount"`
	PriorityFee string `json:"priorityFee"`
}

func (p StoreTransactionRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Signature, validation.Required, validation.Length(64, 88)),
		validation.Field(&p.From, validation.Required, validation.Length(32, 44)),
		validation.Field(&p.To, validation.Required, validation.Length(32, 44)),
		validation.Field(&p.Amount, amountRules()...),
		validation.Field(&p.PriorityFee, validation.Length(0, 20)),
	)
}

type SendPaymentRequest struct {
	Recipient      string `json:"recipient"`
	Amount         string `json:"amount"`
	Description    string `json:"description"`
	UsePriorityFee bool   `json:"usePriorityFee"`
	SettleRequest  bool   `json:"settleRequest"`
}

func (p SendPaymentRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Recipient, validation.Required, validation.Length(32, 44)),
		validation.Field(&p.Amount, amountRules()...),
		validation.Field(&p.Description, validation.Length(0, 256)),
	)
}

func (p SendPaymentRequest) ToSubmission(userID string) core.Submission {
	return core.Submission{
		UserID:         userID,
		Recipient:      p.Recipient,
		Amount:         p.Amount,
		Description:    p.Description,
		UsePriorityFee: p.UsePriorityFee,
		SettleRequest:  p.SettleRequest,
	}
}
