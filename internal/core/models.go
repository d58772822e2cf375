package core

import "time"

// State names the step the submission workflow is currently in.
type State string

const (
	StateIdle              State = "idle"
	StateValidating        State = "validating"
	StateEstimatingFee     State = "estimating_fee"
	StateBuilding          State = "building"
	StateAwaitingSignature State = "awaiting_signature"
	StateConfirming        State = "confirming"
	StatePersisting        State = "persisting"
	StateSuccess           State = "success"
	StateError             State = "error"
)

const (
	StatusInfo    = "info"
	StatusSuccess = "success"
	StatusError   = "error"
)

// Status is the user-visible progress message emitted at each transition.
// Rendering it is the caller's concern.
type Status struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Detail string `json:"detail,omitempty"`
}

// Submission carries everything one payment needs. SettleRequest marks a
// submission triggered from a pending request, in which case the matching
// ledger rows are settled after confirmation.
type Submission struct {
	UserID         string
	Recipient      string
	Amount         string
	Description    string
	UsePriorityFee bool
	SettleRequest  bool
}

// Receipt reports a successful submission.
type Receipt struct {
	Signature    string `json:"signature"`
	From         string `json:"from"`
	To           string `json:"to"`
	Amount       string `json:"amount"`
	PriorityFee  string `json:"priorityFee"`
	SettledCount int64  `json:"settledCount"`
	Recorded     bool   `json:"recorded"`
}

// PendingRequest is the read model for an outstanding payment request. The
// sender's username is resolved at read time and never stored on the row.
type PendingRequest struct {
	ID                 string    `json:"id"`
	SenderUsername     string    `json:"senderUsername"`
	SenderPublicKey    string    `json:"senderPublicKey"`
	RecipientPublicKey string    `json:"recipientPublicKey"`
	Amount             string    `json:"amount"`
	Description        string    `json:"description,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
