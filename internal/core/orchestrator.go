package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"solpay/internal/metrics"
	"solpay/internal/repository"
	"solpay/internal/solana"
	"solpay/internal/wallet"
)

var ErrSubmissionInFlight error = errors.New("a payment is already in progress")
var ErrWalletNotConnected error = errors.New("no wallet is connected")
var ErrMissingFields error = errors.New("recipient and amount are required")
var ErrInsufficientBalance error = errors.New("insufficient balance")

// DefaultDisplayWindow is how long a terminal status stays visible before the
// workflow reverts to idle. A display affordance, not a retry trigger.
const DefaultDisplayWindow = 5 * time.Second

// Orchestrator sequences one payment submission at a time through
// validation, fee estimation, building, signing, confirmation and
// bookkeeping. Concurrent submits are rejected while one is in flight.
type Orchestrator struct {
	estimator FeeEstimator
	builder   TxBuilder
	signer    Signer
	waiter    Waiter
	payments  PaymentStore
	logs      *zap.SugaredLogger
	metrics   *metrics.Metrics
	listener  func(Status)

	mx            sync.Mutex
	state         State
	inputs        Submission
	displayWindow time.Duration
}

// NewOrchestrator wires the submission workflow. signer may be nil when no
// wallet is configured; Submit then fails validation. listener may be nil.
func NewOrchestrator(estimator FeeEstimator, builder TxBuilder, signer Signer, waiter Waiter, payments PaymentStore, logger *zap.SugaredLogger, m *metrics.Metrics, listener func(Status)) *Orchestrator {
	return &Orchestrator{
		estimator:     estimator,
		builder:       builder,
		signer:        signer,
		waiter:        waiter,
		payments:      payments,
		logs:          logger,
		metrics:       m,
		listener:      listener,
		state:         StateIdle,
		displayWindow: DefaultDisplayWindow,
	}
}

// SetDisplayWindow overrides how long terminal states linger before the
// workflow returns to idle.
func (o *Orchestrator) SetDisplayWindow(d time.Duration) {
	o.mx.Lock()
	defer o.mx.Unlock()
	o.displayWindow = d
}

// State reports the workflow's current step.
func (o *Orchestrator) State() State {
	o.mx.Lock()
	defer o.mx.Unlock()
	return o.state
}

// Inputs returns the last submission's fields. They are preserved on error
// so the user can correct and resubmit, and cleared on success.
func (o *Orchestrator) Inputs() Submission {
	o.mx.Lock()
	defer o.mx.Unlock()
	return o.inputs
}

// Submit drives a single payment end to end. Exactly one submission may be
// in flight; a second call while the first is running fails with
// ErrSubmissionInFlight and does not broadcast anything.
func (o *Orchestrator) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	o.mx.Lock()
	if o.state != StateIdle {
		o.mx.Unlock()
		return Receipt{}, ErrSubmissionInFlight
	}
	o.state = StateValidating
	o.inputs = sub
	o.mx.Unlock()

	receipt, err := o.run(ctx, sub)
	if err != nil {
		o.finish(StateError, false)
		return Receipt{}, err
	}

	o.finish(StateSuccess, true)
	return receipt, nil
}

func (o *Orchestrator) run(ctx context.Context, sub Submission) (Receipt, error) {
	if o.signer == nil {
		return Receipt{}, o.fail(ErrWalletNotConnected, "Please connect your wallet first")
	}
	if sub.Recipient == "" || sub.Amount == "" {
		return Receipt{}, o.fail(ErrMissingFields, "Please fill in all fields")
	}

	lamports, err := solana.LamportsFromSOL(sub.Amount)
	if err != nil {
		return Receipt{}, o.fail(err, "Amount must be a positive number")
	}

	sender := o.signer.Address()
	if !o.estimator.CheckAffordable(ctx, sender, lamports) {
		return Receipt{}, o.fail(ErrInsufficientBalance, "Insufficient balance for this payment")
	}

	var priorityFee *uint64
	if sub.UsePriorityFee {
		o.transition(StateEstimatingFee, "Estimating network fee...")
		fee := o.estimator.EstimatePriorityFee(ctx)
		priorityFee = &fee
	}

	o.transition(StateBuilding, "Preparing transaction...")
	bh, err := o.builder.RecentBlockhash(ctx)
	if err != nil {
		return Receipt{}, o.fail(err, "Could not reach the network, please try again")
	}

	tx, err := o.builder.Build(sender, sub.Recipient, lamports, bh, priorityFee)
	if err != nil {
		switch {
		case errors.Is(err, solana.ErrInvalidRecipient):
			return Receipt{}, o.fail(err, "Invalid recipient address")
		case errors.Is(err, solana.ErrInvalidAmount):
			return Receipt{}, o.fail(err, "Amount must be a positive number")
		default:
			return Receipt{}, o.fail(err, "Could not prepare the transaction")
		}
	}

	o.transition(StateAwaitingSignature, "Waiting for wallet approval...")
	signature, err := o.signer.SignAndSend(ctx, tx)
	if err != nil {
		classified := wallet.Classify(err)
		switch {
		case errors.Is(classified, wallet.ErrUserDeclined):
			return Receipt{}, o.fail(classified, "Transaction was declined in the wallet")
		case errors.Is(classified, wallet.ErrInvalidTransaction):
			return Receipt{}, o.fail(classified, "Transaction references an invalid account")
		default:
			return Receipt{}, o.fail(classified, "Failed to send the transaction")
		}
	}

	o.transition(StateConfirming, "Confirming transaction...")
	started := time.Now()
	err = o.waiter.AwaitTerminal(ctx, signature, bh.LastValidBlockHeight)
	if err != nil {
		switch {
		case errors.Is(err, solana.ErrBlockhashExpired):
			return Receipt{}, o.fail(err, "Transaction expired, please try again")
		case errors.Is(err, solana.ErrTransactionFailed):
			return Receipt{}, o.fail(err, "Transaction failed")
		default:
			return Receipt{}, o.fail(err, "Could not confirm the transaction")
		}
	}
	o.metrics.ConfirmationSeconds.Observe(time.Since(started).Seconds())

	// The payment is now settled on chain. Everything below is bookkeeping
	// and must never turn the outcome into a failure.
	o.transition(StatePersisting, "Recording transaction...")
	receipt := Receipt{
		Signature:   signature.String(),
		From:        sender,
		To:          sub.Recipient,
		Amount:      sub.Amount,
		PriorityFee: priorityFeeLabel(priorityFee),
	}

	recorded, err := o.payments.SaveTransaction(ctx, repository.Transaction{
		Signature:   receipt.Signature,
		From:        sender,
		To:          sub.Recipient,
		Amount:      sub.Amount,
		PriorityFee: receipt.PriorityFee,
		UserID:      sub.UserID,
	})
	if err != nil {
		o.logs.Errorw("transaction record not persisted", "error", err, "signature", receipt.Signature)
		o.metrics.Errors.WithLabelValues("persistence").Inc()
	}
	receipt.Recorded = recorded

	if sub.SettleRequest {
		// On the pending-request row the requester's desired payer is the
		// recipient and the requester's own address is the sender, so the
		// tuple is matched with this payment's direction swapped.
		count, err := o.payments.SettlePendingRequests(ctx, sender, sub.Recipient, sub.Amount)
		if err != nil {
			o.logs.Errorw("pending request not settled", "error", err, "signature", receipt.Signature)
			o.metrics.Errors.WithLabelValues("settlement").Inc()
		} else if count == 0 {
			o.logs.Infow("no pending request matched the payment", "signature", receipt.Signature)
		} else {
			o.metrics.RequestsSettled.Add(float64(count))
		}
		receipt.SettledCount = count
	}

	o.metrics.PaymentsSubmitted.WithLabelValues("success").Inc()
	o.notify(Status{Kind: StatusSuccess, Text: "Payment sent successfully"})
	return receipt, nil
}

// finish moves the workflow to a terminal state and schedules the revert to
// idle after the display window. Success clears the preserved inputs.
func (o *Orchestrator) finish(terminal State, clearInputs bool) {
	o.mx.Lock()
	o.state = terminal
	if clearInputs {
		o.inputs = Submission{}
	}
	window := o.displayWindow
	o.mx.Unlock()

	time.AfterFunc(window, func() {
		o.mx.Lock()
		defer o.mx.Unlock()
		if o.state == StateSuccess || o.state == StateError {
			o.state = StateIdle
		}
	})
}

func (o *Orchestrator) transition(next State, text string) {
	o.mx.Lock()
	o.state = next
	o.mx.Unlock()

	o.notify(Status{Kind: StatusInfo, Text: text})
}

func (o *Orchestrator) fail(err error, text string) error {
	o.logs.Errorw("payment submission failed", "error", err)
	o.metrics.PaymentsSubmitted.WithLabelValues("failure").Inc()
	o.notify(Status{Kind: StatusError, Text: text, Detail: err.Error()})
	return fmt.Errorf("%s: %w", text, err)
}

func (o *Orchestrator) notify(status Status) {
	if o.listener != nil {
		o.listener(status)
	}
}

func priorityFeeLabel(fee *uint64) string {
	if fee == nil {
		return "disabled"
	}
	return strconv.FormatUint(*fee, 10)
}
