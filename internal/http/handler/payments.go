package handler

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"solpay/internal/core"
	"solpay/internal/http/payload"
	"solpay/internal/solana"
	"solpay/internal/wallet"
)

var (
	CreatePayment    = "POST /api/payment/create"
	ListPending      = "GET /api/payment/pending"
	SettlePayment    = "POST /api/payment/update"
	StoreTransaction = "POST /api/transaction/store"
	SendPayment      = "POST /api/payment/send"
)

type PaymentHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	sessions         SessionValidator
	ledger           LedgerService
	accounts         AccountService
	payments         PaymentService
}

func NewPaymentHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, sessions SessionValidator, ledger LedgerService, accounts AccountService, payments PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logs:             logger,
		requestValidator: requestValidator,
		sessions:         sessions,
		ledger:           ledger,
		accounts:         accounts,
		payments:         payments,
	}
}

func (h *PaymentHandler) HandleCreatePayment(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, CreatePayment)
	if !ok {
		return
	}

	var req payload.CreatePaymentRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not create payment request",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreatePayment,
			"request_id", requestId)
		return
	}

	request, err := h.ledger.CreateRequest(r.Context(), subject, req.RecipientPublicKey, req.Amount, req.Description)
	if err != nil {
		resp := Response{Message: "Could not create payment request"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSenderNotFound) || errors.Is(err, core.ErrSenderNoAddress) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to create payment request",
			"error", err,
			"handler", CreatePayment,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Payment request created", Data: request}, http.StatusCreated, requestId)
}

func (h *PaymentHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := authorize(h.logs, h.sessions, w, r, ListPending); !ok {
		return
	}

	recipient := r.URL.Query().Get("recipientPublicKey")
	if recipient == "" {
		respond(h.logs, w, Response{
			Message: "Could not list payment requests",
			Error:   "recipientPublicKey parameter is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing recipientPublicKey parameter", "handler", ListPending, "request_id", requestId)
		return
	}

	requests, err := h.ledger.ListPending(r.Context(), recipient)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not list payment requests",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list payment requests",
			"error", err,
			"handler", ListPending,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: requests}, http.StatusOK, requestId)
}

func (h *PaymentHandler) HandleSettlePayment(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := authorize(h.logs, h.sessions, w, r, SettlePayment); !ok {
		return
	}

	var req payload.SettlePaymentRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not settle payment request",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SettlePayment,
			"request_id", requestId)
		return
	}

	count, err := h.ledger.Settle(r.Context(), req.RecipientPublicKey, req.SenderPublicKey, req.Amount)
	if err != nil {
		resp := Response{Message: "Could not settle payment request"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrNoMatchingRequest) {
			httpCode = http.StatusNotFound
			resp.Message = "No matching payment request found"
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to settle payment request",
			"error", err,
			"handler", SettlePayment,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Payment request settled",
		Data:    map[string]int64{"settledCount": count},
	}, http.StatusOK, requestId)
}

func (h *PaymentHandler) HandleStoreTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, StoreTransaction)
	if !ok {
		return
	}

	var req payload.StoreTransactionRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not store transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", StoreTransaction,
			"request_id", requestId)
		return
	}

	recorded, err := h.ledger.RecordTransaction(r.Context(), subject, req.Signature, req.From, req.To, req.Amount, req.PriorityFee)
	if err != nil {
		resp := Response{Message: "Could not store transaction"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSenderNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to store transaction",
			"error", err,
			"handler", StoreTransaction,
			"request_id", requestId)
		return
	}

	code := http.StatusOK
	if recorded {
		code = http.StatusCreated
	}
	respond(h.logs, w, Response{
		Message: "Transaction stored",
		Data:    map[string]bool{"recorded": recorded},
	}, code, requestId)
}

func (h *PaymentHandler) HandleSendPayment(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, SendPayment)
	if !ok {
		return
	}

	var req payload.SendPaymentRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not send payment",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SendPayment,
			"request_id", requestId)
		return
	}

	account, err := h.accounts.Account(r.Context(), subject)
	if err != nil {
		resp := Response{Message: "Could not send payment"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSenderNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to resolve sender account",
			"error", err,
			"handler", SendPayment,
			"request_id", requestId)
		return
	}

	receipt, err := h.payments.Submit(r.Context(), req.ToSubmission(account.ID))
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not send payment",
			Error:   err.Error(),
		}, submitStatusCode(err), requestId)
		h.logs.Errorw("payment submission failed",
			"error", err,
			"handler", SendPayment,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Payment sent successfully", Data: receipt}, http.StatusOK, requestId)
}

// submitStatusCode maps the orchestrator's failure classes onto HTTP codes:
// caller mistakes are 400, contention is 409, upstream trouble is 502.
func submitStatusCode(err error) int {
	switch {
	case errors.Is(err, core.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, core.ErrMissingFields),
		errors.Is(err, core.ErrInsufficientBalance),
		errors.Is(err, solana.ErrInvalidAmount),
		errors.Is(err, solana.ErrInvalidRecipient),
		errors.Is(err, wallet.ErrUserDeclined),
		errors.Is(err, wallet.ErrInvalidTransaction):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrWalletNotConnected):
		return http.StatusServiceUnavailable
	case errors.Is(err, solana.ErrBlockhashExpired),
		errors.Is(err, solana.ErrTransactionFailed),
		errors.Is(err, wallet.ErrSigningFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
