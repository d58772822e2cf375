package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"solpay/internal/core"
	"solpay/internal/http/payload"
)

var (
	UpsertUser      = "POST /api/users"
	CreateContact   = "POST /api/users/contact"
	ListContacts    = "GET /api/users/contact"
	AllContacts     = "GET /api/users/all"
	SearchContacts  = "GET /api/users/search"
	SearchRecipient = "GET /api/users/searchreceipent"
)

const minSearchQueryLen = 2
const defaultSearchLimit = 7

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	sessions         SessionValidator
	accounts         AccountService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, sessions SessionValidator, accounts AccountService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		sessions:         sessions,
		accounts:         accounts,
	}
}

func (h *UserHandler) HandleUpsertUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, UpsertUser)
	if !ok {
		return
	}

	var req payload.UpsertUserRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not register user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpsertUser,
			"request_id", requestId)
		return
	}

	account, created, err := h.accounts.Register(r.Context(), subject, req.UsernamePtr(), req.PublicKeyPtr())
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not register user",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to register user",
			"error", err,
			"handler", UpsertUser,
			"request_id", requestId)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	respond(h.logs, w, Response{Message: "User registered", Data: account}, code, requestId)
}

func (h *UserHandler) HandleCreateContact(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, CreateContact)
	if !ok {
		return
	}

	var req payload.ContactRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not save contact",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateContact,
			"request_id", requestId)
		return
	}

	contact, created, err := h.accounts.AddContact(r.Context(), subject, req.Username, req.PublicKey)
	if err != nil {
		resp := Response{Message: "Could not save contact"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSenderNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to save contact",
			"error", err,
			"handler", CreateContact,
			"request_id", requestId)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	respond(h.logs, w, Response{Message: "Contact saved", Data: contact}, code, requestId)
}

func (h *UserHandler) HandleListContacts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, ListContacts)
	if !ok {
		return
	}

	contacts, err := h.accounts.ListContacts(r.Context(), subject)
	if err != nil {
		resp := Response{Message: "Could not list contacts"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSenderNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to list contacts",
			"error", err,
			"handler", ListContacts,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: contacts}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleAllContacts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, AllContacts)
	if !ok {
		return
	}

	contacts, err := h.accounts.AllContacts(r.Context(), subject)
	if err != nil {
		resp := Response{Message: "Could not list contacts"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSenderNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to list contacts",
			"error", err,
			"handler", AllContacts,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: contacts}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleSearchContacts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, SearchContacts)
	if !ok {
		return
	}

	query := r.URL.Query().Get("query")
	if len(query) < minSearchQueryLen {
		respond(h.logs, w, Response{
			Message: "Could not search contacts",
			Error:   fmt.Sprintf("query must be at least %d characters", minSearchQueryLen),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("search query too short", "handler", SearchContacts, "request_id", requestId)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultSearchLimit
	}

	result, err := h.accounts.SearchContacts(r.Context(), subject, query, page, limit)
	if err != nil {
		resp := Response{Message: "Could not search contacts"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSenderNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to search contacts",
			"error", err,
			"handler", SearchContacts,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: result}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleSearchRecipient(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	subject, ok := authorize(h.logs, h.sessions, w, r, SearchRecipient)
	if !ok {
		return
	}

	query := r.URL.Query().Get("query")
	if len(query) < minSearchQueryLen {
		respond(h.logs, w, Response{
			Message: "Could not look up recipient",
			Error:   fmt.Sprintf("query must be at least %d characters", minSearchQueryLen),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("recipient query too short", "handler", SearchRecipient, "request_id", requestId)
		return
	}

	contact, err := h.accounts.FindRecipient(r.Context(), subject, query)
	if err != nil {
		resp := Response{Message: "Could not look up recipient"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrContactNotFound) || errors.Is(err, core.ErrSenderNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to look up recipient",
			"error", err,
			"handler", SearchRecipient,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: contact}, http.StatusOK, requestId)
}
