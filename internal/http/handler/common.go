package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"solpay/internal/http/handler/middleware"
)

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// authorize resolves the caller's identity subject from the bearer token,
// writing the 401 itself when the session is missing or invalid.
func authorize(logs *zap.SugaredLogger, sessions SessionValidator, w http.ResponseWriter, r *http.Request, route string) (string, bool) {
	requestId := requestID(r)

	token := bearerToken(r)
	if token == "" {
		respond(logs, w, Response{
			Message: "Authentication required",
			Error:   "missing bearer token",
		}, http.StatusUnauthorized, requestId)
		logs.Errorw("missing bearer token", "handler", route, "request_id", requestId)
		return "", false
	}

	subject, err := sessions.Validate(token)
	if err != nil {
		respond(logs, w, Response{
			Message: "Authentication required",
			Error:   "session is not valid",
		}, http.StatusUnauthorized, requestId)
		logs.Errorw("session validation failed", "error", err, "handler", route, "request_id", requestId)
		return "", false
	}

	return subject, true
}
