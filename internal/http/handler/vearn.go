package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"vearn/internal/core"
	"vearn/internal/http/handler/middleware"
	"vearn/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Authenticate     = "POST /vearn/authenticate"
	Connect          = "POST /vearn/connect"
	GetBalance       = "GET /vearn/balance"
	GetConfig        = "GET /vearn/config"
	SaveConfig       = "POST /vearn/config"
	SaveReserve      = "POST /vearn/reserve"
	TrackTransaction = "POST /vearn/transactions"
	GetTransactions  = "GET /vearn/transactions"
)

const authHeader = "AUTH_TOKEN"

type VearnHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	vearn            VearnService
}

func NewVearnHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, vearnService VearnService) *VearnHandler {
	return &VearnHandler{
		logs:             logger,
		requestValidator: requestValidator,
		vearn:            vearnService,
	}
}

func (h *VearnHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not authenticate", err, Authenticate, requestId)
		return
	}

	session, err := h.vearn.Connect(r.Context(), req.ToCertificate(), req.WalletID)
	if err != nil {
		h.fail(w, "Login failed", nil, err, Authenticate, requestId)
		return
	}

	h.logs.Infow("wallet connected",
		"account", session.Account,
		"wallet_id", req.WalletID,
		"handler", Authenticate,
		"request_id", requestId)

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *VearnHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ConnectRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not connect", err, Connect, requestId)
		return
	}

	session, err := h.vearn.ConnectWithSigner(r.Context(), req.WalletID, req.Signer)
	if err != nil {
		h.fail(w, "Connect failed", nil, err, Connect, requestId)
		return
	}

	h.logs.Infow("wallet connected through signer",
		"account", session.Account,
		"wallet_id", req.WalletID,
		"handler", Connect,
		"request_id", requestId)

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *VearnHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	account, ok := h.authorize(w, r, GetBalance, requestId)
	if !ok {
		return
	}

	balance, err := h.vearn.FetchBalance(r.Context(), account)
	if err != nil {
		h.fail(w, "Could not fetch balance", nil, err, GetBalance, requestId)
		return
	}

	h.respond(w, balance, http.StatusOK, requestId)
}

func (h *VearnHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	account, ok := h.authorize(w, r, GetConfig, requestId)
	if !ok {
		return
	}

	config, err := h.vearn.FetchConfig(r.Context(), account)
	if err != nil {
		h.fail(w, "Could not fetch config", nil, err, GetConfig, requestId)
		return
	}

	h.respond(w, config, http.StatusOK, requestId)
}

func (h *VearnHandler) HandleSaveReserve(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	account, ok := h.authorize(w, r, SaveReserve, requestId)
	if !ok {
		return
	}

	var req payload.ReserveRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not save reserve balance", err, SaveReserve, requestId)
		return
	}

	h.logs.Infow("reserve balance request received",
		"account", account,
		"amount", req.Amount,
		"handler", SaveReserve,
		"request_id", requestId)

	result, err := h.vearn.SaveReserveBalance(r.Context(), account, req.Amount)
	h.transactionResponse(w, result, err, "Could not save reserve balance", SaveReserve, requestId)
}

func (h *VearnHandler) HandleSaveConfig(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	account, ok := h.authorize(w, r, SaveConfig, requestId)
	if !ok {
		return
	}

	var req payload.ConfigRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not save config", err, SaveConfig, requestId)
		return
	}

	result, err := h.vearn.SaveConfig(r.Context(), account, req.TriggerBalance, req.ReserveBalance)
	h.transactionResponse(w, result, err, "Could not save config", SaveConfig, requestId)
}

func (h *VearnHandler) HandleTrackTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	account, ok := h.authorize(w, r, TrackTransaction, requestId)
	if !ok {
		return
	}

	var req payload.TrackRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not track transaction", err, TrackTransaction, requestId)
		return
	}

	result, err := h.vearn.TrackTransaction(r.Context(), account, req.TxID, req.Comment)
	h.transactionResponse(w, result, err, "Could not track transaction", TrackTransaction, requestId)
}

func (h *VearnHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	account, ok := h.authorize(w, r, GetTransactions, requestId)
	if !ok {
		return
	}

	transactions, err := h.vearn.History(r.Context(), account)
	if err != nil {
		h.fail(w, "Failed to get transactions", nil, err, GetTransactions, requestId)
		return
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

// transactionResponse answers with the transaction result whether or not the
// transaction succeeded, so the client always learns the tx id and state.
func (h *VearnHandler) transactionResponse(w http.ResponseWriter, result core.TxResult, err error, msg, handler, requestId string) {
	if err != nil {
		var data any
		if result.State != "" {
			data = result
		}
		h.fail(w, msg, data, err, handler, requestId)
		return
	}

	h.logs.Infow("transaction confirmed",
		"tx_id", result.TxID,
		"block_number", result.BlockNumber,
		"handler", handler,
		"request_id", requestId)

	h.respond(w, Response{Data: result}, http.StatusOK, requestId)
}

func (h *VearnHandler) authorize(w http.ResponseWriter, r *http.Request, handler, requestId string) (string, bool) {
	token := authToken(r)
	if token == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   fmt.Sprintf("%s header is required", authHeader),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing auth token", "handler", handler, "request_id", requestId)
		return "", false
	}

	account, err := h.vearn.Authorize(r.Context(), token)
	if err != nil {
		h.fail(w, "Authentication failed", nil, err, handler, requestId)
		return "", false
	}
	return account, true
}

func (h *VearnHandler) badRequest(w http.ResponseWriter, msg string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: msg,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *VearnHandler) fail(w http.ResponseWriter, msg string, data any, err error, handler, requestId string) {
	code, detail := errorResponse(err)
	h.respond(w, Response{
		Message: msg,
		Data:    data,
		Error:   detail,
	}, code,
		requestId)

	if code >= http.StatusInternalServerError {
		h.logs.Errorw(strings.ToLower(msg),
			"error", err,
			"handler", handler,
			"request_id", requestId)
		return
	}
	h.logs.Infow(strings.ToLower(msg),
		"error", err,
		"code", code,
		"handler", handler,
		"request_id", requestId)
}

func (h *VearnHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// authToken reads the session token from the AUTH_TOKEN header, falling back
// to a bearer Authorization header.
func authToken(r *http.Request) string {
	if token := r.Header.Get(authHeader); token != "" {
		return token
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
