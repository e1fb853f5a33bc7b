package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/mkravchenko/payments-engine/internal/domain"
	"github.com/mkravchenko/payments-engine/internal/infra/metrics"
	"github.com/mkravchenko/payments-engine/internal/services/engine"
)

// HandlerProvider wraps an Engine and exposes HTTP handlers. The engine
// itself is single-threaded; the mutex serializes access so records are
// applied strictly in arrival order.
type HandlerProvider struct {
	mu      sync.Mutex
	engine  *engine.Engine
	metrics *metrics.Collector
}

// NewHandler returns a new handler provider.
func NewHandler(eng *engine.Engine, collector *metrics.Collector) *HandlerProvider {
	return &HandlerProvider{engine: eng, metrics: collector}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type txRequest struct {
	Type   string `json:"type"`
	Client uint16 `json:"client"`
	Tx     uint32 `json:"tx"`
	Amount string `json:"amount,omitempty"`
}

func (req txRequest) toRecord() (domain.Transaction, error) {
	client := domain.ClientID(req.Client)
	tx := domain.TransactionID(req.Tx)

	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case "deposit":
		amount, err := domain.ParseAmount(req.Amount)
		if err != nil {
			return nil, fmt.Errorf("amount: %w", err)
		}

		return domain.Deposit{ClientID: client, TxID: tx, Amount: amount}, nil

	case "withdrawal":
		amount, err := domain.ParseAmount(req.Amount)
		if err != nil {
			return nil, fmt.Errorf("amount: %w", err)
		}

		return domain.Withdrawal{ClientID: client, TxID: tx, Amount: amount}, nil

	case "dispute":
		return domain.Dispute{ClientID: client, TxID: tx}, nil

	case "resolve":
		return domain.Resolve{ClientID: client, TxID: tx}, nil

	case "chargeback":
		return domain.Chargeback{ClientID: client, TxID: tx}, nil

	default:
		return nil, fmt.Errorf("invalid transaction type %q", req.Type)
	}
}

type summaryResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

func toSummaryResponse(s engine.Summary) summaryResponse {
	return summaryResponse{
		Client:    uint16(s.Client),
		Available: s.Available.String(),
		Held:      s.Held.String(),
		Total:     s.Total.String(),
		Locked:    s.Locked,
	}
}

// --- Handlers ---

// ProcessTransactionHandler handles POST /transactions.
func (h *HandlerProvider) ProcessTransactionHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	var req txRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(&req)
	if err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body")
			return
		}

		writeError(w, http.StatusBadRequest, "invalid JSON")

		return
	}

	record, err := req.toRecord()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	err = h.engine.Process(record)
	h.mu.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountLocked):
			h.metrics.Rejected("account_locked")
			writeError(w, http.StatusLocked, "account is locked")

		case errors.Is(err, domain.ErrDuplicateTransaction):
			h.metrics.Rejected("duplicate_transaction")
			writeError(w, http.StatusConflict, "duplicate transaction")

		case errors.Is(err, domain.ErrInsufficientFunds):
			h.metrics.Rejected("insufficient_funds")
			writeError(w, http.StatusConflict, "insufficient funds")

		default:
			h.metrics.Rejected("internal")
			writeError(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	// Dispute-family records with unresolvable references are dropped by
	// design and still count as applied here.
	h.metrics.Applied(strings.ToLower(strings.TrimSpace(req.Type)))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListAccountsHandler handles GET /accounts.
func (h *HandlerProvider) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	summaries := h.engine.Summaries()
	h.mu.Unlock()

	out := make([]summaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toSummaryResponse(s))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetAccountHandler handles GET /accounts/{clientId}.
func (h *HandlerProvider) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "clientId")

	id, err := strconv.ParseUint(idStr, 10, 16)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid clientId in path")
		return
	}

	h.mu.Lock()
	summary, ok := h.engine.Summary(domain.ClientID(id))
	h.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}
