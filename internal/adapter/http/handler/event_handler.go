package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/martin00001313/TransactionProcessing/internal/adapter/csvio"
	"github.com/martin00001313/TransactionProcessing/internal/adapter/http/dto"
	"github.com/martin00001313/TransactionProcessing/internal/domain"
	"github.com/martin00001313/TransactionProcessing/internal/engine"
)

// EventHandler feeds submitted events into the processor and serves
// the resulting snapshot. The engine itself is single-threaded, so all
// access is serialized here: events are applied in arrival order.
type EventHandler struct {
	mu        sync.Mutex
	processor *engine.Processor
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(processor *engine.Processor) *EventHandler {
	return &EventHandler{processor: processor}
}

// Submit applies one event.
func (h *EventHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ev, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event type", err.Error())
		return
	}

	h.mu.Lock()
	err = h.processor.Apply(ev)
	h.mu.Unlock()

	if err != nil {
		writeError(w, mapDomainError(err), "event dropped", err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, dto.SubmitEventResponse{Status: "applied", Tx: req.Tx})
}

// Snapshot streams the current account snapshot as CSV.
func (h *EventHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	accounts := h.processor.Snapshot()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	if err := csvio.WriteSnapshot(w, accounts); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render snapshot", err.Error())
	}
}

// ListAccounts returns the snapshot as JSON.
func (h *EventHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	accounts := h.processor.Snapshot()
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// GetAccount returns one client account.
func (h *EventHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "client"), 10, 16)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id", err.Error())
		return
	}

	h.mu.Lock()
	account, ok := h.processor.Account(domain.ClientID(id))
	h.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "account not found", "")
		return
	}
	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
