/*
handlers.go - HTTP handlers for the lease accounting engine

PURPOSE:
  Exposes the engine via REST. Handlers parse the request, run the pure
  calculation pipeline, and serialize the result; drafts and history go
  through the injected KV store.

ENDPOINTS:
  POST   /api/lease/validate   Run the validation gate only
  POST   /api/lease/calculate  Full pipeline, records history
  POST   /api/lease/export     Full pipeline, returns an XLSX workbook
  GET    /api/draft            Load the saved input form
  PUT    /api/draft            Save the input form
  DELETE /api/draft            Discard the saved form
  GET    /api/history          List recorded calculations, newest first
  DELETE /api/history/{id}     Remove one recorded calculation
  DELETE /api/history          Clear the history

ERROR HANDLING:
  - 400: invalid JSON, bad dates, contract validation failures
  - 404: missing draft or history entry
  - 422: termination precedes the first payment (nothing to amortize)
  - 500: storage or export failures

  A storage failure while recording history is logged and does not fail the
  calculation response; the computed result is already in hand.
*/
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/lease-engine/export"
	"github.com/warp/lease-engine/lease"
)

// Handler holds the collaborators behind the HTTP surface.
type Handler struct {
	Drafts  *lease.Drafts
	History *lease.History
}

// NewHandler wires the handler over a KV store.
func NewHandler(kv lease.KV) *Handler {
	return &Handler{
		Drafts:  lease.NewDrafts(kv),
		History: lease.NewHistory(kv),
	}
}

// =============================================================================
// CALCULATION
// =============================================================================

func (h *Handler) ValidateContract(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeContract(w, r)
	if !ok {
		return
	}
	contract, problems := req.Contract()
	problems = append(problems, lease.Validate(contract)...)
	writeJSON(w, http.StatusOK, ValidateResponse{Valid: len(problems) == 0, Errors: problems})
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runPipeline(w, r)
	if !ok {
		return
	}

	// History is best-effort: the result is already computed.
	if _, err := h.History.Record(r.Context(), result.Contract, result.Summary); err != nil {
		log.Printf("Warning: failed to record history: %v", err)
	}

	writeJSON(w, http.StatusOK, CalculateResponse{
		Result:           result,
		FormattedSummary: result.Summary.Format(),
	})
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runPipeline(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, result); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed", nil)
		return
	}

	filename := fmt.Sprintf("lease-%s-%s.xlsx", result.Contract.Start, result.Contract.End)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// runPipeline decodes the contract and runs the full calculation, writing
// the appropriate error response itself when anything fails.
func (h *Handler) runPipeline(w http.ResponseWriter, r *http.Request) (*lease.Result, bool) {
	req, ok := decodeContract(w, r)
	if !ok {
		return nil, false
	}

	contract, problems := req.Contract()
	if len(problems) > 0 {
		writeError(w, http.StatusBadRequest, "invalid contract", problems)
		return nil, false
	}

	result, err := lease.Calculate(contract)
	if err != nil {
		var ve *lease.ValidationError
		switch {
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, "invalid contract", ve.Messages)
		case errors.Is(err, lease.ErrEmptySchedule):
			writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			writeError(w, http.StatusInternalServerError, "calculation failed", nil)
		}
		return nil, false
	}
	return result, true
}

// =============================================================================
// DRAFT
// =============================================================================

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeContract(w, r)
	if !ok {
		return
	}
	contract, problems := req.Contract()
	if len(problems) > 0 {
		writeError(w, http.StatusBadRequest, "invalid draft", problems)
		return
	}
	if err := h.Drafts.Save(r.Context(), contract); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save draft", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LoadDraft(w http.ResponseWriter, r *http.Request) {
	contract, err := h.Drafts.Load(r.Context())
	if errors.Is(err, lease.ErrDraftNotFound) {
		writeError(w, http.StatusNotFound, "no saved draft", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load draft", nil)
		return
	}
	writeJSON(w, http.StatusOK, contractRequestFrom(contract))
}

func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.Drafts.Delete(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete draft", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HISTORY
// =============================================================================

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.History.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history", nil)
		return
	}
	if entries == nil {
		entries = []lease.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) DeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.History.Remove(r.Context(), id)
	if errors.Is(err, lease.ErrHistoryEntryNotFound) {
		writeError(w, http.StatusNotFound, "history entry not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete history entry", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.History.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear history", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func decodeContract(w http.ResponseWriter, r *http.Request) (ContractRequest, bool) {
	var req ContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return ContractRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details []string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Details: details})
}
