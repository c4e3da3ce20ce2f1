package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-budget-vault/internal/app"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/utils"
	"github.com/MKhiriev/go-budget-vault/models"
)

// pushChangeLog upserts a batch of changelog rows for the token owner.
// Replaying a batch is harmless; the answer is 204 either way.
func (h *Handler) pushChangeLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerInContext).Str("func", "*Handler.pushChangeLog").Send()
		utils.WriteError(w, app.MsgNoOwnerIDProvided, http.StatusUnauthorized)
		return
	}

	var request models.ChangeLogUpsertRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.pushChangeLog").Msg(ErrInvalidJSON.Error())
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.ChangeLogService.Push(ctx, ownerID, request); err != nil {
		status, message := statusFromError(err)
		log.Err(err).
			Str("func", "*Handler.pushChangeLog").
			Int("count", len(request.Entries)).
			Msg("error pushing changelog entries")
		utils.WriteError(w, message, status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pullChangeLog returns the owner's rows of one scope newer than since,
// oldest first. A missing since means the whole history.
func (h *Handler) pullChangeLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerInContext).Str("func", "*Handler.pullChangeLog").Send()
		utils.WriteError(w, app.MsgNoOwnerIDProvided, http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	request := models.ChangeLogPullRequest{
		OwnerID: ownerID,
		ScopeID: query.Get("scope_id"),
	}
	if request.ScopeID == "" {
		utils.WriteError(w, app.MsgScopeIDRequired, http.StatusBadRequest)
		return
	}

	if raw := query.Get("since"); raw != "" {
		since, err := models.ParseTimestamp(raw)
		if err != nil {
			log.Err(err).Str("func", "*Handler.pullChangeLog").Str("since", raw).Msg(ErrInvalidSince.Error())
			utils.WriteError(w, app.MsgInvalidSince, http.StatusBadRequest)
			return
		}
		request.Since = since
	}

	entries, err := h.services.ChangeLogService.Pull(ctx, request)
	if err != nil {
		status, message := statusFromError(err)
		log.Err(err).
			Str("func", "*Handler.pullChangeLog").
			Str("scope_id", request.ScopeID).
			Msg("error pulling changelog entries")
		utils.WriteError(w, message, status)
		return
	}
	if entries == nil {
		entries = []models.RemoteChangeLogEntry{}
	}

	utils.WriteJSON(w, models.ChangeLogPullResponse{Entries: entries, Length: len(entries)}, http.StatusOK)
}
