// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/utils"
	"github.com/dkotelnikov/feedsync/models"
)

func (h *Handler) getSyncStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.SyncQueueService.GetSyncQueueStats(ctx)
	if err != nil {
		log.Error().Str("func", "*Handler.getSyncStats").Msg("error getting sync queue stats")
		http.Error(w, "error getting sync queue stats", statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) enqueueChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var enqueueRequest models.EnqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&enqueueRequest); err != nil {
		log.Err(err).Str("func", "*Handler.enqueueChange").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if !enqueueRequest.Action.Valid() {
		log.Error().Str("func", "*Handler.enqueueChange").Str("action", string(enqueueRequest.Action)).Msg("unknown action type")
		http.Error(w, "unknown action type", http.StatusBadRequest)
		return
	}
	if enqueueRequest.InoreaderID == "" {
		log.Error().Str("func", "*Handler.enqueueChange").Msg("no inoreader id was given")
		http.Error(w, "no inoreader id was given", http.StatusBadRequest)
		return
	}

	item, err := h.services.SyncQueueService.Enqueue(ctx, enqueueRequest.Action, enqueueRequest.InoreaderID)
	if err != nil {
		log.Error().Str("func", "*Handler.enqueueChange").Msg("error enqueueing change")
		http.Error(w, "error enqueueing change", statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) runSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.SyncQueueService.ProcessSyncQueue(ctx); err != nil {
		log.Error().Str("func", "*Handler.runSync").Msg("error running sync cycle")
		http.Error(w, "error running sync cycle", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.OpsResponse{Status: "completed"}, http.StatusOK)
}

func (h *Handler) runPullSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.PullSyncService.PullSync(ctx); err != nil {
		log.Error().Str("func", "*Handler.runPullSync").Msg("error running pull sync")
		http.Error(w, "error running pull sync", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.OpsResponse{Status: "completed"}, http.StatusOK)
}

func (h *Handler) clearFailedItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// without older_than everything that exhausted retries is eligible
	olderThan := time.Now()
	if raw := r.URL.Query().Get("older_than"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Err(err).Str("func", "*Handler.clearFailedItems").Msg("invalid older_than was passed")
			http.Error(w, "invalid older_than was passed", http.StatusBadRequest)
			return
		}
		olderThan = parsed
	}

	removed, err := h.services.SyncQueueService.ClearFailedItems(ctx, olderThan)
	if err != nil {
		log.Error().Str("func", "*Handler.clearFailedItems").Msg("error clearing failed items")
		http.Error(w, "error clearing failed items", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.OpsResponse{Status: "cleared", Removed: removed}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.OpsResponse{Status: "ok"}, http.StatusOK)
}
