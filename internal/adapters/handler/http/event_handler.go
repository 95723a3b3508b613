package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
)

type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not fetch events.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (h *EventHandler) ListLimited(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListUpcoming(r.Context(), parseLimit(chi.URLParam(r, "number")))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not fetch events.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	event, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			respondError(w, http.StatusNotFound, "Invalid event ID.")
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not fetch event.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"event": event})
}

type eventRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Address string `json:"address"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeEventInput(w, r)
	if !ok {
		return
	}

	event, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not create event.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"event": event, "id": event.ID})
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	input, ok := decodeEventInput(w, r)
	if !ok {
		return
	}

	event, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			respondError(w, http.StatusNotFound, "Could not find an event with ID of "+id.String())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not update event.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"event": event})
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not delete event.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"result": map[string]int64{"deletedCount": deleted}})
}

func (h *EventHandler) DeleteExpired(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteExpired(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not delete old events.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"result": map[string]int64{"deletedCount": deleted}})
}

func decodeEventInput(w http.ResponseWriter, r *http.Request) (ports.EventInput, bool) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return ports.EventInput{}, false
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return ports.EventInput{}, false
	}

	return ports.EventInput{
		Name:    req.Name,
		Details: req.Details,
		Address: req.Address,
		Date:    date,
		Time:    req.Time,
	}, true
}
