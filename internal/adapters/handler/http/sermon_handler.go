package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
)

// defaultListLimit is used when the limit path parameter is not a valid
// positive integer.
const defaultListLimit = 3

type SermonHandler struct {
	service ports.SermonService
}

func NewSermonHandler(service ports.SermonService) *SermonHandler {
	return &SermonHandler{service: service}
}

func (h *SermonHandler) List(w http.ResponseWriter, r *http.Request) {
	sermons, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not fetch sermons.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"sermons": sermons})
}

func (h *SermonHandler) ListLimited(w http.ResponseWriter, r *http.Request) {
	sermons, err := h.service.ListLimited(r.Context(), parseLimit(chi.URLParam(r, "number")))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not fetch sermons.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"sermons": sermons})
}

func (h *SermonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid sermon ID.")
		return
	}

	sermon, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSermonNotFound) {
			respondError(w, http.StatusNotFound, "Invalid sermon ID.")
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not fetch sermon.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"sermon": sermon})
}

func (h *SermonHandler) Create(w http.ResponseWriter, r *http.Request) {
	fileName, file, err := extractMP3(r)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedMedia) {
			respondError(w, http.StatusUnsupportedMediaType, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer file.Close()

	date, err := parseDate(r.FormValue("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	input := ports.CreateSermonInput{
		Title:     r.FormValue("title"),
		Scripture: r.FormValue("scripture"),
		Speaker:   r.FormValue("speaker"),
		Date:      date,
		FileName:  fileName,
		BaseURL:   baseURL(r),
	}

	sermon, err := h.service.Create(r.Context(), input, file)
	if err != nil {
		if errors.Is(err, domain.ErrSermonLimit) {
			respondError(w, http.StatusBadRequest,
				"You have reached your limit for sermons. Your account only allows 10 sermons at a time.")
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not create sermon.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"sermon": sermon, "id": sermon.ID})
}

type updateSermonRequest struct {
	Title     string `json:"title"`
	Scripture string `json:"scripture"`
	Speaker   string `json:"speaker"`
	Date      string `json:"date"`
	MP3       string `json:"mp3"`
}

func (h *SermonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid sermon ID.")
		return
	}

	var req updateSermonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	sermon, err := h.service.Update(r.Context(), id, ports.UpdateSermonInput{
		Title:     req.Title,
		Scripture: req.Scripture,
		Speaker:   req.Speaker,
		Date:      date,
		MP3URL:    req.MP3,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSermonNotFound) {
			respondError(w, http.StatusNotFound, "Could not find a sermon with ID of "+id.String())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not update sermon.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"sermon": sermon})
}

func (h *SermonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid sermon ID.")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrSermonNotFound) {
			respondError(w, http.StatusNotFound, "Could not find a sermon with ID of "+id.String())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not delete sermon.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"result": map[string]int{"deletedCount": 1}})
}

// parseLimit falls back to the default when the parameter is not a valid
// positive integer, e.g. /sermons/limit/test returns 3 records.
func parseLimit(param string) int {
	n, err := strconv.Atoi(param)
	if err != nil || n < 1 {
		return defaultListLimit
	}
	return n
}
