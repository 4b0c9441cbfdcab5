package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/handler/http/response"
	"github.com/klfacil/erp-backend-go/internal/pkg/validator"
)

type PunchHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	RegisterManual(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.Service
}

func NewPunchHandler(punchService punch.Service) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Register implements PunchHandler.
func (h *punchHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req punch.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode punch registration", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// RegisterManual implements PunchHandler.
func (h *punchHandlerImpl) RegisterManual(w http.ResponseWriter, r *http.Request) {
	var req punch.ManualEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode manual punch entry", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.RegisterManual(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manual punch recorded", result)
}

// Correct implements PunchHandler.
func (h *punchHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	var req punch.CorrectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode punch correction", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.punchService.Correct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch corrected", result)
}

// List implements PunchHandler.
func (h *punchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := punch.ListFilter{
		EmployeeID: query.Get("employee_id"),
		UnitID:     query.Get("unit"),
	}

	if from := query.Get("from"); from != "" {
		t, ok := validator.IsValidDateTime(from)
		if !ok {
			response.BadRequest(w, "from must be a valid RFC3339 instant", nil)
			return
		}
		filter.From = &t
	}
	if to := query.Get("to"); to != "" {
		t, ok := validator.IsValidDateTime(to)
		if !ok {
			response.BadRequest(w, "to must be a valid RFC3339 instant", nil)
			return
		}
		filter.To = &t
	}

	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.punchService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Events, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}
