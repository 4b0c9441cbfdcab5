package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klfacil/erp-backend-go/internal/domain/timesheet"
	"github.com/klfacil/erp-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Mirror(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

func mirrorRequestFromHTTP(r *http.Request) timesheet.MirrorRequest {
	return timesheet.MirrorRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Period:     r.URL.Query().Get("period"),
		UnitID:     r.URL.Query().Get("unit"),
	}
}

// Mirror implements TimesheetHandler. Returns the assembled monthly
// ledger inside the standard response envelope; the ledger's own field
// names under data are the documented contract.
func (h *timesheetHandlerImpl) Mirror(w http.ResponseWriter, r *http.Request) {
	req := mirrorRequestFromHTTP(r)

	ledger, err := h.timesheetService.Mirror(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledger)
}

// Export implements TimesheetHandler.
func (h *timesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := mirrorRequestFromHTTP(r)

	data, contentType, err := h.timesheetService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("mirror-%s-%s.xlsx", req.EmployeeID, req.Period)
	response.Raw(w, contentType, filename, data)
}
