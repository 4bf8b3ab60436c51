package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/company-records-api/internal/dto"
	"github.com/company-records-api/internal/service"
)

type EmployeeHandler struct {
	responder
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		responder:  responder{logger: logger},
		empService: empService,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.OKResponse{OK: true})
}
