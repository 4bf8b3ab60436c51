package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/company-records-api/internal/dto"
	"github.com/company-records-api/internal/service"
)

type DepartmentHandler struct {
	responder
	deptService service.DepartmentService
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		responder:   responder{logger: logger},
		deptService: deptService,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	depts, err := h.deptService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.DepartmentResponse, len(depts))
	for i := range depts {
		resp[i] = toDepartmentResponse(&depts[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.OKResponse{OK: true})
}
