package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/company-records-api/internal/domain"
	"github.com/company-records-api/internal/dto"
	"github.com/company-records-api/internal/middleware"
)

// responder - общие методы ответа для всех хендлеров
type responder struct {
	logger *zap.Logger
}

func (h *responder) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

func (h *responder) extractID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id", err.Error())
		return 0, false
	}
	return id, true
}

func (h *responder) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.respondJSON(w, http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:  "validation error",
			Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusUnprocessableEntity, "validation error", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrConflict):
		h.respondError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		h.logger.Error("store unavailable",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		h.respondError(w, http.StatusServiceUnavailable, "store unavailable", "")
	default:
		h.logger.Error("internal error",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	h.respondJSON(w, status, dto.ErrorResponse{Error: errMsg, Message: details})
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		Note:      dept.Note,
		CreatedAt: dept.CreatedAt,
	}
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		EmpNo:        emp.EmpNo,
		Gender:       string(emp.Gender),
		Phone:        emp.Phone,
		Memo:         emp.Memo,
		DepartmentID: emp.DepartmentID,
		CreatedAt:    emp.CreatedAt,
	}

	if emp.Department != nil {
		dept := toDepartmentResponse(emp.Department)
		resp.Department = &dept
	}

	return resp
}
