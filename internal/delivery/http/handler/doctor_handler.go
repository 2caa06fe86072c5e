package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	req := dto.ListDoctorsQuery{
		Search:       params.Get(service.ParamSearch),
		Consultation: params.Get(service.ParamConsultation),
		Specialties:  params.Get(service.ParamSpecialties),
		Sort:         params.Get(service.ParamSort),
		Page:         1,
	}
	if raw := params.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid page", nil)
			return
		}
		req.Page = page
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	filters := entity.FilterState{}.Merge(service.DecodeFilterValues(params))

	list, err := h.directoryUsecase.ListDoctors(r.Context(), filters, req.Page)
	if err != nil {
		h.writeLoadError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", list, &response.Meta{
		Page:       list.Page,
		Limit:      len(list.Doctors),
		Total:      int64(list.Total),
		TotalPages: list.TotalPages,
	})
}

func (h *DoctorHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	req := dto.SuggestDoctorsQuery{Term: params.Get("q")}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	filters := entity.FilterState{}.Merge(service.DecodeFilterValues(params))

	suggestions, err := h.directoryUsecase.SuggestDoctors(r.Context(), req.Term, filters)
	if err != nil {
		h.writeLoadError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	req := dto.SearchSpecialtiesQuery{Term: r.URL.Query().Get("q")}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialties := h.directoryUsecase.SearchSpecialties(r.Context(), req.Term)
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) ReloadDoctors(w http.ResponseWriter, r *http.Request) {
	status := h.directoryUsecase.Reload(r.Context())
	response.Success(w, http.StatusAccepted, "Doctor reload started", status)
}

func (h *DoctorHandler) LoadStatus(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Load status retrieved successfully", h.directoryUsecase.Status(r.Context()))
}

func (h *DoctorHandler) writeLoadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDoctorsUnavailable):
		response.Error(w, http.StatusServiceUnavailable, "Failed to fetch doctors", nil)
	case errors.Is(err, usecase.ErrDoctorsLoading):
		response.Error(w, http.StatusServiceUnavailable, "Doctors are still loading", nil)
	default:
		response.InternalServerError(w, "Failed to get doctors")
	}
}
