package handler

import (
	"encoding/json"
	"net/http"

	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/delivery/http/middleware"
	"hospital-records-api/internal/usecase"
	"hospital-records-api/pkg/response"
	"hospital-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// CreatePatient creates a patient owned by the acting user.
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FieldErrors(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), actor, &req)
	if err != nil {
		response.IntegrityError(w)
		return
	}

	response.JSON(w, http.StatusCreated, patient)
}

// ListPatients lists patients scoped by role: admins see all, doctors only
// their own.
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	patients, err := h.patientUsecase.List(r.Context(), actor)
	if err != nil {
		response.IntegrityError(w)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

// GetPatient retrieves a single patient, resolving it before authorizing.
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	// A malformed id resolves to nothing, same as an unknown one.
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Patient not found.")
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), actor, patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found.")
		case usecase.ErrPatientForbidden:
			response.Forbidden(w, "")
		default:
			response.IntegrityError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, patient)
}
