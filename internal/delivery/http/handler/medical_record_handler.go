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

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// AddRecord creates a medical record for the patient named in the body.
func (h *MedicalRecordHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.AddMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FieldErrors(w, h.validator.FormatValidationErrors(err))
		return
	}

	// A malformed patient id resolves to nothing, same as an unknown one.
	patientID, err := uuid.Parse(req.Patient)
	if err != nil {
		response.NotFound(w, "Patient not found.")
		return
	}

	record, err := h.recordUsecase.Add(r.Context(), actor, patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found.")
		case usecase.ErrRecordOwnershipRequired:
			response.Forbidden(w, "You can only add medical records to your own patients.")
		default:
			response.IntegrityError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, record)
}

// ListPatientRecords lists all records for one patient, newest first.
func (h *MedicalRecordHandler) ListPatientRecords(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Patient not found.")
		return
	}

	records, err := h.recordUsecase.ListByPatient(r.Context(), actor, patientID)
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

	response.JSON(w, http.StatusOK, records)
}
