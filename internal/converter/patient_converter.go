package converter

import (
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity (with creator preloaded) to
// its response DTO.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Age:       patient.Age,
		Gender:    patient.Gender,
		Address:   patient.Address,
		CreatedBy: UserToSummary(&patient.CreatedBy),
		CreatedAt: patient.CreatedAt,
	}
}

// PatientsToResponses converts a patient list, preserving order.
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
