package converter

import (
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
)

// RecordToResponse converts a MedicalRecord entity + its resolved Patient
// to the response DTO. The patient is passed explicitly because records
// are always resolved through their patient first.
func RecordToResponse(record *entity.MedicalRecord, patient *entity.Patient) *dto.MedicalRecordResponse {
	if record == nil || patient == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:          record.ID,
		Patient:     patient.ID,
		PatientName: patient.Name,
		Symptoms:    record.Symptoms,
		Diagnosis:   record.Diagnosis,
		Treatment:   record.Treatment,
		CreatedAt:   record.CreatedAt,
	}
}

// RecordsToResponses converts a record list for one patient, preserving order.
func RecordsToResponses(records []entity.MedicalRecord, patient *entity.Patient) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *RecordToResponse(&records[i], patient))
	}
	return responses
}
