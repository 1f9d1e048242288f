package usecase

import (
	"context"
	"errors"

	"hospital-records-api/internal/authz"
	"hospital-records-api/internal/converter"
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
	"hospital-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRecordOwnershipRequired = errors.New("can only add medical records to own patients")
)

type MedicalRecordUsecase interface {
	Add(ctx context.Context, actor authz.Actor, patientID uuid.UUID, req *dto.AddMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	ListByPatient(ctx context.Context, actor authz.Actor, patientID uuid.UUID) ([]dto.MedicalRecordResponse, error)
}

type medicalRecordUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	recordRepo  repository.MedicalRecordRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	recordRepo repository.MedicalRecordRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		recordRepo:  recordRepo,
	}
}

func (u *medicalRecordUsecase) Add(ctx context.Context, actor authz.Actor, patientID uuid.UUID, req *dto.AddMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	// The patient is resolved before the ownership check, so an absent
	// patient is not found rather than forbidden.
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if authz.CanAccessPatientRecords(actor, patient.CreatedByID) != authz.Allow {
		return nil, ErrRecordOwnershipRequired
	}

	// The record is attached to the resolved patient regardless of any
	// other patient reference implied in the payload.
	record := &entity.MedicalRecord{
		PatientID: patient.ID,
		Symptoms:  req.Symptoms,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
	}

	if err := u.recordRepo.Create(ctx, u.db, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	return converter.RecordToResponse(record, patient), nil
}

func (u *medicalRecordUsecase) ListByPatient(ctx context.Context, actor authz.Actor, patientID uuid.UUID) ([]dto.MedicalRecordResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if authz.CanAccessPatientRecords(actor, patient.CreatedByID) != authz.Allow {
		return nil, ErrPatientForbidden
	}

	records, err := u.recordRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return converter.RecordsToResponses(records, patient), nil
}
