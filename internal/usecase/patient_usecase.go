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
	ErrPatientNotFound  = errors.New("patient not found")
	ErrPatientForbidden = errors.New("patient access forbidden")
)

type PatientUsecase interface {
	Create(ctx context.Context, actor authz.Actor, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, actor authz.Actor) ([]dto.PatientResponse, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, actor authz.Actor, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	// created_by is forced to the acting user; the request carries no
	// creator field and any client-supplied owner would be ignored.
	patient := &entity.Patient{
		Name:        req.Name,
		Age:         req.Age,
		Gender:      req.Gender,
		Address:     req.Address,
		CreatedByID: actor.UserID,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	creator, err := u.userRepo.FindByID(ctx, u.db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find creator: %+v", err)
		return nil, err
	}
	if creator != nil {
		patient.CreatedBy = *creator
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, actor authz.Actor) ([]dto.PatientResponse, error) {
	// Row scoping happens at the query, not after: non-admins only ever
	// fetch rows they own.
	var (
		patients []entity.Patient
		err      error
	)
	if authz.IsAdmin(actor) {
		patients, err = u.patientRepo.FindAll(ctx, u.db)
	} else {
		patients, err = u.patientRepo.FindByCreator(ctx, u.db, actor.UserID)
	}
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*dto.PatientResponse, error) {
	// Resolution before authorization: an absent patient is not found
	// even for actors who could never have accessed it.
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if authz.CanAccessOwnedEntity(actor, patient.CreatedByID) != authz.Allow {
		return nil, ErrPatientForbidden
	}

	return converter.PatientToResponse(patient), nil
}
