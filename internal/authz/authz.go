// Package authz holds the authorization decisions for patient and
// medical-record access. All predicates are pure: they never touch the
// store and never fail for a resolved actor/owner pair. Missing entities
// must be resolved (and reported as not found) by the caller before any
// predicate runs.
package authz

import (
	"github.com/google/uuid"

	"hospital-records-api/internal/domain/entity"
)

// Actor is the authenticated identity a request acts as, with its role and
// superuser flag already resolved from the store.
type Actor struct {
	UserID    uuid.UUID
	Username  string
	Role      string
	Superuser bool
}

// Decision is the outcome of an object-level authorization check.
type Decision int

const (
	Allow Decision = iota
	Forbid
	NotFound
)

// IsDoctor reports whether the actor holds the doctor role.
func IsDoctor(a Actor) bool {
	return a.Role == entity.RoleDoctor
}

// IsAdmin reports whether the actor is a superuser or holds the admin role.
func IsAdmin(a Actor) bool {
	return a.Superuser || a.Role == entity.RoleAdmin
}

// IsClinician is the collection-level gate for the patient endpoints:
// doctors and admins pass, nobody else does.
func IsClinician(a Actor) bool {
	return IsDoctor(a) || IsAdmin(a)
}

// CanAccessOwnedEntity decides object-level access to an entity owned
// through created_by. Admins always pass; everyone else must be the owner.
// Applies to patients directly and to medical records through their patient.
func CanAccessOwnedEntity(a Actor, createdBy uuid.UUID) Decision {
	if IsAdmin(a) || createdBy == a.UserID {
		return Allow
	}
	return Forbid
}

// CanAccessPatientRecords decides whether the actor may list or add medical
// records for a patient owned by patientOwner. Admins always pass; doctors
// only for their own patients.
func CanAccessPatientRecords(a Actor, patientOwner uuid.UUID) Decision {
	if IsAdmin(a) {
		return Allow
	}
	if IsDoctor(a) && patientOwner == a.UserID {
		return Allow
	}
	return Forbid
}
