package mapping

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/domain/doctor"
	"github.com/healthrec/healthrec/internal/domain/patient"
)

// Mapping maps to the patient_doctor_mappings table: one patient assigned to
// one doctor. At most one active mapping may exist per (patient, doctor)
// pair; removal is always a hard delete, is_active is never toggled through
// the API.
type Mapping struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    uuid.UUID `db:"patient_id" json:"patient"`
	DoctorID     uuid.UUID `db:"doctor_id" json:"doctor"`
	AssignedDate time.Time `db:"assigned_date" json:"assigned_date"`
	Notes        *string   `db:"notes" json:"notes,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
}

// Detail is a mapping enriched with point-in-time snapshots of the patient
// and doctor it links. Snapshots are copies taken when the response is built,
// not live references.
type Detail struct {
	Mapping
	PatientDetails *patient.Patient `json:"patient_details"`
	DoctorDetails  *doctor.Doctor   `json:"doctor_details"`
}

// DoctorAssignment is a mapping serialized with doctor detail only, used when
// the patient detail is already carried at the response level.
type DoctorAssignment struct {
	ID            uuid.UUID      `json:"id"`
	DoctorID      uuid.UUID      `json:"doctor"`
	DoctorDetails *doctor.Doctor `json:"doctor_details"`
	AssignedDate  time.Time      `json:"assigned_date"`
	Notes         *string        `json:"notes,omitempty"`
	IsActive      bool           `json:"is_active"`
}

// Input is the client-supplied payload for creating a mapping.
type Input struct {
	PatientID uuid.UUID `json:"patient"`
	DoctorID  uuid.UUID `json:"doctor"`
	Notes     *string   `json:"notes"`
}
