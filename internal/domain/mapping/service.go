package mapping

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/domain/doctor"
	"github.com/healthrec/healthrec/internal/domain/patient"
	"github.com/healthrec/healthrec/internal/platform/apperr"
)

type Service struct {
	mappings Repository
	patients patient.Repository
	doctors  doctor.Repository
}

func NewService(mappings Repository, patients patient.Repository, doctors doctor.Repository) *Service {
	return &Service{mappings: mappings, patients: patients, doctors: doctors}
}

// enrich loads the patient and doctor snapshots for each mapping. Rows whose
// referents vanished between the list query and the lookups are skipped rather
// than failing the whole response.
func (s *Service) enrich(ctx context.Context, user uuid.UUID, items []*Mapping) ([]*Detail, error) {
	details := make([]*Detail, 0, len(items))
	for _, m := range items {
		p, err := s.patients.GetOwned(ctx, user, m.PatientID)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		d, err := s.doctors.GetByID(ctx, m.DoctorID)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		details = append(details, &Detail{Mapping: *m, PatientDetails: p, DoctorDetails: d})
	}
	return details, nil
}

func (s *Service) List(ctx context.Context, user uuid.UUID) ([]*Detail, error) {
	items, err := s.mappings.ListForOwner(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, user, items)
}

func (s *Service) Create(ctx context.Context, user uuid.UUID, in *Input) (*Detail, error) {
	v := &apperr.ValidationError{}
	if in.PatientID == uuid.Nil {
		v.Add("patient", "this field is required")
	}
	if in.DoctorID == uuid.Nil {
		v.Add("doctor", "this field is required")
	}
	if v.HasErrors() {
		return nil, v
	}

	// Ownership check doubles as an existence check. Someone else's patient
	// and a nonexistent patient produce the same message.
	p, err := s.patients.GetOwned(ctx, user, in.PatientID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NewValidation("patient", "you can only assign doctors to your own patients")
		}
		return nil, err
	}
	d, err := s.doctors.GetByID(ctx, in.DoctorID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NewValidation("doctor", "doctor does not exist")
		}
		return nil, err
	}

	exists, err := s.mappings.ActiveExists(ctx, in.PatientID, in.DoctorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.NewValidation("non_field_errors", "this patient is already assigned to this doctor")
	}

	m := &Mapping{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Notes:     in.Notes,
	}
	if err := s.mappings.Create(ctx, m); err != nil {
		return nil, err
	}
	return &Detail{Mapping: *m, PatientDetails: p, DoctorDetails: d}, nil
}

// ListForPatient returns the patient with the doctors currently assigned to
// it. The patient must belong to the requesting user.
func (s *Service) ListForPatient(ctx context.Context, user, patientID uuid.UUID) (*patient.Patient, []*DoctorAssignment, error) {
	p, err := s.patients.GetOwned(ctx, user, patientID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.mappings.ListActiveForPatient(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	assignments := make([]*DoctorAssignment, 0, len(items))
	for _, m := range items {
		d, err := s.doctors.GetByID(ctx, m.DoctorID)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, nil, err
		}
		assignments = append(assignments, &DoctorAssignment{
			ID:            m.ID,
			DoctorID:      m.DoctorID,
			DoctorDetails: d,
			AssignedDate:  m.AssignedDate,
			Notes:         m.Notes,
			IsActive:      m.IsActive,
		})
	}
	return p, assignments, nil
}

func (s *Service) Delete(ctx context.Context, user, id uuid.UUID) error {
	return s.mappings.DeleteOwned(ctx, user, id)
}
