package doctor

import (
	"context"
	"net/mail"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/apperr"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

// validateInput checks the client payload for a create or full replacement.
// All failures are collected so the client sees every problem at once.
func validateInput(in *Input) *apperr.ValidationError {
	v := &apperr.ValidationError{}
	if in.Name == "" {
		v.Add("name", "this field is required")
	}
	if in.Email == "" {
		v.Add("email", "this field is required")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		v.Add("email", "enter a valid email address")
	}
	if in.Phone == "" {
		v.Add("phone", "this field is required")
	}
	if in.Specialization == "" {
		v.Add("specialization", "this field is required")
	}
	if in.Qualification == "" {
		v.Add("qualification", "this field is required")
	}
	if in.ExperienceYears == nil {
		v.Add("experience_years", "this field is required")
	} else if *in.ExperienceYears < 0 {
		v.Add("experience_years", "must be a non-negative integer")
	}
	if in.LicenseNumber == "" {
		v.Add("license_number", "this field is required")
	}
	if v.HasErrors() {
		return v
	}
	return nil
}

// checkUnique enforces global email and license number uniqueness, excluding
// the record identified by excludeID (uuid.Nil on create).
func (s *Service) checkUnique(ctx context.Context, in *Input, excludeID uuid.UUID) error {
	v := &apperr.ValidationError{}
	inUse, err := s.doctors.EmailInUse(ctx, in.Email, excludeID)
	if err != nil {
		return err
	}
	if inUse {
		v.Add("email", "a doctor with this email already exists")
	}
	inUse, err = s.doctors.LicenseInUse(ctx, in.LicenseNumber, excludeID)
	if err != nil {
		return err
	}
	if inUse {
		v.Add("license_number", "a doctor with this license number already exists")
	}
	if v.HasErrors() {
		return v
	}
	return nil
}

func applyInput(d *Doctor, in *Input) {
	d.Name = in.Name
	d.Email = in.Email
	d.Phone = in.Phone
	d.Specialization = in.Specialization
	d.Qualification = in.Qualification
	d.ExperienceYears = *in.ExperienceYears
	d.LicenseNumber = in.LicenseNumber
	d.HospitalAffiliation = in.HospitalAffiliation
	d.ConsultationFee = in.ConsultationFee
	d.IsAvailable = true
	if in.IsAvailable != nil {
		d.IsAvailable = *in.IsAvailable
	}
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in *Input) (*Doctor, error) {
	if v := validateInput(in); v != nil {
		return nil, v
	}
	if err := s.checkUnique(ctx, in, uuid.Nil); err != nil {
		return nil, err
	}
	d := &Doctor{}
	applyInput(d, in)
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in *Input) (*Doctor, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v := validateInput(in); v != nil {
		return nil, v
	}
	if err := s.checkUnique(ctx, in, id); err != nil {
		return nil, err
	}
	applyInput(d, in)
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}
