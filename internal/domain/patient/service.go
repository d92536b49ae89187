package patient

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/apperr"
)

var validGenders = map[string]bool{"M": true, "F": true, "O": true}

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// validateInput checks the client payload and returns the parsed date of
// birth on success.
func validateInput(in *Input) (time.Time, *apperr.ValidationError) {
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
	var dob time.Time
	if in.DateOfBirth == "" {
		v.Add("date_of_birth", "this field is required")
	} else {
		var err error
		dob, err = time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			v.Add("date_of_birth", "date has wrong format, use YYYY-MM-DD")
		}
	}
	if in.Gender == "" {
		v.Add("gender", "this field is required")
	} else if !validGenders[in.Gender] {
		v.Add("gender", "must be one of M, F, O")
	}
	if in.Address == "" {
		v.Add("address", "this field is required")
	}
	if v.HasErrors() {
		return time.Time{}, v
	}
	return dob, nil
}

func (s *Service) List(ctx context.Context, user uuid.UUID) ([]*Patient, error) {
	return s.patients.ListOwned(ctx, user)
}

func (s *Service) Get(ctx context.Context, user, id uuid.UUID) (*Patient, error) {
	return s.patients.GetOwned(ctx, user, id)
}

func (s *Service) Create(ctx context.Context, user uuid.UUID, in *Input) (*Patient, error) {
	dob, v := validateInput(in)
	if v != nil {
		return nil, v
	}
	inUse, err := s.patients.EmailInUse(ctx, user, in.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, apperr.NewValidation("email", "a patient with this email already exists in your records")
	}
	p := &Patient{
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		DateOfBirth:    Date{dob},
		Gender:         in.Gender,
		Address:        in.Address,
		MedicalHistory: in.MedicalHistory,
		CreatedBy:      user,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, user, id uuid.UUID, in *Input) (*Patient, error) {
	p, err := s.patients.GetOwned(ctx, user, id)
	if err != nil {
		return nil, err
	}
	dob, v := validateInput(in)
	if v != nil {
		return nil, v
	}
	inUse, err := s.patients.EmailInUse(ctx, user, in.Email, id)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, apperr.NewValidation("email", "a patient with this email already exists in your records")
	}
	p.Name = in.Name
	p.Email = in.Email
	p.Phone = in.Phone
	p.DateOfBirth = Date{dob}
	p.Gender = in.Gender
	p.Address = in.Address
	p.MedicalHistory = in.MedicalHistory
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, user, id uuid.UUID) error {
	return s.patients.DeleteOwned(ctx, user, id)
}
