package patient

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// Patient maps to the patients table. Every patient is scoped to the user who
// created it; created_by is fixed at creation and never changes.
type Patient struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	DateOfBirth    Date      `db:"date_of_birth" json:"date_of_birth"`
	Gender         string    `db:"gender" json:"gender"`
	Address        string    `db:"address" json:"address"`
	MedicalHistory string    `db:"medical_history" json:"medical_history"`
	CreatedBy      uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Input is the client-supplied payload for creating or replacing a patient.
type Input struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}
