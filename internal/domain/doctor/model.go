package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table. Doctors form a global directory: any
// authenticated caller can read and modify them.
type Doctor struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Email               string    `db:"email" json:"email"`
	Phone               string    `db:"phone" json:"phone"`
	Specialization      string    `db:"specialization" json:"specialization"`
	Qualification       string    `db:"qualification" json:"qualification"`
	ExperienceYears     int       `db:"experience_years" json:"experience_years"`
	LicenseNumber       string    `db:"license_number" json:"license_number"`
	HospitalAffiliation *string   `db:"hospital_affiliation" json:"hospital_affiliation,omitempty"`
	ConsultationFee     *float64  `db:"consultation_fee" json:"consultation_fee,omitempty"`
	IsAvailable         bool      `db:"is_available" json:"is_available"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// Input is the client-supplied payload for creating or replacing a doctor.
type Input struct {
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	Specialization      string   `json:"specialization"`
	Qualification       string   `json:"qualification"`
	ExperienceYears     *int     `json:"experience_years"`
	LicenseNumber       string   `json:"license_number"`
	HospitalAffiliation *string  `json:"hospital_affiliation"`
	ConsultationFee     *float64 `json:"consultation_fee"`
	IsAvailable         *bool    `json:"is_available"`
}
