// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolsis_backend/internals/features/school/students/model"
)

type CreateStudentRequest struct {
	StudentNumber string     `json:"student_number" validate:"required,max=30"`
	FirstName     string     `json:"first_name" validate:"required,max=80"`
	LastName      string     `json:"last_name" validate:"required,max=80"`
	GradeLevel    string     `json:"grade_level" validate:"required,max=10"`
	BirthDate     *time.Time `json:"birth_date"`

	PrimaryEmail *string `json:"primary_email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Address      *string `json:"address"`

	Guardian1Name  *string `json:"guardian1_name" validate:"omitempty,max=160"`
	Guardian1Phone *string `json:"guardian1_phone" validate:"omitempty,max=30"`
	Guardian1Email *string `json:"guardian1_email" validate:"omitempty,email"`
	Guardian2Name  *string `json:"guardian2_name" validate:"omitempty,max=160"`
	Guardian2Phone *string `json:"guardian2_phone" validate:"omitempty,max=30"`
	Guardian2Email *string `json:"guardian2_email" validate:"omitempty,email"`

	EmergencyContactName  *string `json:"emergency_contact_name" validate:"omitempty,max=160"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" validate:"omitempty,max=30"`
	MedicalConditions     *string `json:"medical_conditions"`

	EnrollmentCount *int    `json:"enrollment_count" validate:"omitempty,gte=0"`
	Status          *string `json:"status" validate:"omitempty,oneof=active inactive graduated transferred"`
}

// UpdateStudentRequest: partial update, nil = untouched
type UpdateStudentRequest struct {
	FirstName  *string    `json:"first_name" validate:"omitempty,max=80"`
	LastName   *string    `json:"last_name" validate:"omitempty,max=80"`
	GradeLevel *string    `json:"grade_level" validate:"omitempty,max=10"`
	BirthDate  *time.Time `json:"birth_date"`

	PrimaryEmail *string `json:"primary_email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Address      *string `json:"address"`

	Guardian1Name  *string `json:"guardian1_name" validate:"omitempty,max=160"`
	Guardian1Phone *string `json:"guardian1_phone" validate:"omitempty,max=30"`
	Guardian1Email *string `json:"guardian1_email" validate:"omitempty,email"`
	Guardian2Name  *string `json:"guardian2_name" validate:"omitempty,max=160"`
	Guardian2Phone *string `json:"guardian2_phone" validate:"omitempty,max=30"`
	Guardian2Email *string `json:"guardian2_email" validate:"omitempty,email"`

	EmergencyContactName  *string `json:"emergency_contact_name" validate:"omitempty,max=160"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" validate:"omitempty,max=30"`
	MedicalConditions     *string `json:"medical_conditions"`

	EnrollmentCount *int    `json:"enrollment_count" validate:"omitempty,gte=0"`
	Status          *string `json:"status" validate:"omitempty,oneof=active inactive graduated transferred"`
}

type StudentResponse struct {
	ID            uuid.UUID  `json:"id"`
	SchoolID      uuid.UUID  `json:"school_id"`
	StudentNumber string     `json:"student_number"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	GradeLevel    string     `json:"grade_level"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`

	PrimaryEmail *string `json:"primary_email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`

	Guardian1Name  *string `json:"guardian1_name,omitempty"`
	Guardian1Phone *string `json:"guardian1_phone,omitempty"`
	Guardian1Email *string `json:"guardian1_email,omitempty"`
	Guardian2Name  *string `json:"guardian2_name,omitempty"`
	Guardian2Phone *string `json:"guardian2_phone,omitempty"`
	Guardian2Email *string `json:"guardian2_email,omitempty"`

	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	MedicalConditions     *string `json:"medical_conditions,omitempty"`

	EnrollmentCount int    `json:"enrollment_count"`
	Status          string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToStudentResponse(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:            m.ID,
		SchoolID:      m.SchoolID,
		StudentNumber: m.StudentNumber,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		GradeLevel:    m.GradeLevel,
		BirthDate:     m.BirthDate,

		PrimaryEmail: m.PrimaryEmail,
		Phone:        m.Phone,
		Address:      m.Address,

		Guardian1Name:  m.Guardian1Name,
		Guardian1Phone: m.Guardian1Phone,
		Guardian1Email: m.Guardian1Email,
		Guardian2Name:  m.Guardian2Name,
		Guardian2Phone: m.Guardian2Phone,
		Guardian2Email: m.Guardian2Email,

		EmergencyContactName:  m.EmergencyContactName,
		EmergencyContactPhone: m.EmergencyContactPhone,
		MedicalConditions:     m.MedicalConditions,

		EnrollmentCount: m.EnrollmentCount,
		Status:          m.Status,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
