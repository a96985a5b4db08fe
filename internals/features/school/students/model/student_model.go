// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusGraduated   = "graduated"
	StatusTransferred = "transferred"
)

// StudentModel maps the `students` table
type StudentModel struct {
	// PK
	ID uuid.UUID `json:"students_id" gorm:"column:students_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	SchoolID uuid.UUID `json:"students_school_id" gorm:"column:students_school_id;type:uuid;not null;index:idx_students_school_number,priority:1,unique;index:idx_students_school_status,priority:1"`

	// School-facing identifier, unique per school (e.g. STU001)
	StudentNumber string `json:"students_student_number" gorm:"column:students_student_number;type:varchar(30);not null;index:idx_students_school_number,priority:2,unique"`

	FirstName  string     `json:"students_first_name" gorm:"column:students_first_name;type:varchar(80);not null"`
	LastName   string     `json:"students_last_name" gorm:"column:students_last_name;type:varchar(80);not null"`
	GradeLevel string     `json:"students_grade_level" gorm:"column:students_grade_level;type:varchar(10);not null"`
	BirthDate  *time.Time `json:"students_birth_date" gorm:"column:students_birth_date;type:date"`

	// Contact
	PrimaryEmail *string `json:"students_primary_email" gorm:"column:students_primary_email;type:varchar(160)"`
	Phone        *string `json:"students_phone" gorm:"column:students_phone;type:varchar(30)"`
	Address      *string `json:"students_address" gorm:"column:students_address;type:text"`

	// Guardians
	Guardian1Name  *string `json:"students_guardian1_name" gorm:"column:students_guardian1_name;type:varchar(160)"`
	Guardian1Phone *string `json:"students_guardian1_phone" gorm:"column:students_guardian1_phone;type:varchar(30)"`
	Guardian1Email *string `json:"students_guardian1_email" gorm:"column:students_guardian1_email;type:varchar(160)"`
	Guardian2Name  *string `json:"students_guardian2_name" gorm:"column:students_guardian2_name;type:varchar(160)"`
	Guardian2Phone *string `json:"students_guardian2_phone" gorm:"column:students_guardian2_phone;type:varchar(30)"`
	Guardian2Email *string `json:"students_guardian2_email" gorm:"column:students_guardian2_email;type:varchar(160)"`

	// Emergency + medical
	EmergencyContactName  *string `json:"students_emergency_contact_name" gorm:"column:students_emergency_contact_name;type:varchar(160)"`
	EmergencyContactPhone *string `json:"students_emergency_contact_phone" gorm:"column:students_emergency_contact_phone;type:varchar(30)"`
	MedicalConditions     *string `json:"students_medical_conditions" gorm:"column:students_medical_conditions;type:text"`

	// Engagement (classes/activities the student is enrolled in)
	EnrollmentCount int `json:"students_enrollment_count" gorm:"column:students_enrollment_count;not null;default:0"`

	Status string `json:"students_status" gorm:"column:students_status;type:varchar(20);not null;default:active;index:idx_students_school_status,priority:2"`

	// Timestamps
	CreatedAt time.Time      `json:"students_created_at" gorm:"column:students_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"students_updated_at" gorm:"column:students_updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"students_deleted_at" gorm:"column:students_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }
