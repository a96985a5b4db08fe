// file: internals/features/school/analytics/service/metric_store.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "schoolsis_backend/internals/features/school/analytics/model"
	smodel "schoolsis_backend/internals/features/school/students/model"
)

// ErrSourceUnavailable marks a whole optional source (table) as absent, as
// opposed to merely having no rows for a student.
var ErrSourceUnavailable = errors.New("metric source unavailable")

// DisciplineCounts are the per-student incident aggregates the behavioral
// evaluator consumes.
type DisciplineCounts struct {
	Total  int `json:"total"`
	Major  int `json:"major"`
	Recent int `json:"recent"` // last 30 days
}

// StudentProfile is the slim profile projection for the social evaluator.
type StudentProfile struct {
	EnrollmentCount       int     `json:"enrollment_count"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	PrimaryEmail          *string `json:"primary_email"`
	MedicalConditions     *string `json:"medical_conditions"`
}

// MetricStore serves the read contracts over the precomputed aggregates.
// Every query is school-scoped; window arguments are always bound as typed
// parameters, never interpolated into the SQL text.
type MetricStore struct {
	DB *gorm.DB
}

func NewMetricStore(db *gorm.DB) *MetricStore {
	return &MetricStore{DB: db}
}

// RecentAttendance returns the latest n attendance aggregate rows, newest first.
func (s *MetricStore) RecentAttendance(ctx context.Context, schoolID, studentID uuid.UUID, n int) ([]amodel.AttendanceAnalyticsModel, error) {
	var rows []amodel.AttendanceAnalyticsModel
	err := s.DB.WithContext(ctx).
		Where("attendance_analytics_school_id = ? AND attendance_analytics_student_id = ?", schoolID, studentID).
		Order("attendance_analytics_analysis_date DESC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RecentGrades returns the latest n grade aggregate rows, newest first.
func (s *MetricStore) RecentGrades(ctx context.Context, schoolID, studentID uuid.UUID, n int) ([]amodel.GradeAnalyticsModel, error) {
	var rows []amodel.GradeAnalyticsModel
	err := s.DB.WithContext(ctx).
		Where("grade_analytics_school_id = ? AND grade_analytics_student_id = ?", schoolID, studentID).
		Order("grade_analytics_analysis_date DESC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DisciplineCounts aggregates incident counts for a student. The recent
// window (days) is bound via make_interval, not spliced into the query.
// A missing discipline_incidents relation yields ErrSourceUnavailable.
func (s *MetricStore) DisciplineCounts(ctx context.Context, schoolID, studentID uuid.UUID, recentDays int) (DisciplineCounts, error) {
	var out DisciplineCounts
	err := s.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE discipline_incidents_severity = ?) AS major,
			COUNT(*) FILTER (WHERE discipline_incidents_occurred_at >= NOW() - make_interval(days => ?)) AS recent
		FROM discipline_incidents
		WHERE discipline_incidents_school_id = ?
		  AND discipline_incidents_student_id = ?`,
		amodel.SeverityMajor, recentDays, schoolID, studentID,
	).Scan(&out).Error
	if err != nil {
		if isUndefinedTable(err) {
			return DisciplineCounts{}, ErrSourceUnavailable
		}
		return DisciplineCounts{}, err
	}
	return out, nil
}

// StudentProfile loads the profile fields the social evaluator reads.
func (s *MetricStore) StudentProfile(ctx context.Context, schoolID, studentID uuid.UUID) (StudentProfile, error) {
	var row smodel.StudentModel
	err := s.DB.WithContext(ctx).
		Where("students_school_id = ? AND students_id = ?", schoolID, studentID).
		First(&row).Error
	if err != nil {
		return StudentProfile{}, err
	}
	return StudentProfile{
		EnrollmentCount:       row.EnrollmentCount,
		EmergencyContactName:  row.EmergencyContactName,
		EmergencyContactPhone: row.EmergencyContactPhone,
		PrimaryEmail:          row.PrimaryEmail,
		MedicalConditions:     row.MedicalConditions,
	}, nil
}

// ActiveStudentIDs lists the students a batch run iterates.
func (s *MetricStore) ActiveStudentIDs(ctx context.Context, schoolID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&smodel.StudentModel{}).
		Where("students_school_id = ? AND students_status = ?", schoolID, smodel.StatusActive).
		Order("students_created_at ASC").
		Pluck("students_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func isUndefinedTable(err error) bool {
	// pgx surfaces SQLSTATE 42P01 for a missing relation
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 42p01") ||
		strings.Contains(s, "does not exist")
}
