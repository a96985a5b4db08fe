// file: internals/features/school/risk_assessment/service/repository.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "schoolsis_backend/internals/features/school/risk_assessment/model"
)

// InterventionUpdate carries the mutable tracking fields. nil = leave as is.
type InterventionUpdate struct {
	LastInterventionDate    *time.Time
	InterventionSuccessRate *float64
}

// CohortStats summarizes assessments inside a lookback window.
type CohortStats struct {
	Total           int64   `json:"total"`
	AvgOverallScore float64 `json:"avg_overall_score"`

	LowCount      int64 `json:"low_count"`
	MediumCount   int64 `json:"medium_count"`
	HighCount     int64 `json:"high_count"`
	CriticalCount int64 `json:"critical_count"`

	AttendanceIssueCount  int64 `json:"attendance_issue_count"`
	GradeDeclineCount     int64 `json:"grade_decline_count"`
	FrequentTardyCount    int64 `json:"frequent_tardy_count"`
	DisciplineIssueCount  int64 `json:"discipline_issue_count"`
	SocialIsolationCount  int64 `json:"social_isolation_count"`
	FamilyIssueCount      int64 `json:"family_issue_count"`
	InterventionsRequired int64 `json:"interventions_required"`
}

// AssessmentRepository owns reads/writes of student_risk_assessments.
// Window arguments are bound through make_interval, never spliced into SQL.
type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// Create inserts one assessment row; id/timestamps are filled in place.
func (r *AssessmentRepository) Create(ctx context.Context, row *model.StudentRiskAssessmentModel) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

// Latest returns the most recent assessment for a student, or
// gorm.ErrRecordNotFound when the student was never assessed.
func (r *AssessmentRepository) Latest(ctx context.Context, schoolID, studentID uuid.UUID) (*model.StudentRiskAssessmentModel, error) {
	var row model.StudentRiskAssessmentModel
	err := r.DB.WithContext(ctx).
		Where("student_risk_assessments_school_id = ? AND student_risk_assessments_student_id = ?", schoolID, studentID).
		Order("student_risk_assessments_created_at DESC").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// TrendHistory returns the assessments of the last N months, oldest first,
// for charting score trends.
func (r *AssessmentRepository) TrendHistory(ctx context.Context, schoolID, studentID uuid.UUID, months int) ([]model.StudentRiskAssessmentModel, error) {
	var rows []model.StudentRiskAssessmentModel
	err := r.DB.WithContext(ctx).
		Where("student_risk_assessments_school_id = ? AND student_risk_assessments_student_id = ?", schoolID, studentID).
		Where("student_risk_assessments_created_at >= NOW() - make_interval(months => ?)", months).
		Order("student_risk_assessments_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByRiskLevel pages through students whose latest assessment sits at
// the given level, highest overall score first.
func (r *AssessmentRepository) ListByRiskLevel(ctx context.Context, schoolID uuid.UUID, level string, limit, offset int) ([]model.StudentRiskAssessmentModel, int64, error) {
	latest := `
		SELECT DISTINCT ON (student_risk_assessments_student_id) *
		FROM student_risk_assessments
		WHERE student_risk_assessments_school_id = ?
		ORDER BY student_risk_assessments_student_id, student_risk_assessments_created_at DESC`

	var total int64
	err := r.DB.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM (`+latest+`) latest WHERE student_risk_assessments_risk_level = ?`,
		schoolID, level,
	).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []model.StudentRiskAssessmentModel
	err = r.DB.WithContext(ctx).Raw(
		`SELECT * FROM (`+latest+`) latest
		 WHERE student_risk_assessments_risk_level = ?
		 ORDER BY student_risk_assessments_overall_score DESC
		 LIMIT ? OFFSET ?`,
		schoolID, level, limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateIntervention mutates the tracking fields on the student's most
// recent assessment only. Older rows stay immutable.
func (r *AssessmentRepository) UpdateIntervention(ctx context.Context, schoolID, studentID uuid.UUID, upd InterventionUpdate) (*model.StudentRiskAssessmentModel, error) {
	row, err := r.Latest(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if upd.LastInterventionDate != nil {
		fields["student_risk_assessments_last_intervention_date"] = *upd.LastInterventionDate
	}
	if upd.InterventionSuccessRate != nil {
		fields["student_risk_assessments_intervention_success_rate"] = *upd.InterventionSuccessRate
	}
	if len(fields) == 0 {
		return row, nil
	}

	err = r.DB.WithContext(ctx).
		Model(&model.StudentRiskAssessmentModel{}).
		Where("student_risk_assessments_id = ?", row.ID).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}

	return r.Latest(ctx, schoolID, studentID)
}

// CohortStats aggregates counts by level, issue-flag counts, and the
// average overall score over a lookback window in days.
func (r *AssessmentRepository) CohortStats(ctx context.Context, schoolID uuid.UUID, lookbackDays int) (CohortStats, error) {
	var out CohortStats
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COALESCE(ROUND(AVG(student_risk_assessments_overall_score)::numeric, 2), 0) AS avg_overall_score,
			COUNT(*) FILTER (WHERE student_risk_assessments_risk_level = 'low') AS low_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_risk_level = 'medium') AS medium_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_risk_level = 'high') AS high_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_risk_level = 'critical') AS critical_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_attendance_issues) AS attendance_issue_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_grade_decline) AS grade_decline_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_frequent_tardiness) AS frequent_tardy_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_discipline_issues) AS discipline_issue_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_social_isolation) AS social_isolation_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_family_issues) AS family_issue_count,
			COUNT(*) FILTER (WHERE student_risk_assessments_intervention_required) AS interventions_required
		FROM student_risk_assessments
		WHERE student_risk_assessments_school_id = ?
		  AND student_risk_assessments_created_at >= NOW() - make_interval(days => ?)`,
		schoolID, lookbackDays,
	).Scan(&out).Error
	if err != nil {
		return CohortStats{}, err
	}
	return out, nil
}

// PurgeOlderThan is the administrative retention sweep; it lives outside
// the scoring pipeline.
func (r *AssessmentRepository) PurgeOlderThan(ctx context.Context, schoolID uuid.UUID, retentionDays int) (int64, error) {
	res := r.DB.WithContext(ctx).Exec(`
		DELETE FROM student_risk_assessments
		WHERE student_risk_assessments_school_id = ?
		  AND student_risk_assessments_created_at < NOW() - make_interval(days => ?)`,
		schoolID, retentionDays,
	)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
