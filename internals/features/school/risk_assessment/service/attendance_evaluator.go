// file: internals/features/school/risk_assessment/service/attendance_evaluator.go
package service

import (
	"context"

	"github.com/google/uuid"

	amodel "schoolsis_backend/internals/features/school/analytics/model"
)

// EvaluateAttendance reads the most recent attendance aggregates and scores
// them. Lookup failures degrade to a zero-score result; this evaluator
// never fails the assessment.
func (s *RiskAssessmentService) EvaluateAttendance(ctx context.Context, schoolID, studentID uuid.UUID) EvaluatorResult {
	rows, err := s.Metrics.RecentAttendance(ctx, schoolID, studentID, recentAggregateRows)
	if err != nil {
		s.Log.Printf("[ERROR] attendance lookup failed student=%s: %v", studentID, err)
		return errorResult(err)
	}
	return scoreAttendance(rows)
}

// scoreAttendance is pure: identical rows always yield an identical result.
func scoreAttendance(rows []amodel.AttendanceAnalyticsModel) EvaluatorResult {
	if len(rows) == 0 {
		return EvaluatorResult{
			Score:      0,
			Issues:     []string{},
			Confidence: ConfidenceLow,
			Details:    map[string]any{"reason": "no attendance data"},
		}
	}

	recent := rows[0]
	score := 0.0
	issues := []string{}

	switch {
	case recent.AttendanceRate < 70:
		score += 40
		issues = append(issues, TagAttendance)
	case recent.AttendanceRate < 85:
		score += 20
	}

	if recent.ChronicAbsenteeism {
		score += 25
		issues = append(issues, TagChronicAbsenteeism)
	}

	if recent.TardinessConcern {
		score += 15
		issues = append(issues, TagTardiness)
	}

	// declining and critical are mutually exclusive trend labels
	switch recent.AttendanceTrend {
	case amodel.TrendDeclining:
		score += 20
		issues = append(issues, TagDecliningAttendance)
	case amodel.TrendCritical:
		score += 30
		issues = append(issues, TagCriticalAttendance)
	}

	confidence := ConfidenceMedium
	if len(rows) >= 2 {
		confidence = ConfidenceHigh
	}

	return EvaluatorResult{
		Score:      clampScore(score),
		Issues:     issues,
		Confidence: confidence,
		Details: map[string]any{
			"analysis_date":       recent.AnalysisDate,
			"attendance_rate":     recent.AttendanceRate,
			"punctuality_rate":    recent.PunctualityRate,
			"attendance_trend":    recent.AttendanceTrend,
			"chronic_absenteeism": recent.ChronicAbsenteeism,
			"tardiness_concern":   recent.TardinessConcern,
			"rows_considered":     len(rows),
		},
	}
}
