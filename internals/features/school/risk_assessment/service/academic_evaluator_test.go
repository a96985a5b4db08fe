package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	amodel "schoolsis_backend/internals/features/school/analytics/model"
)

func gradeRow(avg float64, trend string, volatility float64, missing, late int) amodel.GradeAnalyticsModel {
	return amodel.GradeAnalyticsModel{
		AnalysisDate:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Period:             "monthly",
		AverageGrade:       avg,
		GradeTrend:         trend,
		GradeVolatility:    volatility,
		MissingAssignments: missing,
		LateAssignments:    late,
	}
}

func TestScoreAcademic_NoRows(t *testing.T) {
	res := scoreAcademic(nil)

	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Issues)
	assert.Equal(t, ConfidenceLow, res.Confidence)
}

func TestScoreAcademic_GradeBands(t *testing.T) {
	cases := []struct {
		name  string
		avg   float64
		score float64
		tags  []string
	}{
		{"failing", 55, 35, []string{TagFailingGrades}},
		{"low", 65, 25, []string{TagLowGrades}},
		{"below average no tag", 75, 15, []string{}},
		{"healthy", 90, 0, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := scoreAcademic([]amodel.GradeAnalyticsModel{
				gradeRow(tc.avg, amodel.TrendStable, 0, 0, 0),
			})
			assert.Equal(t, tc.score, res.Score)
			assert.Equal(t, tc.tags, res.Issues)
		})
	}
}

func TestScoreAcademic_TrendContributions(t *testing.T) {
	declining := scoreAcademic([]amodel.GradeAnalyticsModel{
		gradeRow(90, amodel.TrendDeclining, 0, 0, 0),
	})
	assert.Equal(t, 25.0, declining.Score)
	assert.Equal(t, []string{TagGradeDecline}, declining.Issues)

	critical := scoreAcademic([]amodel.GradeAnalyticsModel{
		gradeRow(90, amodel.TrendCritical, 0, 0, 0),
	})
	assert.Equal(t, 35.0, critical.Score)
	assert.Equal(t, []string{TagCriticalGrades}, critical.Issues)
}

func TestScoreAcademic_AssignmentBands(t *testing.T) {
	missingHigh := scoreAcademic([]amodel.GradeAnalyticsModel{
		gradeRow(90, amodel.TrendStable, 0, 6, 0),
	})
	assert.Equal(t, 20.0, missingHigh.Score)
	assert.Equal(t, []string{TagMissingAssignments}, missingHigh.Issues)

	missingLow := scoreAcademic([]amodel.GradeAnalyticsModel{
		gradeRow(90, amodel.TrendStable, 0, 3, 0),
	})
	assert.Equal(t, 10.0, missingLow.Score)
	assert.Empty(t, missingLow.Issues)

	lateHigh := scoreAcademic([]amodel.GradeAnalyticsModel{
		gradeRow(90, amodel.TrendStable, 0, 0, 11),
	})
	assert.Equal(t, 10.0, lateHigh.Score)
	assert.Equal(t, []string{TagLateAssignments}, lateHigh.Issues)

	lateLow := scoreAcademic([]amodel.GradeAnalyticsModel{
		gradeRow(90, amodel.TrendStable, 0, 0, 6),
	})
	assert.Equal(t, 5.0, lateLow.Score)
	assert.Empty(t, lateLow.Issues)
}

func TestScoreAcademic_Volatility(t *testing.T) {
	res := scoreAcademic([]amodel.GradeAnalyticsModel{
		gradeRow(90, amodel.TrendStable, 25, 0, 0),
	})
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, []string{TagUnstableGrades}, res.Issues)
}

func TestScoreAcademic_ClampsAt100(t *testing.T) {
	// 35 + 35 + 20 + 10 + 10 = 110, must clamp
	res := scoreAcademic([]amodel.GradeAnalyticsModel{
		gradeRow(55, amodel.TrendCritical, 25, 6, 11),
	})
	assert.Equal(t, 100.0, res.Score)
}

func TestScoreAcademic_ConfidenceHighWithTwoRows(t *testing.T) {
	rows := []amodel.GradeAnalyticsModel{
		gradeRow(90, amodel.TrendStable, 0, 0, 0),
		gradeRow(88, amodel.TrendStable, 0, 0, 0),
	}
	res := scoreAcademic(rows)
	assert.Equal(t, ConfidenceHigh, res.Confidence)
}
