package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "schoolsis_backend/internals/features/school/analytics/model"
)

func attendanceRow(rate float64, trend string, chronic, tardy bool) amodel.AttendanceAnalyticsModel {
	return amodel.AttendanceAnalyticsModel{
		AnalysisDate:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Period:             "monthly",
		AttendanceRate:     rate,
		PunctualityRate:    90,
		AttendanceTrend:    trend,
		ChronicAbsenteeism: chronic,
		TardinessConcern:   tardy,
	}
}

func TestScoreAttendance_NoRows(t *testing.T) {
	res := scoreAttendance(nil)

	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Issues)
	assert.Equal(t, ConfidenceLow, res.Confidence)
}

func TestScoreAttendance_LowRate(t *testing.T) {
	res := scoreAttendance([]amodel.AttendanceAnalyticsModel{
		attendanceRow(65, amodel.TrendStable, false, false),
	})

	assert.Equal(t, 40.0, res.Score)
	assert.Equal(t, []string{TagAttendance}, res.Issues)
	assert.Equal(t, ConfidenceMedium, res.Confidence)
}

func TestScoreAttendance_ModerateRateNoTag(t *testing.T) {
	res := scoreAttendance([]amodel.AttendanceAnalyticsModel{
		attendanceRow(80, amodel.TrendStable, false, false),
	})

	assert.Equal(t, 20.0, res.Score)
	assert.Empty(t, res.Issues)
}

func TestScoreAttendance_TrendContributions(t *testing.T) {
	declining := scoreAttendance([]amodel.AttendanceAnalyticsModel{
		attendanceRow(90, amodel.TrendDeclining, false, false),
	})
	assert.Equal(t, 20.0, declining.Score)
	assert.Equal(t, []string{TagDecliningAttendance}, declining.Issues)

	critical := scoreAttendance([]amodel.AttendanceAnalyticsModel{
		attendanceRow(90, amodel.TrendCritical, false, false),
	})
	assert.Equal(t, 30.0, critical.Score)
	assert.Equal(t, []string{TagCriticalAttendance}, critical.Issues)
}

func TestScoreAttendance_ClampsAt100(t *testing.T) {
	// 40 + 25 + 15 + 30 = 110, must clamp
	res := scoreAttendance([]amodel.AttendanceAnalyticsModel{
		attendanceRow(50, amodel.TrendCritical, true, true),
	})

	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, []string{TagAttendance, TagChronicAbsenteeism, TagTardiness, TagCriticalAttendance}, res.Issues)
}

func TestScoreAttendance_ConfidenceHighWithTwoRows(t *testing.T) {
	rows := []amodel.AttendanceAnalyticsModel{
		attendanceRow(95, amodel.TrendStable, false, false),
		attendanceRow(93, amodel.TrendStable, false, false),
	}
	res := scoreAttendance(rows)

	assert.Equal(t, ConfidenceHigh, res.Confidence)
}

func TestScoreAttendance_Idempotent(t *testing.T) {
	rows := []amodel.AttendanceAnalyticsModel{
		attendanceRow(65, amodel.TrendDeclining, true, false),
	}

	first := scoreAttendance(rows)
	second := scoreAttendance(rows)
	require.Equal(t, first, second)
}
