package service

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "schoolsis_backend/internals/features/school/analytics/model"
)

func newTestRunner(svc *RiskAssessmentService, chunkSize int) *BatchRunner {
	return &BatchRunner{
		Svc:       svc,
		Log:       log.New(io.Discard, "", 0),
		ChunkSize: chunkSize,
		// no inter-chunk delay in tests
		running: make(map[uuid.UUID]bool),
	}
}

func TestRunBatch_PartialFailures(t *testing.T) {
	schoolID := uuid.New()
	metrics := newFakeMetrics()
	repo := newFakeRepo()

	// 7 students across 3 chunks of 3; two of them fail at the write
	for i := 0; i < 7; i++ {
		id := uuid.New()
		metrics.students = append(metrics.students, id)
		metrics.profiles[id] = fullProfile()
		if i == 2 || i == 5 {
			repo.failFor[id] = true
		}
	}

	runner := newTestRunner(newTestService(metrics, repo), 3)

	summary, err := runner.RunBatch(context.Background(), schoolID)
	require.NoError(t, err)

	assert.Equal(t, BatchStatusCompleted, summary.Status)
	assert.Equal(t, 7, summary.TotalStudents)
	assert.Equal(t, 5, summary.Processed)
	assert.Equal(t, 2, summary.Errors)
	assert.Len(t, repo.created, 5)
}

func TestRunBatch_CountsHighRiskAndInterventions(t *testing.T) {
	schoolID := uuid.New()
	metrics := newFakeMetrics()
	repo := newFakeRepo()

	healthy := uuid.New()
	metrics.profiles[healthy] = fullProfile()
	metrics.attendance[healthy] = []amodel.AttendanceAnalyticsModel{
		attendanceRow(96, amodel.TrendStable, false, false),
	}

	// attendance 100, academic 100 → overall 75 (high) + interventions
	atRisk := uuid.New()
	metrics.profiles[atRisk] = fullProfile()
	metrics.attendance[atRisk] = []amodel.AttendanceAnalyticsModel{
		attendanceRow(50, amodel.TrendCritical, true, true),
	}
	metrics.grades[atRisk] = []amodel.GradeAnalyticsModel{
		gradeRow(55, amodel.TrendCritical, 25, 6, 11),
	}

	// low overall but the attendance tag forces an intervention
	flagged := uuid.New()
	metrics.profiles[flagged] = fullProfile()
	metrics.attendance[flagged] = []amodel.AttendanceAnalyticsModel{
		attendanceRow(65, amodel.TrendStable, false, false),
	}

	metrics.students = []uuid.UUID{healthy, atRisk, flagged}

	runner := newTestRunner(newTestService(metrics, repo), 10)

	summary, err := runner.RunBatch(context.Background(), schoolID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, 1, summary.HighRisk)
	assert.Equal(t, 2, summary.Interventions)
}

func TestRunBatch_EmptySchool(t *testing.T) {
	runner := newTestRunner(newTestService(newFakeMetrics(), newFakeRepo()), 10)

	summary, err := runner.RunBatch(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, BatchStatusCompleted, summary.Status)
	assert.Equal(t, 0, summary.TotalStudents)
	assert.Equal(t, 0, summary.Processed)
}

func TestRunBatch_ListFailureFailsRun(t *testing.T) {
	metrics := newFakeMetrics()
	metrics.studentsErr = assert.AnError

	runner := newTestRunner(newTestService(metrics, newFakeRepo()), 10)

	summary, err := runner.RunBatch(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, BatchStatusFailed, summary.Status)
}

func TestRunBatch_GuardsOverlappingRuns(t *testing.T) {
	runner := newTestRunner(newTestService(newFakeMetrics(), newFakeRepo()), 10)
	schoolID := uuid.New()

	require.NoError(t, runner.acquire(schoolID))
	assert.ErrorIs(t, runner.acquire(schoolID), ErrBatchAlreadyRunning)

	// a different school is unaffected
	assert.NoError(t, runner.acquire(uuid.New()))

	runner.release(schoolID)
	assert.NoError(t, runner.acquire(schoolID))
}
