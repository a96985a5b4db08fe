package service

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metricsvc "schoolsis_backend/internals/features/school/analytics/service"
)

func TestScoreBehavioral_CleanRecord(t *testing.T) {
	res := scoreBehavioral(metricsvc.DisciplineCounts{})

	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Issues)
	assert.Equal(t, ConfidenceMedium, res.Confidence)
}

func TestScoreBehavioral_RecentBands(t *testing.T) {
	frequent := scoreBehavioral(metricsvc.DisciplineCounts{Total: 4, Recent: 4})
	assert.Equal(t, 40.0, frequent.Score)
	assert.Contains(t, frequent.Issues, TagFrequentDiscipline)

	some := scoreBehavioral(metricsvc.DisciplineCounts{Total: 2, Recent: 2})
	assert.Equal(t, 20.0, some.Score)
	assert.Contains(t, some.Issues, TagDiscipline)
}

func TestScoreBehavioral_MajorBands(t *testing.T) {
	repeated := scoreBehavioral(metricsvc.DisciplineCounts{Total: 2, Major: 2})
	assert.Equal(t, 30.0, repeated.Score)
	assert.Contains(t, repeated.Issues, TagMajorDiscipline)

	single := scoreBehavioral(metricsvc.DisciplineCounts{Total: 1, Major: 1})
	assert.Equal(t, 15.0, single.Score)
	assert.Empty(t, single.Issues)
}

func TestScoreBehavioral_TotalBands(t *testing.T) {
	chronic := scoreBehavioral(metricsvc.DisciplineCounts{Total: 11})
	assert.Equal(t, 30.0, chronic.Score)
	assert.Contains(t, chronic.Issues, TagChronicDiscipline)

	moderate := scoreBehavioral(metricsvc.DisciplineCounts{Total: 6})
	assert.Equal(t, 15.0, moderate.Score)
	assert.Empty(t, moderate.Issues)
}

func TestScoreBehavioral_ConfidenceHighWithAnyIncident(t *testing.T) {
	res := scoreBehavioral(metricsvc.DisciplineCounts{Total: 1})
	assert.Equal(t, ConfidenceHigh, res.Confidence)
}

func TestScoreBehavioral_ClampsAt100(t *testing.T) {
	res := scoreBehavioral(metricsvc.DisciplineCounts{Total: 11, Major: 2, Recent: 4})
	assert.Equal(t, 100.0, res.Score)
}

func TestEvaluateBehavioral_SourceUnavailable(t *testing.T) {
	metrics := newFakeMetrics()
	metrics.disciplineErr = metricsvc.ErrSourceUnavailable

	var buf bytes.Buffer
	svc := newTestService(metrics, newFakeRepo())
	svc.Log = log.New(&buf, "", 0)

	res := svc.EvaluateBehavioral(context.Background(), uuid.New(), uuid.New())

	require.Equal(t, 0.0, res.Score)
	require.Empty(t, res.Issues)
	require.Equal(t, ConfidenceLow, res.Confidence)
	assert.Equal(t, 0, res.Details["total_incidents"])
	assert.Equal(t, 0, res.Details["major_incidents"])
	assert.Equal(t, 0, res.Details["recent_incidents"])
	assert.Contains(t, buf.String(), "[WARN]")
}
