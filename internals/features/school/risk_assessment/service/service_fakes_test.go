package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	amodel "schoolsis_backend/internals/features/school/analytics/model"
	metricsvc "schoolsis_backend/internals/features/school/analytics/service"
	model "schoolsis_backend/internals/features/school/risk_assessment/model"
)

// fakeMetrics is an in-memory MetricSource for pipeline and batch tests.
type fakeMetrics struct {
	attendance map[uuid.UUID][]amodel.AttendanceAnalyticsModel
	grades     map[uuid.UUID][]amodel.GradeAnalyticsModel
	discipline map[uuid.UUID]metricsvc.DisciplineCounts
	profiles   map[uuid.UUID]metricsvc.StudentProfile
	students   []uuid.UUID

	attendanceErr error
	gradesErr     error
	disciplineErr error
	profileErr    error
	studentsErr   error
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		attendance: map[uuid.UUID][]amodel.AttendanceAnalyticsModel{},
		grades:     map[uuid.UUID][]amodel.GradeAnalyticsModel{},
		discipline: map[uuid.UUID]metricsvc.DisciplineCounts{},
		profiles:   map[uuid.UUID]metricsvc.StudentProfile{},
	}
}

func (f *fakeMetrics) RecentAttendance(_ context.Context, _, studentID uuid.UUID, n int) ([]amodel.AttendanceAnalyticsModel, error) {
	if f.attendanceErr != nil {
		return nil, f.attendanceErr
	}
	rows := f.attendance[studentID]
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

func (f *fakeMetrics) RecentGrades(_ context.Context, _, studentID uuid.UUID, n int) ([]amodel.GradeAnalyticsModel, error) {
	if f.gradesErr != nil {
		return nil, f.gradesErr
	}
	rows := f.grades[studentID]
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

func (f *fakeMetrics) DisciplineCounts(_ context.Context, _, studentID uuid.UUID, _ int) (metricsvc.DisciplineCounts, error) {
	if f.disciplineErr != nil {
		return metricsvc.DisciplineCounts{}, f.disciplineErr
	}
	return f.discipline[studentID], nil
}

func (f *fakeMetrics) StudentProfile(_ context.Context, _, studentID uuid.UUID) (metricsvc.StudentProfile, error) {
	if f.profileErr != nil {
		return metricsvc.StudentProfile{}, f.profileErr
	}
	return f.profiles[studentID], nil
}

func (f *fakeMetrics) ActiveStudentIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	if f.studentsErr != nil {
		return nil, f.studentsErr
	}
	return f.students, nil
}

// fakeRepo records created rows; selected students can be made to fail.
// Create takes a lock because batch chunks write concurrently.
type fakeRepo struct {
	mu      sync.Mutex
	created []*model.StudentRiskAssessmentModel
	failFor map[uuid.UUID]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{failFor: map[uuid.UUID]bool{}}
}

func (f *fakeRepo) Create(_ context.Context, row *model.StudentRiskAssessmentModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[row.StudentID] {
		return fmt.Errorf("write refused for student %s", row.StudentID)
	}
	row.ID = uuid.New()
	f.created = append(f.created, row)
	return nil
}

func newTestService(metrics *fakeMetrics, repo *fakeRepo) *RiskAssessmentService {
	return &RiskAssessmentService{
		Metrics: metrics,
		Repo:    repo,
		Log:     log.New(io.Discard, "", 0),
	}
}

func strPtr(s string) *string { return &s }
