// file: internals/features/school/risk_assessment/service/batch_runner.go
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	model "schoolsis_backend/internals/features/school/risk_assessment/model"
)

const (
	batchChunkSize  = 10
	batchChunkDelay = 100 * time.Millisecond
)

// Batch run states.
const (
	BatchStatusRunning   = "running"
	BatchStatusCompleted = "completed"
	BatchStatusFailed    = "failed"
)

// BatchSummary is the aggregate result of one tenant-wide run.
type BatchSummary struct {
	Status        string `json:"status"`
	TotalStudents int    `json:"total_students"`
	Processed     int    `json:"processed"` // successes only
	Errors        int    `json:"errors"`
	HighRisk      int    `json:"high_risk"` // high or critical
	Interventions int    `json:"interventions"`
}

// BatchRunner assesses every active student of a school in fixed-size
// chunks. Students within a chunk run concurrently; chunks are serialized
// with a fixed delay to throttle load on the store.
type BatchRunner struct {
	Svc        *RiskAssessmentService
	Log        *log.Logger
	ChunkSize  int
	ChunkDelay time.Duration

	mu      sync.Mutex
	running map[uuid.UUID]bool
}

func NewBatchRunner(svc *RiskAssessmentService, logger *log.Logger) *BatchRunner {
	if logger == nil {
		logger = log.Default()
	}
	return &BatchRunner{
		Svc:        svc,
		Log:        logger,
		ChunkSize:  batchChunkSize,
		ChunkDelay: batchChunkDelay,
		running:    make(map[uuid.UUID]bool),
	}
}

// ErrBatchAlreadyRunning guards against overlapping runs for one school.
var ErrBatchAlreadyRunning = fmt.Errorf("a batch run is already in progress for this school")

func (r *BatchRunner) acquire(schoolID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running[schoolID] {
		return ErrBatchAlreadyRunning
	}
	r.running[schoolID] = true
	return nil
}

func (r *BatchRunner) release(schoolID uuid.UUID) {
	r.mu.Lock()
	delete(r.running, schoolID)
	r.mu.Unlock()
}

// RunBatch assesses all active students of a school. A failing student is
// logged and counted, never aborts the run; the summary is always produced
// once the student list could be fetched.
func (r *BatchRunner) RunBatch(ctx context.Context, schoolID uuid.UUID) (BatchSummary, error) {
	if err := r.acquire(schoolID); err != nil {
		return BatchSummary{}, err
	}
	defer r.release(schoolID)

	ids, err := r.Svc.Metrics.ActiveStudentIDs(ctx, schoolID)
	if err != nil {
		return BatchSummary{Status: BatchStatusFailed}, fmt.Errorf("list active students: %w", err)
	}

	r.Log.Printf("[INFO] batch assessment started school=%s students=%d", schoolID, len(ids))

	summary := BatchSummary{Status: BatchStatusRunning, TotalStudents: len(ids)}
	var smu sync.Mutex

	chunkSize := r.ChunkSize
	if chunkSize <= 0 {
		chunkSize = batchChunkSize
	}

	for start := 0; start < len(ids); start += chunkSize {
		end := start + chunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		g, gctx := errgroup.WithContext(ctx)
		for _, studentID := range chunk {
			studentID := studentID
			g.Go(func() error {
				outcome, err := r.Svc.AssessStudent(gctx, schoolID, studentID)

				smu.Lock()
				defer smu.Unlock()
				if err != nil {
					summary.Errors++
					r.Log.Printf("[ERROR] batch assessment failed student=%s: %v", studentID, err)
					return nil // per-student failures never abort the batch
				}
				summary.Processed++
				switch outcome.Assessment.RiskLevel {
				case model.RiskLevelHigh, model.RiskLevelCritical:
					summary.HighRisk++
				}
				if outcome.Assessment.InterventionRequired {
					summary.Interventions++
				}
				return nil
			})
		}
		_ = g.Wait()

		// fixed inter-chunk delay: crude backpressure on the store
		if end < len(ids) && r.ChunkDelay > 0 {
			time.Sleep(r.ChunkDelay)
		}
	}

	summary.Status = BatchStatusCompleted
	r.Log.Printf("[INFO] batch assessment done school=%s processed=%d errors=%d high_risk=%d interventions=%d",
		schoolID, summary.Processed, summary.Errors, summary.HighRisk, summary.Interventions)
	return summary, nil
}
