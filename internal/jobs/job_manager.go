package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs []job
}

// NewJobManager takes the overdue sweep and, when deliveries are timed in-process,
// the one-shot delivery scheduler. A nil scheduler is skipped.
func NewJobManager(overdue *OverdueDeliveryJob, scheduler *DeliveryScheduler) *JobManager {
	jm := &JobManager{jobs: []job{overdue}}
	if scheduler != nil {
		jm.jobs = append(jm.jobs, scheduler)
	}
	return jm
}

// StartAll starts all jobs. If one fails, the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %T: %w", j, err)
		}
	}
	return nil
}

func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
