package mailer

import (
	"log/slog"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/job"
)

// Scheduler hands recurring-task notifications to the background job
// queue. It decouples the mail transport from the request that created
// the task: the caller gets an error only when the queue itself rejects
// the job, and even that is absorbed upstream.
type Scheduler struct {
	queue     job.QueueWriter
	mailer    *Mailer
	recipient string
	logger    *slog.Logger
}

// NewScheduler creates a Scheduler that mails the given recipient.
func NewScheduler(
	queue job.QueueWriter,
	mailer *Mailer,
	recipient string,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		queue:     queue,
		mailer:    mailer,
		recipient: recipient,
		logger:    logger.With(slog.String("component", "mail_scheduler")),
	}
}

// ScheduleRecurringTaskEmail enqueues one notification job for the task.
// The task is copied into the job, never referenced.
func (s *Scheduler) ScheduleRecurringTaskEmail(task domain.Task) error {
	j := NewRecurringTaskJob(task, s.mailer, s.recipient, s.logger)
	if err := s.queue.Enqueue(j); err != nil {
		return err
	}
	s.logger.Debug("recurring task email scheduled", "task_id", task.ID, "job_id", j.ID())
	return nil
}
