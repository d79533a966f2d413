package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// JobTypeRecurringTaskEmail identifies the recurring-task notification job.
const JobTypeRecurringTaskEmail = "recurring_task_email"

// dueDateFormat renders the due date as a calendar date in the message.
const dueDateFormat = "Monday, 02 Jan 2006"

// RecurringTaskJob sends one notification email for a newly created
// recurring task. It implements job.Job; the worker pool logs any failure
// and nothing is retried.
type RecurringTaskJob struct {
	id     uuid.UUID
	task   domain.Task
	mailer *Mailer
	to     string
	logger *slog.Logger
}

// NewRecurringTaskJob creates a job that mails a copy of the given task.
func NewRecurringTaskJob(
	task domain.Task,
	mailer *Mailer,
	to string,
	logger *slog.Logger,
) *RecurringTaskJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecurringTaskJob{
		id:     uuid.New(),
		task:   task,
		mailer: mailer,
		to:     to,
		logger: logger.With("job_type", JobTypeRecurringTaskEmail, "task_id", task.ID),
	}
}

// ID returns the job's unique identifier
func (j *RecurringTaskJob) ID() uuid.UUID {
	return j.id
}

// Type returns the job type identifier
func (j *RecurringTaskJob) Type() string {
	return JobTypeRecurringTaskEmail
}

// Execute renders the fixed template and attempts one send.
func (j *RecurringTaskJob) Execute(ctx context.Context) error {
	data := recurringTaskData{
		Title:      j.task.Title,
		DueDate:    j.task.DueDate.Format(dueDateFormat),
		Priority:   string(j.task.Priority),
		Category:   j.task.Category,
		Recurrence: string(j.task.Recurrence),
	}

	if err := j.mailer.Send(j.to, recurringTaskTemplate, data); err != nil {
		return err
	}

	j.logger.Info("recurring task notification sent", "recipient", j.to)
	return nil
}
