package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	mail "github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// fakeDialer captures sent messages instead of dialing SMTP.
type fakeDialer struct {
	sent []*mail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*mail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func renderedMessage(t *testing.T, m *mail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func testTask(t *testing.T) domain.Task {
	t.Helper()
	task, err := domain.NewTask(
		"Pay rent",
		domain.PriorityHigh,
		"Finance",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
		domain.RecurrenceMonthly,
	)
	require.NoError(t, err)
	return *task
}

func TestSendRendersTemplate(t *testing.T) {
	t.Parallel()

	dialer := &fakeDialer{}
	m := newWithDialer(dialer, "noreply@taskdeck.example")

	data := recurringTaskData{
		Title:      "Pay rent",
		DueDate:    "Friday, 01 Mar 2024",
		Priority:   "High",
		Category:   "Finance",
		Recurrence: "Monthly",
	}
	require.NoError(t, m.Send("admin@taskdeck.example", recurringTaskTemplate, data))

	require.Len(t, dialer.sent, 1)
	raw := renderedMessage(t, dialer.sent[0])
	assert.Contains(t, raw, "Recurring task created: Pay rent")
	assert.Contains(t, raw, "Friday, 01 Mar 2024")
	assert.Contains(t, raw, "Monthly")
}

func TestSendReturnsTransportError(t *testing.T) {
	t.Parallel()

	dialer := &fakeDialer{err: errors.New("connection refused")}
	m := newWithDialer(dialer, "noreply@taskdeck.example")

	err := m.Send("admin@taskdeck.example", recurringTaskTemplate, recurringTaskData{})
	assert.Error(t, err)
	assert.Empty(t, dialer.sent)
}

func TestRecurringTaskJobExecute(t *testing.T) {
	t.Parallel()

	dialer := &fakeDialer{}
	m := newWithDialer(dialer, "noreply@taskdeck.example")
	j := NewRecurringTaskJob(testTask(t), m, "admin@taskdeck.example", nil)

	require.NoError(t, j.Execute(context.Background()))
	require.Len(t, dialer.sent, 1)

	raw := renderedMessage(t, dialer.sent[0])
	assert.Contains(t, raw, "Pay rent")
	assert.Contains(t, raw, "High")
	assert.Contains(t, raw, "Finance")
	// Due date is rendered as a calendar date, not a raw timestamp.
	assert.Contains(t, raw, "01 Mar 2024")

	assert.Equal(t, JobTypeRecurringTaskEmail, j.Type())
	assert.NotZero(t, j.ID())
}

func TestRecurringTaskJobPropagatesSendFailure(t *testing.T) {
	t.Parallel()

	dialer := &fakeDialer{err: errors.New("smtp down")}
	m := newWithDialer(dialer, "noreply@taskdeck.example")
	j := NewRecurringTaskJob(testTask(t), m, "admin@taskdeck.example", nil)

	// The worker pool owns the failure; the job just reports it.
	assert.Error(t, j.Execute(context.Background()))
}
