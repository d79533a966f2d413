package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskdeck/taskdeck-api/internal/service/tasks"
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	taskService *tasks.Service
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *tasks.Service, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list tasks", "error", err)
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// ListByDate handles GET /api/tasks/date/{date}.
// The date path parameter is a calendar date, YYYY-MM-DD.
func (h *TaskHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "date")
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		return
	}

	result, err := h.taskService.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("failed to list tasks by date", "date", raw, "error", err)
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// DashboardSummary handles GET /api/dashboard-summary.
func (h *TaskHandler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.taskService.DashboardSummary(r.Context())
	if err != nil {
		h.logger.Error("failed to compute dashboard summary", "error", err)
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, summary)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := h.taskService.Create(r.Context(), tasks.CreateInput{
		Title:      req.Title,
		Priority:   req.Priority,
		Category:   req.Category,
		DueDate:    req.DueDate,
		Recurrence: req.Recurrence,
	})
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to create task", "error", err)
		}
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := h.taskService.Update(r.Context(), id, tasks.UpdateInput{
		Title:      req.Title,
		Priority:   req.Priority,
		Category:   req.Category,
		DueDate:    req.DueDate,
		Recurrence: req.Recurrence,
	})
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to update task", "task_id", id, "error", err)
		}
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to delete task", "task_id", id, "error", err)
		}
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
