package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type TaskHandler struct {
	service domain.ProjectTaskService
	logger  logger.Logger
}

func NewTaskHandler(service domain.ProjectTaskService, logger logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

type removeDependencyRequest struct {
	OrganizationID string `json:"organization_id"`
	TaskID         string `json:"task_id"`
	DependsOnID    string `json:"depends_on_id"`
}

func (h *TaskHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/tasks.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/tasks.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/tasks.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/tasks.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/tasks.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/tasks.addDependency", requireAuth(http.HandlerFunc(h.handleAddDependency)))
	mux.Handle("/api/tasks.removeDependency", requireAuth(http.HandlerFunc(h.handleRemoveDependency)))
	mux.Handle("/api/tasks.updateStatus", requireAuth(http.HandlerFunc(h.handleUpdateStatus)))
	mux.Handle("/api/tasks.order", requireAuth(http.HandlerFunc(h.handleOrder)))
	mux.Handle("/api/tasks.cycles", requireAuth(http.HandlerFunc(h.handleCycles)))
}

func (h *TaskHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	tasks, err := h.service.ListTasks(r.Context(), q.Get("organization_id"), domain.ProjectTaskStatus(q.Get("status")))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list tasks")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (h *TaskHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing task ID", http.StatusBadRequest)
		return
	}
	task, err := h.service.GetTask(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (h *TaskHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var task domain.ProjectTask
	if !decodeJSON(w, r, &task) {
		return
	}
	if err := h.service.CreateTask(r.Context(), &task); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create task")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"task": task})
}

func (h *TaskHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var task domain.ProjectTask
	if !decodeJSON(w, r, &task) {
		return
	}
	if task.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateTask(r.Context(), &task); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (h *TaskHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeleteTask(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TaskHandler) handleAddDependency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.AddDependencyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	task, err := h.service.AddDependency(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to add dependency")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (h *TaskHandler) handleRemoveDependency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req removeDependencyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	task, err := h.service.RemoveDependency(r.Context(), req.OrganizationID, req.TaskID, req.DependsOnID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to remove dependency")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (h *TaskHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.UpdateTaskStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	task, err := h.service.UpdateStatus(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update task status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (h *TaskHandler) handleOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tasks, err := h.service.TopologicalOrder(r.Context(), r.URL.Query().Get("organization_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to order tasks")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (h *TaskHandler) handleCycles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	report, err := h.service.DetectCycle(r.Context(), r.URL.Query().Get("organization_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to detect cycles")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
