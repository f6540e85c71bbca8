package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func TestTaskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tasks := mocks.NewMockProjectTaskService(ctrl)
	handler := NewTaskHandler(tasks, logger.NewMockLogger(t))

	t.Run("add dependency creating a cycle", func(t *testing.T) {
		req := domain.AddDependencyRequest{OrganizationID: "org-1", TaskID: "a", DependsOnID: "b"}
		tasks.EXPECT().AddDependency(gomock.Any(), req).
			Return(nil, domain.NewValidationError("dependency would create a cycle"))

		rec := serve(handler, http.MethodPost, "/api/tasks.addDependency", req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "dependency would create a cycle", decodeBody(t, rec)["error"])
	})

	t.Run("remove dependency", func(t *testing.T) {
		tasks.EXPECT().RemoveDependency(gomock.Any(), "org-1", "a", "b").
			Return(&domain.ProjectTask{ID: "a", DependsOn: []string{}}, nil)

		rec := serve(handler, http.MethodPost, "/api/tasks.removeDependency",
			removeDependencyRequest{OrganizationID: "org-1", TaskID: "a", DependsOnID: "b"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blocked status change", func(t *testing.T) {
		req := domain.UpdateTaskStatusRequest{OrganizationID: "org-1", TaskID: "a", Status: domain.ProjectTaskDone}
		tasks.EXPECT().UpdateStatus(gomock.Any(), req).Return(nil, domain.NewConflict("task", "dependencies are not done"))

		rec := serve(handler, http.MethodPost, "/api/tasks.updateStatus", req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("topological order", func(t *testing.T) {
		tasks.EXPECT().TopologicalOrder(gomock.Any(), "org-1").
			Return([]*domain.ProjectTask{{ID: "b"}, {ID: "a"}}, nil)

		rec := serve(handler, http.MethodGet, "/api/tasks.order?organization_id=org-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		ordered := decodeBody(t, rec)["tasks"].([]interface{})
		assert.Equal(t, "b", ordered[0].(map[string]interface{})["id"])
	})

	t.Run("cycle report", func(t *testing.T) {
		tasks.EXPECT().DetectCycle(gomock.Any(), "org-1").
			Return(&domain.CycleReport{HasCycle: true, Path: []string{"a", "b", "a"}}, nil)

		rec := serve(handler, http.MethodGet, "/api/tasks.cycles?organization_id=org-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["has_cycle"])
	})

	t.Run("order requires GET", func(t *testing.T) {
		rec := serve(handler, http.MethodPost, "/api/tasks.order", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
