package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func setupTaskTest(t *testing.T) (*mocks.MockProjectTaskRepository, *mocks.MockAuthService, *ProjectTaskService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectTaskRepository(ctrl)
	auth := mocks.NewMockAuthService(ctrl)
	repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx).AnyTimes()
	svc := NewProjectTaskService(repo, auth, logger.NewMockLogger(t))
	svc.now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	return repo, auth, svc
}

// taskChain builds a <- b <- c where c depends on b and b depends on a
func taskChain() []*domain.ProjectTask {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*domain.ProjectTask{
		{ID: "a", OrganizationID: "org-1", Title: "Book field", Status: domain.ProjectTaskDone, DependsOn: []string{}, CreatedAt: base},
		{ID: "b", OrganizationID: "org-1", Title: "Print flyers", Status: domain.ProjectTaskInProgress, DependsOn: []string{"a"}, CreatedAt: base.Add(time.Hour)},
		{ID: "c", OrganizationID: "org-1", Title: "Open registration", Status: domain.ProjectTaskTodo, DependsOn: []string{"b"}, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestProjectTaskService_AddDependency(t *testing.T) {
	coach := &domain.User{ID: "coach-1"}

	t.Run("adds edge", func(t *testing.T) {
		repo, auth, svc := setupTaskTest(t)
		expectAuthorize(auth, "org-1", coach, domain.RoleCoach)
		repo.EXPECT().ListForUpdateTx(gomock.Any(), gomock.Any(), "org-1").Return(taskChain(), nil)
		repo.EXPECT().SetDependenciesTx(gomock.Any(), gomock.Any(), "org-1", "c", []string{"b", "a"}).Return(nil)

		task, err := svc.AddDependency(context.Background(), domain.AddDependencyRequest{OrganizationID: "org-1", TaskID: "c", DependsOnID: "a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, task.DependsOn)
	})

	t.Run("rejects cycle", func(t *testing.T) {
		repo, auth, svc := setupTaskTest(t)
		expectAuthorize(auth, "org-1", coach, domain.RoleCoach)
		repo.EXPECT().ListForUpdateTx(gomock.Any(), gomock.Any(), "org-1").Return(taskChain(), nil)

		_, err := svc.AddDependency(context.Background(), domain.AddDependencyRequest{OrganizationID: "org-1", TaskID: "a", DependsOnID: "c"})
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("existing edge is a no-op", func(t *testing.T) {
		repo, auth, svc := setupTaskTest(t)
		expectAuthorize(auth, "org-1", coach, domain.RoleCoach)
		repo.EXPECT().ListForUpdateTx(gomock.Any(), gomock.Any(), "org-1").Return(taskChain(), nil)

		task, err := svc.AddDependency(context.Background(), domain.AddDependencyRequest{OrganizationID: "org-1", TaskID: "b", DependsOnID: "a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, task.DependsOn)
	})

	t.Run("unknown dependency", func(t *testing.T) {
		repo, auth, svc := setupTaskTest(t)
		expectAuthorize(auth, "org-1", coach, domain.RoleCoach)
		repo.EXPECT().ListForUpdateTx(gomock.Any(), gomock.Any(), "org-1").Return(taskChain(), nil)

		_, err := svc.AddDependency(context.Background(), domain.AddDependencyRequest{OrganizationID: "org-1", TaskID: "a", DependsOnID: "zzz"})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("self dependency", func(t *testing.T) {
		_, _, svc := setupTaskTest(t)
		_, err := svc.AddDependency(context.Background(), domain.AddDependencyRequest{OrganizationID: "org-1", TaskID: "a", DependsOnID: "a"})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestProjectTaskService_RemoveDependency(t *testing.T) {
	repo, auth, svc := setupTaskTest(t)
	expectAuthorize(auth, "org-1", &domain.User{ID: "c"}, domain.RoleCoach)
	repo.EXPECT().ListForUpdateTx(gomock.Any(), gomock.Any(), "org-1").Return(taskChain(), nil)
	repo.EXPECT().SetDependenciesTx(gomock.Any(), gomock.Any(), "org-1", "c", []string{}).Return(nil)

	task, err := svc.RemoveDependency(context.Background(), "org-1", "c", "b")
	require.NoError(t, err)
	assert.Empty(t, task.DependsOn)
}

func TestProjectTaskService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		taskID    string
		status    domain.ProjectTaskStatus
		wantWrite bool
		conflict  bool
	}{
		{"done with finished deps", "b", domain.ProjectTaskDone, true, false},
		{"done while blocked", "c", domain.ProjectTaskDone, false, true},
		{"start while blocked is allowed", "c", domain.ProjectTaskInProgress, true, false},
		{"same status", "a", domain.ProjectTaskDone, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, auth, svc := setupTaskTest(t)
			expectAuthorize(auth, "org-1", &domain.User{ID: "c"}, domain.RoleCoach)
			repo.EXPECT().ListForUpdateTx(gomock.Any(), gomock.Any(), "org-1").Return(taskChain(), nil)
			if tt.wantWrite {
				repo.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), "org-1", tt.taskID, tt.status).Return(nil)
			}

			task, err := svc.UpdateStatus(context.Background(), domain.UpdateTaskStatusRequest{
				OrganizationID: "org-1", TaskID: tt.taskID, Status: tt.status,
			})
			if tt.conflict {
				assert.True(t, domain.IsConflict(err))
				assert.Contains(t, err.Error(), "b")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, task.Status)
		})
	}
}

func TestProjectTaskService_TopologicalOrder(t *testing.T) {
	t.Run("dependencies first", func(t *testing.T) {
		repo, auth, svc := setupTaskTest(t)
		expectAuthorize(auth, "org-1", &domain.User{ID: "s"}, domain.RoleScout)
		tasks := taskChain()
		repo.EXPECT().List(gomock.Any(), "org-1", domain.ProjectTaskStatus("")).
			Return([]*domain.ProjectTask{tasks[2], tasks[0], tasks[1]}, nil)

		ordered, err := svc.TopologicalOrder(context.Background(), "org-1")
		require.NoError(t, err)
		ids := make([]string, len(ordered))
		for i, task := range ordered {
			ids[i] = task.ID
		}
		assert.Equal(t, []string{"a", "b", "c"}, ids)
	})

	t.Run("cycle reported", func(t *testing.T) {
		repo, auth, svc := setupTaskTest(t)
		expectAuthorize(auth, "org-1", &domain.User{ID: "s"}, domain.RoleScout)
		tasks := taskChain()
		tasks[0].DependsOn = []string{"c"}
		repo.EXPECT().List(gomock.Any(), "org-1", domain.ProjectTaskStatus("")).Return(tasks, nil)

		_, err := svc.TopologicalOrder(context.Background(), "org-1")
		assert.True(t, domain.IsConflict(err))
	})
}

func TestProjectTaskService_DetectCycle(t *testing.T) {
	repo, auth, svc := setupTaskTest(t)
	expectAuthorize(auth, "org-1", &domain.User{ID: "s"}, domain.RoleScout)
	tasks := taskChain()
	tasks[0].DependsOn = []string{"c"}
	repo.EXPECT().List(gomock.Any(), "org-1", domain.ProjectTaskStatus("")).Return(tasks, nil)

	report, err := svc.DetectCycle(context.Background(), "org-1")
	require.NoError(t, err)
	assert.True(t, report.HasCycle)
	assert.Equal(t, []string{"a", "c", "b", "a"}, report.Path)
}

func TestProjectTaskService_CreateTask_UnknownDependency(t *testing.T) {
	repo, auth, svc := setupTaskTest(t)
	expectAuthorize(auth, "org-1", &domain.User{ID: "c"}, domain.RoleCoach)
	repo.EXPECT().List(gomock.Any(), "org-1", domain.ProjectTaskStatus("")).Return(taskChain(), nil)

	err := svc.CreateTask(context.Background(), &domain.ProjectTask{
		OrganizationID: "org-1", Title: "Order jerseys", DependsOn: []string{"a", "missing"},
	})
	assert.True(t, domain.IsValidation(err))
}
