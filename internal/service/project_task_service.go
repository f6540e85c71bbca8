package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type ProjectTaskService struct {
	repo        domain.ProjectTaskRepository
	authService domain.AuthService
	logger      logger.Logger
	now         func() time.Time
}

func NewProjectTaskService(repo domain.ProjectTaskRepository, authService domain.AuthService, logger logger.Logger) *ProjectTaskService {
	return &ProjectTaskService{
		repo:        repo,
		authService: authService,
		logger:      logger,
		now:         time.Now,
	}
}

var _ domain.ProjectTaskService = (*ProjectTaskService)(nil)

func indexTasks(tasks []*domain.ProjectTask) map[string]*domain.ProjectTask {
	byID := make(map[string]*domain.ProjectTask, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	return byID
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (s *ProjectTaskService) CreateTask(ctx context.Context, task *domain.ProjectTask) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, task.OrganizationID, domain.ResourceTasks, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	task.DependsOn = dedupe(task.DependsOn)
	if len(task.DependsOn) > 0 {
		existing, err := s.repo.List(ctx, task.OrganizationID, "")
		if err != nil {
			return err
		}
		byID := indexTasks(existing)
		for _, dep := range task.DependsOn {
			if _, ok := byID[dep]; !ok {
				return domain.NewValidationError("unknown dependency: " + dep)
			}
		}
		if task.Status == domain.ProjectTaskDone {
			if err := domain.CheckCanComplete(task, byID); err != nil {
				return err
			}
		}
	}
	task.ID = uuid.New().String()
	task.CreatedAt = s.now().UTC()
	task.UpdatedAt = task.CreatedAt
	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.WithField("organization_id", task.OrganizationID).Error(fmt.Sprintf("Failed to create task: %v", err))
		return err
	}
	return nil
}

func (s *ProjectTaskService) GetTask(ctx context.Context, organizationID, id string) (*domain.ProjectTask, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTasks, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

// UpdateTask edits the descriptive fields. Status and dependencies have their own operations.
func (s *ProjectTaskService) UpdateTask(ctx context.Context, task *domain.ProjectTask) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, task.OrganizationID, domain.ResourceTasks, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, task.OrganizationID, task.ID)
	if err != nil {
		return err
	}
	task.Status = existing.Status
	task.DependsOn = existing.DependsOn
	if err := task.Validate(); err != nil {
		return err
	}
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, task)
}

func (s *ProjectTaskService) DeleteTask(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTasks, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, organizationID, id)
}

func (s *ProjectTaskService) ListTasks(ctx context.Context, organizationID string, status domain.ProjectTaskStatus) ([]*domain.ProjectTask, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTasks, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("invalid task status: " + string(status))
	}
	tasks, err := s.repo.List(ctx, organizationID, status)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.ProjectTask{}
	}
	return tasks, nil
}

// AddDependency adds an edge after checking that the dependency cannot
// already reach the task
func (s *ProjectTaskService) AddDependency(ctx context.Context, req domain.AddDependencyRequest) (*domain.ProjectTask, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceTasks, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	var task *domain.ProjectTask
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		tasks, err := s.repo.ListForUpdateTx(ctx, tx, req.OrganizationID)
		if err != nil {
			return err
		}
		byID := indexTasks(tasks)
		var ok bool
		if task, ok = byID[req.TaskID]; !ok {
			return domain.NewNotFound("task", req.TaskID)
		}
		if _, ok := byID[req.DependsOnID]; !ok {
			return domain.NewNotFound("task", req.DependsOnID)
		}
		if task.HasDependency(req.DependsOnID) {
			return nil
		}
		if domain.NewTaskGraph(tasks).WouldCreateCycle(req.TaskID, req.DependsOnID) {
			return domain.NewConflict("task", "adding this dependency would create a cycle")
		}
		deps := append(append([]string{}, task.DependsOn...), req.DependsOnID)
		if err := s.repo.SetDependenciesTx(ctx, tx, req.OrganizationID, task.ID, deps); err != nil {
			return err
		}
		task.DependsOn = deps
		task.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *ProjectTaskService) RemoveDependency(ctx context.Context, organizationID, taskID, dependsOnID string) (*domain.ProjectTask, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTasks, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	var task *domain.ProjectTask
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		tasks, err := s.repo.ListForUpdateTx(ctx, tx, organizationID)
		if err != nil {
			return err
		}
		var ok bool
		if task, ok = indexTasks(tasks)[taskID]; !ok {
			return domain.NewNotFound("task", taskID)
		}
		if !task.HasDependency(dependsOnID) {
			return nil
		}
		deps := make([]string, 0, len(task.DependsOn))
		for _, d := range task.DependsOn {
			if d != dependsOnID {
				deps = append(deps, d)
			}
		}
		if err := s.repo.SetDependenciesTx(ctx, tx, organizationID, taskID, deps); err != nil {
			return err
		}
		task.DependsOn = deps
		task.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus moves a task; done requires every dependency to be done
func (s *ProjectTaskService) UpdateStatus(ctx context.Context, req domain.UpdateTaskStatusRequest) (*domain.ProjectTask, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceTasks, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, domain.NewValidationError("invalid task status: " + string(req.Status))
	}

	var task *domain.ProjectTask
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		tasks, err := s.repo.ListForUpdateTx(ctx, tx, req.OrganizationID)
		if err != nil {
			return err
		}
		byID := indexTasks(tasks)
		var ok bool
		if task, ok = byID[req.TaskID]; !ok {
			return domain.NewNotFound("task", req.TaskID)
		}
		if task.Status == req.Status {
			return nil
		}
		if req.Status == domain.ProjectTaskDone {
			if err := domain.CheckCanComplete(task, byID); err != nil {
				return err
			}
		}
		if err := s.repo.UpdateStatusTx(ctx, tx, req.OrganizationID, task.ID, req.Status); err != nil {
			return err
		}
		task.Status = req.Status
		task.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *ProjectTaskService) TopologicalOrder(ctx context.Context, organizationID string) ([]*domain.ProjectTask, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTasks, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	tasks, err := s.repo.List(ctx, organizationID, "")
	if err != nil {
		return nil, err
	}
	ordered, err := domain.TopologicalOrder(tasks)
	if err != nil {
		s.logger.WithField("organization_id", organizationID).Warn(fmt.Sprintf("Task graph is not acyclic: %v", err))
		return nil, err
	}
	return ordered, nil
}

func (s *ProjectTaskService) DetectCycle(ctx context.Context, organizationID string) (*domain.CycleReport, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTasks, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	tasks, err := s.repo.List(ctx, organizationID, "")
	if err != nil {
		return nil, err
	}
	path := domain.DetectCycle(tasks)
	if path == nil {
		return &domain.CycleReport{HasCycle: false}, nil
	}
	s.logger.WithField("organization_id", organizationID).Warn("Dependency cycle found: " + strings.Join(path, " -> "))
	return &domain.CycleReport{HasCycle: true, Path: path}, nil
}
