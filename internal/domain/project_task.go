package domain

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_project_task_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain ProjectTaskRepository
//go:generate mockgen -destination mocks/mock_project_task_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain ProjectTaskService

type ProjectTaskStatus string

const (
	ProjectTaskTodo       ProjectTaskStatus = "todo"
	ProjectTaskInProgress ProjectTaskStatus = "in_progress"
	ProjectTaskDone       ProjectTaskStatus = "done"
)

func (s ProjectTaskStatus) IsValid() bool {
	return s == ProjectTaskTodo || s == ProjectTaskInProgress || s == ProjectTaskDone
}

type ProjectTaskPriority string

const (
	PriorityLow    ProjectTaskPriority = "low"
	PriorityMedium ProjectTaskPriority = "medium"
	PriorityHigh   ProjectTaskPriority = "high"
)

type ProjectTask struct {
	ID             string              `json:"id"`
	OrganizationID string              `json:"organization_id"`
	Title          string              `json:"title"`
	Description    string              `json:"description,omitempty"`
	Status         ProjectTaskStatus   `json:"status"`
	Priority       ProjectTaskPriority `json:"priority"`
	AssigneeID     *string             `json:"assignee_id,omitempty"`
	DueDate        *time.Time          `json:"due_date,omitempty"`
	DependsOn      []string            `json:"depends_on"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (t *ProjectTask) Validate() error {
	t.Title = strings.TrimSpace(t.Title)
	if t.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if t.Title == "" {
		return NewValidationError("task title is required")
	}
	if len(t.Title) > 200 {
		return NewValidationError("task title must be at most 200 characters")
	}
	if t.Status == "" {
		t.Status = ProjectTaskTodo
	}
	if !t.Status.IsValid() {
		return NewValidationError("invalid task status: " + string(t.Status))
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return NewValidationError("invalid task priority: " + string(t.Priority))
	}
	if t.DependsOn == nil {
		t.DependsOn = []string{}
	}
	return nil
}

// HasDependency reports whether id is a direct dependency
func (t *ProjectTask) HasDependency(id string) bool {
	for _, d := range t.DependsOn {
		if d == id {
			return true
		}
	}
	return false
}

// TaskGraph maps a task ID to the IDs it depends on
type TaskGraph map[string][]string

func NewTaskGraph(tasks []*ProjectTask) TaskGraph {
	g := make(TaskGraph, len(tasks))
	for _, t := range tasks {
		g[t.ID] = t.DependsOn
	}
	return g
}

// WouldCreateCycle reports whether adding task -> dependsOn closes a loop,
// i.e. whether task is already reachable from dependsOn.
func (g TaskGraph) WouldCreateCycle(task, dependsOn string) bool {
	if task == dependsOn {
		return true
	}
	visited := make(map[string]bool)
	return g.reaches(dependsOn, task, visited)
}

func (g TaskGraph) reaches(from, target string, visited map[string]bool) bool {
	if from == target {
		return true
	}
	if visited[from] {
		return false
	}
	visited[from] = true
	for _, next := range g[from] {
		if g.reaches(next, target, visited) {
			return true
		}
	}
	return false
}

// sortByCreation orders tasks by creation time, then ID
func sortByCreation(tasks []*ProjectTask) []*ProjectTask {
	out := make([]*ProjectTask, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// DetectCycle returns one dependency cycle as a path that starts and ends on the
// same task, or nil when the graph is acyclic. Edges to unknown tasks are ignored.
func DetectCycle(tasks []*ProjectTask) []string {
	const (
		white = iota
		grey
		black
	)
	g := NewTaskGraph(tasks)
	color := make(map[string]int, len(tasks))
	var stack []string

	var visit func(id string) []string
	visit = func(id string) []string {
		color[id] = grey
		stack = append(stack, id)
		for _, dep := range g[id] {
			if _, known := g[dep]; !known {
				continue
			}
			switch color[dep] {
			case grey:
				for i, s := range stack {
					if s == dep {
						path := append([]string{}, stack[i:]...)
						return append(path, dep)
					}
				}
			case white:
				if path := visit(dep); path != nil {
					return path
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return nil
	}

	for _, t := range sortByCreation(tasks) {
		if color[t.ID] == white {
			if path := visit(t.ID); path != nil {
				return path
			}
		}
	}
	return nil
}

// TopologicalOrder lists tasks so every task comes after its dependencies.
// Ties are broken by creation order. A cycle yields ErrConflict naming the path.
func TopologicalOrder(tasks []*ProjectTask) ([]*ProjectTask, error) {
	ordered := sortByCreation(tasks)
	rank := make(map[string]int, len(ordered))
	for i, t := range ordered {
		rank[t.ID] = i
	}

	inDegree := make(map[string]int, len(ordered))
	dependents := make(map[string][]string, len(ordered))
	for _, t := range ordered {
		for _, dep := range t.DependsOn {
			if _, known := rank[dep]; !known {
				continue
			}
			inDegree[t.ID]++
			dependents[dep] = append(dependents[dep], t.ID)
		}
	}

	var ready []int
	for i, t := range ordered {
		if inDegree[t.ID] == 0 {
			ready = append(ready, i)
		}
	}

	result := make([]*ProjectTask, 0, len(ordered))
	for len(ready) > 0 {
		sort.Ints(ready)
		next := ordered[ready[0]]
		ready = ready[1:]
		result = append(result, next)
		for _, child := range dependents[next.ID] {
			inDegree[child]--
			if inDegree[child] == 0 {
				ready = append(ready, rank[child])
			}
		}
	}

	if len(result) != len(ordered) {
		path := DetectCycle(tasks)
		return nil, NewConflict("task", "dependency cycle: "+strings.Join(path, " -> "))
	}
	return result, nil
}

// Blockers returns the dependencies of task that are not done, in dependency order
func Blockers(task *ProjectTask, byID map[string]*ProjectTask) []string {
	var blockers []string
	for _, dep := range task.DependsOn {
		if d, ok := byID[dep]; ok && d.Status != ProjectTaskDone {
			blockers = append(blockers, dep)
		}
	}
	return blockers
}

type AddDependencyRequest struct {
	OrganizationID string `json:"organization_id"`
	TaskID         string `json:"task_id"`
	DependsOnID    string `json:"depends_on_id"`
}

func (r *AddDependencyRequest) Validate() error {
	if r.OrganizationID == "" || r.TaskID == "" || r.DependsOnID == "" {
		return NewValidationError("organization_id, task_id and depends_on_id are required")
	}
	if r.TaskID == r.DependsOnID {
		return NewValidationError("a task cannot depend on itself")
	}
	return nil
}

type UpdateTaskStatusRequest struct {
	OrganizationID string            `json:"organization_id"`
	TaskID         string            `json:"task_id"`
	Status         ProjectTaskStatus `json:"status"`
}

// CycleReport is returned by the cycle check endpoint
type CycleReport struct {
	HasCycle bool     `json:"has_cycle"`
	Path     []string `json:"path,omitempty"`
}

func blockedError(blockers []string) error {
	return NewConflict("task", fmt.Sprintf("blocked by unfinished dependencies: %s", strings.Join(blockers, ", ")))
}

// CheckCanComplete returns a conflict listing the blockers when task cannot move to done
func CheckCanComplete(task *ProjectTask, byID map[string]*ProjectTask) error {
	if blockers := Blockers(task, byID); len(blockers) > 0 {
		return blockedError(blockers)
	}
	return nil
}

type ProjectTaskService interface {
	CreateTask(ctx context.Context, task *ProjectTask) error
	GetTask(ctx context.Context, organizationID, id string) (*ProjectTask, error)
	UpdateTask(ctx context.Context, task *ProjectTask) error
	DeleteTask(ctx context.Context, organizationID, id string) error
	ListTasks(ctx context.Context, organizationID string, status ProjectTaskStatus) ([]*ProjectTask, error)
	AddDependency(ctx context.Context, req AddDependencyRequest) (*ProjectTask, error)
	RemoveDependency(ctx context.Context, organizationID, taskID, dependsOnID string) (*ProjectTask, error)
	UpdateStatus(ctx context.Context, req UpdateTaskStatusRequest) (*ProjectTask, error)
	TopologicalOrder(ctx context.Context, organizationID string) ([]*ProjectTask, error)
	DetectCycle(ctx context.Context, organizationID string) (*CycleReport, error)
}

type ProjectTaskRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
	Create(ctx context.Context, task *ProjectTask) error
	GetByID(ctx context.Context, organizationID, id string) (*ProjectTask, error)
	Update(ctx context.Context, task *ProjectTask) error
	// Delete removes the task and strips it from other tasks' dependencies
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, organizationID string, status ProjectTaskStatus) ([]*ProjectTask, error)
	// ListForUpdateTx locks every task of the organization so graph edits serialize
	ListForUpdateTx(ctx context.Context, tx *sql.Tx, organizationID string) ([]*ProjectTask, error)
	SetDependenciesTx(ctx context.Context, tx *sql.Tx, organizationID, id string, dependsOn []string) error
	UpdateStatusTx(ctx context.Context, tx *sql.Tx, organizationID, id string, status ProjectTaskStatus) error
}
