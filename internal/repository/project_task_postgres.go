package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// ProjectTaskRepository stores the organization's task board
type ProjectTaskRepository struct {
	systemDB *sql.DB
}

// NewProjectTaskRepository creates a new ProjectTaskRepository
func NewProjectTaskRepository(db *sql.DB) domain.ProjectTaskRepository {
	return &ProjectTaskRepository{systemDB: db}
}

func (r *ProjectTaskRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.systemDB, fn)
}

var projectTaskColumns = []string{
	"id", "organization_id", "title", "description", "status", "priority", "assignee_id", "due_date",
	"depends_on", "created_at", "updated_at",
}

func scanProjectTask(row rowScanner) (*domain.ProjectTask, error) {
	var (
		t           domain.ProjectTask
		description sql.NullString
		assigneeID  sql.NullString
		dueDate     sql.NullTime
		dependsOn   pq.StringArray
	)
	err := row.Scan(&t.ID, &t.OrganizationID, &t.Title, &description, &t.Status, &t.Priority, &assigneeID,
		&dueDate, &dependsOn, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Description = description.String
	t.AssigneeID = stringPtr(assigneeID)
	t.DueDate = timePtr(dueDate)
	t.DependsOn = []string(dependsOn)
	if t.DependsOn == nil {
		t.DependsOn = []string{}
	}
	return &t, nil
}

func (r *ProjectTaskRepository) Create(ctx context.Context, t *domain.ProjectTask) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.DependsOn == nil {
		t.DependsOn = []string{}
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("project_tasks").
		Columns(projectTaskColumns...).
		Values(t.ID, t.OrganizationID, t.Title, nullString(t.Description), t.Status, t.Priority,
			nullStringPtr(t.AssigneeID), nullTime(t.DueDate), pq.Array(t.DependsOn), t.CreatedAt, t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *ProjectTaskRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.ProjectTask, error) {
	query, args, err := psql.Select(projectTaskColumns...).
		From("project_tasks").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	t, err := scanProjectTask(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "task", id, "get task")
	}
	return t, nil
}

// Update leaves status and dependencies alone, those move through the Tx methods
func (r *ProjectTaskRepository) Update(ctx context.Context, t *domain.ProjectTask) error {
	t.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("project_tasks").
		Set("title", t.Title).
		Set("description", nullString(t.Description)).
		Set("priority", t.Priority).
		Set("assignee_id", nullStringPtr(t.AssigneeID)).
		Set("due_date", nullTime(t.DueDate)).
		Set("updated_at", t.UpdatedAt).
		Where(sq.Eq{"id": t.ID, "organization_id": t.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return expectOneRow(res, "task", t.ID)
}

func (r *ProjectTaskRepository) Delete(ctx context.Context, organizationID, id string) error {
	return withTransaction(ctx, r.systemDB, func(tx *sql.Tx) error {
		res, err := execBuilder(ctx, tx, psql.Delete("project_tasks").
			Where(sq.Eq{"id": id, "organization_id": organizationID}))
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		if err := expectOneRow(res, "task", id); err != nil {
			return err
		}
		_, err = execBuilder(ctx, tx, psql.Update("project_tasks").
			Set("depends_on", sq.Expr("array_remove(depends_on, ?)", id)).
			Set("updated_at", time.Now().UTC()).
			Where(sq.Eq{"organization_id": organizationID}).
			Where("? = ANY(depends_on)", id))
		if err != nil {
			return fmt.Errorf("failed to detach task dependencies: %w", err)
		}
		return nil
	})
}

func (r *ProjectTaskRepository) queryTasks(ctx context.Context, q querier, b sq.SelectBuilder) ([]*domain.ProjectTask, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.ProjectTask{}
	for rows.Next() {
		t, err := scanProjectTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *ProjectTaskRepository) List(ctx context.Context, organizationID string, status domain.ProjectTaskStatus) ([]*domain.ProjectTask, error) {
	where := sq.Eq{"organization_id": organizationID}
	if status != "" {
		where["status"] = status
	}
	return r.queryTasks(ctx, r.systemDB, psql.Select(projectTaskColumns...).
		From("project_tasks").
		Where(where).
		OrderBy("created_at", "id"))
}

func (r *ProjectTaskRepository) ListForUpdateTx(ctx context.Context, tx *sql.Tx, organizationID string) ([]*domain.ProjectTask, error) {
	return r.queryTasks(ctx, tx, psql.Select(projectTaskColumns...).
		From("project_tasks").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at", "id").
		Suffix("FOR UPDATE"))
}

func (r *ProjectTaskRepository) SetDependenciesTx(ctx context.Context, tx *sql.Tx, organizationID, id string, dependsOn []string) error {
	if dependsOn == nil {
		dependsOn = []string{}
	}
	res, err := execBuilder(ctx, tx, psql.Update("project_tasks").
		Set("depends_on", pq.Array(dependsOn)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to set task dependencies: %w", err)
	}
	return expectOneRow(res, "task", id)
}

func (r *ProjectTaskRepository) UpdateStatusTx(ctx context.Context, tx *sql.Tx, organizationID, id string, status domain.ProjectTaskStatus) error {
	res, err := execBuilder(ctx, tx, psql.Update("project_tasks").
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return expectOneRow(res, "task", id)
}
