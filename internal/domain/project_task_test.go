package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskAt(id string, minute int, deps ...string) *ProjectTask {
	if deps == nil {
		deps = []string{}
	}
	return &ProjectTask{
		ID:        id,
		Status:    ProjectTaskTodo,
		DependsOn: deps,
		CreatedAt: time.Date(2026, 1, 1, 0, minute, 0, 0, time.UTC),
	}
}

func ids(tasks []*ProjectTask) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestTaskGraph_WouldCreateCycle(t *testing.T) {
	// c -> b -> a
	g := NewTaskGraph([]*ProjectTask{
		taskAt("a", 0),
		taskAt("b", 1, "a"),
		taskAt("c", 2, "b"),
	})

	tests := []struct {
		name      string
		task      string
		dependsOn string
		want      bool
	}{
		{"self", "a", "a", true},
		{"direct back edge", "a", "b", true},
		{"transitive back edge", "a", "c", true},
		{"forward edge", "c", "a", false},
		{"unrelated new node", "d", "c", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.WouldCreateCycle(tt.task, tt.dependsOn))
		})
	}
}

func TestTaskGraph_WouldCreateCycle_Diamond(t *testing.T) {
	// d depends on b and c, both depend on a; visited set keeps this linear
	g := NewTaskGraph([]*ProjectTask{
		taskAt("a", 0),
		taskAt("b", 1, "a"),
		taskAt("c", 2, "a"),
		taskAt("d", 3, "b", "c"),
	})
	assert.False(t, g.WouldCreateCycle("e", "d"))
	assert.True(t, g.WouldCreateCycle("a", "d"))
}

func TestDetectCycle(t *testing.T) {
	t.Run("acyclic", func(t *testing.T) {
		assert.Nil(t, DetectCycle([]*ProjectTask{taskAt("a", 0), taskAt("b", 1, "a")}))
	})

	t.Run("returns the loop", func(t *testing.T) {
		tasks := []*ProjectTask{
			taskAt("a", 0, "c"),
			taskAt("b", 1, "a"),
			taskAt("c", 2, "b"),
		}
		assert.Equal(t, []string{"a", "c", "b", "a"}, DetectCycle(tasks))
	})

	t.Run("ignores edges to missing tasks", func(t *testing.T) {
		assert.Nil(t, DetectCycle([]*ProjectTask{taskAt("a", 0, "ghost")}))
	})
}

func TestTopologicalOrder(t *testing.T) {
	t.Run("dependencies first, ties by creation", func(t *testing.T) {
		tasks := []*ProjectTask{
			taskAt("deploy", 4, "build", "test"),
			taskAt("test", 3, "build"),
			taskAt("docs", 2),
			taskAt("build", 1),
		}
		got, err := TopologicalOrder(tasks)
		require.NoError(t, err)
		assert.Equal(t, []string{"build", "docs", "test", "deploy"}, ids(got))
	})

	t.Run("cycle is a conflict", func(t *testing.T) {
		_, err := TopologicalOrder([]*ProjectTask{taskAt("a", 0, "b"), taskAt("b", 1, "a")})
		require.Error(t, err)
		var conflict *ErrConflict
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, conflict.Error(), "a -> b -> a")
	})
}

func TestBlockers(t *testing.T) {
	a := taskAt("a", 0)
	a.Status = ProjectTaskDone
	b := taskAt("b", 1)
	c := taskAt("c", 2, "a", "b", "deleted")
	byID := map[string]*ProjectTask{"a": a, "b": b, "c": c}

	assert.Equal(t, []string{"b"}, Blockers(c, byID))

	err := CheckCanComplete(c, byID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b")

	b.Status = ProjectTaskDone
	assert.NoError(t, CheckCanComplete(c, byID))
}

func TestProjectTask_Validate(t *testing.T) {
	task := &ProjectTask{OrganizationID: "o", Title: "  Film review  "}
	require.NoError(t, task.Validate())
	assert.Equal(t, "Film review", task.Title)
	assert.Equal(t, ProjectTaskTodo, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.NotNil(t, task.DependsOn)

	task = &ProjectTask{OrganizationID: "o", Title: "x", Priority: "urgent"}
	assert.Error(t, task.Validate())
}

func TestAddDependencyRequest_Validate(t *testing.T) {
	r := AddDependencyRequest{OrganizationID: "o", TaskID: "a", DependsOnID: "a"}
	assert.True(t, IsValidation(r.Validate()))
}
