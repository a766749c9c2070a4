package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/ksuda/tracker/internal/app"
	"github.com/ksuda/tracker/internal/domain"
	"github.com/ksuda/tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(repo *testutil.MockTaskRepository) *app.Container {
	clock := &testutil.MockClock{NowTime: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return app.NewWithDeps(nil, repo, clock, nil)
}

func TestAddCommand_CreatesTask(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	cmd := newAddCommand(newTestContainer(repo))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"Buy milk"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Task added successfully (ID: 1).\n", out.String())
	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, domain.StatusTodo, repo.Tasks[0].Status)
}

func TestAddCommand_EmptyDescription(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	cmd := newAddCommand(newTestContainer(repo))

	cmd.SetArgs([]string{"   "})
	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrEmptyDescription)
	assert.Empty(t, repo.Tasks)
}

func TestUpdateCommand_Success(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	container := newTestContainer(repo)
	repo.Seed(container.Clock.Now(), "Buy milk")
	cmd := newUpdateCommand(container)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"1", "Buy oat milk"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Task (ID: 1) updated successfully.\n", out.String())
	assert.Equal(t, "Buy oat milk", repo.Tasks[0].Description)
}

func TestUpdateCommand_NotFound(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	cmd := newUpdateCommand(newTestContainer(repo))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"99", "x"})

	err := cmd.Execute()

	// Not-found is reported, not returned: the process exits normally.
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, "Task (ID: 99) not found.\n", errOut.String())
}

func TestUpdateCommand_InvalidID(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	cmd := newUpdateCommand(newTestContainer(repo))

	cmd.SetArgs([]string{"abc", "x"})
	err := cmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task ID")
}

func TestDeleteCommand_Success(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	container := newTestContainer(repo)
	repo.Seed(container.Clock.Now(), "Buy milk", "Buy eggs")
	cmd := newDeleteCommand(container)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"#2"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Task (ID: 2) deleted successfully.\n", out.String())
	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, 1, repo.Tasks[0].ID)
}

func TestDeleteCommand_NotFound(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	cmd := newDeleteCommand(newTestContainer(repo))

	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"5"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Task (ID: 5) not found.\n", errOut.String())
}

func TestListCommand_Plain(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	container := newTestContainer(repo)
	repo.Seed(container.Clock.Now(), "Buy milk", "Buy eggs")
	cmd := newListCommand(container)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "[1] (todo) Buy milk")
	assert.Contains(t, out.String(), "[2] (todo) Buy eggs")
}

func TestListCommand_FilterByStatus(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	container := newTestContainer(repo)
	repo.Seed(container.Clock.Now(), "Buy milk", "Buy eggs")
	repo.Tasks[0].Status = domain.StatusDone
	cmd := newListCommand(container)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"done"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Buy milk")
	assert.NotContains(t, out.String(), "Buy eggs")
}

func TestListCommand_InvalidStatus(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	cmd := newListCommand(newTestContainer(repo))

	cmd.SetArgs([]string{"archived"})
	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "todo, in-progress, done")
}

func TestListCommand_Empty(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	cmd := newListCommand(newTestContainer(repo))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, "No tasks found.\n", errOut.String())
}

func TestListCommand_JSONOutput(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	container := newTestContainer(repo)
	repo.Seed(container.Clock.Now(), "Buy milk")
	cmd := newListCommand(container)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--output", "json"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"description": "Buy milk"`)
	assert.Contains(t, out.String(), `"status": "todo"`)
}

func TestListCommand_YAMLOutput(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	container := newTestContainer(repo)
	repo.Seed(container.Clock.Now(), "Buy milk")
	cmd := newListCommand(container)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--output", "yaml"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "description: Buy milk")
	assert.Contains(t, out.String(), "status: todo")
}

func TestListCommand_InvalidOutputFormat(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	container := newTestContainer(repo)
	repo.Seed(container.Clock.Now(), "Buy milk")
	cmd := newListCommand(container)

	cmd.SetArgs([]string{"--output", "xml"})
	err := cmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestMarkInProgressCommand_Success(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	container := newTestContainer(repo)
	repo.Seed(container.Clock.Now(), "Buy milk")
	cmd := newMarkInProgressCommand(container)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Task (ID: 1) marked as in-progress successfully.\n", out.String())
	assert.Equal(t, domain.StatusInProgress, repo.Tasks[0].Status)
}

func TestMarkDoneCommand_NotFound(t *testing.T) {
	repo := &testutil.MockTaskRepository{}
	cmd := newMarkDoneCommand(newTestContainer(repo))

	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"7"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Task (ID: 7) not found.\n", errOut.String())
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		in      string
		expect  int
		wantErr bool
	}{
		{"1", 1, false},
		{"#12", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseTaskID(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "parseTaskID(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "parseTaskID(%q)", tt.in)
		assert.Equal(t, tt.expect, got)
	}
}
