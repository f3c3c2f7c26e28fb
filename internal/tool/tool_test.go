package tool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soyeahso/roster/internal/catalog"
	"github.com/soyeahso/roster/internal/domain"
	"github.com/soyeahso/roster/internal/safefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func fixtureExecutor(t *testing.T) (*Executor, string) {
	t.Helper()
	root := t.TempDir()

	writeFixture(t, root, "agents/analyst.md",
		"# Analyst\nResources live under {project-root}/data.\n")
	writeFixture(t, root, "agents/roster-master.md",
		"# Orchestrator\nMaster agent.\n")
	writeFixture(t, root, "_cfg/agents/core-analyst.customize.yaml",
		"memories: \"{project-root}/memories.md\"\n")
	writeFixture(t, root, "workflows/party-mode/workflow.yaml",
		"name: party-mode\ndata: \"{project-root}/team.csv\"\n")
	writeFixture(t, root, "workflows/party-mode/instructions.md",
		"Load all agents from {project-root}.\n")
	writeFixture(t, root, "workflows/dev-story/workflow.yaml",
		"name: dev-story\n")

	fs, err := safefs.NewRoot(root, nil)
	require.NoError(t, err)

	cat := catalog.New(
		[]domain.AgentRecord{
			{Name: "analyst", DisplayName: "Mary", Title: "Business Analyst", Role: "Analysis", Module: "core", Path: "agents/analyst.md"},
			{Name: "roster-master", DisplayName: "Orchestrator", Title: "Master Orchestrator", Module: "core", Path: "agents/roster-master.md"},
			{Name: "dev", DisplayName: "Olivia", Title: "Senior Developer", Module: "core", Path: "agents/missing.md"},
		},
		[]domain.WorkflowRecord{
			{Name: "party-mode", Description: "Group discussion", Module: "core", Path: "workflows/party-mode/workflow.yaml"},
			{Name: "dev-story", Description: "Implement a story", Module: "core", Path: "workflows/dev-story/workflow.yaml"},
		},
		[]domain.TaskRecord{
			{Name: "review-code", Description: "Code review", Module: "core"},
		},
	)

	return New(cat, fs, "roster-master", nil), root
}

func TestExecuteEmptyLoadsDefaultAgent(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("")
	require.True(t, res.Success)
	assert.Equal(t, domain.ResultAgent, res.Kind)
	assert.Equal(t, "roster-master", res.AgentName)
	assert.Equal(t, "Orchestrator", res.DisplayName)
	assert.Contains(t, res.Content, "Master agent.")
}

func TestExecuteLoadAgent(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("analyst")
	require.True(t, res.Success)
	assert.Equal(t, "analyst", res.AgentName)
	assert.Equal(t, "Mary", res.DisplayName)
	assert.Contains(t, res.Content, "# Roster Agent: Mary")
	assert.Contains(t, res.Content, "**Title:** Business Analyst")
	assert.Contains(t, res.Content, "## Agent Definition")
	assert.Contains(t, res.Content, "# Analyst")
	assert.Contains(t, res.Content, "## Agent Customization")
	assert.Contains(t, res.Content, "memories:")
	assert.Contains(t, res.Content, "## Roster Processing Instructions")
}

func TestExecuteAgentPlaceholderRewrite(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("analyst")
	require.True(t, res.Success)
	assert.Contains(t, res.Content, "{mcp-resources}/data")
	assert.Contains(t, res.Content, "{mcp-resources}/memories.md")
	assert.NotContains(t, res.Content, "{project-root}")
}

func TestExecuteAgentMissingCustomization(t *testing.T) {
	// roster-master has no customization file. The section still appears
	// with an inline notice.
	e, _ := fixtureExecutor(t)
	res := e.Execute("roster-master")
	require.True(t, res.Success)
	assert.Contains(t, res.Content, "## Agent Customization")
	assert.Contains(t, res.Content, "[Customization file not found or error:")
}

func TestExecuteAgentMissingDefinition(t *testing.T) {
	// An in-root path that simply does not exist degrades to an inline
	// error, not a failed result. Only an escaping path is fatal.
	e, _ := fixtureExecutor(t)
	res := e.Execute("dev")
	require.True(t, res.Success)
	assert.Contains(t, res.Content, "[Error reading agent file:")
}

func TestExecuteWorkflow(t *testing.T) {
	e, root := fixtureExecutor(t)
	res := e.Execute("*party-mode")
	require.True(t, res.Success)
	assert.Equal(t, domain.ResultWorkflow, res.Kind)
	assert.Equal(t, "party-mode", res.WorkflowName)
	assert.Equal(t, "Group discussion", res.Description)
	assert.Contains(t, res.WorkflowYAML, "name: party-mode")
	assert.Contains(t, res.WorkflowYAML, "{mcp-resources}/team.csv")
	assert.Contains(t, res.Instructions, "{mcp-resources}")

	require.NotNil(t, res.Context)
	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, resolved, res.Context.ServerRoot)
	assert.Equal(t, 3, res.Context.AgentCount)
	assert.Len(t, res.Context.AgentManifestData, 3)
	assert.Contains(t, res.Context.AgentManifestPath, "agent-manifest.csv")
}

func TestExecuteWorkflowWithoutInstructions(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("*dev-story")
	require.True(t, res.Success)
	assert.Empty(t, res.Instructions)
	assert.Contains(t, res.WorkflowYAML, "name: dev-story")
}

func TestExecuteListAgents(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("*list-agents")
	require.True(t, res.Success)
	assert.Equal(t, domain.ResultList, res.Kind)
	assert.Equal(t, "agents", res.ListKind)
	assert.Equal(t, 3, res.Count)
	assert.Contains(t, res.Content, "**Mary** (`analyst`)")
	assert.Contains(t, res.Content, "`roster analyst`")
}

func TestExecuteListWorkflows(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("*list-workflows")
	require.True(t, res.Success)
	assert.Equal(t, "workflows", res.ListKind)
	assert.Equal(t, 2, res.Count)
	assert.Contains(t, res.Content, "**party-mode** - Group discussion")
	assert.Contains(t, res.Content, "`roster *party-mode`")
}

func TestExecuteListTasks(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("*list-tasks")
	require.True(t, res.Success)
	assert.Equal(t, "tasks", res.ListKind)
	assert.Equal(t, 1, res.Count)
	assert.Contains(t, res.Content, "**review-code**")
}

func TestExecuteHelp(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("*help")
	require.True(t, res.Success)
	assert.Equal(t, domain.ResultHelp, res.Kind)
	assert.Contains(t, res.Content, "Command Reference")
	assert.Contains(t, res.Content, "*list-agents")
	assert.Contains(t, res.Content, "Agents: 3 available")
	assert.Contains(t, res.Content, "Workflows: 2 available")
}

func TestExecuteUnknownAgent(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("analist")
	require.False(t, res.Success)
	assert.Equal(t, "UNKNOWN_AGENT", res.ErrorCode)
	assert.Equal(t, []string{"analyst"}, res.Suggestions)
}

func TestExecuteUnknownWorkflow(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("*party-mod")
	require.False(t, res.Success)
	assert.Equal(t, "UNKNOWN_WORKFLOW", res.ErrorCode)
	assert.Equal(t, []string{"party-mode"}, res.Suggestions)
}

func TestExecuteDangerousInput(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("analyst;rm -rf /")
	require.False(t, res.Success)
	assert.Equal(t, "INVALID_CHARACTERS", res.ErrorCode)
	assert.Empty(t, res.Content)
}

func TestExecuteCaseMismatch(t *testing.T) {
	e, _ := fixtureExecutor(t)
	res := e.Execute("Analyst")
	require.False(t, res.Success)
	assert.Equal(t, "CASE_MISMATCH", res.ErrorCode)
	assert.Equal(t, []string{"analyst"}, res.Suggestions)
}

func TestExecuteNeverReturnsEmptyShape(t *testing.T) {
	e, _ := fixtureExecutor(t)
	inputs := []string{"", "analyst", "*party-mode", "*help", "**x", "*", "nope", "a b"}
	for _, input := range inputs {
		res := e.Execute(input)
		if res.Success {
			assert.NotEmpty(t, res.Kind, input)
		} else {
			assert.NotEmpty(t, res.ErrorCode, input)
			assert.NotEmpty(t, res.Error, input)
		}
	}
}

// escapingExecutor builds a catalog whose manifest rows point above the
// file root, with a real secret file sitting outside it.
func escapingExecutor(t *testing.T) *Executor {
	t.Helper()
	outer := t.TempDir()
	root := filepath.Join(outer, "catalog")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outer, "secret.md"),
		[]byte("top secret\n"), 0o644))

	fs, err := safefs.NewRoot(root, nil)
	require.NoError(t, err)

	cat := catalog.New(
		[]domain.AgentRecord{
			{Name: "evil", DisplayName: "Evil", Module: "core", Path: "../secret.md"},
		},
		[]domain.WorkflowRecord{
			{Name: "evil-flow", Description: "Escapes", Module: "core", Path: "../secret.md"},
		},
		nil,
	)
	return New(cat, fs, "evil", nil)
}

func TestExecuteAgentEscapingPathIsFatal(t *testing.T) {
	e := escapingExecutor(t)
	res := e.Execute("evil")
	require.False(t, res.Success)
	assert.Equal(t, "PATH_TRAVERSAL", res.ErrorCode)
	assert.Contains(t, res.Error, "../secret.md")
	assert.NotContains(t, res.Content, "top secret")
	assert.Empty(t, res.Content)
}

func TestExecuteWorkflowEscapingPathIsFatal(t *testing.T) {
	e := escapingExecutor(t)
	res := e.Execute("*evil-flow")
	require.False(t, res.Success)
	assert.Equal(t, "PATH_TRAVERSAL", res.ErrorCode)
	assert.Empty(t, res.WorkflowYAML)
	assert.Nil(t, res.Context)
}
