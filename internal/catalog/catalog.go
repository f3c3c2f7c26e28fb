// Package catalog loads the agent, workflow, and task manifests once at
// startup and serves name-keyed lookup. A loaded Catalog is read-only and
// safe to share across concurrent invocations without locking.
package catalog

import (
	"path/filepath"

	"github.com/soyeahso/roster/internal/domain"
	"github.com/soyeahso/roster/internal/logging"
)

// Manifest locations relative to the catalog root.
const (
	ManifestDir      = "_cfg"
	AgentManifest    = "agent-manifest.csv"
	WorkflowManifest = "workflow-manifest.csv"
	TaskManifest     = "task-manifest.csv"
)

// Catalog is the in-memory set of agent, workflow, and task records.
type Catalog struct {
	agents    []domain.AgentRecord
	workflows []domain.WorkflowRecord
	tasks     []domain.TaskRecord

	agentIndex    map[string]int
	workflowIndex map[string]int
	taskIndex     map[string]int
}

// New builds a catalog directly from records, in the given order.
func New(agents []domain.AgentRecord, workflows []domain.WorkflowRecord, tasks []domain.TaskRecord) *Catalog {
	c := &Catalog{agents: agents, workflows: workflows, tasks: tasks}
	c.index()
	return c
}

// Load reads all manifests under root/_cfg. A missing or malformed manifest
// degrades to an empty table rather than failing: the router must still
// diagnose unknown names against an empty catalog.
func Load(root string, log *logging.Logger) *Catalog {
	if log == nil {
		log = logging.New(nil, "silent")
	}
	log = log.Sub("catalog")

	dir := filepath.Join(root, ManifestDir)

	c := &Catalog{}
	c.agents = loadAgentRows(filepath.Join(dir, AgentManifest), log)
	c.workflows = loadWorkflowRows(filepath.Join(dir, WorkflowManifest), log)
	c.tasks = loadTaskRows(filepath.Join(dir, TaskManifest), log)
	c.index()

	log.Info().
		Int("agents", len(c.agents)).
		Int("workflows", len(c.workflows)).
		Int("tasks", len(c.tasks)).
		Msg("catalog loaded")
	return c
}

func (c *Catalog) index() {
	c.agentIndex = make(map[string]int, len(c.agents))
	for i, a := range c.agents {
		if _, dup := c.agentIndex[a.Name]; !dup {
			c.agentIndex[a.Name] = i
		}
	}
	c.workflowIndex = make(map[string]int, len(c.workflows))
	for i, w := range c.workflows {
		if _, dup := c.workflowIndex[w.Name]; !dup {
			c.workflowIndex[w.Name] = i
		}
	}
	c.taskIndex = make(map[string]int, len(c.tasks))
	for i, tk := range c.tasks {
		if _, dup := c.taskIndex[tk.Name]; !dup {
			c.taskIndex[tk.Name] = i
		}
	}
}

// FindAgent returns the agent record for an exact, case-sensitive name.
func (c *Catalog) FindAgent(name string) (domain.AgentRecord, bool) {
	i, ok := c.agentIndex[name]
	if !ok {
		return domain.AgentRecord{}, false
	}
	return c.agents[i], true
}

// FindWorkflow returns the workflow record for an exact, case-sensitive name.
func (c *Catalog) FindWorkflow(name string) (domain.WorkflowRecord, bool) {
	i, ok := c.workflowIndex[name]
	if !ok {
		return domain.WorkflowRecord{}, false
	}
	return c.workflows[i], true
}

// FindTask returns the task record for an exact, case-sensitive name.
func (c *Catalog) FindTask(name string) (domain.TaskRecord, bool) {
	i, ok := c.taskIndex[name]
	if !ok {
		return domain.TaskRecord{}, false
	}
	return c.tasks[i], true
}

// AgentNames returns all agent names in manifest order.
func (c *Catalog) AgentNames() []string {
	names := make([]string, len(c.agents))
	for i, a := range c.agents {
		names[i] = a.Name
	}
	return names
}

// WorkflowNames returns all workflow names in manifest order.
func (c *Catalog) WorkflowNames() []string {
	names := make([]string, len(c.workflows))
	for i, w := range c.workflows {
		names[i] = w.Name
	}
	return names
}

// Agents returns all agent records in manifest order.
func (c *Catalog) Agents() []domain.AgentRecord { return c.agents }

// Workflows returns all workflow records in manifest order.
func (c *Catalog) Workflows() []domain.WorkflowRecord { return c.workflows }

// Tasks returns all task records in manifest order.
func (c *Catalog) Tasks() []domain.TaskRecord { return c.tasks }
