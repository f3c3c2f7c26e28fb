package domain

// ResultKind classifies a successful invocation result.
type ResultKind string

const (
	ResultAgent    ResultKind = "agent"
	ResultWorkflow ResultKind = "workflow"
	ResultList     ResultKind = "list"
	ResultHelp     ResultKind = "help"
)

// WorkflowContext is a read-only snapshot of server resources attached to
// workflow results so a downstream consumer does not need to re-query the
// catalog.
type WorkflowContext struct {
	ServerRoot        string        `json:"serverRoot"`
	AgentManifestPath string        `json:"agentManifestPath"`
	AgentManifestData []AgentRecord `json:"agentManifestData"`
	AgentCount        int           `json:"agentCount"`
}

// Result is the outcome of one invocation of the unified tool. Exactly one
// of the success/error shapes is populated: on success Kind and Content are
// set, on failure ErrorCode and Error are set.
type Result struct {
	Success bool       `json:"success"`
	Kind    ResultKind `json:"type,omitempty"`

	// Agent results
	AgentName   string `json:"agentName,omitempty"`
	DisplayName string `json:"displayName,omitempty"`

	// Workflow results
	WorkflowName string           `json:"workflowName,omitempty"`
	Description  string           `json:"description,omitempty"`
	Module       string           `json:"module,omitempty"`
	Path         string           `json:"path,omitempty"`
	WorkflowYAML string           `json:"workflowYaml,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	Context      *WorkflowContext `json:"context,omitempty"`

	// Discovery results
	ListKind string `json:"listType,omitempty"`
	Count    int    `json:"count,omitempty"`

	// Shared payload text
	Content string `json:"content,omitempty"`

	// Error results
	ErrorCode   string   `json:"errorCode,omitempty"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ErrorResult builds a failed Result from a diagnostic.
func ErrorResult(code, message string, suggestions []string) Result {
	return Result{
		Success:     false,
		ErrorCode:   code,
		Error:       message,
		Suggestions: suggestions,
	}
}
