package domain

// AgentRecord is one row of the agent manifest. Records are immutable once
// loaded; the catalog never mutates them after construction.
type AgentRecord struct {
	Name               string `json:"name"`
	DisplayName        string `json:"displayName,omitempty"`
	Title              string `json:"title,omitempty"`
	Icon               string `json:"icon,omitempty"`
	Role               string `json:"role,omitempty"`
	Identity           string `json:"identity,omitempty"`
	CommunicationStyle string `json:"communicationStyle,omitempty"`
	Principles         string `json:"principles,omitempty"`
	Module             string `json:"module,omitempty"`
	Path               string `json:"path,omitempty"`
}

// WorkflowRecord is one row of the workflow manifest.
type WorkflowRecord struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Module      string `json:"module,omitempty"`
	Path        string `json:"path,omitempty"`
}

// TaskRecord is one row of the task manifest. Tasks are listed for
// discovery only; they are referenced from workflow and agent documents.
type TaskRecord struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Module      string `json:"module,omitempty"`
	Path        string `json:"path,omitempty"`
}
