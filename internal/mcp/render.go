package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soyeahso/roster/internal/domain"
)

const toolDescription = `Unified roster tool with instruction-based routing.

**Command Patterns:**

1. Load default agent:
   - Input: "" (empty string)
   - Example: roster

2. Load specific agent:
   - Input: "<agent-name>"
   - Example: "analyst" loads the Business Analyst agent
   - Example: "architect" loads the Architect agent
   - Use *list-agents to discover what is available

3. Execute workflow:
   - Input: "*<workflow-name>" (note the asterisk prefix)
   - Example: "*party-mode" executes the party-mode workflow
   - The asterisk (*) is REQUIRED for workflows

4. Discovery commands (built-in):
   - Input: "*list-agents" → Show all available agents
   - Input: "*list-workflows" → Show all available workflows
   - Input: "*list-tasks" → Show all available tasks
   - Input: "*help" → Show command reference and usage guide

**Naming Rules:**
- Agent names: lowercase letters and hyphens only (e.g., "analyst", "roster-master")
- Workflow names: lowercase letters, numbers, and hyphens (e.g., "party-mode", "dev-story")
- Names must be 2-50 characters
- Case-sensitive matching

**Important:**
- To execute a workflow, you MUST prefix the name with an asterisk (*)
- Without the asterisk, the tool will try to load an agent with that name
- Use only ONE argument at a time
- Discovery commands are built-in and work independently

**Examples:**
- roster → Load the default orchestrator agent
- roster analyst → Load the Business Analyst
- roster *party-mode → Execute party-mode workflow
- roster *list-agents → See all available agents
- roster *help → Show complete command reference

**Error Handling:**
The tool provides helpful suggestions if you:
- Misspell an agent or workflow name (fuzzy matching)
- Forget the asterisk for a workflow
- Use invalid characters or formatting
`

// renderResult flattens a successful tool result into the text block
// returned to the client. Agent, list, and help results already carry
// their content; workflow results are assembled here.
func renderResult(res domain.Result) string {
	if res.Kind == domain.ResultWorkflow {
		return renderWorkflow(res)
	}
	return res.Content
}

func renderWorkflow(res domain.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Workflow: %s\n\n", res.WorkflowName)
	fmt.Fprintf(&b, "**Description:** %s\n\n", res.Description)

	if res.Context != nil {
		b.WriteString("## Workflow Context\n\n")
		b.WriteString("**MCP Server Resources (use these, not user's workspace):**\n\n")
		fmt.Fprintf(&b, "- MCP Server Root: `%s`\n", res.Context.ServerRoot)
		fmt.Fprintf(&b, "- Agent Manifest: `%s`\n", res.Context.AgentManifestPath)
		fmt.Fprintf(&b, "- Available Agents: %d\n\n", res.Context.AgentCount)
		b.WriteString("**NOTE:** All `{mcp-resources}` references in this workflow point to the MCP server,\n")
		b.WriteString("not the user's workspace. Use the Agent Roster data provided below.\n\n")

		if len(res.Context.AgentManifestData) > 0 {
			b.WriteString("**Agent Roster (MCP Server Data):**\n\n")
			b.WriteString("```json\n")
			if data, err := json.MarshalIndent(res.Context.AgentManifestData, "", "  "); err == nil {
				b.Write(data)
			}
			b.WriteString("\n```\n\n")
		}
	}

	if res.WorkflowYAML != "" {
		b.WriteString("## Workflow Configuration\n\n")
		fmt.Fprintf(&b, "**File:** `%s`\n\n", res.Path)
		b.WriteString("```yaml\n")
		b.WriteString(res.WorkflowYAML)
		b.WriteString("\n```\n\n")
	}

	if res.Instructions != "" {
		b.WriteString("## Workflow Instructions\n\n")
		b.WriteString("```markdown\n")
		b.WriteString(res.Instructions)
		b.WriteString("\n```\n\n")
	}

	b.WriteString(workflowExecutionGuidance)
	return b.String()
}

const workflowExecutionGuidance = `## Execution Instructions

Process this workflow step by step:

1. **Read the complete workflow configuration**
2. **IMPORTANT - MCP Resource Resolution:**
   - All ` + "`{mcp-resources}`" + ` placeholders refer to the MCP server installation
   - DO NOT search the user's workspace for manifest files or agent data
   - USE the Agent Roster JSON provided in the Workflow Context section above
   - The MCP server has already resolved all paths and loaded all necessary data
3. **Resolve variables:** Replace any ` + "`{{variables}}`" + ` with user input or defaults
4. **Follow instructions:** Execute steps in exact order as defined
5. **Generate content:** Process ` + "`<template-output>`" + ` sections as needed
6. **Request input:** Use ` + "`<elicit-required>`" + ` sections to gather additional user input

**CRITICAL:** The Agent Roster JSON in the Workflow Context contains all agent metadata
from the MCP server. Use this data directly - do not attempt to read files from the
user's workspace.

Begin workflow execution now.`
