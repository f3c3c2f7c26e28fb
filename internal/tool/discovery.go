package tool

import (
	"fmt"
	"strings"

	"github.com/soyeahso/roster/internal/domain"
)

func (e *Executor) listAgents() domain.Result {
	agents := e.cat.Agents()

	var b strings.Builder
	b.WriteString("# Available Roster Agents\n\n")

	if len(agents) == 0 {
		b.WriteString("No agents found in manifest.\n")
	} else {
		fmt.Fprintf(&b, "Found %d agents:\n", len(agents))
		for i, a := range agents {
			displayName := a.DisplayName
			if displayName == "" {
				displayName = a.Name
			}
			role := a.Role
			if role == "" {
				role = "No role specified"
			}
			module := a.Module
			if module == "" {
				module = "core"
			}
			fmt.Fprintf(&b, "\n%d. **%s** (`%s`)\n", i+1, displayName, a.Name)
			fmt.Fprintf(&b, "   - Role: %s\n", role)
			fmt.Fprintf(&b, "   - Module: %s\n", module)
			fmt.Fprintf(&b, "   - Command: `roster %s`\n", a.Name)
		}
	}

	b.WriteString("\n**Usage:**\n")
	b.WriteString("- Load an agent: `roster <agent-name>`\n")
	b.WriteString("- Example: `roster analyst` loads the business analyst\n")

	return domain.Result{
		Success:  true,
		Kind:     domain.ResultList,
		ListKind: "agents",
		Count:    len(agents),
		Content:  b.String(),
	}
}

func (e *Executor) listWorkflows() domain.Result {
	workflows := e.cat.Workflows()

	var b strings.Builder
	b.WriteString("# Available Roster Workflows\n\n")

	if len(workflows) == 0 {
		b.WriteString("No workflows found in manifest.\n")
	} else {
		fmt.Fprintf(&b, "Found %d workflows:\n", len(workflows))
		for i, w := range workflows {
			description := w.Description
			if description == "" {
				description = "No description"
			}
			module := w.Module
			if module == "" {
				module = "core"
			}
			fmt.Fprintf(&b, "\n%d. **%s** - %s\n", i+1, w.Name, description)
			fmt.Fprintf(&b, "   - Module: %s\n", module)
			fmt.Fprintf(&b, "   - Command: `roster *%s`\n", w.Name)
		}
	}

	b.WriteString("\n**Usage:**\n")
	b.WriteString("- Execute a workflow: `roster *<workflow-name>`\n")
	b.WriteString("- Example: `roster *party-mode` starts group discussion\n")

	return domain.Result{
		Success:  true,
		Kind:     domain.ResultList,
		ListKind: "workflows",
		Count:    len(workflows),
		Content:  b.String(),
	}
}

func (e *Executor) listTasks() domain.Result {
	tasks := e.cat.Tasks()

	var b strings.Builder
	b.WriteString("# Available Roster Tasks\n\n")

	if len(tasks) == 0 {
		b.WriteString("No tasks found in manifest.\n")
	} else {
		fmt.Fprintf(&b, "Found %d tasks:\n", len(tasks))
		for i, t := range tasks {
			description := t.Description
			if description == "" {
				description = "No description"
			}
			module := t.Module
			if module == "" {
				module = "core"
			}
			fmt.Fprintf(&b, "\n%d. **%s**\n", i+1, t.Name)
			fmt.Fprintf(&b, "   - %s\n", description)
			fmt.Fprintf(&b, "   - Module: %s\n", module)
		}
	}

	b.WriteString("\n**Note:** Tasks are referenced within workflows and agent instructions.\n")

	return domain.Result{
		Success:  true,
		Kind:     domain.ResultList,
		ListKind: "tasks",
		Count:    len(tasks),
		Content:  b.String(),
	}
}

func (e *Executor) help() domain.Result {
	var b strings.Builder
	b.WriteString(`# Roster MCP Server - Command Reference

## Available Commands

### Load Agents
Load and interact with roster agents:
- ` + "`roster \"\"`" + ` or ` + "`roster`" + ` (empty) → Load the default agent
- ` + "`roster <agent-name>`" + ` → Load specific agent
- Example: ` + "`roster analyst`" + ` → Load the business analyst

### Execute Workflows
Run roster workflows (prefix with ` + "`*`" + `):
- ` + "`roster *<workflow-name>`" + ` → Execute workflow
- Example: ` + "`roster *party-mode`" + ` → Start group discussion with all agents

### Discovery Commands
Explore available roster resources:
- ` + "`roster *list-agents`" + ` → Show all available agents
- ` + "`roster *list-workflows`" + ` → Show all available workflows
- ` + "`roster *list-tasks`" + ` → Show all available tasks
- ` + "`roster *help`" + ` → Show this help message

## Quick Start
1. **Discover agents:** ` + "`roster *list-agents`" + `
2. **Load an agent:** ` + "`roster analyst`" + `
3. **Discover workflows:** ` + "`roster *list-workflows`" + `
4. **Run a workflow:** ` + "`roster *party-mode`" + `

## Agent vs Workflow
- **Agents** provide personas and interactive menus (no ` + "`*`" + ` prefix)
- **Workflows** execute automated tasks (use ` + "`*`" + ` prefix)

## MCP Resources
`)
	fmt.Fprintf(&b, "All resources are loaded from: `%s`\n", e.fs.Dir())
	fmt.Fprintf(&b, "- Agents: %d available\n", len(e.cat.Agents()))
	fmt.Fprintf(&b, "- Workflows: %d available\n\n", len(e.cat.Workflows()))
	b.WriteString("For more information about specific agents or workflows, use the `*list-*` commands.\n")

	return domain.Result{
		Success: true,
		Kind:    domain.ResultHelp,
		Content: b.String(),
	}
}
