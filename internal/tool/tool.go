// Package tool implements the roster unified tool: a single entry point
// that routes one command string to agent loading, workflow execution, or
// discovery, and assembles the response content the client renders.
package tool

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/soyeahso/roster/internal/catalog"
	"github.com/soyeahso/roster/internal/domain"
	"github.com/soyeahso/roster/internal/logging"
	"github.com/soyeahso/roster/internal/router"
	"github.com/soyeahso/roster/internal/safefs"
)

// Executor binds the router, catalog, and file root together and executes
// parsed commands. All file access goes through the safefs root so a
// malicious path in a manifest can never escape the catalog.
type Executor struct {
	cat          *catalog.Catalog
	fs           *safefs.Root
	router       *router.Router
	defaultAgent string
	log          *logging.Logger
}

// New creates an Executor. defaultAgent is loaded for the empty command.
func New(cat *catalog.Catalog, fs *safefs.Root, defaultAgent string, log *logging.Logger) *Executor {
	if log == nil {
		log = logging.New(nil, "silent")
	}
	return &Executor{
		cat:          cat,
		fs:           fs,
		router:       router.New(cat, log),
		defaultAgent: defaultAgent,
		log:          log.Sub("tool"),
	}
}

// Execute runs one command string end to end. It never returns an error:
// every failure becomes a Result with Success=false so the client always
// gets renderable content.
func (e *Executor) Execute(command string) domain.Result {
	cmd := e.router.Parse(command)

	switch cmd.Kind {
	case router.KindEmpty:
		e.log.Info().Str("agent", e.defaultAgent).Msg("empty command, loading default agent")
		return e.loadAgent(e.defaultAgent)

	case router.KindDiscovery:
		e.log.Info().Str("command", string(cmd.Discovery)).Msg("discovery command")
		switch cmd.Discovery {
		case router.DiscoveryListAgents:
			return e.listAgents()
		case router.DiscoveryListWorkflows:
			return e.listWorkflows()
		case router.DiscoveryListTasks:
			return e.listTasks()
		default:
			return e.help()
		}

	case router.KindError:
		return domain.ErrorResult(string(cmd.Err.Code), cmd.Err.Message, cmd.Err.Suggestions)

	case router.KindWorkflow:
		if out := e.router.Validate(cmd.Name, router.RefWorkflow); !out.Valid {
			return domain.ErrorResult(string(out.Code), out.Message, out.Suggestions)
		}
		return e.executeWorkflow(cmd.Name)

	default:
		if out := e.router.Validate(cmd.Name, router.RefAgent); !out.Valid {
			return domain.ErrorResult(string(out.Code), out.Message, out.Suggestions)
		}
		return e.loadAgent(cmd.Name)
	}
}

// loadAgent assembles the full prompt package for an agent: header,
// definition file, customization overlay, and processing instructions.
func (e *Executor) loadAgent(name string) domain.Result {
	e.log.Info().Str("agent", name).Msg("loading agent")

	agent, ok := e.cat.FindAgent(name)
	if !ok {
		// Unreachable after validation except for a misconfigured
		// default agent.
		return domain.ErrorResult("UNKNOWN_AGENT",
			fmt.Sprintf("Agent '%s' not found in manifest", name), nil)
	}

	displayName := agent.DisplayName
	if displayName == "" {
		displayName = agent.Name
	}
	title := agent.Title
	if title == "" {
		title = "Roster Agent"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Roster Agent: %s\n", displayName)
	fmt.Fprintf(&b, "**Title:** %s\n\n", title)

	if agent.Path != "" {
		b.WriteString("## Agent Definition\n\n")
		fmt.Fprintf(&b, "**File:** `%s`\n\n", agent.Path)
		if md, err := e.fs.Read(agent.Path); err != nil {
			if res, fatal := e.traversalFailure(err, agent.Path); fatal {
				return res
			}
			e.log.Error().Err(err).Str("path", agent.Path).Msg("agent definition unreadable")
			fmt.Fprintf(&b, "[Error reading agent file: %v]\n\n", err)
		} else {
			b.WriteString("```markdown\n")
			b.WriteString(rewritePlaceholders(md))
			b.WriteString("\n```\n\n")
		}
	}

	module := agent.Module
	if module == "" {
		module = "core"
	}
	customizePath := path.Join(catalog.ManifestDir, "agents",
		fmt.Sprintf("%s-%s.customize.yaml", module, agent.Name))
	b.WriteString("## Agent Customization\n\n")
	fmt.Fprintf(&b, "**File:** `%s`\n\n", customizePath)
	if yml, err := e.fs.Read(customizePath); err != nil {
		if res, fatal := e.traversalFailure(err, customizePath); fatal {
			return res
		}
		// Customization is optional. The notice keeps the section shape
		// stable for the client.
		fmt.Fprintf(&b, "[Customization file not found or error: %v]\n\n", err)
	} else {
		b.WriteString("```yaml\n")
		b.WriteString(rewritePlaceholders(yml))
		b.WriteString("\n```\n\n")
	}

	b.WriteString(agentInstructions)

	return domain.Result{
		Success:     true,
		Kind:        domain.ResultAgent,
		AgentName:   agent.Name,
		DisplayName: displayName,
		Content:     b.String(),
	}
}

// executeWorkflow loads the workflow definition and its optional sibling
// instructions file, and attaches the execution context snapshot.
func (e *Executor) executeWorkflow(name string) domain.Result {
	e.log.Info().Str("workflow", name).Msg("executing workflow")

	wf, ok := e.cat.FindWorkflow(name)
	if !ok {
		return domain.ErrorResult("UNKNOWN_WORKFLOW",
			fmt.Sprintf("Workflow '%s' not found in manifest", name), nil)
	}

	var workflowYAML string
	if wf.Path != "" {
		if raw, err := e.fs.Read(wf.Path); err != nil {
			if res, fatal := e.traversalFailure(err, wf.Path); fatal {
				return res
			}
			e.log.Error().Err(err).Str("path", wf.Path).Msg("workflow definition unreadable")
			workflowYAML = fmt.Sprintf("[Error reading workflow file: %v]", err)
		} else {
			workflowYAML = rewritePlaceholders(raw)
		}
	}

	// instructions.md next to the workflow definition is optional.
	var instructions string
	if wf.Path != "" {
		instructionsPath := path.Join(path.Dir(wf.Path), "instructions.md")
		if raw, err := e.fs.Read(instructionsPath); err != nil {
			if res, fatal := e.traversalFailure(err, instructionsPath); fatal {
				return res
			}
		} else {
			instructions = rewritePlaceholders(raw)
		}
	}

	return domain.Result{
		Success:      true,
		Kind:         domain.ResultWorkflow,
		WorkflowName: wf.Name,
		Description:  wf.Description,
		Module:       wf.Module,
		Path:         wf.Path,
		WorkflowYAML: workflowYAML,
		Instructions: instructions,
		Context:      e.workflowContext(),
	}
}

// traversalFailure converts a path escape into a failed result. A traversal
// is always fatal to the request, even on an optional companion file where
// an ordinary read error would be tolerated. Non-traversal errors return
// fatal=false so callers can fall back to their inline notice.
func (e *Executor) traversalFailure(err error, p string) (domain.Result, bool) {
	var tr *safefs.TraversalError
	if !errors.As(err, &tr) {
		return domain.Result{}, false
	}
	e.log.Error().Err(err).Str("path", p).Msg("manifest path escapes catalog root")
	return domain.ErrorResult("PATH_TRAVERSAL",
		fmt.Sprintf("File path '%s' resolves outside the catalog root", p), nil), true
}

// workflowContext snapshots server resources so workflows can resolve
// catalog paths without re-querying the server.
func (e *Executor) workflowContext() *domain.WorkflowContext {
	return &domain.WorkflowContext{
		ServerRoot:        e.fs.Dir(),
		AgentManifestPath: filepath.Join(e.fs.Dir(), catalog.ManifestDir, catalog.AgentManifest),
		AgentManifestData: e.cat.Agents(),
		AgentCount:        len(e.cat.Agents()),
	}
}

// rewritePlaceholders replaces {project-root} with {mcp-resources} in
// served content. The files live on the server, not in the client's
// workspace, and the placeholder should say so.
func rewritePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{project-root}", "{mcp-resources}")
}

const agentInstructions = `## Roster Processing Instructions

This agent is part of the roster catalog served by this MCP server.

**How to Process:**
1. Read the agent definition markdown to understand role, identity, and principles
2. Apply the communication style specified in the agent definition
3. Use the customization YAML for any project-specific overrides
4. Access available roster tools and workflows as needed
5. Follow the agent's core principles when making decisions

**Agent Activation:**
- You are now embodying this agent's persona
- Communicate using the specified communication style
- Apply the agent's principles to all recommendations
- Use the agent's identity and role to guide your responses

**Available Roster Tools:**
The following MCP tools are available for workflow execution:
- ` + "`roster *<workflow-name>`" + ` - Execute a roster workflow
- Use the roster tool to discover and execute workflows as needed

Use these tools to access roster workflows and tasks as needed.`
