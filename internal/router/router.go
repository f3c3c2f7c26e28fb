// Package router turns a raw instruction string into a typed command and
// validates referenced names against the catalog. Parsing is total: every
// input yields exactly one Command, never a panic. Parsing and validation
// are deterministic and side-effect-free: the same input against the same
// catalog always produces the same output.
package router

import (
	"strings"

	"github.com/soyeahso/roster/internal/catalog"
	"github.com/soyeahso/roster/internal/logging"
)

// Kind discriminates the command variants.
type Kind string

const (
	KindEmpty     Kind = "empty"
	KindDiscovery Kind = "discovery"
	KindAgent     Kind = "agent"
	KindWorkflow  Kind = "workflow"
	KindError     Kind = "error"
)

// Discovery identifies the fixed built-in commands that bypass name
// validation entirely.
type Discovery string

const (
	DiscoveryListAgents    Discovery = "list-agents"
	DiscoveryListWorkflows Discovery = "list-workflows"
	DiscoveryListTasks     Discovery = "list-tasks"
	DiscoveryHelp          Discovery = "help"
)

// Command is the parsed form of one instruction string. Exactly one
// variant applies: Kind selects it, Name carries the referenced name for
// agent/workflow commands, and Err carries the diagnostic for KindError.
type Command struct {
	Kind      Kind
	Name      string
	Discovery Discovery
	Err       *Outcome
}

// Outcome is the result of validating an input. For failures it carries a
// stable machine-readable code, a human-readable message, and an ordered
// list of suggestions.
type Outcome struct {
	Valid       bool
	Code        ErrorCode
	Message     string
	Suggestions []string
}

func valid() Outcome { return Outcome{Valid: true} }

func invalid(code ErrorCode, message string, suggestions ...string) Outcome {
	return Outcome{Code: code, Message: message, Suggestions: suggestions}
}

// Router parses and validates instruction strings against a loaded catalog.
type Router struct {
	cat *catalog.Catalog
	log *logging.Logger
}

// New creates a Router bound to a catalog.
func New(cat *catalog.Catalog, log *logging.Logger) *Router {
	if log == nil {
		log = logging.New(nil, "silent")
	}
	return &Router{cat: cat, log: log.Sub("router")}
}

// Parse classifies a raw instruction string. The security check runs before
// any structural parsing so dangerous input never reaches name handling.
func (r *Router) Parse(raw string) Command {
	input := strings.TrimSpace(raw)

	if input == "" {
		return Command{Kind: KindEmpty}
	}

	switch input {
	case "*list-agents":
		return Command{Kind: KindDiscovery, Discovery: DiscoveryListAgents}
	case "*list-workflows":
		return Command{Kind: KindDiscovery, Discovery: DiscoveryListWorkflows}
	case "*list-tasks":
		return Command{Kind: KindDiscovery, Discovery: DiscoveryListTasks}
	case "*help":
		return Command{Kind: KindDiscovery, Discovery: DiscoveryHelp}
	}

	if out := checkSecurity(input); !out.Valid {
		r.log.Warn().Str("code", string(out.Code)).Msg("rejected unsafe input")
		return errCommand(out)
	}

	if parts := strings.Fields(input); len(parts) > 1 {
		return errCommand(invalid(CodeTooManyArguments, formatTooManyArguments(parts)))
	}

	if strings.HasPrefix(input, "**") {
		name := input[2:]
		return errCommand(invalid(CodeInvalidAsteriskCount, formatDoubleAsterisk(name), "*"+name))
	}

	if strings.HasPrefix(input, "*") {
		name := strings.TrimSpace(input[1:])
		if name == "" {
			return errCommand(invalid(CodeMissingWorkflowName, formatMissingWorkflowName()))
		}
		return Command{Kind: KindWorkflow, Name: name}
	}

	// No asterisk: candidate agent name. A known workflow name here means
	// the caller forgot the prefix, which is a more useful diagnosis than
	// "unknown agent".
	if _, ok := r.cat.FindWorkflow(input); ok {
		return errCommand(invalid(CodeMissingAsterisk, formatMissingAsterisk(input), "*"+input))
	}

	return Command{Kind: KindAgent, Name: input}
}

func errCommand(out Outcome) Command {
	return Command{Kind: KindError, Err: &out}
}
