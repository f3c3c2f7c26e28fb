package router

import (
	"fmt"
	"strings"
)

// Error message formatters. Each is a pure function of the error context
// so the prose can be tested independently of the validation logic.

func formatTooManyArguments(parts []string) string {
	return fmt.Sprintf(`Error: Too many arguments

The roster tool accepts only one argument at a time.

You provided: %s

Did you mean one of these?
  - roster %s (load %s agent)
  - roster *%s (execute %s workflow)

Usage:
  roster                  → Load the default agent
  roster <agent-name>     → Load specified agent
  roster *<workflow-name> → Execute specified workflow`,
		strings.Join(parts, " "), parts[0], parts[0], parts[1], parts[1])
}

func formatDoubleAsterisk(name string) string {
	return fmt.Sprintf(`Error: Invalid syntax

Workflows require exactly one asterisk (*) prefix, not two (**).

Correct syntax:
  roster *%s

Try: roster *%s`, name, name)
}

func formatMissingWorkflowName() string {
	return `Error: Missing workflow name

The asterisk (*) prefix requires a workflow name.

Correct syntax:
  roster *<workflow-name>

Example:
  roster *party-mode

To list all workflows, try:
  roster *list-workflows`
}

func formatMissingAsterisk(name string) string {
	return fmt.Sprintf(`Error: Missing workflow prefix

'%s' appears to be a workflow name, but is missing the asterisk (*) prefix.

Workflows must be invoked with the asterisk prefix:
  Correct:   roster *%s
  Incorrect: roster %s

To load an agent instead, use:
  roster <agent-name>

Did you mean: roster *%s?`, name, name, name, name)
}

func formatDangerousChars(chars []string) string {
	return fmt.Sprintf(`Error: Invalid characters detected

The command contains potentially dangerous characters: %s

For security reasons, the following characters are not allowed:
  ; & | $ `+"`"+` < > ( )

Agent and workflow names use only:
  - Lowercase letters (a-z)
  - Numbers (0-9, workflows only)
  - Hyphens (-)

Try: roster analyst`, strings.Join(chars, ", "))
}

func formatNonASCII(chars []string) string {
	return fmt.Sprintf(`Error: Non-ASCII characters detected

The command contains non-ASCII characters: %s

Agent and workflow names must use ASCII characters only:
  - Lowercase letters (a-z)
  - Numbers (0-9, workflows only)
  - Hyphens (-)

Try using ASCII equivalents.`, strings.Join(chars, ", "))
}

func (r *Router) formatNameTooShort(name string, kind RefKind) string {
	entity := "Agent"
	if kind == RefWorkflow {
		entity = "Workflow"
	}
	return fmt.Sprintf(`Error: %s name too short

%s name '%s' is only %d character(s) long. Names must be at least %d characters.

%s

Try: roster <agent-name>`, entity, entity, name, len(name), minNameLength, r.formatAvailableList(kind))
}

func formatNameTooLong(length int) string {
	return fmt.Sprintf(`Error: Name too long

The provided name is %d characters long. Names must be at most %d characters.

Please use a shorter agent or workflow name.`, length, maxNameLength)
}

func formatInvalidFormat(name string, kind RefKind) string {
	if kind == RefAgent {
		return fmt.Sprintf(`Error: Invalid agent name format

Agent name '%s' contains invalid characters.

Agent names must:
  - Use lowercase letters only
  - Use hyphens (-) to separate words
  - Start and end with a letter
  - Not contain numbers or special characters

Valid examples:
  - analyst
  - roster-master
  - game-dev`, name)
	}
	return fmt.Sprintf(`Error: Invalid workflow name format

Workflow name '%s' contains invalid characters.

Workflow names must:
  - Use lowercase letters and numbers
  - Use hyphens (-) to separate words
  - Start and end with alphanumeric character
  - Not contain underscores or special characters

Valid examples:
  - party-mode
  - brainstorm-project
  - dev-story`, name)
}

func (r *Router) formatUnknownAgent(name, suggestion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: Unknown agent '%s'\n\n", name)
	if suggestion != "" {
		fmt.Fprintf(&b, "Did you mean: %s?\n\n", suggestion)
	}
	fmt.Fprintf(&b, "The agent '%s' is not available in the catalog.\n\n", name)
	b.WriteString(r.formatAvailableList(RefAgent))
	b.WriteString("\nTry: roster <agent-name>\nExample: roster analyst")
	return b.String()
}

func (r *Router) formatUnknownWorkflow(name, suggestion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: Unknown workflow '*%s'\n\n", name)
	if suggestion != "" {
		fmt.Fprintf(&b, "Did you mean: *%s?\n\n", suggestion)
	}
	fmt.Fprintf(&b, "The workflow '%s' is not available in the catalog.\n\n", name)
	b.WriteString(r.formatAvailableList(RefWorkflow))
	b.WriteString("\nTry: roster *<workflow-name>\nExample: roster *party-mode")
	return b.String()
}

func formatCaseMismatch(name, correct string) string {
	return fmt.Sprintf(`Error: Case sensitivity mismatch

Agent names are case-sensitive. '%s' does not match '%s'.

Did you mean: roster %s?

Note: All agent and workflow names use lowercase letters only.`, name, correct, correct)
}

// formatAvailableList renders up to ten known names of the given kind.
func (r *Router) formatAvailableList(kind RefKind) string {
	const limit = 10
	var lines []string

	if kind == RefAgent {
		lines = append(lines, "Available agents:")
		agents := r.cat.Agents()
		for i, a := range agents {
			if i == limit {
				break
			}
			lines = append(lines, fmt.Sprintf("  - %s (%s)", a.Name, a.Title))
		}
		if len(agents) > limit {
			lines = append(lines, fmt.Sprintf("  ... (%d more)", len(agents)-limit))
		}
	} else {
		lines = append(lines, "Available workflows:")
		workflows := r.cat.Workflows()
		for i, w := range workflows {
			if i == limit {
				break
			}
			lines = append(lines, fmt.Sprintf("  - *%s (%s)", w.Name, w.Description))
		}
		if len(workflows) > limit {
			lines = append(lines, fmt.Sprintf("  ... (%d more, use *list-workflows for complete list)", len(workflows)-limit))
		}
	}
	return strings.Join(lines, "\n")
}
