package router

import (
	"regexp"
	"strings"
)

const (
	minNameLength = 2
	maxNameLength = 50
)

// Agent names are letters and single hyphens only; workflow names also
// allow digits.
var (
	agentNamePattern    = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)
	workflowNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// RefKind distinguishes agent from workflow name validation.
type RefKind string

const (
	RefAgent    RefKind = "agent"
	RefWorkflow RefKind = "workflow"
)

// Validate applies length, case, format, and existence checks to a name.
// For agents the case-insensitive catalog check runs before the format
// check so "Analyst" diagnoses as a case mismatch rather than a format
// violation.
func (r *Router) Validate(name string, kind RefKind) Outcome {
	if len(name) < minNameLength {
		return invalid(CodeNameTooShort, r.formatNameTooShort(name, kind))
	}
	if len(name) > maxNameLength {
		return invalid(CodeNameTooLong, formatNameTooLong(len(name)))
	}

	if kind == RefAgent {
		if match := caseMismatch(name, r.cat.AgentNames()); match != "" {
			return invalid(CodeCaseMismatch, formatCaseMismatch(name, match), match)
		}
	}

	pattern := agentNamePattern
	if kind == RefWorkflow {
		pattern = workflowNamePattern
	}
	if !pattern.MatchString(name) {
		return invalid(CodeInvalidNameFormat, formatInvalidFormat(name, kind))
	}

	switch kind {
	case RefWorkflow:
		if _, ok := r.cat.FindWorkflow(name); !ok {
			suggestion := ClosestMatch(name, r.cat.WorkflowNames())
			out := invalid(CodeUnknownWorkflow, r.formatUnknownWorkflow(name, suggestion))
			if suggestion != "" {
				out.Suggestions = []string{suggestion}
			}
			return out
		}
	case RefAgent:
		if _, ok := r.cat.FindAgent(name); !ok {
			suggestion := ClosestMatch(name, r.cat.AgentNames())
			out := invalid(CodeUnknownAgent, r.formatUnknownAgent(name, suggestion))
			if suggestion != "" {
				out.Suggestions = []string{suggestion}
			}
			return out
		}
	}

	return valid()
}

// caseMismatch returns the catalog name that equals the input ignoring
// case but differs from it exactly, or "" if there is none.
func caseMismatch(name string, known []string) string {
	lower := strings.ToLower(name)
	for _, k := range known {
		if strings.ToLower(k) == lower && k != name {
			return k
		}
	}
	return ""
}
