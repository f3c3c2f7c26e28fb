package router

import (
	"strings"
	"testing"

	"github.com/soyeahso/roster/internal/catalog"
	"github.com/soyeahso/roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]domain.AgentRecord{
			{Name: "analyst", DisplayName: "Mary", Title: "Business Analyst"},
			{Name: "architect", DisplayName: "Winston", Title: "Architect"},
			{Name: "dev", DisplayName: "Olivia", Title: "Senior Developer"},
			{Name: "roster-master", DisplayName: "Orchestrator", Title: "Master Orchestrator"},
		},
		[]domain.WorkflowRecord{
			{Name: "party-mode", Description: "Group discussion"},
			{Name: "dev-story", Description: "Implement a story"},
			{Name: "brainstorm-project", Description: "Brainstorming"},
		},
		nil,
	)
}

func testRouter() *Router {
	return New(testCatalog(), nil)
}

// --- Parsing ---

func TestParseEmpty(t *testing.T) {
	r := testRouter()
	assert.Equal(t, KindEmpty, r.Parse("").Kind)
	assert.Equal(t, KindEmpty, r.Parse("   ").Kind)
	assert.Equal(t, KindEmpty, r.Parse("\t").Kind)
}

func TestParseDiscovery(t *testing.T) {
	r := testRouter()
	tests := []struct {
		input string
		want  Discovery
	}{
		{"*list-agents", DiscoveryListAgents},
		{"*list-workflows", DiscoveryListWorkflows},
		{"*list-tasks", DiscoveryListTasks},
		{"*help", DiscoveryHelp},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := r.Parse(tt.input)
			assert.Equal(t, KindDiscovery, cmd.Kind)
			assert.Equal(t, tt.want, cmd.Discovery)
		})
	}
}

func TestParseAgentReference(t *testing.T) {
	r := testRouter()
	cmd := r.Parse("analyst")
	assert.Equal(t, KindAgent, cmd.Kind)
	assert.Equal(t, "analyst", cmd.Name)
}

func TestParseAgentReferenceTrimmed(t *testing.T) {
	r := testRouter()
	cmd := r.Parse("  analyst  ")
	assert.Equal(t, KindAgent, cmd.Kind)
	assert.Equal(t, "analyst", cmd.Name)
}

func TestParseWorkflowReference(t *testing.T) {
	r := testRouter()
	cmd := r.Parse("*party-mode")
	assert.Equal(t, KindWorkflow, cmd.Kind)
	assert.Equal(t, "party-mode", cmd.Name)
}

func TestParseUnknownAgentStillParses(t *testing.T) {
	// Existence is a validation concern, not a parsing concern.
	r := testRouter()
	cmd := r.Parse("nonexistent")
	assert.Equal(t, KindAgent, cmd.Kind)
}

func TestParseDangerousCharacters(t *testing.T) {
	r := testRouter()
	inputs := []string{
		"analyst;rm -rf /",
		"agent&background",
		"agent|pipe",
		"agent$var",
		"agent`cmd`",
		"agent<in",
		"agent>out",
		"agent(call)",
		"agent\nnewline",
		"agent\rreturn",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			cmd := r.Parse(input)
			require.Equal(t, KindError, cmd.Kind)
			assert.Equal(t, CodeInvalidCharacters, cmd.Err.Code)
		})
	}
}

func TestParseDangerousCharsListedInMessage(t *testing.T) {
	r := testRouter()
	cmd := r.Parse("agent;|test")
	require.Equal(t, KindError, cmd.Kind)
	assert.Contains(t, cmd.Err.Message, ";")
	assert.Contains(t, cmd.Err.Message, "|")
}

func TestParseNonASCII(t *testing.T) {
	r := testRouter()
	inputs := []string{"anályst", "agent™", "日本語", "café"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			cmd := r.Parse(input)
			require.Equal(t, KindError, cmd.Kind)
			assert.Equal(t, CodeNonASCIICharacters, cmd.Err.Code)
		})
	}
}

func TestParseSecurityBeforeStructure(t *testing.T) {
	// A dangerous character wins over any structural diagnosis.
	r := testRouter()
	cmd := r.Parse("*party;mode")
	require.Equal(t, KindError, cmd.Kind)
	assert.Equal(t, CodeInvalidCharacters, cmd.Err.Code)
}

func TestParseTooManyArguments(t *testing.T) {
	r := testRouter()
	cmd := r.Parse("analyst architect")
	require.Equal(t, KindError, cmd.Kind)
	assert.Equal(t, CodeTooManyArguments, cmd.Err.Code)
	// Both tokens named as alternative interpretations.
	assert.Contains(t, cmd.Err.Message, "roster analyst")
	assert.Contains(t, cmd.Err.Message, "roster *architect")
}

func TestParseDoubleAsterisk(t *testing.T) {
	r := testRouter()
	cmd := r.Parse("**party-mode")
	require.Equal(t, KindError, cmd.Kind)
	assert.Equal(t, CodeInvalidAsteriskCount, cmd.Err.Code)
	assert.Equal(t, []string{"*party-mode"}, cmd.Err.Suggestions)
}

func TestParseBareAsterisk(t *testing.T) {
	r := testRouter()
	cmd := r.Parse("*")
	require.Equal(t, KindError, cmd.Kind)
	assert.Equal(t, CodeMissingWorkflowName, cmd.Err.Code)
}

func TestParseMissingAsterisk(t *testing.T) {
	r := testRouter()
	cmd := r.Parse("party-mode")
	require.Equal(t, KindError, cmd.Kind)
	assert.Equal(t, CodeMissingAsterisk, cmd.Err.Code)
	assert.Equal(t, []string{"*party-mode"}, cmd.Err.Suggestions)
}

func TestParseIsTotal(t *testing.T) {
	// Every input yields exactly one command variant, never a panic.
	r := testRouter()
	inputs := []string{"", "*", "**", "***", "a", "*a b c", "--", "*-", "\x00", strings.Repeat("x", 200)}
	for _, input := range inputs {
		cmd := r.Parse(input)
		assert.NotEmpty(t, cmd.Kind)
	}
}

// --- Name validation ---

func TestValidateKnownNames(t *testing.T) {
	// Round-trip: every catalog name validates.
	r := testRouter()
	for _, name := range testCatalog().AgentNames() {
		assert.True(t, r.Validate(name, RefAgent).Valid, name)
	}
	for _, name := range testCatalog().WorkflowNames() {
		assert.True(t, r.Validate(name, RefWorkflow).Valid, name)
	}
}

func TestValidateNameTooShort(t *testing.T) {
	r := testRouter()
	out := r.Validate("a", RefAgent)
	require.False(t, out.Valid)
	assert.Equal(t, CodeNameTooShort, out.Code)
}

func TestValidateNameTooLong(t *testing.T) {
	r := testRouter()
	out := r.Validate(strings.Repeat("a", 51), RefAgent)
	require.False(t, out.Valid)
	assert.Equal(t, CodeNameTooLong, out.Code)
}

func TestValidateLengthBoundaries(t *testing.T) {
	cat := catalog.New(
		[]domain.AgentRecord{
			{Name: "ab"},
			{Name: strings.Repeat("a", 50)},
		},
		nil, nil,
	)
	r := New(cat, nil)

	assert.True(t, r.Validate("ab", RefAgent).Valid)
	assert.True(t, r.Validate(strings.Repeat("a", 50), RefAgent).Valid)
	assert.Equal(t, CodeNameTooShort, r.Validate("a", RefAgent).Code)
	assert.Equal(t, CodeNameTooLong, r.Validate(strings.Repeat("a", 51), RefAgent).Code)
}

func TestValidateAgentFormat(t *testing.T) {
	r := testRouter()
	bad := []string{"agent_name", "agent1", "Agent-Name2", "-agent", "agent-", "agent--name", "ag ent"}
	for _, name := range bad {
		t.Run(name, func(t *testing.T) {
			out := r.Validate(name, RefAgent)
			require.False(t, out.Valid)
			assert.Equal(t, CodeInvalidNameFormat, out.Code)
		})
	}
}

func TestValidateWorkflowFormatAllowsDigits(t *testing.T) {
	cat := catalog.New(nil, []domain.WorkflowRecord{{Name: "phase2-review"}}, nil)
	r := New(cat, nil)
	assert.True(t, r.Validate("phase2-review", RefWorkflow).Valid)
}

func TestValidateWorkflowFormatRejectsUnderscore(t *testing.T) {
	r := testRouter()
	out := r.Validate("party_mode", RefWorkflow)
	require.False(t, out.Valid)
	assert.Equal(t, CodeInvalidNameFormat, out.Code)
}

func TestValidateCaseMismatch(t *testing.T) {
	r := testRouter()
	out := r.Validate("Analyst", RefAgent)
	require.False(t, out.Valid)
	assert.Equal(t, CodeCaseMismatch, out.Code)
	assert.Equal(t, []string{"analyst"}, out.Suggestions)
}

func TestValidateCaseMismatchBeatsUnknown(t *testing.T) {
	r := testRouter()
	out := r.Validate("ANALYST", RefAgent)
	assert.Equal(t, CodeCaseMismatch, out.Code)
	assert.NotEqual(t, CodeUnknownAgent, out.Code)
}

func TestValidateUnknownAgentWithSuggestion(t *testing.T) {
	r := testRouter()
	out := r.Validate("analist", RefAgent)
	require.False(t, out.Valid)
	assert.Equal(t, CodeUnknownAgent, out.Code)
	assert.Equal(t, []string{"analyst"}, out.Suggestions)
	assert.Contains(t, out.Message, "Did you mean: analyst?")
}

func TestValidateUnknownAgentNoSuggestion(t *testing.T) {
	r := testRouter()
	out := r.Validate("zzzzz", RefAgent)
	require.False(t, out.Valid)
	assert.Equal(t, CodeUnknownAgent, out.Code)
	assert.Empty(t, out.Suggestions)
}

func TestValidateUnknownWorkflowWithSuggestion(t *testing.T) {
	r := testRouter()
	out := r.Validate("party-mod", RefWorkflow)
	require.False(t, out.Valid)
	assert.Equal(t, CodeUnknownWorkflow, out.Code)
	assert.Equal(t, []string{"party-mode"}, out.Suggestions)
}

func TestValidateAgainstEmptyCatalog(t *testing.T) {
	r := New(catalog.New(nil, nil, nil), nil)

	out := r.Validate("analyst", RefAgent)
	require.False(t, out.Valid)
	assert.Equal(t, CodeUnknownAgent, out.Code)
	assert.Empty(t, out.Suggestions)
}

func TestValidateDeterministic(t *testing.T) {
	r := testRouter()
	first := r.Validate("analist", RefAgent)
	second := r.Validate("analist", RefAgent)
	assert.Equal(t, first, second)
}

// --- Fuzzy matching ---

func TestClosestMatch(t *testing.T) {
	candidates := []string{"analyst", "architect", "dev"}
	assert.Equal(t, "analyst", ClosestMatch("analist", candidates))
	assert.Equal(t, "architect", ClosestMatch("architectt", candidates))
	assert.Equal(t, "", ClosestMatch("xyz123", candidates))
}

func TestClosestMatchCaseInsensitive(t *testing.T) {
	assert.Equal(t, "analyst", ClosestMatch("ANALIST", []string{"analyst", "dev"}))
}

func TestClosestMatchEmptyCandidates(t *testing.T) {
	assert.Equal(t, "", ClosestMatch("anything", nil))
}

func TestClosestMatchTieBreakFirstWins(t *testing.T) {
	// Identical candidates: the first in catalog order is kept.
	got := ClosestMatch("analist", []string{"analyst", "analyst"})
	assert.Equal(t, "analyst", got)
}
