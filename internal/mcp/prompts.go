package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soyeahso/roster/internal/logging"
)

const promptPrefix = "roster-"

// Agents are also exposed as MCP prompts so clients with prompt pickers
// can load a persona without going through the tool.

func (s *Server) handleListPrompts(req JSONRPCRequest) {
	agents := s.cat.Agents()
	prompts := make([]Prompt, 0, len(agents))
	for _, a := range agents {
		name := a.Name
		if !strings.HasPrefix(name, promptPrefix) {
			name = promptPrefix + name
		}
		displayName := a.DisplayName
		if displayName == "" {
			displayName = a.Name
		}
		title := a.Title
		if title == "" {
			title = "Roster Agent"
		}
		prompts = append(prompts, Prompt{
			Name:        name,
			Description: fmt.Sprintf("%s - %s", displayName, title),
		})
	}
	s.sendResponse(req.ID, ListPromptsResult{Prompts: prompts})
}

func (s *Server) handleGetPrompt(req JSONRPCRequest, reqLog *logging.Logger) {
	var params GetPromptParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		reqLog.Error().Err(err).Msg("invalid params")
		s.sendError(req.ID, codeInvalidParams, "Invalid params", err.Error())
		return
	}

	reqLog.Info().Str("prompt", params.Name).Msg("loading prompt")

	// Accept both "analyst" and "roster-analyst". The manifest name wins
	// when it matches exactly, so roster-master resolves to itself.
	agent, ok := s.cat.FindAgent(params.Name)
	if !ok {
		agent, ok = s.cat.FindAgent(strings.TrimPrefix(params.Name, promptPrefix))
	}
	if !ok {
		errMsg := fmt.Sprintf("Agent '%s' not found. Available agents: %s",
			params.Name, strings.Join(s.cat.AgentNames(), ", "))
		reqLog.Warn().Str("prompt", params.Name).Msg("prompt not found")
		s.sendResponse(req.ID, GetPromptResult{
			Description: "Error: Agent not found",
			Messages: []PromptMessage{
				{Role: "user", Content: ContentItem{Type: "text", Text: errMsg}},
			},
		})
		return
	}

	result := s.exec.Execute(agent.Name)
	if !result.Success {
		s.sendResponse(req.ID, GetPromptResult{
			Description: "Error loading agent",
			Messages: []PromptMessage{
				{Role: "user", Content: ContentItem{Type: "text", Text: result.Error}},
			},
		})
		return
	}

	s.sendResponse(req.ID, GetPromptResult{
		Description: fmt.Sprintf("Roster Agent: %s - %s", result.DisplayName, agent.Title),
		Messages: []PromptMessage{
			{Role: "user", Content: ContentItem{Type: "text", Text: result.Content}},
		},
	})
}
