package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soyeahso/roster/internal/logging"
)

const agentURIPrefix = "roster://agent/"

// Agent definitions double as MCP resources under roster://agent/{name}.

func (s *Server) handleListResources(req JSONRPCRequest) {
	agents := s.cat.Agents()
	resources := make([]Resource, 0, len(agents))
	for _, a := range agents {
		displayName := a.DisplayName
		if displayName == "" {
			displayName = a.Name
		}
		resources = append(resources, Resource{
			URI:         agentURIPrefix + a.Name,
			Name:        fmt.Sprintf("Roster Agent: %s", displayName),
			Description: a.Title,
			MimeType:    "text/markdown",
		})
	}
	s.sendResponse(req.ID, ListResourcesResult{Resources: resources})
}

func (s *Server) handleReadResource(req JSONRPCRequest, reqLog *logging.Logger) {
	var params ReadResourceParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		reqLog.Error().Err(err).Msg("invalid params")
		s.sendError(req.ID, codeInvalidParams, "Invalid params", err.Error())
		return
	}

	reqLog.Info().Str("uri", params.URI).Msg("reading resource")

	if !strings.HasPrefix(params.URI, agentURIPrefix) {
		s.sendError(req.ID, codeInvalidParams, "Invalid URI",
			fmt.Sprintf("URI must start with %s", agentURIPrefix))
		return
	}

	name := strings.TrimPrefix(params.URI, agentURIPrefix)
	if _, ok := s.cat.FindAgent(name); !ok {
		s.sendError(req.ID, codeInvalidParams, "Agent not found",
			fmt.Sprintf("Agent '%s' not found", name))
		return
	}

	result := s.exec.Execute(name)
	if !result.Success {
		s.sendError(req.ID, codeInvalidParams, "Agent not readable", result.Error)
		return
	}

	s.sendResponse(req.ID, ResourceContents{
		Contents: []ResourceContent{
			{URI: params.URI, MimeType: "text/markdown", Text: result.Content},
		},
	})
}
