// Package mcp implements a Model Context Protocol server over stdio:
// newline-delimited JSON-RPC 2.0 requests on stdin, responses on stdout.
// Stdout carries the protocol exclusively, so all logging goes elsewhere.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/soyeahso/roster/internal/catalog"
	"github.com/soyeahso/roster/internal/logging"
	"github.com/soyeahso/roster/internal/tool"
	"github.com/soyeahso/roster/internal/version"
)

const protocolVersion = "2024-11-05"

// Server dispatches MCP requests to the unified tool. Reader and writer
// are injectable so tests can drive the loop without real pipes.
type Server struct {
	exec *tool.Executor
	cat  *catalog.Catalog
	name string
	in   io.Reader
	out  io.Writer
	log  *logging.Logger
}

// NewServer creates an MCP server. name is reported in serverInfo.
func NewServer(exec *tool.Executor, cat *catalog.Catalog, name string, in io.Reader, out io.Writer, log *logging.Logger) *Server {
	if log == nil {
		log = logging.New(nil, "silent")
	}
	return &Server{
		exec: exec,
		cat:  cat,
		name: name,
		in:   in,
		out:  out,
		log:  log.Sub("mcp"),
	}
}

// Run reads requests line by line until EOF. Each line is one JSON-RPC
// message; blank lines are skipped.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	s.log.Info().Msg("listening for requests on stdin")

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		s.handleLine(line)
	}

	if err := scanner.Err(); err != nil {
		s.log.Error().Err(err).Msg("stdin read failed")
		return err
	}
	s.log.Info().Msg("stdin closed, shutting down")
	return nil
}

func (s *Server) handleLine(line string) {
	reqLog := s.log.WithRequest(uuid.NewString())

	var req JSONRPCRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		reqLog.Error().Err(err).Msg("parse error")
		s.sendError(nil, codeParseError, "Parse error", err.Error())
		return
	}

	reqLog.Debug().Str("method", req.Method).Msg("handling request")

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "tools/list":
		s.handleListTools(req)
	case "tools/call":
		s.handleCallTool(req, reqLog)
	case "prompts/list":
		s.handleListPrompts(req)
	case "prompts/get":
		s.handleGetPrompt(req, reqLog)
	case "resources/list":
		s.handleListResources(req)
	case "resources/read":
		s.handleReadResource(req, reqLog)
	case "notifications/initialized":
		reqLog.Debug().Msg("client initialized")
	default:
		reqLog.Warn().Str("method", req.Method).Msg("unknown method")
		s.sendError(req.ID, codeMethodNotFound, "Method not found",
			fmt.Sprintf("Unknown method: %s", req.Method))
	}
}

func (s *Server) handleInitialize(req JSONRPCRequest) {
	s.sendResponse(req.ID, InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: Capabilities{
			Prompts:   map[string]interface{}{},
			Resources: map[string]interface{}{},
			Tools:     map[string]interface{}{},
		},
		ServerInfo: ServerInfo{
			Name:    s.name,
			Version: version.Version,
		},
	})
}

func (s *Server) handleListTools(req JSONRPCRequest) {
	s.sendResponse(req.ID, ListToolsResult{
		Tools: []Tool{
			{
				Name:        "roster",
				Description: toolDescription,
				InputSchema: InputSchema{
					Type: "object",
					Properties: map[string]Property{
						"command": {
							Type:        "string",
							Description: "Command to execute: empty string for default, 'agent-name' for agents, '*workflow-name' for workflows",
						},
					},
					Required: []string{"command"},
				},
			},
		},
	})
}

func (s *Server) handleCallTool(req JSONRPCRequest, reqLog *logging.Logger) {
	var params CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		reqLog.Error().Err(err).Msg("invalid params")
		s.sendError(req.ID, codeInvalidParams, "Invalid params", err.Error())
		return
	}

	if params.Name != "roster" {
		s.sendToolError(req.ID,
			fmt.Sprintf("Error: Unknown tool '%s'. Only 'roster' tool is available.", params.Name))
		return
	}

	command, _ := params.Arguments["command"].(string)
	reqLog.Info().Str("command", command).Msg("executing roster tool")

	result := s.exec.Execute(command)

	if !result.Success {
		reqLog.Warn().Str("code", result.ErrorCode).Msg("tool returned error")
		s.sendToolError(req.ID, result.Error)
		return
	}

	s.sendToolResult(req.ID, renderResult(result))
}

func (s *Server) sendToolResult(id interface{}, text string) {
	s.sendResponse(id, ToolResult{
		Content: []ContentItem{{Type: "text", Text: text}},
	})
}

func (s *Server) sendToolError(id interface{}, text string) {
	s.sendResponse(id, ToolResult{
		Content: []ContentItem{{Type: "text", Text: text}},
		IsError: true,
	})
}

func (s *Server) sendResponse(id interface{}, result interface{}) {
	s.write(JSONRPCResponse{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) sendError(id interface{}, code int, message string, data interface{}) {
	s.write(JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &RPCError{Code: code, Message: message, Data: data},
	})
}

func (s *Server) write(resp JSONRPCResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Error().Err(err).Msg("marshal response failed")
		return
	}
	fmt.Fprintln(s.out, string(data))
}
