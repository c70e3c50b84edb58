// Package mcp implements a Model Context Protocol stdio server exposing the
// code analysis engine as tools.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
)

// maxLineBytes bounds a single JSON-RPC message; submitted code travels
// inside one line.
const maxLineBytes = 8 << 20

// Server is an MCP stdio server. It reads JSON-RPC requests from r and
// writes JSON-RPC responses to w. Calls are dispatched to registered tools.
type Server struct {
	tools    []toolDef
	analyzer *analyzer.Analyzer
	log      zerolog.Logger
	version  string
}

// toolDef describes a registered MCP tool.
type toolDef struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     toolHandler
}

// toolHandler is the function signature for MCP tool handlers.
type toolHandler func(ctx context.Context, args json.RawMessage) (any, error)

// jsonrpcRequest is a JSON-RPC 2.0 request message.
type jsonrpcRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

// jsonrpcResponse is a JSON-RPC 2.0 response message.
type jsonrpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Result  any              `json:"result,omitempty"`
	Error   *jsonrpcError    `json:"error,omitempty"`
}

// jsonrpcError represents a JSON-RPC 2.0 error object.
type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toolsCallParams is the params structure for tools/call requests.
type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// toolsCallResult wraps a tool result as an MCP content response.
type toolsCallResult struct {
	Content []mcpContent `json:"content"`
	IsError bool         `json:"isError"`
}

// mcpContent is a single content item in an MCP tool response.
type mcpContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// toolListEntry is the shape of a single tool in a tools/list response.
type toolListEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// NewServer constructs a Server backed by a. Logs go to log, never to the
// protocol stream.
func NewServer(a *analyzer.Analyzer, log zerolog.Logger, version string) *Server {
	s := &Server{
		analyzer: a,
		log:      log,
		version:  version,
	}
	addTools(s)
	return s
}

// registerTool appends a toolDef to s.tools.
func (s *Server) registerTool(def toolDef) {
	s.tools = append(s.tools, def)
}

// Run blocks, reading JSON-RPC 2.0 messages from r and writing responses to w,
// until ctx is cancelled or r returns EOF. Returns nil on clean shutdown,
// or a non-nil error for unexpected I/O failures.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		for scanner.Scan() {
			select {
			case lineCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- err
		}
		close(lineCh)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			return fmt.Errorf("reading request: %w", err)
		case line, ok := <-lineCh:
			if !ok {
				// EOF: clean shutdown
				return nil
			}
			if err := s.handleLine(ctx, line, bw); err != nil {
				return err
			}
		}
	}
}

// handleLine processes a single JSON-RPC line and writes the response.
func (s *Server) handleLine(ctx context.Context, line string, bw *bufio.Writer) error {
	var req jsonrpcRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		s.log.Debug().Err(err).Msg("malformed request")
		return s.writeError(bw, nil, -32700, "Parse error")
	}

	// Notifications (no id) get no response.
	if req.ID == nil {
		s.log.Debug().Str("method", req.Method).Msg("notification")
		return nil
	}

	resp := jsonrpcResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = map[string]any{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    "codecommenter",
				"version": s.version,
			},
		}

	case "tools/list":
		entries := make([]toolListEntry, 0, len(s.tools))
		for _, t := range s.tools {
			entries = append(entries, toolListEntry{
				Name:        t.Name,
				Description: t.Description,
				InputSchema: t.InputSchema,
			})
		}
		resp.Result = map[string]any{"tools": entries}

	case "tools/call":
		var params toolsCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			resp.Error = &jsonrpcError{Code: -32602, Message: "Invalid params"}
			break
		}
		resp.Result = s.callTool(ctx, params)

	default:
		resp.Error = &jsonrpcError{Code: -32601, Message: "Method not found"}
	}

	return s.writeResponse(bw, resp)
}

// callTool dispatches to a registered tool. Tool failures are reported in
// the result, not as JSON-RPC errors.
func (s *Server) callTool(ctx context.Context, params toolsCallParams) toolsCallResult {
	var found *toolDef
	for i := range s.tools {
		if s.tools[i].Name == params.Name {
			found = &s.tools[i]
			break
		}
	}
	if found == nil {
		return errorResult(fmt.Sprintf("unknown tool: %s", params.Name))
	}

	args := params.Arguments
	if args == nil {
		args = json.RawMessage(`{}`)
	}

	result, err := found.Handler(ctx, args)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", found.Name).Msg("tool call failed")
		return errorResult(err.Error())
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return errorResult(err.Error())
	}
	return toolsCallResult{Content: []mcpContent{{Type: "text", Text: string(resultJSON)}}}
}

func errorResult(msg string) toolsCallResult {
	return toolsCallResult{
		Content: []mcpContent{{Type: "text", Text: msg}},
		IsError: true,
	}
}

// writeError writes a JSON-RPC error response with no result.
func (s *Server) writeError(bw *bufio.Writer, id *json.RawMessage, code int, message string) error {
	resp := jsonrpcResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &jsonrpcError{Code: code, Message: message},
	}
	return s.writeResponse(bw, resp)
}

// writeResponse marshals resp as a single JSON line and flushes the writer.
func (s *Server) writeResponse(bw *bufio.Writer, resp jsonrpcResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := bw.Write(data); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
