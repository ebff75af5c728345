// Package mcp provides the JSON-RPC server exposing the keyword tools over stdio.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/indexer"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/keywords"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/tags"
)

const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Message represents a JSON-RPC 2.0 message.
type Message struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method,omitempty"`
	Params  any       `json:"params,omitempty"`
	ID      any       `json:"id,omitempty"`
	Result  any       `json:"result,omitempty"`
	Error   *RPCError `json:"error,omitempty"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ToolCallParams struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}

// Options tunes tool defaults
type Options struct {
	SearchLimit int
}

// Server wraps all dependencies required to serve MCP requests.
type Server struct {
	keywords *keywords.Cache
	tags     *tags.Collection
	indexer  *indexer.Indexer
	opts     Options
	logger   *zap.Logger
	writer   io.Writer
}

// NewServer constructs a Server.
func NewServer(kw *keywords.Cache, collection *tags.Collection, idx *indexer.Indexer, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 10
	}
	return &Server{
		keywords: kw,
		tags:     collection,
		indexer:  idx,
		opts:     opts,
		logger:   logger,
	}
}

// Run processes messages from r and writes responses to w until r is
// exhausted or the context is done. Messages are handled one at a time.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	s.writer = w
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		s.logger.Debug("received", zap.String("message", line))

		var msg Message
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			s.logger.Warn("failed to parse message", zap.Error(err))
			s.sendError(codeParseError, "Parse error", nil)
			continue
		}

		s.handleMessage(ctx, msg)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

func (s *Server) handleMessage(ctx context.Context, msg Message) {
	s.logger.Debug("handling method", zap.String("method", msg.Method))

	switch msg.Method {
	case "initialize":
		s.handleInitialize(msg)
	case "initialized", "notifications/initialized":
		s.logger.Info("client initialized")
	case "tools/list":
		s.handleToolsList(msg)
	case "tools/call":
		s.handleToolsCall(ctx, msg)
	case "notifications/cancelled":
		s.logger.Info("request cancelled")
	default:
		// notifications never get a reply
		if msg.ID == nil {
			s.logger.Debug("ignoring notification", zap.String("method", msg.Method))
			return
		}
		s.sendError(codeMethodNotFound, "Method not found", msg.ID)
	}
}

func (s *Server) handleInitialize(msg Message) {
	response := Message{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result: map[string]any{
			"protocolVersion": "2024-11-05",
			"serverInfo": map[string]any{
				"name":    "kwmcp",
				"version": "1.0.0",
			},
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
		},
	}
	s.sendResponse(response)
}

func (s *Server) handleToolsList(msg Message) {
	response := Message{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result: map[string]any{
			"tools": toolDefinitions(),
		},
	}
	s.sendResponse(response)
}

func (s *Server) handleToolsCall(ctx context.Context, msg Message) {
	params, err := UnmarshalArgs[ToolCallParams](msg.Params)
	if err != nil || params.Name == "" {
		s.sendError(codeInvalidParams, "Invalid params", msg.ID)
		return
	}

	s.logger.Info("tool call", zap.String("tool", params.Name))

	handler, ok := s.toolHandlers()[params.Name]
	if !ok {
		s.sendError(codeMethodNotFound, "Tool not found", msg.ID)
		return
	}

	response := Message{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result:  handler(ctx, params.Arguments),
	}
	s.sendResponse(response)
}

func (s *Server) sendResponse(response Message) {
	data, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("failed to marshal response", zap.Error(err))
		return
	}

	if s.writer == nil {
		s.logger.Warn("no writer configured, dropping response", zap.ByteString("response", data))
		return
	}

	if _, err := fmt.Fprintln(s.writer, string(data)); err != nil {
		s.logger.Error("failed to write response", zap.Error(err))
		return
	}
	s.logger.Debug("sent", zap.ByteString("response", data))
}

func (s *Server) sendError(code int, message string, id any) {
	response := Message{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
		},
	}
	s.sendResponse(response)
}
