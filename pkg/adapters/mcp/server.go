package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aretw0/lcsviz"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// FrameURI is the resource exposing the current frame.
const FrameURI = "lcsviz://frame"

// FrameResponse wraps a frame with a progress label for tool callers.
type FrameResponse struct {
	Frame    domain.Frame `json:"frame" jsonschema_description:"Full snapshot of the table, highlight and playback position"`
	Progress string       `json:"progress" jsonschema_description:"Human readable progress, e.g. Step 3 of 42"`
}

// SequencesResponse reports whether set_sequences changed the input pair.
type SequencesResponse struct {
	Changed bool         `json:"changed" jsonschema_description:"False when both sequences were already in place"`
	Frame   domain.Frame `json:"frame" jsonschema_description:"Frame after the change"`
}

// ComputeResponse is the outcome of a stateless compute_lcs call.
type ComputeResponse struct {
	A      string             `json:"a"`
	B      string             `json:"b"`
	LCS    string             `json:"lcs" jsonschema_description:"One longest common subsequence"`
	Length int                `json:"length"`
	Steps  int                `json:"steps" jsonschema_description:"Number of fill events"`
	Path   []domain.PathEntry `json:"path" jsonschema_description:"Matched cells head-to-tail"`
	Table  domain.Table       `json:"table" jsonschema_description:"DP table, border row and column included"`
}

// Visualizer is the subset of *lcsviz.Visualizer the MCP tools drive.
type Visualizer interface {
	Frame() domain.Frame
	SetSequences(ctx context.Context, a, b string) bool
	StepForward(ctx context.Context) domain.Frame
	StepBackward(ctx context.Context) domain.Frame
	Reset(ctx context.Context) domain.Frame
}

// Server wraps a Visualizer and exposes it as an MCP Server.
type Server struct {
	viz       Visualizer
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(viz Visualizer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		viz:       viz,
		logger:    logger,
		mcpServer: server.NewMCPServer("lcsviz-mcp", strings.TrimSpace(lcsviz.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and shuts it down
// when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: compute_lcs
	s.mcpServer.AddTool(mcp.NewTool("compute_lcs",
		mcp.WithDescription(fmt.Sprintf("Compute the LCS table, fill timeline and path for two sequences of at most %d characters without touching the shared visualizer. Case-sensitive.", domain.DefaultMaxLength)),
		mcp.WithString("first", mcp.Required(), mcp.Description("First sequence")),
		mcp.WithString("second", mcp.Required(), mcp.Description("Second sequence")),
		mcp.WithOutputSchema[ComputeResponse](),
	), mcp.NewStructuredToolHandler(s.handleCompute))

	// TOOL: set_sequences
	s.mcpServer.AddTool(mcp.NewTool("set_sequences",
		mcp.WithDescription("Replace the visualized input pair. Inputs are upper-cased and truncated; playback restarts from the first cell."),
		mcp.WithString("first", mcp.Required(), mcp.Description("First sequence")),
		mcp.WithString("second", mcp.Required(), mcp.Description("Second sequence")),
		mcp.WithOutputSchema[SequencesResponse](),
	), mcp.NewStructuredToolHandler(s.handleSetSequences))

	frameTools := []struct {
		name, description string
		fn                func(context.Context) domain.Frame
	}{
		{"step_forward", "Advance to the next filled cell, or reveal the path after the last one.", s.viz.StepForward},
		{"step_backward", "Hide the path, or go back to the previous filled cell.", s.viz.StepBackward},
		{"reset", "Return to the first filled cell with the path hidden.", s.viz.Reset},
		{"get_frame", "Get the current frame without changing anything.", func(context.Context) domain.Frame { return s.viz.Frame() }},
	}
	for _, t := range frameTools {
		s.mcpServer.AddTool(mcp.NewTool(t.name,
			mcp.WithDescription(t.description),
			mcp.WithOutputSchema[FrameResponse](),
		), mcp.NewStructuredToolHandler(s.frameHandler(t.fn)))
	}
}

func (s *Server) handleCompute(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ComputeResponse, error) {
	first, second, err := sequenceArgs(args)
	if err != nil {
		return ComputeResponse{}, err
	}
	for _, seq := range []string{first, second} {
		if n := utf8.RuneCountInString(seq); n > domain.DefaultMaxLength {
			return ComputeResponse{}, fmt.Errorf("%w: %d characters, at most %d", domain.ErrSequenceTooLong, n, domain.DefaultMaxLength)
		}
	}

	res := lcsviz.Compute(first, second)
	return ComputeResponse{
		A:      res.A,
		B:      res.B,
		LCS:    res.LCS,
		Length: res.Length(),
		Steps:  res.Steps(),
		Path:   res.Path,
		Table:  res.Table,
	}, nil
}

func (s *Server) handleSetSequences(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SequencesResponse, error) {
	first, second, err := sequenceArgs(args)
	if err != nil {
		return SequencesResponse{}, err
	}

	changed := s.viz.SetSequences(ctx, first, second)
	s.logger.Debug("MCP set_sequences", "changed", changed)
	return SequencesResponse{Changed: changed, Frame: s.viz.Frame()}, nil
}

func (s *Server) frameHandler(fn func(context.Context) domain.Frame) func(context.Context, mcp.CallToolRequest, map[string]interface{}) (FrameResponse, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FrameResponse, error) {
		f := fn(ctx)
		return FrameResponse{Frame: f, Progress: f.Progress.String()}, nil
	}
}

func sequenceArgs(args map[string]interface{}) (string, string, error) {
	first, ok := args["first"].(string)
	if !ok {
		return "", "", errors.New("missing argument: first")
	}
	second, ok := args["second"].(string)
	if !ok {
		return "", "", errors.New("missing argument: second")
	}
	return first, second, nil
}

func (s *Server) registerResources() {
	// EXPOSE: lcsviz://frame
	s.mcpServer.AddResource(mcp.NewResource(FrameURI, "Current Frame",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.viz.Frame())
		if err != nil {
			return nil, fmt.Errorf("failed to encode frame: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      FrameURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
