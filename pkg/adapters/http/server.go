package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/lcsviz"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/aretw0/lcsviz/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Visualizer is the subset of *lcsviz.Visualizer the HTTP surface drives.
type Visualizer interface {
	Frame() domain.Frame
	Result() domain.Result
	SetSequences(ctx context.Context, a, b string) bool
	StepForward(ctx context.Context) domain.Frame
	StepBackward(ctx context.Context) domain.Frame
	TogglePlay(ctx context.Context) domain.Frame
	Play(ctx context.Context) domain.Frame
	Pause(ctx context.Context) domain.Frame
	Reset(ctx context.Context) domain.Frame
	SetDelay(ctx context.Context, d time.Duration) time.Duration
}

var _ Visualizer = (*lcsviz.Visualizer)(nil)

// Server exposes a Visualizer over HTTP.
type Server struct {
	Viz      Visualizer
	Frames   ports.FrameSource
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithFrameSource enables GET /events, streaming every frame as SSE.
func WithFrameSource(src ports.FrameSource) Option {
	return func(s *Server) {
		s.Frames = src
	}
}

// WithGatherer enables GET /metrics for the given registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// SequencesRequest is the body of PUT /sequences.
type SequencesRequest struct {
	First  *string `json:"first"`
	Second *string `json:"second"`
}

// SequencesResponse reports whether the input pair changed.
type SequencesResponse struct {
	Changed bool         `json:"changed"`
	Frame   domain.Frame `json:"frame"`
}

// DelayRequest is the body of PUT /delay.
type DelayRequest struct {
	DelayMS *int64 `json:"delay_ms"`
}

// NewHandler creates a new HTTP handler for the visualizer.
func NewHandler(viz Visualizer, opts ...Option) http.Handler {
	s := &Server{
		Viz:    viz,
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/frame", s.GetFrame)
	r.Get("/result", s.GetResult)
	r.Put("/sequences", s.PutSequences)
	r.Put("/delay", s.PutDelay)
	r.Route("/step", func(r chi.Router) {
		r.Post("/forward", s.frameAction(viz.StepForward))
		r.Post("/backward", s.frameAction(viz.StepBackward))
	})
	r.Post("/play", s.frameAction(viz.Play))
	r.Post("/pause", s.frameAction(viz.Pause))
	r.Post("/toggle", s.frameAction(viz.TogglePlay))
	r.Post("/reset", s.frameAction(viz.Reset))

	if s.Frames != nil {
		r.Get("/events", s.SubscribeEvents)
	}
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":     "lcsviz-http",
		"version": strings.TrimSpace(lcsviz.Version),
	})
}

// GetFrame handles the GET /frame request.
func (s *Server) GetFrame(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Viz.Frame())
}

// GetResult handles the GET /result request.
func (s *Server) GetResult(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Viz.Result())
}

// PutSequences handles the PUT /sequences request. A missing field keeps
// the current sequence.
func (s *Server) PutSequences(w http.ResponseWriter, r *http.Request) {
	var body SequencesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PutSequences: Invalid request body", "error", err)
		return
	}
	if body.First == nil && body.Second == nil {
		http.Error(w, "Expected at least one of first, second", http.StatusBadRequest)
		return
	}

	res := s.Viz.Result()
	a, b := res.A, res.B
	if body.First != nil {
		a = *body.First
	}
	if body.Second != nil {
		b = *body.Second
	}

	changed := s.Viz.SetSequences(r.Context(), a, b)
	s.writeJSON(w, SequencesResponse{Changed: changed, Frame: s.Viz.Frame()})
}

// PutDelay handles the PUT /delay request. Out-of-range values are clamped.
func (s *Server) PutDelay(w http.ResponseWriter, r *http.Request) {
	var body DelayRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PutDelay: Invalid request body", "error", err)
		return
	}
	if body.DelayMS == nil {
		http.Error(w, "Missing delay_ms", http.StatusBadRequest)
		return
	}

	s.Viz.SetDelay(r.Context(), time.Duration(*body.DelayMS)*time.Millisecond)
	s.writeJSON(w, s.Viz.Frame())
}

func (s *Server) frameAction(fn func(context.Context) domain.Frame) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, fn(r.Context()))
	}
}

// SubscribeEvents handles the GET /events request (SSE). The current frame
// is sent right after the ping, then every published frame.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	frames, release, err := s.Frames.Subscribe(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Subscribe error: %v", err), http.StatusInternalServerError)
		return
	}
	defer release()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	if err := writeFrameEvent(w, s.Viz.Frame()); err != nil {
		s.Logger.Error("SSE: frame encode failed", "error", err)
		return
	}
	flusher.Flush()
	s.Logger.Info("SSE: Client subscribed")

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE Client Disconnected")
			return
		case frame, ok := <-frames:
			if !ok {
				return
			}
			if err := writeFrameEvent(w, frame); err != nil {
				s.Logger.Error("SSE: frame encode failed", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

func writeFrameEvent(w io.Writer, frame domain.Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: frame\ndata: %s\n\n", frame.Seq, data)
	return err
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}
