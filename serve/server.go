package serve

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"iconsmith/icon"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Greeting is the body of the liveness endpoint.
const Greeting = "Hello from iconsmith!"

const maxRequestBytes = 1 << 16

// outcome labels of iconsmith_requests_total
const (
	outcomeOK           = "ok"
	outcomeBadRequest   = "bad_request"
	outcomeFetchError   = "fetch_error"
	outcomeInvalidImage = "invalid_image"
	outcomeInternal     = "internal"
)

// ProcessRequest is the body of POST /process.
type ProcessRequest struct {
	ImageURL string `json:"image_url"`
	Team     string `json:"team"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server recolors remote icons over HTTP.
type Server struct {
	fetcher  Fetcher
	encoder  *icon.Encoder
	opts     icon.Options
	registry *prometheus.Registry
	metrics  *metrics
}

func NewServer(fetcher Fetcher, encoder *icon.Encoder, opts icon.Options) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		fetcher:  fetcher,
		encoder:  encoder,
		opts:     opts,
		registry: reg,
		metrics:  newMetrics(reg),
	}
}

// Handler routes the liveness, processing and metrics endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(Greeting))
	})
	r.Post("/process", s.Process)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// Process handles POST /process. It answers with the base64 encoded PNG
// variants of the requested icon, in pipeline order.
func (s *Server) Process(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := slog.Default().With("request_id", middleware.GetReqID(r.Context()))

	var body ProcessRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&body); err != nil {
		s.fail(w, logger, "unknown", outcomeBadRequest, http.StatusBadRequest, "invalid request body", err)
		return
	}

	faction, known := icon.ParseFaction(body.Team)
	team := faction.String()
	logger = logger.With("team", body.Team, "url", body.ImageURL)

	switch {
	case body.ImageURL == "":
		s.fail(w, logger, team, outcomeBadRequest, http.StatusBadRequest, "image_url is required", nil)
		return
	case body.Team == "":
		s.fail(w, logger, team, outcomeBadRequest, http.StatusBadRequest, "team is required", nil)
		return
	case !known && s.opts.Strict:
		s.fail(w, logger, team, outcomeBadRequest, http.StatusBadRequest, "unsupported team", icon.ErrUnsupportedFaction)
		return
	}

	data, err := s.fetcher.Fetch(r.Context(), body.ImageURL)
	if err != nil {
		s.fail(w, logger, team, outcomeFetchError, http.StatusBadGateway, "could not fetch image", err)
		return
	}
	s.metrics.fetchBytes.Observe(float64(len(data)))

	img, err := icon.Decode(data)
	if err != nil {
		s.fail(w, logger, team, outcomeInvalidImage, http.StatusUnprocessableEntity, "could not decode image", err)
		return
	}

	variants, err := icon.Process(img, body.Team, s.opts)
	if err != nil {
		switch {
		case errors.Is(err, icon.ErrDegenerateContent):
			s.fail(w, logger, team, outcomeInvalidImage, http.StatusUnprocessableEntity, "image has no visible content", err)
		case errors.Is(err, icon.ErrUnsupportedFaction):
			s.fail(w, logger, team, outcomeBadRequest, http.StatusBadRequest, "unsupported team", err)
		default:
			s.fail(w, logger, team, outcomeInternal, http.StatusInternalServerError, "could not process image", err)
		}
		return
	}

	encoded, err := s.encoder.EncodeAll(variants)
	if err != nil {
		s.fail(w, logger, team, outcomeInternal, http.StatusInternalServerError, "could not encode image", err)
		return
	}

	out := make([]string, 0, len(encoded))
	for _, b := range encoded {
		out = append(out, base64.StdEncoding.EncodeToString(b))
	}

	elapsed := time.Since(start)
	s.metrics.requests.WithLabelValues(team, outcomeOK).Inc()
	s.metrics.duration.WithLabelValues(team).Observe(elapsed.Seconds())
	logger.Info("processed icon", "variants", len(out), "elapsed", elapsed)

	writeJSON(w, logger, http.StatusOK, out)
}

func (s *Server) fail(w http.ResponseWriter, logger *slog.Logger, team, outcome string, status int, msg string, err error) {
	s.metrics.requests.WithLabelValues(team, outcome).Inc()

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, msg, "status", status, "error", err)

	writeJSON(w, logger, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", "error", err)
	}
}
