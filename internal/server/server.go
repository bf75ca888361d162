// Package server exposes the analytics engine over HTTP. Every request
// reloads the source snapshot and recomputes from scratch; there is no cache
// and no shared mutable state between requests.
package server

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"factoryflow/internal/analyzer"
	"factoryflow/internal/charts"
	"factoryflow/internal/config"
	"factoryflow/internal/core/model"
	"factoryflow/internal/data/loader"
	"factoryflow/internal/data/normalizer"
	"factoryflow/internal/summarizer"
	"factoryflow/internal/timeline"
	"factoryflow/internal/util"
	"factoryflow/internal/workforce"
)

// Server wires the engine's read operations to their routes.
type Server struct {
	cfg        *config.Config
	loader     loader.Loader
	summarizer summarizer.Summarizer
	timeline   *timeline.Builder
	charts     *charts.Builder
	aggregator *workforce.Aggregator
	router     *gin.Engine
}

// New assembles the router. A nil summarizer is allowed; the causes endpoint
// then degrades to its fallback payload.
func New(cfg *config.Config, l loader.Loader, s summarizer.Summarizer) *Server {
	srv := &Server{
		cfg:        cfg,
		loader:     l,
		summarizer: s,
		timeline:   timeline.NewBuilder(),
		charts:     charts.NewBuilder(),
		aggregator: workforce.NewAggregator(nil),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(recovery(), cors())
	router.NoRoute(notFound)

	router.GET("/health", srv.handleHealth)
	api := router.Group("/api")
	api.GET("/processes", srv.handleProcesses)
	api.GET("/analysis", srv.handleAnalysis)
	api.GET("/flow", srv.handleFlow)
	api.GET("/charts", srv.handleCharts)
	api.GET("/employees", srv.handleEmployees)
	api.GET("/causes", srv.handleCauses)

	srv.router = router
	return srv
}

// Router exposes the assembled handler, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	util.LogInfof("Serving on %s (data dir %s)", s.cfg.Addr, s.cfg.DataDir)
	return s.router.Run(s.cfg.Addr)
}

func (s *Server) snapshot() (*model.Snapshot, error) {
	return normalizer.Load(s.loader)
}

func (s *Server) handleHealth(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "ok"})
}

// handleProcesses dumps the raw rows of every available source.
func (s *Server) handleProcesses(c *gin.Context) {
	raw, err := loader.LoadAll(s.loader)
	if err != nil {
		fail(c, err)
		return
	}

	out := gin.H{}
	if raw.Workforce != nil {
		out[model.SourceERP] = raw.Workforce
	}
	if raw.Execution != nil {
		out[model.SourceMES] = raw.Execution
	}
	if raw.Parts != nil {
		out[model.SourcePLM] = raw.Parts
	}
	respond(c, http.StatusOK, out)
}

func (s *Server) handleAnalysis(c *gin.Context) {
	snap, err := s.snapshot()
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, analyzer.Analyze(snap))
}

func (s *Server) handleFlow(c *gin.Context) {
	snap, err := s.snapshot()
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, s.timeline.Build(snap.Execution, c.Query("date")))
}

func (s *Server) handleCharts(c *gin.Context) {
	snap, err := s.snapshot()
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, s.charts.Build(snap))
}

func (s *Server) handleEmployees(c *gin.Context) {
	snap, err := s.snapshot()
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, s.aggregator.Build(snap))
}

// handleCauses runs the summarization collaborator over every non-empty
// potential-cause note. Collaborator failures surface as the fallback
// payload with HTTP 200; the dashboard renders the error inline.
func (s *Server) handleCauses(c *gin.Context) {
	snap, err := s.snapshot()
	if err != nil {
		fail(c, err)
		return
	}

	var causes []string
	for _, rec := range snap.Execution {
		if rec.Cause != "" {
			causes = append(causes, rec.Cause)
		}
	}

	if s.summarizer == nil {
		respond(c, http.StatusOK, summarizer.Fallback(errNoSummarizer))
		return
	}

	summary, err := s.summarizer.Summarize(c.Request.Context(), causes)
	if err != nil {
		util.LogWarnf("Cause summarization failed: %v", err)
		respond(c, http.StatusOK, summarizer.Fallback(err))
		return
	}
	respond(c, http.StatusOK, summary)
}

// respond writes a sonic-encoded JSON body.
func respond(c *gin.Context, status int, payload any) {
	data, err := sonic.Marshal(payload)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

func fail(c *gin.Context, err error) {
	util.LogErrorf("Request %s failed: %v", c.Request.URL.Path, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
