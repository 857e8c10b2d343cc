package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/health-trends/docs"
	"github.com/blaisecz/health-trends/internal/api/handler"
	"github.com/blaisecz/health-trends/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	recordHandler    *handler.RecordHandler
	analyticsHandler *handler.AnalyticsHandler
	summaryHandler   *handler.SummaryHandler
	logger           *zap.Logger
}

func NewRouter(recordHandler *handler.RecordHandler, analyticsHandler *handler.AnalyticsHandler, summaryHandler *handler.SummaryHandler, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		recordHandler:    recordHandler,
		analyticsHandler: analyticsHandler,
		summaryHandler:   summaryHandler,
		logger:           logger.Named("http"),
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Records
		r.Route("/records", func(r chi.Router) {
			r.Post("/", rt.recordHandler.Ingest)
			r.Get("/", rt.recordHandler.List)
		})

		// Collection-wide reports
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/trends", rt.analyticsHandler.Trends)
			r.Get("/trajectories", rt.analyticsHandler.Trajectories)
			r.Get("/seasonal", rt.analyticsHandler.Seasonal)
			r.Get("/risk", rt.analyticsHandler.Risk)
		})
		r.Route("/alerts", func(r chi.Router) {
			r.Get("/medication", rt.analyticsHandler.Medication)
			r.Get("/sleep", rt.analyticsHandler.Sleep)
			r.Get("/anomalies", rt.analyticsHandler.Anomalies)
		})

		// Participants
		r.Route("/participants", func(r chi.Router) {
			r.Get("/", rt.recordHandler.Participants)
			r.Get("/{participantId}/timeline", rt.analyticsHandler.Timeline)
			r.Get("/{participantId}/report", rt.analyticsHandler.Report)
			r.Get("/{participantId}/summary", rt.summaryHandler.Get)
		})
	})

	return r
}
