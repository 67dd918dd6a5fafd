package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/taiwoajasa245/divine-answers/internal/guidance"
	"github.com/taiwoajasa245/divine-answers/pkg/response"
	"github.com/taiwoajasa245/divine-answers/pkg/util"
)

const requestIDHeader = "X-Request-Id"

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", s.ServerIsWorking)
	r.Get("/healthz", s.ServerIsWorking)

	s.loadGuidanceRoutes(r)
	r.Route("/functions/v1", s.loadGuidanceRoutes)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"message": "Divine Answers relay is running"})
}

func (s *Server) loadGuidanceRoutes(router chi.Router) {
	handler := guidance.NewGuidanceHandler(s.guidance)

	router.Options("/spiritual-guidance", handler.PreflightHandler)
	router.Post("/spiritual-guidance", handler.GetGuidanceHandler)
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = util.NewRequestID()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
