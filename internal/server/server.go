package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/taiwoajasa245/divine-answers/internal/gateway"
	"github.com/taiwoajasa245/divine-answers/internal/guidance"
	"github.com/taiwoajasa245/divine-answers/pkg/config"
	"github.com/taiwoajasa245/divine-answers/pkg/logger"
)

type Server struct {
	port     string
	handler  http.Handler
	cfg      *config.Config
	log      *logger.Logger
	guidance guidance.GuidanceService
}

// NewServer constructs the relay with all dependencies injected. A nil
// gateway client is built from cfg.
func NewServer(cfg *config.Config, gw gateway.Client, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if gw == nil {
		hc := gateway.NewHTTPClient(gateway.Config{
			URL:     cfg.GatewayURL,
			APIKey:  cfg.GatewayAPIKey,
			Model:   cfg.GatewayModel,
			Timeout: cfg.GatewayTimeout,
		})
		log.Info("gateway client ready", "url", cfg.GatewayURL, "model", hc.Model())
		gw = hc
	}

	configured := cfg.ValidateRelay() == nil
	if !configured {
		log.Warn("relay started without gateway credential", "error", config.ErrMissingAPIKey)
	}

	s := &Server{
		port:     cfg.Port,
		cfg:      cfg,
		log:      log,
		guidance: guidance.NewGuidanceService(gw, guidance.DefaultPrompts(), configured, log),
	}

	s.handler = s.RegisterRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	// the gateway call dominates, leave room for it
	write := 30 * time.Second
	if s.cfg.GatewayTimeout+10*time.Second > write {
		write = s.cfg.GatewayTimeout + 10*time.Second
	}
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: write,
		IdleTimeout:  60 * time.Second,
	}
}
