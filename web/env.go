package web

import (
	"errors"
	"net/http"
	"ovis/cardmap/config"
	"ovis/cardmap/topology"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/unrolled/render"
)

// GatewayMissingMessage is the fixed body served when no consul gateway was
// configured. The frontend matches on it verbatim.
const GatewayMissingMessage = "Unable to retrieve configuration of consul service"

type Environ struct {
	render   *render.Render
	logger   zerolog.Logger
	router   *mux.Router
	topology *topology.Service
}

func New(cfg *config.Config, logger zerolog.Logger, service *topology.Service) http.Handler {
	env := &Environ{
		render: render.New(render.Options{
			IndentJSON:    true,
			IsDevelopment: cfg.Web.Debug,
		}),
		logger:   logger,
		router:   mux.NewRouter(),
		topology: service,
	}

	env.router.HandleFunc("/api/flps", env.FLPList).Methods("GET").Name("flp-list")
	env.router.HandleFunc("/api/crus", env.CRUList).Methods("GET").Name("cru-list")
	env.router.HandleFunc("/api/crus/config", env.CRUConfigList).Methods("GET").Name("cru-config-list")
	env.router.HandleFunc("/api/crus/config", env.CRUConfigSave).Methods("POST").Name("cru-config-save")
	env.router.HandleFunc("/api/status", env.Status).Methods("GET").Name("status")

	return env.logRequest(env)
}

func (env *Environ) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	env.router.ServeHTTP(rw, req)
}

// error renders service failures. A missing gateway is a bad-gateway
// condition with a fixed message, everything else surfaces as-is.
func (env *Environ) error(rw http.ResponseWriter, req *http.Request, err error) {
	if errors.Is(err, topology.ErrNotConfigured) {
		env.message(rw, http.StatusBadGateway, GatewayMissingMessage)
		return
	}
	env.logger.Warn().Err(err).Str("url", req.URL.String()).Msg("request failed")
	env.message(rw, http.StatusInternalServerError, err.Error())
}

func (env *Environ) message(rw http.ResponseWriter, status int, text string) {
	body := struct {
		Message string `json:"message"`
	}{text}
	if err := env.render.JSON(rw, status, body); err != nil {
		http.Error(rw, "failed to render response", http.StatusInternalServerError)
	}
}

func (env *Environ) logRequest(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		start := time.Now()
		handler.ServeHTTP(rw, req)
		env.logger.Info().
			Str("id", uuid.New().String()).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
