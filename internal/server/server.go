// Package server wires the inbound HTTP adapters: gin router, middleware,
// REST controllers, and the GraphQL endpoint.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"hexago/internal/auth"
	"hexago/internal/config"
	"hexago/internal/graph"
	"hexago/internal/logger"
	"hexago/internal/service"
)

// Deps are the concrete adapters the server routes requests to. They are
// passed in explicitly at process start; there is no global registry.
type Deps struct {
	Users  *service.UserService
	Todos  *service.TodoService
	Movies *service.MovieService
	Auth   auth.Authenticator
	Issuer *auth.TokenIssuer
}

// Server is the HTTP server for the API.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
}

// New builds the router, registers middleware and routes, and returns the
// server ready to run.
func New(cfg *config.Config, deps Deps) *Server {
	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		failure(c, fmt.Errorf("panic recovered: %v", recovered))
	}))
	router.Use(logger.Middleware)
	router.Use(otelgin.Middleware("hexago"))
	router.Use(sessions.Sessions("hexago_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	prom := ginprometheus.NewPrometheus("gin")
	prom.Use(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hexagonal architecture API"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := RequireAuth(deps.Issuer)
	NewUserController(deps.Users).Register(router, authRequired)
	NewTodoController(deps.Todos).Register(router)
	NewMovieController(deps.Movies).Register(router, authRequired)
	NewAuthController(deps.Auth, deps.Issuer, cfg.FrontRedirectURI).Register(router)

	router.POST("/graphql", gin.WrapH(graph.NewHandler(deps.Todos)))

	return &Server{cfg: cfg, router: router}
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the configured address.
func (s *Server) Run() error {
	logger.Log.Info("starting HTTP server")
	return s.router.Run(s.cfg.Addr())
}
