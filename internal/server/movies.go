package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hexago/internal/service"
)

// MovieController serves the authenticated read-only /movies routes.
type MovieController struct {
	service *service.MovieService
}

// NewMovieController returns a controller backed by svc.
func NewMovieController(svc *service.MovieService) *MovieController {
	return &MovieController{service: svc}
}

// Register attaches the movie routes to router, gated behind authRequired.
func (m *MovieController) Register(router gin.IRouter, authRequired gin.HandlerFunc) {
	movies := router.Group("/movies").Use(authRequired)
	{
		movies.GET("/search/:query", m.search)
		movies.GET("/popular", m.popular)
		movies.GET("/:id", m.get)
	}
}

func (m *MovieController) search(c *gin.Context) {
	movies, err := m.service.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (m *MovieController) popular(c *gin.Context) {
	movies, err := m.service.Popular(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (m *MovieController) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		validationFailed(c, err)
		return
	}

	movie, err := m.service.Get(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	if movie == nil {
		notFound(c, "Movie not found")
		return
	}
	c.JSON(http.StatusOK, movie)
}
