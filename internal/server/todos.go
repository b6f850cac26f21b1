package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hexago/internal/service"
)

// TodoController serves the public read-only /todos routes.
type TodoController struct {
	service *service.TodoService
}

// NewTodoController returns a controller backed by svc.
func NewTodoController(svc *service.TodoService) *TodoController {
	return &TodoController{service: svc}
}

// Register attaches the todo routes to router. Todos require no auth.
func (t *TodoController) Register(router gin.IRouter) {
	todos := router.Group("/todos")
	{
		todos.GET("", t.list)
		todos.GET("/:id", t.get)
	}
}

func (t *TodoController) list(c *gin.Context) {
	todos, err := t.service.FindAll(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (t *TodoController) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		validationFailed(c, err)
		return
	}

	todo, err := t.service.Get(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	if todo == nil {
		notFound(c, "Todo not found")
		return
	}
	c.JSON(http.StatusOK, todo)
}
