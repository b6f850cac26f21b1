package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hexago/internal/domain"
	"hexago/internal/service"
)

// createUserRequest is the payload of POST /users. It deliberately has no id
// field: ids are assigned by the persistence layer.
type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// UserController serves the /users CRUD routes.
type UserController struct {
	service  *service.UserService
	validate *validator.Validate
}

// NewUserController returns a controller backed by svc.
func NewUserController(svc *service.UserService) *UserController {
	return &UserController{
		service:  svc,
		validate: validator.New(),
	}
}

// Register attaches the user routes to router, all gated behind authRequired.
func (u *UserController) Register(router gin.IRouter, authRequired gin.HandlerFunc) {
	users := router.Group("/users").Use(authRequired)
	{
		users.POST("", u.create)
		users.GET("", u.list)
		users.GET("/:id", u.get)
		users.PUT("/:id", u.update)
		users.DELETE("/:id", u.delete)
	}
}

func (u *UserController) create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}
	if err := u.validate.Struct(req); err != nil {
		validationFailed(c, err)
		return
	}

	user, err := u.service.Save(c.Request.Context(), domain.User{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (u *UserController) list(c *gin.Context) {
	users, err := u.service.FindAll(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (u *UserController) get(c *gin.Context) {
	user, err := u.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, err)
		return
	}
	if user == nil {
		notFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (u *UserController) update(c *gin.Context) {
	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationFailed(c, err)
		return
	}

	user, err := u.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		failure(c, err)
		return
	}
	if user == nil {
		notFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (u *UserController) delete(c *gin.Context) {
	existed, err := u.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, err)
		return
	}
	if !existed {
		notFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
