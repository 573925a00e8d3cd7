package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-rent-market/internal/service"
	mdw "go-rent-market/internal/transport/http/middleware"
	resp "go-rent-market/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register POST /users。字段校验在 service 里按固定顺序做，这里不加 binding tag，
// 否则报错顺序就由 gin 说了算了
func (h *UserHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	u, err := h.users.Register(c.Request.Context(), in)
	if err != nil {
		c.JSON(resp.DomainUnprocessable(err))
		return
	}
	c.Header("Location", c.Request.URL.Path+"/"+u.ID)
	c.JSON(http.StatusCreated, resp.OK(u))
}

// Login POST /auth/login。失败一律同一个 401，不暴露邮箱是否存在
func (h *UserHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	tok, u, err := h.users.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"authToken": tok, "user": u}))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	err := h.users.Delete(c.Request.Context(), c.GetString(mdw.KeyUserID), c.GetString(mdw.KeyRole), c.Param("id"))
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.Status(http.StatusNoContent)
}
