package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-rent-market/internal/service"
	mdw "go-rent-market/internal/transport/http/middleware"
	resp "go-rent-market/internal/transport/http/response"
)

type ItemHandler struct {
	items *service.ItemService
}

func NewItemHandler(items *service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(items))
}

func (h *ItemHandler) Get(c *gin.Context) {
	it, err := h.items.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(it))
}

// Create POST /items，需登录；owner 取登录态
func (h *ItemHandler) Create(c *gin.Context) {
	var in service.CreateItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	it, err := h.items.Create(c.Request.Context(), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.Header("Location", c.Request.URL.Path+"/"+it.ID)
	c.JSON(http.StatusCreated, resp.OK(it))
}

func (h *ItemHandler) Delete(c *gin.Context) {
	err := h.items.Delete(c.Request.Context(), c.GetString(mdw.KeyUserID), c.Param("id"))
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.Status(http.StatusNoContent)
}
