package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-rent-market/internal/service"
	mdw "go-rent-market/internal/transport/http/middleware"
	resp "go-rent-market/internal/transport/http/response"
)

// AdminHandler 管理端：用户治理 + 报价巡查。挂在 admin 角色分组下
type AdminHandler struct {
	users  *service.UserService
	offers *service.OfferService
}

func NewAdminHandler(users *service.UserService, offers *service.OfferService) *AdminHandler {
	return &AdminHandler{users: users, offers: offers}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(users))
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	err := h.users.Delete(c.Request.Context(), c.GetString(mdw.KeyUserID), c.GetString(mdw.KeyRole), c.Param("id"))
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListOffers(c *gin.Context) {
	offers, err := h.offers.List(c.Request.Context())
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(offers))
}
