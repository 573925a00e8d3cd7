package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-rent-market/internal/service"
	mdw "go-rent-market/internal/transport/http/middleware"
	resp "go-rent-market/internal/transport/http/response"
)

type OfferHandler struct {
	offers *service.OfferService
}

func NewOfferHandler(offers *service.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.offers.List(c.Request.Context())
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(offers))
}

func (h *OfferHandler) Get(c *gin.Context) {
	o, err := h.offers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(o))
}

// ListByBuyer GET /offers/buyer/:buyerUserId，空结果返回空数组不报错
func (h *OfferHandler) ListByBuyer(c *gin.Context) {
	offers, err := h.offers.ListByBuyer(c.Request.Context(), c.Param("buyerUserId"))
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(offers))
}

func (h *OfferHandler) ListByOwner(c *gin.Context) {
	offers, err := h.offers.ListByOwner(c.Request.Context(), c.Param("ownerUserId"))
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(offers))
}

// Create POST /offers，需登录；buyer 取登录态，状态强制 pending
func (h *OfferHandler) Create(c *gin.Context) {
	var in service.CreateOfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	o, err := h.offers.Create(c.Request.Context(), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.Header("Location", c.Request.URL.Path+"/"+o.ID)
	c.JSON(http.StatusCreated, resp.OK(o))
}

// UpdateStatus PUT /offers/:id，body 里只认 status，其它字段忽略
func (h *OfferHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	o, err := h.offers.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(o))
}

func (h *OfferHandler) Delete(c *gin.Context) {
	if err := h.offers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(resp.Domain(err))
		return
	}
	c.Status(http.StatusNoContent)
}
