package handler

import (
	"net/http"
	"strconv"

	"Relief_Link/internal/model"
	"Relief_Link/internal/service"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	svc *service.OfferService
}

type AddResourceReq struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	ResourceType string `json:"resourceType"`
	Quantity     string `json:"quantity"`
	Availability string `json:"availability"`
	Description  string `json:"description"`
}

func NewOfferHandler(svc *service.OfferService) *OfferHandler {
	return &OfferHandler{svc: svc}
}

func (h *OfferHandler) Submit(c *gin.Context) {
	var req AddResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	offer := &model.ResourceOffer{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Location:     req.Location,
		ResourceType: req.ResourceType,
		Quantity:     req.Quantity,
		Availability: req.Availability,
		Description:  req.Description,
	}
	if err := h.svc.Submit(offer); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "resource offer submitted"})
}

func (h *OfferHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *OfferHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resource offer withdrawn"})
}
