package handler

import (
	"net/http"
	"strconv"

	"Relief_Link/internal/model"
	"Relief_Link/internal/service"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	svc *service.RequestService
}

type SeekResourceReq struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	ResourceType string `json:"resourceType"`
	NPeople      string `json:"n_people"`
	Urgency      string `json:"urgency"`
	Description  string `json:"description"`
}

func NewRequestHandler(svc *service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) Submit(c *gin.Context) {
	var req SeekResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	record := &model.ResourceRequest{
		Name:         req.Name,
		Phone:        req.Phone,
		Location:     req.Location,
		ResourceType: req.ResourceType,
		NPeople:      req.NPeople,
		Urgency:      req.Urgency,
		Description:  req.Description,
	}
	if err := h.svc.Submit(record); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "resource request submitted", "id": record.ID})
}

func (h *RequestHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resource request deleted"})
}
