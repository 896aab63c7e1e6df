package handler

import (
	"net/http"

	"Relief_Link/internal/model"
	"Relief_Link/internal/service"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	svc *service.AlertService
}

type CreateAlertReq struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func NewAlertHandler(svc *service.AlertService) *AlertHandler {
	return &AlertHandler{svc: svc}
}

func (h *AlertHandler) Create(c *gin.Context) {
	var req CreateAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	alert := &model.Alert{
		Type:        req.Type,
		Location:    req.Location,
		Description: req.Description,
		Severity:    req.Severity,
	}
	if err := h.svc.Create(alert); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
