package handler

import (
	"fmt"
	"net/http"

	"Relief_Link/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscribeHandler struct {
	svc *service.NotifyService
}

type SubscribeReq struct {
	Email string `json:"email"`
}

type NotifyReq struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func NewSubscribeHandler(svc *service.NotifyService) *SubscribeHandler {
	return &SubscribeHandler{svc: svc}
}

func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req SubscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	if err := h.svc.Subscribe(req.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscribed"})
}

func (h *SubscribeHandler) Notify(c *gin.Context) {
	var req NotifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	count, err := h.svc.Broadcast(req.Subject, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("notified %d subscribers", count)})
}
