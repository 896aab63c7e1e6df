package handler

import (
	"net/http"

	"Relief_Link/internal/service"

	"github.com/gin-gonic/gin"
)

type CoinHandler struct {
	svc *service.CoinService
}

type AddCoinsReq struct {
	Email  string `json:"email"`
	Amount int64  `json:"amount"`
}

func NewCoinHandler(svc *service.CoinService) *CoinHandler {
	return &CoinHandler{svc: svc}
}

func (h *CoinHandler) GetCoins(c *gin.Context) {
	coins, err := h.svc.GetCoins(c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coins": coins})
}

func (h *CoinHandler) AddCoins(c *gin.Context) {
	var req AddCoinsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	coins, err := h.svc.AddCoins(req.Email, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coins": coins})
}
