package handler

import (
	"net/http"

	"Relief_Link/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	svc *service.FeedService
}

func NewFeedHandler(svc *service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

func (h *FeedHandler) Weather(c *gin.Context) {
	payload, err := h.svc.Weather(c.Request.Context(), c.Query("lat"), c.Query("lon"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

func (h *FeedHandler) Earthquakes(c *gin.Context) {
	payload, err := h.svc.Earthquakes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

func (h *FeedHandler) Geocode(c *gin.Context) {
	payload, err := h.svc.Geocode(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}
