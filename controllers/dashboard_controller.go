package controllers

import (
	"time"

	"github.com/FEBRIAN80/managmnt-food/pkg/resp"
	"github.com/FEBRIAN80/managmnt-food/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct{ Svc *services.DashboardService }

func NewDashboardController(s *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: s}
}

// GET /admin/dashboard
func (h *DashboardController) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
