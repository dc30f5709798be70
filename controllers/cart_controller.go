package controllers

import (
	"errors"
	"strconv"

	"github.com/FEBRIAN80/managmnt-food/pkg/resp"
	"github.com/FEBRIAN80/managmnt-food/services"
	"github.com/FEBRIAN80/managmnt-food/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart?discount=  — lines plus totals for the discount currently entered
func (h *CartController) Get(c *gin.Context) {
	discount, err := strconv.Atoi(c.DefaultQuery("discount", "0"))
	if err != nil {
		resp.BadRequest(c, "discount must be a number")
		return
	}

	view, err := h.Svc.View(utils.CurrentUserID(c), discount)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req struct {
		MenuID uint `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(utils.CurrentUserID(c), req.MenuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		if errors.Is(err, services.ErrMenuUnavailable) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"added": req.MenuID})
}

// PATCH /cart/items/:menuId
func (h *CartController) ChangeQty(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("menuId"))

	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	h.Svc.ChangeQty(utils.CurrentUserID(c), uint(menuID), body.Delta)
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart/items/:menuId
func (h *CartController) Remove(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("menuId"))
	h.Svc.Remove(utils.CurrentUserID(c), uint(menuID))
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Clear(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"ok": true})
}
