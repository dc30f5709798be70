package controllers

import (
	"errors"
	"strconv"

	"github.com/FEBRIAN80/managmnt-food/entity"
	"github.com/FEBRIAN80/managmnt-food/pkg/resp"
	"github.com/FEBRIAN80/managmnt-food/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InventoryController struct{ Svc *services.InventoryService }

func NewInventoryController(s *services.InventoryService) *InventoryController {
	return &InventoryController{Svc: s}
}

// GET /admin/ingredients?q=
func (h *InventoryController) List(c *gin.Context) {
	out, err := h.Svc.List(c.Query("q"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/ingredients
func (h *InventoryController) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Unit        string  `json:"unit" binding:"required"`
		MinStock    float64 `json:"minStock" binding:"min=0"`
		CostPerUnit int64   `json:"costPerUnit" binding:"min=0"`
		SupplierID  *uint   `json:"supplierId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ing := entity.Ingredient{
		Name:        req.Name,
		Unit:        req.Unit,
		MinStock:    req.MinStock,
		CostPerUnit: req.CostPerUnit,
		SupplierID:  req.SupplierID,
	}
	if err := h.Svc.Create(&ing); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, ing)
}

// PATCH /admin/ingredients/:id
func (h *InventoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Name        *string  `json:"name"`
		Unit        *string  `json:"unit"`
		MinStock    *float64 `json:"minStock"`
		CostPerUnit *int64   `json:"costPerUnit"`
		SupplierID  *uint    `json:"supplierId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.MinStock != nil {
		updates["min_stock"] = *req.MinStock
	}
	if req.CostPerUnit != nil {
		updates["cost_per_unit"] = *req.CostPerUnit
	}
	if req.SupplierID != nil {
		updates["supplier_id"] = *req.SupplierID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := h.Svc.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// POST /admin/ingredients/:id/movements
func (h *InventoryController) Move(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.StockMovementIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ing, err := h.Svc.Move(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ingredient not found")
			return
		}
		if errors.Is(err, services.ErrStockInsufficient) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, ing)
}

// GET /admin/suppliers
func (h *InventoryController) ListSuppliers(c *gin.Context) {
	out, err := h.Svc.ListSuppliers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/suppliers
func (h *InventoryController) CreateSupplier(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sp := entity.Supplier{Name: req.Name, Phone: req.Phone}
	if err := h.Svc.CreateSupplier(&sp); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, sp)
}
