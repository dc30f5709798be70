package controllers

import (
	"errors"
	"strconv"

	"github.com/FEBRIAN80/managmnt-food/entity"
	"github.com/FEBRIAN80/managmnt-food/pkg/resp"
	"github.com/FEBRIAN80/managmnt-food/repository"
	"github.com/FEBRIAN80/managmnt-food/utils"
	"github.com/FEBRIAN80/managmnt-food/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Repo *repository.MenuRepository
	Hub  Notifier
}

func NewMenuController(r *repository.MenuRepository, hub Notifier) *MenuController {
	return &MenuController{Repo: r, Hub: hub}
}

// GET /menus?q=  — the cashier catalog, available items only
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Repo.ListAvailable(c.Query("q"))
	if err != nil {
		ctl.Hub.Notify(utils.CurrentUserID(c), ws.Notification{
			Event:   "catalog_error",
			Message: "Gagal mengambil data menu",
		})
		resp.BadGateway(c, "failed to load menu catalog")
		return
	}
	resp.OK(c, menus)
}

// GET /admin/menus
func (ctl *MenuController) ListAll(c *gin.Context) {
	menus, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /menus/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	m, err := ctl.Repo.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}
	resp.OK(c, m)
}

// POST /admin/menus
func (ctl *MenuController) Create(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Detail     string `json:"detail"`
		Price      int64  `json:"price" binding:"min=0"`
		CategoryID uint   `json:"categoryId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m := entity.Menu{
		Name:        req.Name,
		Detail:      req.Detail,
		Price:       req.Price,
		IsAvailable: true,
		CategoryID:  req.CategoryID,
	}
	if err := ctl.Repo.Create(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /admin/menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Name        *string `json:"name"`
		Detail      *string `json:"detail"`
		Price       *int64  `json:"price"`
		IsAvailable *bool   `json:"isAvailable"`
		CategoryID  *uint   `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Detail != nil {
		updates["detail"] = *req.Detail
	}
	if req.Price != nil {
		if *req.Price < 0 {
			resp.BadRequest(c, "price must not be negative")
			return
		}
		updates["price"] = *req.Price
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ctl.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	m, err := ctl.Repo.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}
	resp.OK(c, m)
}

// DELETE /admin/menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	cats, err := ctl.Repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /admin/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Name: req.Name}
	if err := ctl.Repo.CreateCategory(&cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			resp.Conflict(c, "category already exists")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}
