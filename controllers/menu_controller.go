package controllers

import (
	"strings"

	"github.com/moeinteractive/ohtommys-sub000/pkg/resp"
	"github.com/moeinteractive/ohtommys-sub000/services"
	"github.com/moeinteractive/ohtommys-sub000/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu — the public site view, grouped by category.
func (ctl *MenuController) PublicMenu(c *gin.Context) {
	items, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, services.GroupByCategory(items))
}

// GET /specials — the public specials view, grouped by weekday.
func (ctl *MenuController) PublicSpecials(c *gin.Context) {
	items, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, services.SpecialsByDay(items))
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	item, err := ctl.Svc.Get(idParam(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if item == nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}

// GET /admin/menu-items — flat list for the back office.
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/menu-items
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.SaveMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.savePicture(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /admin/menu-items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var req services.SaveMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.savePicture(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Svc.Update(idParam(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if err := ctl.Svc.Delete(idParam(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// savePicture turns an inline data-URL picture into an uploaded file path so
// the row only carries a reference.
func (ctl *MenuController) savePicture(req *services.SaveMenuItemIn) error {
	if !strings.HasPrefix(req.Picture, "data:image/") {
		return nil
	}
	b64 := req.Picture
	if i := strings.Index(b64, ","); i >= 0 {
		b64 = b64[i+1:]
	}
	path, err := utils.SaveBase64Image(b64, "uploads/menu")
	if err != nil {
		return err
	}
	req.Picture = "/" + path
	return nil
}
