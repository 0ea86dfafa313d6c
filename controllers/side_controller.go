package controllers

import (
	"github.com/moeinteractive/ohtommys-sub000/pkg/resp"
	"github.com/moeinteractive/ohtommys-sub000/services"

	"github.com/gin-gonic/gin"
)

type SideController struct {
	Svc *services.SideService
}

func NewSideController(svc *services.SideService) *SideController {
	return &SideController{Svc: svc}
}

// GET /sides — public, active sides only.
func (ctl *SideController) ListActive(c *gin.Context) {
	sides, err := ctl.Svc.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sides)
}

// GET /admin/sides
func (ctl *SideController) List(c *gin.Context) {
	sides, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sides)
}

// GET /admin/sides/:id
func (ctl *SideController) Get(c *gin.Context) {
	side, err := ctl.Svc.Get(idParam(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if side == nil {
		resp.NotFound(c, "side not found")
		return
	}
	resp.OK(c, side)
}

// POST /admin/sides
func (ctl *SideController) Create(c *gin.Context) {
	var req services.SaveSideIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	side, err := ctl.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, side)
}

// PUT /admin/sides/:id
func (ctl *SideController) Update(c *gin.Context) {
	var req services.SaveSideIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	side, err := ctl.Svc.Update(idParam(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, side)
}

// DELETE /admin/sides/:id
func (ctl *SideController) Delete(c *gin.Context) {
	if err := ctl.Svc.Delete(idParam(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "side deleted"})
}
