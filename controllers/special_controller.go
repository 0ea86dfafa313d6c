package controllers

import (
	"github.com/moeinteractive/ohtommys-sub000/pkg/resp"
	"github.com/moeinteractive/ohtommys-sub000/services"

	"github.com/gin-gonic/gin"
)

type SpecialController struct {
	Svc *services.SpecialService
}

func NewSpecialController(svc *services.SpecialService) *SpecialController {
	return &SpecialController{Svc: svc}
}

type specialRow struct {
	ID           uint   `json:"id"`
	MenuItemID   uint   `json:"menuItemId"`
	MenuItemName string `json:"menuItemName"`
	Day          string `json:"day"`
	PriceCents   int64  `json:"priceCents"`
	Description  string `json:"description"`
}

// GET /admin/specials
func (ctl *SpecialController) List(c *gin.Context) {
	specials, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	rows := make([]specialRow, 0, len(specials))
	for _, sp := range specials {
		rows = append(rows, specialRow{
			ID:           sp.ID,
			MenuItemID:   sp.MenuItemID,
			MenuItemName: sp.MenuItem.Name,
			Day:          string(sp.Day),
			PriceCents:   sp.PriceCents,
			Description:  sp.Description,
		})
	}
	resp.OK(c, rows)
}

// POST /admin/specials — one row per selected weekday.
func (ctl *SpecialController) Create(c *gin.Context) {
	var req services.CreateSpecialIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rows, err := ctl.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rows)
}

// PUT /admin/specials/:id — the day stays fixed.
func (ctl *SpecialController) Update(c *gin.Context) {
	var req services.UpdateSpecialIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sp, err := ctl.Svc.Update(idParam(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, sp)
}

// DELETE /admin/specials/:id
func (ctl *SpecialController) Delete(c *gin.Context) {
	if err := ctl.Svc.Delete(idParam(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "special deleted"})
}
