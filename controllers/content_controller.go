package controllers

import (
	"github.com/moeinteractive/ohtommys-sub000/pkg/resp"
	"github.com/moeinteractive/ohtommys-sub000/services"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Svc *services.ContentService
}

func NewContentController(svc *services.ContentService) *ContentController {
	return &ContentController{Svc: svc}
}

// GET /content
func (ctl *ContentController) List(c *gin.Context) {
	blocks, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, blocks)
}

// GET /content/:key
func (ctl *ContentController) Get(c *gin.Context) {
	block, err := ctl.Svc.Get(c.Param("key"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if block == nil {
		resp.NotFound(c, "no such content block")
		return
	}
	resp.OK(c, block)
}

// PUT /admin/content/:key
func (ctl *ContentController) Set(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	block, err := ctl.Svc.Set(c.Param("key"), req.Value)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, block)
}
