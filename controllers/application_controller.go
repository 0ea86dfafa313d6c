package controllers

import (
	"github.com/moeinteractive/ohtommys-sub000/pkg/resp"
	"github.com/moeinteractive/ohtommys-sub000/services"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct {
	Svc *services.ApplicationService
}

func NewApplicationController(svc *services.ApplicationService) *ApplicationController {
	return &ApplicationController{Svc: svc}
}

// POST /applications — public.
func (ctl *ApplicationController) Submit(c *gin.Context) {
	var req services.SubmitApplicationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	app, err := ctl.Svc.Submit(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": app.ID, "message": "application received"})
}

// GET /admin/applications
func (ctl *ApplicationController) List(c *gin.Context) {
	apps, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, apps)
}
