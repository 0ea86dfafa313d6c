package controllers

import (
	"github.com/moeinteractive/ohtommys-sub000/pkg/resp"
	"github.com/moeinteractive/ohtommys-sub000/services"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	Svc *services.EventService
}

func NewEventController(svc *services.EventService) *EventController {
	return &EventController{Svc: svc}
}

// GET /events
func (ctl *EventController) List(c *gin.Context) {
	events, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, events)
}

// GET /admin/events/:id
func (ctl *EventController) Get(c *gin.Context) {
	ev, err := ctl.Svc.Get(idParam(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if ev == nil {
		resp.NotFound(c, "event not found")
		return
	}
	resp.OK(c, ev)
}

// POST /admin/events
func (ctl *EventController) Create(c *gin.Context) {
	var req services.SaveEventIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ev, err := ctl.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, ev)
}

// PUT /admin/events/:id
func (ctl *EventController) Update(c *gin.Context) {
	var req services.SaveEventIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ev, err := ctl.Svc.Update(idParam(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ev)
}

// DELETE /admin/events/:id
func (ctl *EventController) Delete(c *gin.Context) {
	if err := ctl.Svc.Delete(idParam(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "event deleted"})
}
