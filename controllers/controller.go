package controllers

import (
	"errors"
	"strconv"

	"github.com/moeinteractive/ohtommys-sub000/pkg/resp"
	"github.com/moeinteractive/ohtommys-sub000/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the response envelope: validation → 400,
// missing rows → 404, guard rejections → 409, everything else → 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalid):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrHasSpecials), errors.Is(err, services.ErrSideInUse):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func idParam(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}
