package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vincenzo-scotto001/fantastic-giggle/api/transport"
	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
	"github.com/vincenzo-scotto001/fantastic-giggle/storage"
)

// AdminController exposes the interaction log for inspection. Token-guarded,
// never linked from the page.
type AdminController struct {
	interactions storage.InteractionStorage
}

func NewAdminController(interactions storage.InteractionStorage) *AdminController {
	return &AdminController{interactions: interactions}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/interactions", c.listInteractions)
}

// @Security AdminToken
// listInteractions godoc
// @Summary List logged debate interactions
// @Tags admin
// @Produce json
// @Success 200 {array} storage.Interaction
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/interactions [get]
func (c *AdminController) listInteractions(g *gin.Context) {
	interactions, err := c.interactions.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list interactions: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("ADMIN: listed %d interactions", len(interactions))
	g.JSON(http.StatusOK, interactions)
}
