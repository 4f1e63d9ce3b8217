package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vincenzo-scotto001/fantastic-giggle/api/models"
	"github.com/vincenzo-scotto001/fantastic-giggle/council"
)

// ElderMetaController exposes the static elder catalog so the page does not
// need its own copy of the definitions.
type ElderMetaController struct{}

func NewElderMetaController() *ElderMetaController {
	return &ElderMetaController{}
}

func (c *ElderMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/elders")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
}

// @Summary Get all elders
// @Tags Meta/Elders
// @Produce json
// @Success 200 {array} council.Elder
// @Router /api/meta/elders [get]
func (c *ElderMetaController) getAll(g *gin.Context) {
	g.JSON(http.StatusOK, council.Elders())
}

// @Summary Get one elder by id
// @Tags Meta/Elders
// @Produce json
// @Param id path int true "Elder ID"
// @Success 200 {object} council.Elder
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/meta/elders/{id} [get]
func (c *ElderMetaController) get(g *gin.Context) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid elder id"})
		return
	}

	elder := council.ElderByID(id)
	if elder == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "elder not found"})
		return
	}
	g.JSON(http.StatusOK, elder)
}
