package controllers

import (
	"net/http"

	"github.com/talento-sv/empleados_mid/controllers"
	"github.com/talento-sv/empleados_mid/controllers/errorhandler"

	"github.com/talento-sv/empleados_mid/internal/services"
)

// EstadisticasController expone el dashboard de estadísticas ya reconciliado.
type EstadisticasController struct {
	controllers.BaseController
}

// GetEstadisticas atiende GET /v1/estadisticas.
func (c *EstadisticasController) GetEstadisticas() {
	defer errorhandler.HandlePanic(&c.Controller)

	stats, err := services.ObtenerEstadisticas()
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", stats)
}
