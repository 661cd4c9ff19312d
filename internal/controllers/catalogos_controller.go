package controllers

import (
	"net/http"

	"github.com/talento-sv/empleados_mid/controllers"
	"github.com/talento-sv/empleados_mid/controllers/errorhandler"
	"github.com/talento-sv/empleados_mid/models"
)

// CatalogosController expone los catálogos cerrados que pueblan los selects
// del formulario de empleados.
type CatalogosController struct {
	controllers.BaseController
}

// GetCatalogos atiende GET /v1/catalogos.
func (c *CatalogosController) GetCatalogos() {
	defer errorhandler.HandlePanic(&c.Controller)

	c.RespondSuccess(http.StatusOK, "OK", map[string]interface{}{
		"puestos":       models.Puestos,
		"departamentos": models.Departamentos,
		"sexos":         models.Sexos,
		"estados":       []string{models.EstadoActivo, models.EstadoInactivo},
	})
}
