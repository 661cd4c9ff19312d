package controllers

import (
	"net/http"

	"github.com/talento-sv/empleados_mid/controllers"
	"github.com/talento-sv/empleados_mid/controllers/errorhandler"
	"github.com/talento-sv/empleados_mid/helpers"

	"github.com/talento-sv/empleados_mid/internal/settings"
)

// PreferenciasController expone las preferencias de presentación del cliente.
type PreferenciasController struct {
	controllers.BaseController
}

// GetPreferencias atiende GET /v1/preferencias.
func (c *PreferenciasController) GetPreferencias() {
	defer errorhandler.HandlePanic(&c.Controller)

	c.RespondSuccess(http.StatusOK, "OK", settings.Default().Get())
}

// PutModoOscuro atiende PUT /v1/preferencias/modo-oscuro con {"modo_oscuro": bool}.
func (c *PreferenciasController) PutModoOscuro() {
	defer errorhandler.HandlePanic(&c.Controller)

	var body settings.Preferencias
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "cuerpo inválido", err))
		return
	}
	if err := settings.Default().SetModoOscuro(body.ModoOscuro); err != nil {
		c.RespondError(helpers.NewAppError(http.StatusInternalServerError, "no fue posible guardar la preferencia", err))
		return
	}
	c.RespondSuccess(http.StatusOK, "Preferencia actualizada", settings.Default().Get())
}
