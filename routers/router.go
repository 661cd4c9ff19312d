package routers

import (
	"github.com/talento-sv/empleados_mid/controllers/errorhandler"
	internalcontrollers "github.com/talento-sv/empleados_mid/internal/controllers"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	beego.Router("/v1/empleados", &internalcontrollers.EmpleadosController{}, "get:GetListado;post:PostCrear")
	beego.Router("/v1/empleados/:id", &internalcontrollers.EmpleadosController{}, "get:GetById;put:PutActualizar;delete:DeleteEliminar")
	beego.Router("/v1/empleados/:id/calculos", &internalcontrollers.EmpleadosController{}, "get:GetCalculos")

	beego.Router("/v1/estadisticas", &internalcontrollers.EstadisticasController{}, "get:GetEstadisticas")

	beego.Router("/v1/catalogos", &internalcontrollers.CatalogosController{}, "get:GetCatalogos")

	beego.Router("/v1/preferencias", &internalcontrollers.PreferenciasController{}, "get:GetPreferencias")
	beego.Router("/v1/preferencias/modo-oscuro", &internalcontrollers.PreferenciasController{}, "put:PutModoOscuro")
}
