package controllers

import (
	"net/http"

	"github.com/talento-sv/empleados_mid/controllers"
	"github.com/talento-sv/empleados_mid/controllers/errorhandler"
	"github.com/talento-sv/empleados_mid/models"

	ihelpers "github.com/talento-sv/empleados_mid/internal/helpers"
	"github.com/talento-sv/empleados_mid/internal/services"
)

// EmpleadosController expone el CRUD de empleados hacia el front.
type EmpleadosController struct {
	controllers.BaseController
}

// GetListado atiende GET /v1/empleados con filtros combinables por query.
func (c *EmpleadosController) GetListado() {
	defer errorhandler.HandlePanic(&c.Controller)

	f := services.FiltrosListado{
		Busqueda:     c.GetString("busqueda"),
		Puesto:       c.GetString("puesto"),
		Departamento: c.GetString("departamento"),
		Estado:       c.GetString("estado"),
		SalarioMonto: c.GetString("salario_monto"),
		SalarioComp:  c.GetString("salario_comp"),
	}
	f.ConInactivos, _ = c.GetBool("with_inactive", false)

	// sin ?page el backend responde el listado completo
	page, size := 0, 0
	if c.GetString("page") != "" {
		page, size = ihelpers.ParsePageSize(c.GetString("page"), c.GetString("per_page"))
	}

	list, pag, err := services.ObtenerListado(f, page, size)
	if err != nil {
		c.RespondError(err)
		return
	}
	data := map[string]interface{}{"empleados": list}
	if pag != nil {
		data["paginacion"] = pag
	}
	c.RespondSuccess(http.StatusOK, "OK", data)
}

// GetById atiende GET /v1/empleados/:id. Con with_inactive=true también
// resuelve registros dados de baja.
func (c *EmpleadosController) GetById() {
	defer errorhandler.HandlePanic(&c.Controller)

	id, err := ihelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	conInactivos, _ := c.GetBool("with_inactive", false)

	emp, err := services.ObtenerEmpleado(id, conInactivos)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", emp)
}

// PostCrear atiende POST /v1/empleados.
func (c *EmpleadosController) PostCrear() {
	defer errorhandler.HandlePanic(&c.Controller)

	var draft models.EmpleadoDraft
	if err := c.ParseJSONBody(&draft); err != nil {
		c.RespondError(err)
		return
	}
	emp, err := services.CrearEmpleado(draft)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, "Empleado creado", emp)
}

// PutActualizar atiende PUT /v1/empleados/:id.
func (c *EmpleadosController) PutActualizar() {
	defer errorhandler.HandlePanic(&c.Controller)

	id, err := ihelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	var draft models.EmpleadoDraft
	if err := c.ParseJSONBody(&draft); err != nil {
		c.RespondError(err)
		return
	}
	emp, err := services.ActualizarEmpleado(id, draft)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "Empleado actualizado", emp)
}

// DeleteEliminar atiende DELETE /v1/empleados/:id. Por defecto es baja
// lógica; ?force=true elimina de forma permanente.
func (c *EmpleadosController) DeleteEliminar() {
	defer errorhandler.HandlePanic(&c.Controller)

	id, err := ihelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	force, _ := c.GetBool("force", false)

	if err := services.EliminarEmpleado(id, force); err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "Empleado eliminado", nil)
}

// GetCalculos atiende GET /v1/empleados/:id/calculos y reexpone los cálculos
// del backend pasando los parámetros de query tal cual.
func (c *EmpleadosController) GetCalculos() {
	defer errorhandler.HandlePanic(&c.Controller)

	id, err := ihelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	params := map[string]string{}
	for _, k := range []string{"anios", "tasa_anual", "porcentaje", "with_inactive"} {
		if v := c.GetString(k); v != "" {
			params[k] = v
		}
	}
	calc, err := services.ObtenerCalculos(id, params)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", calc)
}
