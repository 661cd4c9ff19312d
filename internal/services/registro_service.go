package services

import (
	"strings"

	"github.com/beego/beego/v2/core/logs"

	"github.com/talento-sv/empleados_mid/helpers"
	"github.com/talento-sv/empleados_mid/models"
	rootservices "github.com/talento-sv/empleados_mid/services"

	"github.com/talento-sv/empleados_mid/internal/duplicados"
	"github.com/talento-sv/empleados_mid/internal/validation"
)

// CrearEmpleado valida el borrador y lo envía al API. Los errores de campo
// regresan como AppError 400 con el mapa de errores en Data; un 409 del
// servidor se interpreta y regresa con {campo, mensaje} en Data.
func CrearEmpleado(d models.EmpleadoDraft) (*models.Empleado, error) {
	return guardarEmpleado(d, 0)
}

// ActualizarEmpleado aplica las mismas reglas que la creación, excluyendo el
// propio registro del chequeo de unicidad.
func ActualizarEmpleado(id int, d models.EmpleadoDraft) (*models.Empleado, error) {
	if id <= 0 {
		return nil, helpers.NewAppError(400, "id de empleado inválido", nil)
	}
	return guardarEmpleado(d, id)
}

func guardarEmpleado(d models.EmpleadoDraft, id int) (*models.Empleado, error) {
	// mismas máscaras de entrada que el formulario: dígito corrido a DUI
	// 8-1 y teléfono 4-4. Los montos quedan tal cual para que la
	// validación de decimales vea lo escrito.
	if strings.TrimSpace(d.Dui) != "" {
		d.Dui = validation.NormalizarDUI(d.Dui)
	}
	if strings.TrimSpace(d.Telefono) != "" {
		d.Telefono = validation.NormalizarTelefonoConPrefijo(d.Telefono)
	}
	d.NormalizarEstado()
	v := validation.NewValidador()
	errs := v.Validar(d)
	if msg, ok := validation.ValidarDescuento(string(d.SalarioBase), string(d.Bonificacion), string(d.Descuento)); !ok {
		if _, existe := errs["descuento"]; !existe {
			errs[campoDescuento] = msg
		}
	}
	if len(errs) > 0 {
		return nil, helpers.NewAppErrorWithData(400, "El formulario contiene errores", map[string]interface{}{"errores": errs})
	}

	// Chequeo previo best-effort; la autoridad final es el 409 del servidor.
	if dup := VerificarUnicidad(d, id); dup != nil {
		return nil, helpers.NewAppErrorWithData(409, "Ya existe un registro con valores duplicados", map[string]interface{}{"errores": dup})
	}

	payload := construirPayload(d)
	var (
		emp *models.Empleado
		err error
	)
	if id > 0 {
		emp, err = rootservices.UpdateEmpleado(id, payload)
	} else {
		emp, err = rootservices.CreateEmpleado(payload)
	}
	if err != nil {
		return nil, traducirErrorGuardado(err)
	}
	emp.NormalizarID()
	return emp, nil
}

const campoDescuento = "descuento"

// construirPayload arma el cuerpo que espera el backend: montos numéricos,
// estado ya normalizado y los campos de texto tal cual quedaron del borrador.
func construirPayload(d models.EmpleadoDraft) map[string]interface{} {
	payload := map[string]interface{}{
		"nombre":             d.Nombre,
		"apellido":           d.Apellido,
		"dui":                d.Dui,
		"telefono":           d.Telefono,
		"correo":             d.Correo,
		"direccion":          d.Direccion,
		"departamento":       d.Departamento,
		"puesto":             d.Puesto,
		"fecha_contratacion": d.FechaContratacion,
		"fecha_nacimiento":   d.FechaNacimiento,
		"sexo":               d.Sexo,
		"estado":             d.Estado,
	}
	ponerMonto(payload, "salario_base", string(d.SalarioBase))
	ponerMonto(payload, "bonificacion", string(d.Bonificacion))
	ponerMonto(payload, "descuento", string(d.Descuento))
	ponerMonto(payload, "evaluacion_desempeno", string(d.EvaluacionDesempeno))
	return payload
}

func ponerMonto(payload map[string]interface{}, campo, raw string) {
	if v, ok := validation.ParseNumero(raw); ok {
		payload[campo] = v
	}
}

func traducirErrorGuardado(err error) error {
	if c := duplicados.InterpretarConflicto(err); c != nil {
		logs.Warn("conflicto de duplicado en %s: %s", c.Campo, c.Mensaje)
		return helpers.NewAppErrorWithData(409, duplicados.BannerAmistoso(c), c)
	}
	if he := helpers.AsHTTPError(err); he != nil {
		return helpers.NewAppError(he.Status, duplicados.FormatearBannerError(err), err)
	}
	return helpers.NewAppError(502, "No fue posible guardar el empleado", err)
}

// EliminarEmpleado hace soft delete por defecto; force lo vuelve permanente.
func EliminarEmpleado(id int, force bool) error {
	if id <= 0 {
		return helpers.NewAppError(400, "id de empleado inválido", nil)
	}
	if err := rootservices.DeleteEmpleado(id, force); err != nil {
		if he := helpers.AsHTTPError(err); he != nil {
			return helpers.NewAppError(he.Status, duplicados.FormatearBannerError(err), err)
		}
		return helpers.NewAppError(502, "No fue posible eliminar el empleado", err)
	}
	return nil
}

// ObtenerEmpleado resuelve un registro por id, incluyendo inactivos cuando se pide.
func ObtenerEmpleado(id int, conInactivos bool) (*models.Empleado, error) {
	if id <= 0 {
		return nil, helpers.NewAppError(400, "id de empleado inválido", nil)
	}
	emp, err := rootservices.GetEmpleado(id, conInactivos)
	if err != nil {
		if he := helpers.AsHTTPError(err); he != nil {
			return nil, helpers.NewAppError(he.Status, duplicados.FormatearBannerError(err), err)
		}
		return nil, helpers.NewAppError(502, "No fue posible consultar el empleado", err)
	}
	return emp, nil
}
