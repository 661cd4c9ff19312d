package services

import (
	"encoding/json"

	"github.com/beego/beego/v2/core/logs"

	"github.com/talento-sv/empleados_mid/helpers"
	"github.com/talento-sv/empleados_mid/models"
	rootservices "github.com/talento-sv/empleados_mid/services"

	"github.com/talento-sv/empleados_mid/internal/estadisticas"
)

// ObtenerEstadisticas combina el payload del endpoint de estadísticas con el
// listado de empleados como respaldo para las derivaciones que el servidor no
// cubre. Un fallo parcial degrada a marcadores sin dato; solo falla cuando
// ninguna de las dos fuentes responde.
func ObtenerEstadisticas() (models.EstadisticasCanonicas, error) {
	raw, errStats := rootservices.GetEstadisticas()
	if errStats != nil {
		logs.Warn("estadísticas remotas no disponibles: %v", errStats)
		raw = map[string]json.RawMessage{}
	}

	var respaldo []models.Empleado
	if _, traePoblacion := raw["empleados"]; !traePoblacion {
		list, _, errList := rootservices.ListEmpleados(map[string]string{"with_inactive": "true"})
		if errList != nil {
			logs.Warn("listado de respaldo para estadísticas no disponible: %v", errList)
			if errStats != nil {
				if he := helpers.AsHTTPError(errStats); he != nil {
					return models.EstadisticasCanonicas{}, helpers.NewAppError(he.Status, "No fue posible consultar las estadísticas", errStats)
				}
				return models.EstadisticasCanonicas{}, helpers.NewAppError(502, "No fue posible consultar las estadísticas", errStats)
			}
		} else {
			respaldo = list
		}
	}

	return estadisticas.Reconciliar(raw, respaldo), nil
}

// ObtenerCalculos reexpone el endpoint de cálculos del backend para un empleado.
func ObtenerCalculos(id int, params map[string]string) (map[string]interface{}, error) {
	if id <= 0 {
		return nil, helpers.NewAppError(400, "id de empleado inválido", nil)
	}
	calc, err := rootservices.GetCalculos(id, params)
	if err != nil {
		if he := helpers.AsHTTPError(err); he != nil {
			return nil, helpers.NewAppError(he.Status, "No fue posible consultar los cálculos", err)
		}
		return nil, helpers.NewAppError(502, "No fue posible consultar los cálculos", err)
	}
	return calc, nil
}
