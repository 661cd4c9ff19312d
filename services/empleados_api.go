package services

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/talento-sv/empleados_mid/helpers"
	"github.com/talento-sv/empleados_mid/models"
)

// buildQuery arma el query string omitiendo parámetros vacíos, igual que el front original.
func buildQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range params {
		if k == "" || v == "" {
			continue
		}
		values.Set(k, v)
	}
	encoded := values.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

// ListEmpleados obtiene el listado; acepta filtros/paginación como query params
// y soporta tanto arreglo plano como envoltura paginada.
func ListEmpleados(params map[string]string) ([]models.Empleado, *models.Paginacion, error) {
	cfg := GetConfig()
	endpoint := BuildURL(cfg.EmpleadosAPIBaseURL) + buildQuery(params)

	raw, err := helpers.DoJSONRaw(http.MethodGet, endpoint, AddAPIAuth(nil), cfg.RequestTimeout)
	if err != nil {
		return nil, nil, err
	}
	return models.DecodeListado(raw)
}

// GetEmpleado recupera un empleado por id. Un 404 sin with_inactive es una
// condición reconocida: el registro pudo quedar inactivo, así que se busca en
// el listado completo antes de rendirse.
func GetEmpleado(id int, withInactive bool) (*models.Empleado, error) {
	cfg := GetConfig()
	params := map[string]string{}
	if withInactive {
		params["with_inactive"] = "true"
	}
	endpoint := BuildURL(cfg.EmpleadosAPIBaseURL, strconv.Itoa(id)) + buildQuery(params)

	var emp models.Empleado
	err := helpers.DoJSONWithHeaders(http.MethodGet, endpoint, AddAPIAuth(nil), nil, &emp, cfg.RequestTimeout)
	if err == nil {
		emp.NormalizarID()
		return &emp, nil
	}
	if !withInactive && helpers.IsHTTPError(err, http.StatusNotFound) {
		if found, ferr := buscarEnListado(id); ferr == nil && found != nil {
			return found, nil
		}
		return nil, err
	}
	return nil, err
}

func buscarEnListado(id int) (*models.Empleado, error) {
	list, _, err := ListEmpleados(map[string]string{"with_inactive": "true"})
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID() == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// CreateEmpleado envía el borrador; un 409 por llave duplicada llega como
// *helpers.HTTPError para que el intérprete de conflictos lo procese.
func CreateEmpleado(payload interface{}) (*models.Empleado, error) {
	cfg := GetConfig()
	endpoint := BuildURL(cfg.EmpleadosAPIBaseURL)

	var created models.Empleado
	if err := helpers.DoJSONWithHeaders(http.MethodPost, endpoint, AddAPIAuth(nil), payload, &created, cfg.RequestTimeout); err != nil {
		return nil, err
	}
	created.NormalizarID()
	return &created, nil
}

// UpdateEmpleado reemplaza el registro completo. Misma semántica de conflicto que crear.
func UpdateEmpleado(id int, payload interface{}) (*models.Empleado, error) {
	cfg := GetConfig()
	endpoint := BuildURL(cfg.EmpleadosAPIBaseURL, strconv.Itoa(id))

	var updated models.Empleado
	if err := helpers.DoJSONWithHeaders(http.MethodPut, endpoint, AddAPIAuth(nil), payload, &updated, cfg.RequestTimeout); err != nil {
		return nil, err
	}
	updated.NormalizarID()
	return &updated, nil
}

// DeleteEmpleado elimina un empleado. Sin force el backend hace borrado suave
// (estado pasa a Inactivo); con force=true la eliminación es permanente.
func DeleteEmpleado(id int, force bool) error {
	cfg := GetConfig()
	params := map[string]string{}
	if force {
		params["force"] = "true"
	}
	endpoint := BuildURL(cfg.EmpleadosAPIBaseURL, strconv.Itoa(id)) + buildQuery(params)

	return helpers.DoJSONWithHeaders(http.MethodDelete, endpoint, AddAPIAuth(nil), nil, nil, cfg.RequestTimeout)
}

// GetCalculos consulta los valores derivados que computa el servidor
// (salario bruto/neto, edad, antigüedad, ratio de desempeño).
func GetCalculos(id int, params map[string]string) (map[string]interface{}, error) {
	cfg := GetConfig()
	endpoint := BuildURL(cfg.EmpleadosAPIBaseURL, strconv.Itoa(id), "calculos") + buildQuery(params)

	var out map[string]interface{}
	if err := helpers.DoJSONWithHeaders(http.MethodGet, endpoint, AddAPIAuth(nil), nil, &out, cfg.RequestTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEstadisticas intenta primero la ruta raíz /estadisticas y cae a la ruta
// bajo el recurso. Si ambas fallan se preserva el primer error.
func GetEstadisticas() (map[string]json.RawMessage, error) {
	cfg := GetConfig()

	rootURL := BuildURL(APIRoot(cfg.EmpleadosAPIBaseURL), "estadisticas")
	raw, firstErr := helpers.DoJSONRaw(http.MethodGet, rootURL, AddAPIAuth(nil), cfg.RequestTimeout)
	if firstErr != nil {
		resourceURL := BuildURL(cfg.EmpleadosAPIBaseURL, "estadisticas")
		var err error
		raw, err = helpers.DoJSONRaw(http.MethodGet, resourceURL, AddAPIAuth(nil), cfg.RequestTimeout)
		if err != nil {
			return nil, firstErr
		}
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
