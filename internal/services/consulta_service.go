package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/talento-sv/empleados_mid/models"
	rootservices "github.com/talento-sv/empleados_mid/services"

	"github.com/talento-sv/empleados_mid/internal/validation"
)

// FiltrosListado agrupa los filtros combinables del listado.
type FiltrosListado struct {
	Busqueda     string
	Puesto       string
	Departamento string
	Estado       string
	SalarioMonto string
	SalarioComp  string // ">" o "<"
	ConInactivos bool
}

func (f FiltrosListado) vacios() bool {
	return f.Busqueda == "" && f.Puesto == "" && f.Departamento == "" &&
		f.Estado == "" && f.SalarioMonto == ""
}

// ObtenerListado trae el listado del API y aplica los filtros del lado del
// cliente, como re-derivación pura sobre la última carga: nunca un merge
// parcial. La paginación remota solo aplica sin filtros; con filtros se pide
// el listado completo para que el resultado sea consistente.
func ObtenerListado(f FiltrosListado, page, size int) ([]models.Empleado, *models.Paginacion, error) {
	params := map[string]string{}
	if f.ConInactivos || strings.EqualFold(f.Estado, models.EstadoInactivo) {
		params["with_inactive"] = "true"
	}
	if f.vacios() && page > 0 {
		params["page"] = strconv.Itoa(page)
		params["per_page"] = strconv.Itoa(size)
	}
	list, pag, err := rootservices.ListEmpleados(params)
	if err != nil {
		return nil, nil, err
	}
	if f.vacios() {
		return list, pag, nil
	}
	return FiltrarEmpleados(list, f), nil, nil
}

// FiltrarEmpleados aplica todos los filtros en memoria para que sean
// combinables entre sí.
func FiltrarEmpleados(list []models.Empleado, f FiltrosListado) []models.Empleado {
	res := make([]models.Empleado, 0, len(list))
	q := strings.ToLower(strings.TrimSpace(f.Busqueda))

	var monto float64
	var montoOK bool
	if strings.TrimSpace(f.SalarioMonto) != "" {
		monto, montoOK = validation.ParseNumero(f.SalarioMonto)
	}

	for _, e := range list {
		if q != "" && !coincideBusqueda(e, q) {
			continue
		}
		if f.Puesto != "" && e.Puesto != f.Puesto {
			continue
		}
		if f.Departamento != "" && e.Departamento != f.Departamento {
			continue
		}
		if f.Estado != "" && !strings.EqualFold(e.EstadoNombre(), f.Estado) {
			continue
		}
		if montoOK {
			if !e.SalarioBase.Valid {
				continue
			}
			if f.SalarioComp == "<" {
				if e.SalarioBase.Value >= monto {
					continue
				}
			} else if e.SalarioBase.Value <= monto {
				continue
			}
		}
		res = append(res, e)
	}
	return res
}

func coincideBusqueda(e models.Empleado, q string) bool {
	completo := strings.ToLower(strings.TrimSpace(e.Nombre + " " + e.Apellido))
	return strings.Contains(completo, q) ||
		strings.Contains(strings.ToLower(e.Dui), q) ||
		strings.Contains(strings.ToLower(e.Correo), q) ||
		strings.Contains(strings.ToLower(e.Telefono), q) ||
		strings.Contains(strings.ToLower(e.Puesto), q)
}

// VerificarUnicidad hace el chequeo previo de dui/correo/teléfono contra el
// listado. Es best-effort y corre en carrera contra otros clientes: la
// palabra final siempre la tiene el 409 del servidor. Un fallo al listar no
// bloquea el envío.
func VerificarUnicidad(d models.EmpleadoDraft, excluirID int) map[string]string {
	list, _, err := rootservices.ListEmpleados(map[string]string{"with_inactive": "true"})
	if err != nil {
		return nil
	}

	errs := map[string]string{}
	for _, e := range list {
		if excluirID > 0 && e.ID() == excluirID {
			continue
		}
		if d.Dui != "" && e.Dui == d.Dui {
			errs["dui"] = fmt.Sprintf("DUI ya existe: %s", d.Dui)
		}
		if d.Correo != "" && strings.EqualFold(e.Correo, d.Correo) {
			errs["correo"] = fmt.Sprintf("Correo ya existe: %s", d.Correo)
		}
		if d.Telefono != "" && mismoTelefono(e.Telefono, d.Telefono) {
			errs["telefono"] = fmt.Sprintf("Teléfono ya existe: %s", d.Telefono)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// mismoTelefono compara ignorando el prefijo de país que el backend puede anteponer.
func mismoTelefono(a, b string) bool {
	na := strings.TrimPrefix(strings.TrimSpace(a), validation.PrefijoTelefono)
	nb := strings.TrimPrefix(strings.TrimSpace(b), validation.PrefijoTelefono)
	return na != "" && na == nb
}
