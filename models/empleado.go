package models

import (
	"encoding/json"
	"strings"
)

// Empleado es el registro tal como lo entrega el API de empleados.
// Los tipos Flex absorben las variaciones entre generaciones del backend
// (números como string, estado 1/0 vs Activo/Inactivo, id vs id_empleado).
type Empleado struct {
	Id                  FlexInt    `json:"id"`
	IdEmpleado          FlexInt    `json:"id_empleado"`
	Nombre              string     `json:"nombre"`
	Apellido            string     `json:"apellido"`
	Dui                 string     `json:"dui"`
	Telefono            string     `json:"telefono"`
	Correo              string     `json:"correo"`
	Direccion           string     `json:"direccion"`
	Departamento        string     `json:"departamento"`
	Puesto              string     `json:"puesto"`
	FechaContratacion   string     `json:"fecha_contratacion"`
	FechaNacimiento     string     `json:"fecha_nacimiento"`
	Sexo                string     `json:"sexo"`
	SalarioBase         FlexFloat  `json:"salario_base"`
	Bonificacion        FlexFloat  `json:"bonificacion"`
	Descuento           FlexFloat  `json:"descuento"`
	SalarioBruto        FlexFloat  `json:"salario_bruto"`
	SalarioNeto         FlexFloat  `json:"salario_neto"`
	EvaluacionDesempeno FlexFloat  `json:"evaluacion_desempeno"`
	Estado              FlexString `json:"estado"`
	UpdatedAt           string     `json:"updated_at"`
}

// ID retorna el identificador normalizado (id o id_empleado según generación del API).
func (e Empleado) ID() int {
	if e.IdEmpleado != 0 {
		return int(e.IdEmpleado)
	}
	return int(e.Id)
}

// EsActivo interpreta el flag de estado en cualquiera de sus representaciones.
func (e Empleado) EsActivo() bool {
	switch strings.ToLower(strings.TrimSpace(e.Estado.String())) {
	case "1", "true", "activo":
		return true
	}
	return false
}

// EstadoNombre devuelve Activo/Inactivo para presentación.
func (e Empleado) EstadoNombre() string {
	if e.EsActivo() {
		return EstadoActivo
	}
	return EstadoInactivo
}

// NormalizarID copia id en id_empleado cuando el backend solo envía id.
func (e *Empleado) NormalizarID() {
	if e.IdEmpleado == 0 && e.Id != 0 {
		e.IdEmpleado = e.Id
	}
}

// Paginacion describe la envoltura paginada que algunos backends usan en el listado.
type Paginacion struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	CurrentPage int `json:"current_page"`
}

type listadoEnvuelto struct {
	Data        []Empleado `json:"data"`
	Total       FlexInt    `json:"total"`
	PerPage     FlexInt    `json:"per_page"`
	LastPage    FlexInt    `json:"last_page"`
	CurrentPage FlexInt    `json:"current_page"`
}

// DecodeListado acepta un arreglo plano o la envoltura {data, total, per_page, ...}.
func DecodeListado(raw []byte) ([]Empleado, *Paginacion, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return []Empleado{}, nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var list []Empleado
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, nil, err
		}
		for i := range list {
			list[i].NormalizarID()
		}
		return list, nil, nil
	}
	var env listadoEnvuelto
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, err
	}
	for i := range env.Data {
		env.Data[i].NormalizarID()
	}
	pag := &Paginacion{
		Total:       int(env.Total),
		PerPage:     int(env.PerPage),
		LastPage:    int(env.LastPage),
		CurrentPage: int(env.CurrentPage),
	}
	return env.Data, pag, nil
}
