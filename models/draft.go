package models

import "strings"

// EmpleadoDraft es el borrador que envía el formulario antes de persistir.
// Los campos numéricos se conservan como texto tal cual los escribió el
// usuario: la validación de decimales necesita el valor sin redondear.
type EmpleadoDraft struct {
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
	SalarioBase         FlexString `json:"salario_base"`
	Bonificacion        FlexString `json:"bonificacion"`
	Descuento           FlexString `json:"descuento"`
	EvaluacionDesempeno FlexString `json:"evaluacion_desempeno"`
	Estado              string     `json:"estado"`
}

// NormalizarEstado lleva el estado al estilo del backend: 'Activo' o 'Inactivo'.
func (d *EmpleadoDraft) NormalizarEstado() {
	s := strings.TrimSpace(d.Estado)
	if s == "" {
		return
	}
	d.Estado = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
