package models

// PuntoAnual es un punto de la serie "salario neto promedio por año".
type PuntoAnual struct {
	Anio     int     `json:"anio"`
	Promedio float64 `json:"promedio"`
}

// PuntoDispersion relaciona evaluación de desempeño con salario base.
type PuntoDispersion struct {
	Evaluacion  float64 `json:"evaluacion"`
	SalarioBase float64 `json:"salario_base"`
}

// EstadisticasCanonicas es el modelo estable que consume el dashboard.
// Los punteros distinguen "no disponible" de cero; el front los pinta
// como N/A en lugar de inventar valores.
type EstadisticasCanonicas struct {
	TotalEmpleados     *int     `json:"total_empleados"`
	Activos            *int     `json:"activos"`
	Inactivos          *int     `json:"inactivos"`
	PromedioSalarios   *string  `json:"promedio_salarios"`
	PromedioAntiguedad *float64 `json:"promedio_antiguedad"`

	EmpleadosPorPuesto                map[string]int     `json:"empleados_por_puesto"`
	DistribucionSexo                  map[string]int     `json:"distribucion_sexo"`
	PorcentajeSexo                    map[string]int     `json:"porcentaje_sexo"`
	SalarioPromedioPorDepartamento    map[string]float64 `json:"salario_promedio_por_departamento"`
	EvaluacionPromedioPorDepartamento map[string]float64 `json:"evaluacion_promedio_por_departamento"`

	SalarioNetoPorAnio []PuntoAnual      `json:"salario_neto_por_anio"`
	Dispersion         []PuntoDispersion `json:"dispersion_evaluacion_salario"`

	RatioEvaluacionSalario *float64 `json:"ratio_evaluacion_salario"`
}
