package models

// Catálogos cerrados usados por el formulario de empleados.
var (
	Puestos = []string{
		"Gerente",
		"Técnico",
		"Asistente",
		"Analista",
	}

	Departamentos = []string{
		"Recursos Humanos",
		"Finanzas",
		"Operaciones",
		"Ventas",
		"TI",
	}

	Sexos = []string{"M", "F", "O"}
)

// Estados del empleado según el API (1/0 o Activo/Inactivo dependiendo de la generación).
const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)

// EsSexoValido indica si el sexo pertenece al catálogo cerrado.
func EsSexoValido(s string) bool { return contiene(Sexos, s) }

func contiene(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
