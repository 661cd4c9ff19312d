package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/talento-sv/empleados_mid/models"
)

const (
	maxNombre = 100
	maxCampo  = 50
	maxCorreo = 200

	formatoFecha = "2006-01-02"

	// desfaseReferencia lleva "hoy" a UTC-6 sin importar la zona del proceso.
	desfaseReferencia = -6 * time.Hour
)

var (
	reDui      = regexp.MustCompile(`^\d{8}-\d$`)
	reTelefono = regexp.MustCompile(`^(503-)?\d{4}-\d{4}$`)
	reCorreo   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validador evalúa todas las reglas de negocio de un borrador de empleado.
// Ahora es inyectable para que las pruebas fijen la fecha de referencia.
type Validador struct {
	Ahora                  func() time.Time
	DiasExclusionRecientes int
}

// NewValidador construye el validador con los defaults de producción.
func NewValidador() *Validador {
	return &Validador{
		Ahora:                  time.Now,
		DiasExclusionRecientes: 2,
	}
}

// HoyReferencia retorna la fecha (sin hora) de "hoy" en la zona de referencia UTC−6.
func (v *Validador) HoyReferencia() time.Time {
	t := v.Ahora().UTC().Add(desfaseReferencia)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Validar retorna un mapa campo -> mensaje. Mapa vacío significa borrador
// válido. Las reglas se evalúan todas; no hay corto circuito entre campos.
func (v *Validador) Validar(d models.EmpleadoDraft) map[string]string {
	errs := map[string]string{}

	// obligatorios
	if strings.TrimSpace(d.Nombre) == "" {
		errs["nombre"] = "Nombre es obligatorio"
	}
	if strings.TrimSpace(d.Apellido) == "" {
		errs["apellido"] = "Apellido es obligatorio"
	}
	if strings.TrimSpace(d.Dui) == "" {
		errs["dui"] = "DUI es obligatorio"
	}
	if strings.TrimSpace(d.Telefono) == "" {
		errs["telefono"] = "Teléfono es obligatorio"
	}
	if strings.TrimSpace(d.Correo) == "" {
		errs["correo"] = "Correo es obligatorio"
	}
	if strings.TrimSpace(d.Direccion) == "" {
		errs["direccion"] = "Dirección es obligatoria"
	}
	if strings.TrimSpace(d.Departamento) == "" {
		errs["departamento"] = "Departamento es obligatorio"
	}
	if strings.TrimSpace(d.Puesto) == "" {
		errs["puesto"] = "Puesto es obligatorio"
	}
	if strings.TrimSpace(d.Sexo) == "" {
		errs["sexo"] = "Sexo es obligatorio"
	}
	if strings.TrimSpace(d.FechaNacimiento) == "" {
		errs["fecha_nacimiento"] = "Fecha de nacimiento es obligatoria"
	}
	if strings.TrimSpace(d.FechaContratacion) == "" {
		errs["fecha_contratacion"] = "Fecha de contratación es obligatoria"
	}
	if strings.TrimSpace(d.Estado) == "" {
		errs["estado"] = "Estado es obligatorio"
	}

	// longitudes
	if n := len([]rune(d.Nombre)); n > maxNombre {
		errs["nombre"] = "Nombre supera los 100 caracteres"
	}
	if n := len([]rune(d.Apellido)); n > maxNombre {
		errs["apellido"] = "Apellido supera los 100 caracteres"
	}
	if n := len([]rune(d.Departamento)); n > maxCampo {
		errs["departamento"] = "Departamento supera los 50 caracteres"
	}
	if n := len([]rune(d.Puesto)); n > maxCampo {
		errs["puesto"] = "Puesto supera los 50 caracteres"
	}
	if n := len([]rune(d.Correo)); n > maxCorreo {
		errs["correo"] = "Correo supera los 200 caracteres"
	}

	// formatos
	if d.Dui != "" && !reDui.MatchString(d.Dui) {
		errs["dui"] = "Formato DUI inválido. Debe ser xxxxxxxx-x"
	}
	if d.Telefono != "" && !reTelefono.MatchString(d.Telefono) {
		errs["telefono"] = "Teléfono inválido. Debe ser 503-xxxx-xxxx"
	}
	if d.Correo != "" && !reCorreo.MatchString(d.Correo) {
		errs["correo"] = "Correo inválido"
	}

	// catálogos cerrados
	if d.Sexo != "" && !models.EsSexoValido(d.Sexo) {
		errs["sexo"] = "Sexo inválido"
	}
	if d.Estado != "" {
		switch strings.ToLower(strings.TrimSpace(d.Estado)) {
		case "activo", "inactivo", "1", "0":
		default:
			errs["estado"] = "Estado inválido"
		}
	}

	// montos
	v.validarMonto(errs, "salario_base", d.SalarioBase.String(), "Salario base")
	v.validarMonto(errs, "bonificacion", d.Bonificacion.String(), "Bonificación")
	v.validarMonto(errs, "descuento", d.Descuento.String(), "Descuento")
	v.validarEvaluacion(errs, d.EvaluacionDesempeno.String())

	// coherencia de fechas: solo cuando ambas están presentes y parsean
	v.validarFechas(errs, d.FechaNacimiento, d.FechaContratacion)

	return errs
}

func (v *Validador) validarMonto(errs map[string]string, campo, raw, etiqueta string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		if _, ok := errs[campo]; !ok {
			errs[campo] = etiqueta + " es obligatorio"
		}
		return
	}
	num, ok := ParseNumero(s)
	if !ok {
		errs[campo] = etiqueta + " debe ser un número"
		return
	}
	if num < 0 {
		errs[campo] = etiqueta + " inválido"
		return
	}
	if !tieneMaxDecimales(num, 2) {
		errs[campo] = etiqueta + " admite máximo 2 decimales"
	}
}

func (v *Validador) validarEvaluacion(errs map[string]string, raw string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		errs["evaluacion_desempeno"] = "Evaluación de desempeño es obligatoria"
		return
	}
	num, ok := ParseNumero(s)
	if !ok {
		errs["evaluacion_desempeno"] = "Evaluación debe ser un número"
		return
	}
	if num < 0 || num > 100 {
		errs["evaluacion_desempeno"] = "Evaluación debe estar entre 0 y 100"
		return
	}
	if !tieneMaxDecimales(num, 1) {
		errs["evaluacion_desempeno"] = "Evaluación admite máximo 1 decimal"
	}
}

func (v *Validador) validarFechas(errs map[string]string, nacimientoRaw, contratacionRaw string) {
	hoy := v.HoyReferencia()

	var nacimiento, contratacion time.Time
	var okNac, okCon bool

	if s := strings.TrimSpace(nacimientoRaw); s != "" {
		if t, err := time.Parse(formatoFecha, s); err == nil {
			nacimiento, okNac = t, true
		} else {
			errs["fecha_nacimiento"] = "Fecha de nacimiento inválida"
		}
	}
	if s := strings.TrimSpace(contratacionRaw); s != "" {
		if t, err := time.Parse(formatoFecha, s); err == nil {
			contratacion, okCon = t, true
		} else {
			errs["fecha_contratacion"] = "Fecha de contratación inválida"
		}
	}

	if okNac && nacimiento.After(hoy) {
		errs["fecha_nacimiento"] = "La fecha de nacimiento debe ser hoy o anterior (zona UTC-6)"
	}
	if okCon {
		if contratacion.After(hoy) {
			errs["fecha_contratacion"] = "La fecha debe ser hoy o anterior (zona UTC-6)"
		} else if contratacion.After(hoy.AddDate(0, 0, -v.DiasExclusionRecientes)) {
			errs["fecha_contratacion"] = "La fecha de contratación es demasiado reciente"
		}
	}

	if okNac && okCon {
		if contratacion.Before(nacimiento) {
			errs["fecha_contratacion"] = "La fecha de contratación no puede ser anterior al nacimiento"
		} else if nacimiento.AddDate(18, 0, 0).After(contratacion) {
			errs["fecha_nacimiento"] = "El empleado debe tener al menos 18 años a la fecha de contratación"
		}
	}
}

// ValidarDescuento aplica la regla cruzada descuento <= round2(base + bonificación).
// Se evalúa al enviar, después de la validación básica, porque requiere el bruto.
func ValidarDescuento(salarioBase, bonificacion, descuento string) (string, bool) {
	base, okB := ParseNumero(salarioBase)
	bono, okN := ParseNumero(bonificacion)
	desc, okD := ParseNumero(descuento)
	if !okB || !okN || !okD {
		return "", true
	}
	bruto := Redondear2(base + bono)
	if desc > bruto {
		return "El descuento no puede exceder el salario bruto", false
	}
	return "", true
}

// ParseNumero interpreta un monto con separadores de miles estilo locale.
func ParseNumero(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Redondear2 redondea a 2 decimales.
func Redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}

// tieneMaxDecimales compara el valor escalado contra su entero redondeado.
func tieneMaxDecimales(v float64, decimales int) bool {
	factor := math.Pow(10, float64(decimales))
	escalado := v * factor
	return math.Abs(escalado-math.Round(escalado)) < 1e-6
}
