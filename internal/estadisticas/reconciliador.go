package estadisticas

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/talento-sv/empleados_mid/models"
)

// aliasCanonicos es la tabla de traducción de nombres de campo que ha usado
// el backend a través de sus revisiones. Se aplica una sola vez al ingerir el
// payload; el resto del sistema solo ve nombres canónicos.
var aliasCanonicos = map[string]string{
	"total":                             "total_empleados",
	"totalEmpleados":                    "total_empleados",
	"empleadosActivos":                  "activos",
	"empleadosInactivos":                "inactivos",
	"promedioSalario":                   "promedio_salarios",
	"promedioSalarios":                  "promedio_salarios",
	"promedioAntiguedadAnios":           "promedio_antiguedad",
	"promedioAntiguedad":                "promedio_antiguedad",
	"empleadosPorPuesto":                "empleados_por_puesto",
	"porEstado":                         "por_estado",
	"distribucionSexo":                  "distribucion_sexo",
	"salarioPromedioPorDepartamento":    "salario_promedio_por_departamento",
	"evaluacionPromedioPorDepartamento": "evaluacion_promedio_por_departamento",
	"salarioNetoPorAnio":                "salario_neto_por_anio",
	"ratioEvaluacionSalario":            "ratio_evaluacion_salario",
}

// Reconciliar normaliza el payload crudo de estadísticas y computa cualquier
// agregado que el servidor no haya enviado, usando el listado de empleados
// como fuente de respaldo.
func Reconciliar(raw map[string]json.RawMessage, fallback []models.Empleado) models.EstadisticasCanonicas {
	campos := ingerir(raw)

	// población de respaldo: el payload puede traer el listado embebido
	poblacion := decodeEmpleados(campos["empleados"])
	if len(poblacion) == 0 {
		poblacion = fallback
	}

	out := models.EstadisticasCanonicas{}

	out.EmpleadosPorPuesto = porPuesto(campos, poblacion)
	out.TotalEmpleados = totalEmpleados(campos, poblacion, out.EmpleadosPorPuesto)
	out.Activos, out.Inactivos = activosInactivos(campos, poblacion)
	out.PromedioSalarios = promedioSalarios(campos, poblacion)
	out.PromedioAntiguedad = decodeFloatPtr(campos["promedio_antiguedad"])

	out.DistribucionSexo = distribucionSexo(campos, poblacion)
	out.PorcentajeSexo = Porcentajes(out.DistribucionSexo)
	out.SalarioPromedioPorDepartamento = promedioPorDepartamento(campos["salario_promedio_por_departamento"], poblacion, salarioBaseDe)
	out.EvaluacionPromedioPorDepartamento = promedioPorDepartamento(campos["evaluacion_promedio_por_departamento"], poblacion, evaluacionDe)

	out.SalarioNetoPorAnio = serieAnual(campos["salario_neto_por_anio"], poblacion)
	out.Dispersion = dispersion(poblacion)
	out.RatioEvaluacionSalario = ratioEvaluacionSalario(campos, poblacion)

	return out
}

// ingerir aplica la tabla de alias en dos pasadas: primero las claves ya
// canónicas, después los alias, que solo llenan huecos. Un alias nunca pisa
// al canónico, sin importar el orden de iteración del mapa.
func ingerir(raw map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		if _, esAlias := aliasCanonicos[k]; !esAlias {
			out[k] = v
		}
	}

	// alias en orden fijo para que dos alias de la misma clave resuelvan igual
	// en cada llamada
	aliases := make([]string, 0, len(raw))
	for k := range raw {
		if _, esAlias := aliasCanonicos[k]; esAlias {
			aliases = append(aliases, k)
		}
	}
	sort.Strings(aliases)
	for _, k := range aliases {
		canon := aliasCanonicos[k]
		if existente, ok := out[canon]; !ok || len(existente) == 0 {
			out[canon] = raw[k]
		}
	}
	return out
}

func totalEmpleados(campos map[string]json.RawMessage, poblacion []models.Empleado, porPuesto map[string]int) *int {
	if v := decodeIntPtr(campos["total_empleados"]); v != nil {
		return v
	}
	if len(poblacion) > 0 {
		n := len(poblacion)
		return &n
	}
	if len(porPuesto) > 0 {
		suma := 0
		for _, c := range porPuesto {
			suma += c
		}
		return &suma
	}
	return nil
}

func activosInactivos(campos map[string]json.RawMessage, poblacion []models.Empleado) (*int, *int) {
	activos := decodeIntPtr(campos["activos"])
	inactivos := decodeIntPtr(campos["inactivos"])
	if activos != nil && inactivos != nil {
		return activos, inactivos
	}

	if raw, ok := campos["por_estado"]; ok {
		var porEstado map[string]json.RawMessage
		if err := json.Unmarshal(raw, &porEstado); err == nil {
			if activos == nil {
				activos = buscarEstado(porEstado, "activo")
			}
			if inactivos == nil {
				inactivos = buscarEstado(porEstado, "inactivo")
			}
		}
	}

	if (activos == nil || inactivos == nil) && len(poblacion) > 0 {
		a, i := 0, 0
		for _, e := range poblacion {
			if e.EsActivo() {
				a++
			} else {
				i++
			}
		}
		if activos == nil {
			activos = &a
		}
		if inactivos == nil {
			inactivos = &i
		}
	}
	return activos, inactivos
}

// buscarEstado tolera las variantes de casing que ha usado el backend
// (Activo / ACTIVO / activo).
func buscarEstado(porEstado map[string]json.RawMessage, objetivo string) *int {
	for k, v := range porEstado {
		if strings.ToLower(strings.TrimSpace(k)) == objetivo {
			return decodeIntPtr(v)
		}
	}
	return nil
}

func promedioSalarios(campos map[string]json.RawMessage, poblacion []models.Empleado) *string {
	if v := decodeFloatPtr(campos["promedio_salarios"]); v != nil {
		s := fmt.Sprintf("%.2f", *v)
		return &s
	}

	if raw, ok := campos["salarios"]; ok {
		var valores []models.FlexFloat
		if err := json.Unmarshal(raw, &valores); err == nil {
			suma, n := 0.0, 0
			for _, v := range valores {
				if v.Valid {
					suma += v.Value
					n++
				}
			}
			if n > 0 {
				s := fmt.Sprintf("%.2f", suma/float64(n))
				return &s
			}
		}
	}

	suma, n := 0.0, 0
	for _, e := range poblacion {
		if e.SalarioBase.Valid {
			suma += e.SalarioBase.Value
			n++
		}
	}
	if n > 0 {
		s := fmt.Sprintf("%.2f", suma/float64(n))
		return &s
	}
	return nil
}

func porPuesto(campos map[string]json.RawMessage, poblacion []models.Empleado) map[string]int {
	if m := decodeConteos(campos["empleados_por_puesto"]); len(m) > 0 {
		return m
	}
	if len(poblacion) == 0 {
		return nil
	}
	out := map[string]int{}
	for _, e := range poblacion {
		p := strings.TrimSpace(e.Puesto)
		if p == "" {
			p = "Desconocido"
		}
		out[p]++
	}
	return out
}

func distribucionSexo(campos map[string]json.RawMessage, poblacion []models.Empleado) map[string]int {
	if m := decodeConteos(campos["distribucion_sexo"]); len(m) > 0 {
		return m
	}
	if len(poblacion) == 0 {
		return nil
	}
	out := map[string]int{}
	for _, e := range poblacion {
		s := strings.TrimSpace(e.Sexo)
		if s == "" {
			s = "Desconocido"
		}
		out[s]++
	}
	return out
}

func promedioPorDepartamento(raw json.RawMessage, poblacion []models.Empleado, valorDe func(models.Empleado) (float64, bool)) map[string]float64 {
	if m := decodeValores(raw); len(m) > 0 {
		return m
	}
	if len(poblacion) == 0 {
		return nil
	}
	sumas := map[string]float64{}
	conteos := map[string]int{}
	for _, e := range poblacion {
		v, ok := valorDe(e)
		if !ok {
			continue
		}
		d := strings.TrimSpace(e.Departamento)
		if d == "" {
			d = "Desconocido"
		}
		sumas[d] += v
		conteos[d]++
	}
	if len(conteos) == 0 {
		return nil
	}
	out := make(map[string]float64, len(conteos))
	for d, suma := range sumas {
		out[d] = redondear2(suma / float64(conteos[d]))
	}
	return out
}

func salarioBaseDe(e models.Empleado) (float64, bool) {
	return e.SalarioBase.Value, e.SalarioBase.Valid
}

func evaluacionDe(e models.Empleado) (float64, bool) {
	return e.EvaluacionDesempeno.Value, e.EvaluacionDesempeno.Valid
}

// serieAnual prefiere la serie del servidor; si falta, agrupa el respaldo por
// el año de updated_at promediando el salario neto. Registros sin fecha
// parseable o sin neto numérico se excluyen en silencio.
func serieAnual(raw json.RawMessage, poblacion []models.Empleado) []models.PuntoAnual {
	if len(raw) > 0 {
		var serie []models.PuntoAnual
		if err := json.Unmarshal(raw, &serie); err == nil && len(serie) > 0 {
			sort.Slice(serie, func(i, j int) bool { return serie[i].Anio < serie[j].Anio })
			return serie
		}
		if m := decodeValores(raw); len(m) > 0 {
			serie = serie[:0]
			for k, v := range m {
				if anio, err := strconv.Atoi(strings.TrimSpace(k)); err == nil {
					serie = append(serie, models.PuntoAnual{Anio: anio, Promedio: v})
				}
			}
			sort.Slice(serie, func(i, j int) bool { return serie[i].Anio < serie[j].Anio })
			if len(serie) > 0 {
				return serie
			}
		}
	}

	sumas := map[int]float64{}
	conteos := map[int]int{}
	for _, e := range poblacion {
		t := parseFecha(e.UpdatedAt)
		if t.IsZero() || !e.SalarioNeto.Valid {
			continue
		}
		anio := t.Year()
		sumas[anio] += e.SalarioNeto.Value
		conteos[anio]++
	}
	if len(conteos) == 0 {
		return nil
	}
	serie := make([]models.PuntoAnual, 0, len(conteos))
	for anio, suma := range sumas {
		serie = append(serie, models.PuntoAnual{Anio: anio, Promedio: redondear2(suma / float64(conteos[anio]))})
	}
	sort.Slice(serie, func(i, j int) bool { return serie[i].Anio < serie[j].Anio })
	return serie
}

// dispersion arma evaluación vs salario base desde el respaldo, excluyendo
// registros con salario cero/ausente o sin evaluación.
func dispersion(poblacion []models.Empleado) []models.PuntoDispersion {
	var puntos []models.PuntoDispersion
	for _, e := range poblacion {
		if !e.SalarioBase.Valid || e.SalarioBase.Value == 0 || !e.EvaluacionDesempeno.Valid {
			continue
		}
		puntos = append(puntos, models.PuntoDispersion{
			Evaluacion:  e.EvaluacionDesempeno.Value,
			SalarioBase: e.SalarioBase.Value,
		})
	}
	return puntos
}

// ratioEvaluacionSalario queda nil (placeholder para la vista) cuando el
// denominador es cero o el numerador no está definido; nunca Inf/NaN.
func ratioEvaluacionSalario(campos map[string]json.RawMessage, poblacion []models.Empleado) *float64 {
	if v := decodeFloatPtr(campos["ratio_evaluacion_salario"]); v != nil {
		return v
	}

	sumaEval, nEval := 0.0, 0
	sumaSal, nSal := 0.0, 0
	for _, e := range poblacion {
		if e.EvaluacionDesempeno.Valid {
			sumaEval += e.EvaluacionDesempeno.Value
			nEval++
		}
		if e.SalarioBase.Valid {
			sumaSal += e.SalarioBase.Value
			nSal++
		}
	}
	if nEval == 0 || nSal == 0 {
		return nil
	}
	promSal := sumaSal / float64(nSal)
	if promSal == 0 {
		return nil
	}
	r := redondear2((sumaEval / float64(nEval)) / promSal)
	return &r
}

// Porcentajes calcula round(valor/suma*100) por categoría. Cada valor se
// redondea de forma independiente: la suma puede no dar exactamente 100 y
// eso se acepta, no se corrige.
func Porcentajes(conteos map[string]int) map[string]int {
	if len(conteos) == 0 {
		return nil
	}
	suma := 0
	for _, v := range conteos {
		suma += v
	}
	if suma == 0 {
		return nil
	}
	out := make(map[string]int, len(conteos))
	for k, v := range conteos {
		out[k] = int(math.Round(float64(v) / float64(suma) * 100))
	}
	return out
}

// ---------- decodificadores tolerantes ----------

func decodeEmpleados(raw json.RawMessage) []models.Empleado {
	if len(raw) == 0 {
		return nil
	}
	var list []models.Empleado
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	for i := range list {
		list[i].NormalizarID()
	}
	return list
}

func decodeIntPtr(raw json.RawMessage) *int {
	v := decodeFloatPtr(raw)
	if v == nil {
		return nil
	}
	n := int(math.Round(*v))
	return &n
}

func decodeFloatPtr(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var ff models.FlexFloat
	if err := json.Unmarshal(raw, &ff); err != nil || !ff.Valid {
		return nil
	}
	v := ff.Value
	return &v
}

// decodeConteos acepta un objeto {categoria: n} o un arreglo de pares
// {categoria, valor} con los nombres de clave que ha usado cada revisión.
func decodeConteos(raw json.RawMessage) map[string]int {
	valores := decodeValores(raw)
	if valores == nil {
		return nil
	}
	out := make(map[string]int, len(valores))
	for k, v := range valores {
		out[k] = int(math.Round(v))
	}
	return out
}

func decodeValores(raw json.RawMessage) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}

	var directo map[string]models.FlexFloat
	if err := json.Unmarshal(raw, &directo); err == nil {
		out := make(map[string]float64, len(directo))
		for k, v := range directo {
			if v.Valid {
				out[k] = v.Value
			}
		}
		if len(out) > 0 {
			return out
		}
		return nil
	}

	var pares []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &pares); err != nil {
		return nil
	}
	out := map[string]float64{}
	for _, par := range pares {
		categoria := primerString(par, "categoria", "category", "puesto", "departamento", "sexo", "estado", "anio", "label")
		valor := primerFloat(par, "valor", "value", "total", "count", "promedio", "cantidad")
		if categoria != "" && valor != nil {
			out[categoria] = *valor
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func primerString(par map[string]json.RawMessage, claves ...string) string {
	for _, k := range claves {
		if raw, ok := par[k]; ok {
			var fs models.FlexString
			if err := json.Unmarshal(raw, &fs); err == nil && strings.TrimSpace(fs.String()) != "" {
				return strings.TrimSpace(fs.String())
			}
		}
	}
	return ""
}

func primerFloat(par map[string]json.RawMessage, claves ...string) *float64 {
	for _, k := range claves {
		if raw, ok := par[k]; ok {
			if v := decodeFloatPtr(raw); v != nil {
				return v
			}
		}
	}
	return nil
}

func parseFecha(value string) time.Time {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t
	}
	return time.Time{}
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}
