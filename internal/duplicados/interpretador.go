package duplicados

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/talento-sv/empleados_mid/helpers"
)

// ConflictoDuplicado es el diagnóstico de un 409 por llave duplicada:
// el campo del formulario afectado (si se pudo inferir) y el mensaje a mostrar.
type ConflictoDuplicado struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// Campos con restricción de unicidad (o propensos a conflicto en el esquema
// extendido), en el orden en que se sondean dentro de un cuerpo estructurado.
var clavesDuplicables = []string{
	"dui", "duiValue", "email", "correo", "telefono", "phone",
	"salario", "salario_base", "departamento", "puesto", "sexo",
	"evaluacion", "evaluacion_desempeno",
}

const grupoCampos = `(dui|email|correo|telefono|phone|salario|departamento|puesto|sexo|evaluacion)`

// Heurísticas sobre texto plano, en orden de precedencia: la primera que
// calce gana.
var (
	reJSONEmbebido   = regexp.MustCompile(`(\{[\s\S]*\})`)
	reCampoDeclarado = regexp.MustCompile(`(?i)field\s*['"]?` + grupoCampos + `['"]?`)
	reLlaveDuplicada = regexp.MustCompile(`(?i)duplicate\s+key\s+['"]?` + grupoCampos + `['"]?`)
	reCampoValor     = regexp.MustCompile(`(?i)` + grupoCampos + `[:=]\s*([\w@\-.]+)`)
	reIndiceMongo    = regexp.MustCompile(`(?i)E11000.*?index:\s*.*?\.` + grupoCampos + `\b`)
	reDuplicado      = regexp.MustCompile(`(?i)duplicate|duplicad`)
	rePrefijoStatus  = regexp.MustCompile(`^\s*\d{3}\s*-\s*`)
)

// InterpretarConflicto intenta extraer {campo, mensaje} de un fallo por llave
// duplicada. Solo actúa sobre respuestas 409; cualquier otro error retorna nil
// y el llamador cae al formato genérico de banner.
func InterpretarConflicto(err error) *ConflictoDuplicado {
	he := helpers.AsHTTPError(err)
	if he == nil || he.Status != http.StatusConflict {
		return nil
	}

	cuerpo := strings.TrimSpace(he.Body)

	// 1) cuerpo estructurado (directo o JSON embebido en texto)
	if obj := extraerObjeto(cuerpo); obj != nil {
		if c := interpretarObjeto(obj); c != nil {
			return c
		}
	}

	// 2) heurísticas sobre el texto crudo
	if cuerpo != "" {
		if c := interpretarTexto(cuerpo); c != nil {
			return c
		}
	}

	// 3) es un 409 pero nada calzó
	return &ConflictoDuplicado{Mensaje: "Recurso duplicado (409)"}
}

func extraerObjeto(cuerpo string) map[string]interface{} {
	if cuerpo == "" {
		return nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(cuerpo), &obj); err == nil {
		return obj
	}
	if m := reJSONEmbebido.FindStringSubmatch(cuerpo); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &obj); err == nil {
			return obj
		}
	}
	return nil
}

func interpretarObjeto(obj map[string]interface{}) *ConflictoDuplicado {
	// pista explícita del campo
	var campo string
	for _, k := range []string{"field", "key", "tuple"} {
		if v, ok := obj[k]; ok {
			if c := NormalizarCampo(fmt.Sprint(v)); c != "" {
				campo = c
				break
			}
		}
	}

	// mensaje explícito
	var mensaje string
	for _, k := range []string{"message", "error"} {
		if v, ok := obj[k]; ok && v != nil {
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				mensaje = s
				break
			}
		}
	}

	// sin pista explícita: inferir por presencia de una clave duplicable
	if campo == "" {
		for _, k := range clavesDuplicables {
			if v, ok := obj[k]; ok && v != nil {
				campo = NormalizarCampo(k)
				if mensaje == "" {
					mensaje = fmt.Sprintf("%s ya existe: %v", strings.ToUpper(k), v)
				}
				break
			}
		}
	}

	if campo == "" && mensaje == "" {
		return nil
	}
	if mensaje == "" {
		b, _ := json.Marshal(obj)
		mensaje = string(b)
	}
	return &ConflictoDuplicado{Campo: campo, Mensaje: mensaje}
}

func interpretarTexto(texto string) *ConflictoDuplicado {
	var encontrado, valor string
	if m := reCampoDeclarado.FindStringSubmatch(texto); m != nil {
		encontrado = m[1]
	} else if m := reLlaveDuplicada.FindStringSubmatch(texto); m != nil {
		encontrado = m[1]
	} else if m := reCampoValor.FindStringSubmatch(texto); m != nil {
		encontrado = m[1]
		valor = m[2]
	} else if m := reIndiceMongo.FindStringSubmatch(texto); m != nil {
		encontrado = m[1]
	}

	if encontrado != "" {
		mensaje := texto
		if valor != "" {
			mensaje = fmt.Sprintf("%s ya existe: %s", strings.ToUpper(encontrado), valor)
		}
		return &ConflictoDuplicado{Campo: NormalizarCampo(encontrado), Mensaje: mensaje}
	}

	if reDuplicado.MatchString(texto) {
		return &ConflictoDuplicado{Mensaje: texto}
	}
	return nil
}

// NormalizarCampo lleva un nombre de campo reportado por cualquier generación
// del backend a la clave que usa el formulario.
func NormalizarCampo(k string) string {
	s := strings.ToLower(strings.TrimSpace(k))
	switch {
	case s == "":
		return ""
	case strings.Contains(s, "dui"):
		return "dui"
	case strings.Contains(s, "email"), strings.Contains(s, "correo"), strings.Contains(s, "mail"):
		return "correo"
	case strings.Contains(s, "phone"), strings.Contains(s, "telefono"), strings.Contains(s, "tel"):
		return "telefono"
	case strings.Contains(s, "salario"):
		return "salario_base"
	case strings.Contains(s, "departamento"):
		return "departamento"
	case strings.Contains(s, "puesto"):
		return "puesto"
	case strings.Contains(s, "sexo"):
		return "sexo"
	case strings.Contains(s, "evaluacion"):
		return "evaluacion_desempeno"
	}
	return ""
}

var etiquetas = map[string]string{
	"dui":                  "DUI",
	"telefono":             "Teléfono",
	"correo":               "Correo",
	"salario_base":         "Salario base",
	"departamento":         "Departamento",
	"puesto":               "Puesto",
	"sexo":                 "Sexo",
	"evaluacion_desempeno": "Evaluación",
}

// BannerAmistoso arma el aviso corto que acompaña al error de campo
// (evita volcar JSON crudo en pantalla).
func BannerAmistoso(c *ConflictoDuplicado) string {
	if c == nil {
		return ""
	}
	if c.Campo != "" {
		etiqueta := etiquetas[c.Campo]
		if etiqueta == "" {
			etiqueta = c.Campo
		}
		return fmt.Sprintf("El %s ya está en uso", etiqueta)
	}
	return "Ya existe un registro con valores duplicados"
}

const maxBanner = 300

// FormatearBanner condensa cualquier mensaje de error del servidor en un
// banner corto: quita el prefijo de status ("409 - "), busca un fragmento
// JSON con message/error y recorta textos muy largos.
func FormatearBanner(raw string) string {
	txt := strings.TrimSpace(raw)
	if txt == "" {
		return ""
	}
	txt = rePrefijoStatus.ReplaceAllString(txt, "")

	var obj map[string]interface{}
	candidato := txt
	if m := reJSONEmbebido.FindStringSubmatch(txt); m != nil {
		candidato = m[1]
	}
	if err := json.Unmarshal([]byte(candidato), &obj); err == nil && obj != nil {
		for _, k := range []string{"message", "error"} {
			if v, ok := obj[k]; ok && v != nil {
				if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
					return s
				}
			}
		}
		if v, ok := obj["dui"]; ok && v != nil {
			return fmt.Sprintf("DUI ya existe: %v", v)
		}
		b, _ := json.Marshal(obj)
		return string(b)
	}

	if runas := []rune(txt); len(runas) > maxBanner {
		return string(runas[:maxBanner]) + "…"
	}
	return txt
}

// FormatearBannerError es la variante sobre error; los HTTPError usan solo el
// cuerpo para no repetir el status dos veces.
func FormatearBannerError(err error) string {
	if err == nil {
		return ""
	}
	if he := helpers.AsHTTPError(err); he != nil && strings.TrimSpace(he.Body) != "" {
		return FormatearBanner(he.Body)
	}
	return FormatearBanner(err.Error())
}
