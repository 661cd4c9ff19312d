package validation

import (
	"math"
	"strconv"
	"strings"
)

const (
	duiDigitos      = 9
	telefonoDigitos = 8

	// PrefijoTelefono es el código de país fijo que el formulario antepone.
	PrefijoTelefono = "503-"
)

func soloDigitos(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizarDUI enmascara la entrada al formato canónico XXXXXXXX-X.
// Con menos de 9 dígitos devuelve la corrida de dígitos sin guion.
// Es idempotente sobre su propia salida.
func NormalizarDUI(raw string) string {
	digits := soloDigitos(raw)
	if len(digits) > duiDigitos {
		digits = digits[:duiDigitos]
	}
	if len(digits) > duiDigitos-1 {
		return digits[:duiDigitos-1] + "-" + digits[duiDigitos-1:]
	}
	return digits
}

// NormalizarTelefono agrupa la entrada como NNNN-NNNN.
func NormalizarTelefono(raw string) string {
	digits := soloDigitos(raw)
	if len(digits) > telefonoDigitos {
		digits = digits[:telefonoDigitos]
	}
	if len(digits) > 4 {
		return digits[:4] + "-" + digits[4:]
	}
	return digits
}

// NormalizarTelefonoConPrefijo es la variante con código de país fijo y no
// editable: el usuario solo escribe el resto después de "503-".
func NormalizarTelefonoConPrefijo(raw string) string {
	rest := NormalizarTelefono(strings.TrimPrefix(strings.TrimSpace(raw), PrefijoTelefono))
	return PrefijoTelefono + rest
}

// FormatearDecimal parsea un número con separadores de miles, lo redondea a la
// precisión dada y retorna el texto en punto fijo. Entrada vacía o no numérica
// se devuelve sin cambios.
func FormatearDecimal(valor string, decimales int) string {
	s := strings.ReplaceAll(strings.TrimSpace(valor), ",", "")
	if s == "" {
		return valor
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return valor
	}
	if decimales < 0 {
		decimales = 0
	}
	factor := math.Pow(10, float64(decimales))
	redondeado := math.Round(v*factor) / factor
	return strconv.FormatFloat(redondeado, 'f', decimales, 64)
}
