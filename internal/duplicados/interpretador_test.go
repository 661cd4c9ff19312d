package duplicados_test

import (
	"errors"
	"testing"

	"github.com/talento-sv/empleados_mid/helpers"
	"github.com/talento-sv/empleados_mid/internal/duplicados"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conflicto409(body string) error {
	return &helpers.HTTPError{Status: 409, Body: body}
}

func TestInterpretarConflictoCuerpoEstructurado(t *testing.T) {
	err := conflicto409(`{"field":"dui","message":"DUI ya existe: 12345678-9"}`)
	c := duplicados.InterpretarConflicto(err)
	require.NotNil(t, c)
	assert.Equal(t, "dui", c.Campo)
	assert.Equal(t, "DUI ya existe: 12345678-9", c.Mensaje)
}

func TestInterpretarConflictoNoEsConflicto(t *testing.T) {
	assert.Nil(t, duplicados.InterpretarConflicto(&helpers.HTTPError{Status: 404, Body: "no encontrado"}))
	assert.Nil(t, duplicados.InterpretarConflicto(errors.New("fallo de red")))
	assert.Nil(t, duplicados.InterpretarConflicto(nil))
}

func TestInterpretarConflictoClaveConocidaSinMensaje(t *testing.T) {
	c := duplicados.InterpretarConflicto(conflicto409(`{"correo":"ana@ejemplo.com"}`))
	require.NotNil(t, c)
	assert.Equal(t, "correo", c.Campo)
	assert.Equal(t, "CORREO ya existe: ana@ejemplo.com", c.Mensaje)
}

func TestInterpretarConflictoJSONEmbebido(t *testing.T) {
	c := duplicados.InterpretarConflicto(conflicto409(`409 Conflict - {"field":"telefono","error":"Teléfono duplicado"}`))
	require.NotNil(t, c)
	assert.Equal(t, "telefono", c.Campo)
	assert.Equal(t, "Teléfono duplicado", c.Mensaje)
}

func TestInterpretarConflictoTextoCampoDeclarado(t *testing.T) {
	c := duplicados.InterpretarConflicto(conflicto409(`Duplicate value for field 'dui': 06612345-8`))
	require.NotNil(t, c)
	assert.Equal(t, "dui", c.Campo)
}

func TestInterpretarConflictoTextoLlaveDuplicada(t *testing.T) {
	c := duplicados.InterpretarConflicto(conflicto409(`ERROR: duplicate key 'correo' violates unique constraint`))
	require.NotNil(t, c)
	assert.Equal(t, "correo", c.Campo)
}

func TestInterpretarConflictoTextoCampoValor(t *testing.T) {
	c := duplicados.InterpretarConflicto(conflicto409(`conflicto: email: ana@ejemplo.com ya registrado`))
	require.NotNil(t, c)
	assert.Equal(t, "correo", c.Campo)
	assert.Equal(t, "EMAIL ya existe: ana@ejemplo.com", c.Mensaje)
}

func TestInterpretarConflictoIndiceMongo(t *testing.T) {
	c := duplicados.InterpretarConflicto(conflicto409(`E11000 duplicate key error collection: rrhh.empleados index: empleados.dui dup key`))
	require.NotNil(t, c)
	assert.Equal(t, "dui", c.Campo)
}

func TestInterpretarConflictoDuplicadoGenerico(t *testing.T) {
	c := duplicados.InterpretarConflicto(conflicto409(`registro duplicado en la base`))
	require.NotNil(t, c)
	assert.Empty(t, c.Campo)
	assert.Equal(t, "registro duplicado en la base", c.Mensaje)
}

func TestInterpretarConflictoSinSenales(t *testing.T) {
	c := duplicados.InterpretarConflicto(conflicto409(`algo salió mal`))
	require.NotNil(t, c)
	assert.Empty(t, c.Campo)
	assert.Equal(t, "Recurso duplicado (409)", c.Mensaje)
}

func TestNormalizarCampo(t *testing.T) {
	assert.Equal(t, "dui", duplicados.NormalizarCampo("duiValue"))
	assert.Equal(t, "correo", duplicados.NormalizarCampo("EMAIL"))
	assert.Equal(t, "telefono", duplicados.NormalizarCampo("phone_number"))
	assert.Equal(t, "salario_base", duplicados.NormalizarCampo("salario"))
	assert.Equal(t, "evaluacion_desempeno", duplicados.NormalizarCampo("evaluacion"))
	assert.Empty(t, duplicados.NormalizarCampo("otro"))
}

func TestBannerAmistoso(t *testing.T) {
	assert.Equal(t, "El DUI ya está en uso",
		duplicados.BannerAmistoso(&duplicados.ConflictoDuplicado{Campo: "dui"}))
	assert.Equal(t, "Ya existe un registro con valores duplicados",
		duplicados.BannerAmistoso(&duplicados.ConflictoDuplicado{}))
	assert.Empty(t, duplicados.BannerAmistoso(nil))
}

func TestFormatearBanner(t *testing.T) {
	assert.Equal(t, "correo inválido", duplicados.FormatearBanner(`409 - {"message":"correo inválido"}`))
	assert.Equal(t, "texto plano", duplicados.FormatearBanner("  texto plano "))
	assert.Equal(t, "DUI ya existe: 06612345-8", duplicados.FormatearBanner(`{"dui":"06612345-8"}`))

	largo := make([]byte, 0, 400)
	for i := 0; i < 400; i++ {
		largo = append(largo, 'x')
	}
	out := duplicados.FormatearBanner(string(largo))
	assert.Len(t, []rune(out), 301) // 300 + elipsis
}

func TestFormatearBannerError(t *testing.T) {
	err := &helpers.HTTPError{Status: 422, Body: `{"error":"regla de negocio"}`}
	assert.Equal(t, "regla de negocio", duplicados.FormatearBannerError(err))
	assert.Equal(t, "fallo de red", duplicados.FormatearBannerError(errors.New("fallo de red")))
	assert.Empty(t, duplicados.FormatearBannerError(nil))
}
