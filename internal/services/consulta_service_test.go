package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-sv/empleados_mid/models"
)

func empleadosDePrueba() []models.Empleado {
	return []models.Empleado{
		{Id: 1, Nombre: "Ana", Apellido: "Pérez", Dui: "11111111-1", Correo: "ana@ejemplo.com", Telefono: "503-1111-2222", Puesto: "Analista", Departamento: "Finanzas", Estado: "Activo", SalarioBase: models.FlexFloat{Value: 1200, Valid: true}},
		{Id: 2, Nombre: "Luis", Apellido: "Gómez", Dui: "22222222-2", Correo: "luis@ejemplo.com", Telefono: "503-3333-4444", Puesto: "Gerente", Departamento: "TI", Estado: "Activo", SalarioBase: models.FlexFloat{Value: 2500, Valid: true}},
		{Id: 3, Nombre: "Rosa", Apellido: "Anaya", Dui: "33333333-3", Correo: "rosa@ejemplo.com", Telefono: "503-5555-6666", Puesto: "Analista", Departamento: "Finanzas", Estado: "Inactivo", SalarioBase: models.FlexFloat{Value: 900, Valid: true}},
	}
}

func TestFiltrarPorBusquedaNombreCompleto(t *testing.T) {
	res := FiltrarEmpleados(empleadosDePrueba(), FiltrosListado{Busqueda: "ana p"})
	require.Len(t, res, 1)
	assert.Equal(t, "Ana", res[0].Nombre)
}

func TestFiltrarBusquedaCubreDUICorreoTelefono(t *testing.T) {
	casos := map[string]int{
		"22222222": 2,
		"rosa@":    3,
		"5555":     3,
	}
	for q, id := range casos {
		res := FiltrarEmpleados(empleadosDePrueba(), FiltrosListado{Busqueda: q})
		require.Len(t, res, 1, "busqueda %q", q)
		assert.Equal(t, id, res[0].ID(), "busqueda %q", q)
	}
}

func TestFiltrosCombinados(t *testing.T) {
	f := FiltrosListado{Puesto: "Analista", Departamento: "Finanzas", Estado: "Activo"}
	res := FiltrarEmpleados(empleadosDePrueba(), f)
	require.Len(t, res, 1)
	assert.Equal(t, 1, res[0].ID())
}

func TestFiltroSalarioMayorQue(t *testing.T) {
	res := FiltrarEmpleados(empleadosDePrueba(), FiltrosListado{SalarioMonto: "1000", SalarioComp: ">"})
	require.Len(t, res, 2)
}

func TestFiltroSalarioMenorQue(t *testing.T) {
	res := FiltrarEmpleados(empleadosDePrueba(), FiltrosListado{SalarioMonto: "1,000.00", SalarioComp: "<"})
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].ID())
}

func TestFiltroSalarioExcluyeSinMonto(t *testing.T) {
	lista := append(empleadosDePrueba(), models.Empleado{Id: 4, Nombre: "Sin", Apellido: "Salario"})
	res := FiltrarEmpleados(lista, FiltrosListado{SalarioMonto: "100", SalarioComp: ">"})
	for _, e := range res {
		assert.True(t, e.SalarioBase.Valid)
	}
}

func TestFiltroEstadoIgnoraMayusculas(t *testing.T) {
	res := FiltrarEmpleados(empleadosDePrueba(), FiltrosListado{Estado: "inactivo"})
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].ID())
}

func TestFiltroMontoInvalidoNoFiltra(t *testing.T) {
	res := FiltrarEmpleados(empleadosDePrueba(), FiltrosListado{SalarioMonto: "abc"})
	assert.Len(t, res, 3)
}

func TestConstruirPayloadConvierteMontos(t *testing.T) {
	d := models.EmpleadoDraft{
		Nombre:      "Ana",
		SalarioBase: "1,200.50",
		Descuento:   "",
		Estado:      "Activo",
	}
	payload := construirPayload(d)
	assert.InDelta(t, 1200.50, payload["salario_base"], 0.001)
	_, tieneDescuento := payload["descuento"]
	assert.False(t, tieneDescuento)
	assert.Equal(t, "Activo", payload["estado"])
}

func TestMismoTelefonoIgnoraPrefijo(t *testing.T) {
	assert.True(t, mismoTelefono("503-1111-2222", "1111-2222"))
	assert.True(t, mismoTelefono("1111-2222", "503-1111-2222"))
	assert.False(t, mismoTelefono("", ""))
}
