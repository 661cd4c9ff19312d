package services_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-sv/empleados_mid/helpers"
	"github.com/talento-sv/empleados_mid/services"
)

// backend es el API de empleados falso contra el que corren todos los tests.
// El handler se intercambia por test; la configuración global apunta aquí
// desde TestMain porque la base URL se resuelve una sola vez.
var backend struct {
	mu      sync.Mutex
	handler http.HandlerFunc
}

func setBackend(h http.HandlerFunc) {
	backend.mu.Lock()
	backend.handler = h
	backend.mu.Unlock()
}

func TestMain(m *testing.M) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backend.mu.Lock()
		h := backend.handler
		backend.mu.Unlock()
		if h == nil {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	defer srv.Close()

	os.Setenv("EMPLEADOS_API_BASE_URL", srv.URL+"/api/v1/empleados")
	os.Setenv("RETRY_COUNT", "0")
	os.Exit(m.Run())
}

func respondJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func TestListEmpleadosArregloPlano(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/empleados", r.URL.Path)
		respondJSON(w, 200, `[{"id":1,"nombre":"Ana","apellido":"Pérez","salario_base":"1200.50"}]`)
	})

	list, pag, err := services.ListEmpleados(nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, pag)
	assert.Equal(t, 1, list[0].ID())
	assert.Equal(t, "Ana", list[0].Nombre)
	assert.InDelta(t, 1200.50, list[0].SalarioBase.Value, 0.001)
}

func TestListEmpleadosEnvolturaPaginada(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, 200, `{"data":[{"id_empleado":7,"nombre":"Luis"}],"total":1,"per_page":20,"last_page":1,"current_page":1}`)
	})

	list, pag, err := services.ListEmpleados(nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, pag)
	assert.Equal(t, 7, list[0].ID())
	assert.Equal(t, 1, pag.Total)
	assert.Equal(t, 20, pag.PerPage)
}

func TestListEmpleadosOmiteParametrosVacios(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("with_inactive"))
		assert.False(t, r.URL.Query().Has("busqueda"))
		respondJSON(w, 200, `[]`)
	})

	_, _, err := services.ListEmpleados(map[string]string{"with_inactive": "true", "busqueda": ""})
	require.NoError(t, err)
}

func TestGetEmpleadoDirecto(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/empleados/5", r.URL.Path)
		respondJSON(w, 200, `{"id":5,"nombre":"Mario","estado":"Activo"}`)
	})

	emp, err := services.GetEmpleado(5, false)
	require.NoError(t, err)
	assert.Equal(t, 5, emp.ID())
	assert.True(t, emp.EsActivo())
}

func TestGetEmpleado404CaeAlListadoConInactivos(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/empleados/9" {
			respondJSON(w, 404, `{"message":"Not Found"}`)
			return
		}
		assert.Equal(t, "true", r.URL.Query().Get("with_inactive"))
		respondJSON(w, 200, `[{"id":9,"nombre":"Rosa","estado":0}]`)
	})

	emp, err := services.GetEmpleado(9, false)
	require.NoError(t, err)
	assert.Equal(t, 9, emp.ID())
	assert.Equal(t, "Inactivo", emp.EstadoNombre())
}

func TestGetEmpleado404SinRespaldoConservaElError(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/empleados/9" {
			respondJSON(w, 404, `{"message":"Not Found"}`)
			return
		}
		respondJSON(w, 200, `[]`)
	})

	_, err := services.GetEmpleado(9, false)
	require.Error(t, err)
	assert.True(t, helpers.IsHTTPError(err, 404))
}

func TestGetEmpleadoConInactivosNoReintenta404(t *testing.T) {
	var llamadas int
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		respondJSON(w, 404, `{"message":"Not Found"}`)
	})

	_, err := services.GetEmpleado(9, true)
	require.Error(t, err)
	assert.Equal(t, 1, llamadas)
}

func TestCreateEmpleado409LlegaComoHTTPError(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		respondJSON(w, 409, `{"field":"dui","message":"DUI ya existe: 12345678-9"}`)
	})

	_, err := services.CreateEmpleado(map[string]interface{}{"dui": "12345678-9"})
	require.Error(t, err)
	he := helpers.AsHTTPError(err)
	require.NotNil(t, he)
	assert.Equal(t, 409, he.Status)
	assert.Contains(t, he.Body, "DUI ya existe")
}

func TestDeleteEmpleadoForce(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/empleados/3", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, services.DeleteEmpleado(3, true))
}

func TestDeleteEmpleadoSoftSinForce(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("force"))
		respondJSON(w, 200, `{"message":"deleted"}`)
	})

	require.NoError(t, services.DeleteEmpleado(3, false))
}

func TestGetEstadisticasRutaRaiz(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/estadisticas", r.URL.Path)
		respondJSON(w, 200, `{"total_empleados":4}`)
	})

	raw, err := services.GetEstadisticas()
	require.NoError(t, err)
	assert.Contains(t, raw, "total_empleados")
}

func TestGetEstadisticasCaeALaRutaDelRecurso(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/estadisticas" {
			respondJSON(w, 404, `{"message":"Not Found"}`)
			return
		}
		assert.Equal(t, "/api/v1/empleados/estadisticas", r.URL.Path)
		respondJSON(w, 200, `{"totalEmpleados":4}`)
	})

	raw, err := services.GetEstadisticas()
	require.NoError(t, err)
	assert.Contains(t, raw, "totalEmpleados")
}

func TestGetEstadisticasPreservaElPrimerError(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/estadisticas" {
			respondJSON(w, 401, `{"message":"Unauthenticated"}`)
			return
		}
		respondJSON(w, 404, `{"message":"Not Found"}`)
	})

	_, err := services.GetEstadisticas()
	require.Error(t, err)
	assert.True(t, helpers.IsHTTPError(err, 401))
}

func TestGetCalculosPasaParametros(t *testing.T) {
	setBackend(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/empleados/2/calculos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("anios"))
		respondJSON(w, 200, `{"salario_neto":950.25,"edad":31}`)
	})

	calc, err := services.GetCalculos(2, map[string]string{"anios": "5"})
	require.NoError(t, err)
	assert.InDelta(t, 950.25, calc["salario_neto"], 0.001)
}
