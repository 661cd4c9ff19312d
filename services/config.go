package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/talento-sv/empleados_mid/helpers"

	beego "github.com/beego/beego/v2/server/web"
)

// DefaultEmpleadosAPIBaseURL es el backend local de desarrollo.
const DefaultEmpleadosAPIBaseURL = "http://localhost:8000/api/v1/empleados"

// Config centraliza la configuración necesaria para hablar con el API de empleados.
type Config struct {
	AppName             string
	HTTPPort            int
	RunMode             string
	EmpleadosAPIBaseURL string
	APIBearerToken      string
	RequestTimeout      time.Duration
	RetryCount          int
	PreferenciasPath    string
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = Config{
			AppName:             getString("APP_NAME", "appname", "empleados_mid"),
			HTTPPort:            getInt("HTTP_PORT", "httpport", 8080),
			RunMode:             getString("RUN_MODE", "runmode", "dev"),
			EmpleadosAPIBaseURL: normalizeBase(getString("EMPLEADOS_API_BASE_URL", "empleados_api_base_url", DefaultEmpleadosAPIBaseURL)),
			APIBearerToken:      getString("EMPLEADOS_API_TOKEN", "empleados_api_token", ""),
			RequestTimeout:      time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
			RetryCount:          getInt("RETRY_COUNT", "retry_count", 2),
			PreferenciasPath:    getString("PREFERENCIAS_PATH", "preferencias_path", "data/preferencias.json"),
		}

		helpers.SetDefaultRetryCount(cfg.RetryCount)
	})
	return cfg
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}

// APIRoot retira el sufijo /empleados de la base para alcanzar rutas raíz
// como /estadisticas.
func APIRoot(base string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	lower := strings.ToLower(trimmed)
	if strings.HasSuffix(lower, "/empleados") {
		return trimmed[:len(trimmed)-len("/empleados")]
	}
	return trimmed
}

// AddAPIAuth agrega el header Authorization si el token está configurado.
func AddAPIAuth(headers map[string]string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}
	token := GetConfig().APIBearerToken
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}
