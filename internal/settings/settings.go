package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/beego/beego/v2/core/logs"
)

// Preferencias son los ajustes de aplicación que sobreviven al proceso.
type Preferencias struct {
	ModoOscuro bool `json:"modo_oscuro"`
}

// Store mantiene las preferencias en memoria y las respalda en disco.
// Se carga una sola vez al inicio; el setter actualiza memoria y archivo
// en la misma operación. Nada más muta el estado.
type Store struct {
	mu    sync.Mutex
	ruta  string
	prefs Preferencias
}

// NewStore construye el store y carga el valor persistido si existe.
// Un archivo ausente o corrupto deja los defaults; no es un error fatal.
func NewStore(ruta string) *Store {
	s := &Store{ruta: ruta}
	data, err := os.ReadFile(ruta)
	if err != nil {
		if !os.IsNotExist(err) {
			logs.Warn("preferencias: no se pudo leer %s: %v", ruta, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.prefs); err != nil {
		logs.Warn("preferencias: contenido inválido en %s: %v", ruta, err)
		s.prefs = Preferencias{}
	}
	return s
}

// Get retorna una copia de las preferencias actuales.
func (s *Store) Get() Preferencias {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetModoOscuro actualiza el flag en memoria y lo escribe de inmediato a disco.
func (s *Store) SetModoOscuro(oscuro bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.ModoOscuro = oscuro
	return s.persistir()
}

func (s *Store) persistir() error {
	if dir := filepath.Dir(s.ruta); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.ruta, data, 0o644)
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
	defaultRuta  = "data/preferencias.json"
)

// SetDefaultPath fija la ruta del store por defecto; debe llamarse antes del
// primer Default().
func SetDefaultPath(ruta string) {
	if ruta != "" {
		defaultRuta = ruta
	}
}

// Default retorna el store único de la aplicación, inicializándolo una vez.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = NewStore(defaultRuta)
	})
	return defaultStore
}
