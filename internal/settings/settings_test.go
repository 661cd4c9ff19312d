package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/talento-sv/empleados_mid/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaults(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "prefs.json")
	s := settings.NewStore(ruta)
	assert.False(t, s.Get().ModoOscuro)
}

func TestStoreEscrituraYLectura(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "anidado", "prefs.json")
	s := settings.NewStore(ruta)
	require.NoError(t, s.SetModoOscuro(true))

	// el valor sobrevive a un "reinicio" (nuevo store sobre el mismo archivo)
	s2 := settings.NewStore(ruta)
	assert.True(t, s2.Get().ModoOscuro)

	require.NoError(t, s2.SetModoOscuro(false))
	s3 := settings.NewStore(ruta)
	assert.False(t, s3.Get().ModoOscuro)
}

func TestStoreArchivoCorrupto(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(ruta, []byte("{no es json"), 0o644))

	s := settings.NewStore(ruta)
	assert.False(t, s.Get().ModoOscuro)
}
