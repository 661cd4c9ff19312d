// helpers/http_client.go
package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ---------- Cliente JSON contra el API de empleados + RETRIES ----------

// HTTPError envuelve códigos de estado no exitosos para permitir un manejo granular
// (409 duplicado, 404 registro inactivo, etc.).
type HTTPError struct {
	Status int
	Body   string
}

// Error imprime el estado y cuerpo asociado.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// IsHTTPError permite consultar si el error corresponde a un status específico.
func IsHTTPError(err error, status int) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status == status
	}
	return false
}

// AsHTTPError extrae el HTTPError subyacente cuando exista.
func AsHTTPError(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	return nil
}

// Config global de reintentos (retro-compatible)
var (
	defaultRetryCount  = 0
	defaultBackoffBase = 300 * time.Millisecond
	maxBackoff         = 3 * time.Second
)

func SetDefaultRetryCount(n int) {
	if n < 0 {
		n = 0
	}
	defaultRetryCount = n
}

func SetRetryBackoff(baseMs int) {
	if baseMs <= 0 {
		baseMs = 300
	}
	defaultBackoffBase = time.Duration(baseMs) * time.Millisecond
}

// DoJSONWithHeaders serializa in (si aplica), ejecuta la petición y decodifica
// la respuesta en out. Un status fuera de 2xx retorna *HTTPError con el cuerpo
// crudo; un 204 o cuerpo vacío se trata como éxito sin datos. Aplica reintentos
// solo sobre fallas transitorias.
func DoJSONWithHeaders(method, url string, headers map[string]string, in any, out any, timeout time.Duration) error {
	// Serializa body una vez
	var body []byte
	var err error
	if in != nil {
		body, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}

	doOnce := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewBuffer(body)
		}
		req, err := http.NewRequest(method, url, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		client := &http.Client{Timeout: timeout}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			b, _ := io.ReadAll(resp.Body)
			return &HTTPError{
				Status: resp.StatusCode,
				Body:   strings.TrimSpace(string(b)),
			}
		}

		if out == nil || resp.StatusCode == http.StatusNoContent {
			io.Copy(io.Discard, resp.Body)
			return nil
		}

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if len(bodyBytes) == 0 {
			return nil
		}

		return json.Unmarshal(bodyBytes, out)
	}

	var attempt int
	for {
		err = doOnce()
		if err == nil {
			return nil
		}
		if attempt >= defaultRetryCount || !isRetryableErr(err) {
			return err
		}
		time.Sleep(backoffFor(attempt))
		attempt++
	}
}

// DoJSONRaw es la variante que entrega el cuerpo sin decodificar, para
// payloads cuya forma varía entre generaciones del backend (estadísticas).
func DoJSONRaw(method, url string, headers map[string]string, timeout time.Duration) ([]byte, error) {
	var raw []byte
	doOnce := func() error {
		req, err := http.NewRequest(method, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		client := &http.Client{Timeout: timeout}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &HTTPError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
		}
		raw = b
		return nil
	}

	var attempt int
	for {
		err := doOnce()
		if err == nil {
			return raw, nil
		}
		if attempt >= defaultRetryCount || !isRetryableErr(err) {
			return nil, err
		}
		time.Sleep(backoffFor(attempt))
		attempt++
	}
}

func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && (netErr.Timeout() || netErr.Temporary()) {
		return true
	}
	l := strings.ToLower(err.Error())
	if strings.HasPrefix(l, "http 500") || strings.HasPrefix(l, "http 502") ||
		strings.HasPrefix(l, "http 503") || strings.HasPrefix(l, "http 504") {
		return true
	}
	return strings.Contains(l, "timeout") ||
		strings.Contains(l, "connection reset") ||
		strings.Contains(l, "temporary") ||
		strings.Contains(l, "server closed idle connection")
}

func backoffFor(attempt int) time.Duration {
	d := defaultBackoffBase << attempt
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}
