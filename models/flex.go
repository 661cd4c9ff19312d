package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt permite deserializar valores que pueden venir como número, string o estructura {Id: ...}.
type FlexInt int

// UnmarshalJSON soporta formatos heterogéneos en las respuestas del API de empleados.
func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*fi = 0
		return nil
	}
	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		if raw, ok := obj["Id"]; ok && raw != nil {
			return fi.UnmarshalJSON(raw)
		}
		if raw, ok := obj["id"]; ok && raw != nil {
			return fi.UnmarshalJSON(raw)
		}
		*fi = 0
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*fi = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*fi = FlexInt(v)
		return nil
	default:
		var v int
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*fi = FlexInt(v)
		return nil
	}
}

// FlexFloat acepta números JSON o strings numéricos ("1,250.50" incluido).
// Valor inválido o nulo queda como no presente (Valid=false), nunca como cero implícito.
type FlexFloat struct {
	Value float64
	Valid bool
}

func (ff *FlexFloat) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*ff = FlexFloat{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		if s == "" {
			*ff = FlexFloat{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// el backend a veces manda texto no numérico; se trata como ausente
			*ff = FlexFloat{}
			return nil
		}
		*ff = FlexFloat{Value: v, Valid: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*ff = FlexFloat{Value: v, Valid: true}
	return nil
}

func (ff FlexFloat) MarshalJSON() ([]byte, error) {
	if !ff.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ff.Value)
}

// FlexString acepta strings o números JSON y los conserva como texto.
type FlexString string

func (fs *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*fs = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*fs = FlexString(s)
		return nil
	}
	*fs = FlexString(string(trimmed))
	return nil
}

func (fs FlexString) String() string { return string(fs) }
