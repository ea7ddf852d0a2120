package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje para el usuario.
type MessageResponse struct {
	Message string `json:"message"`
}

// QuantityInput cantidad tal como llega del formulario: acepta número JSON o string.
// La validación (entero positivo) la hace el caso de uso.
type QuantityInput string

// UnmarshalJSON acepta 5, "5" y null.
func (q *QuantityInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = QuantityInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*q = QuantityInput(n.String())
	return nil
}

// QuantityOf construye la entrada a partir de un entero (tests, clientes internos).
func QuantityOf(n int) QuantityInput {
	return QuantityInput(strconv.Itoa(n))
}
