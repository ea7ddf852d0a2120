package inventory

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// MaxStockLevel tope de cantidades y niveles de stock (ancho de las columnas INTEGER).
const MaxStockLevel = math.MaxInt32

// ParseQuantity valida la cantidad del formulario: entero base 10 positivo, hasta MaxStockLevel.
func ParseQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, domain.NewValidationError("quantity", "ingrese una cantidad válida")
	}
	q, err := strconv.Atoi(s)
	if err != nil || q <= 0 {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange && !strings.HasPrefix(s, "-") {
			return 0, domain.NewValidationError("quantity", "la cantidad supera el máximo admitido")
		}
		return 0, domain.NewValidationError("quantity", "ingrese una cantidad válida")
	}
	if q > MaxStockLevel {
		return 0, domain.NewValidationError("quantity", "la cantidad supera el máximo admitido")
	}
	return q, nil
}

// ApplyMovement stock resultante: add suma; remove resta con piso en 0 (sin error si excede).
// clamped es true cuando la salida solicitada superaba el stock disponible.
// Una entrada que dejaría el stock por encima de MaxStockLevel devuelve ValidationError.
func ApplyMovement(current int, typ entity.MovementType, quantity int) (newStock int, clamped bool, err error) {
	if typ == entity.MovementAdd {
		if quantity > MaxStockLevel-current {
			return current, false, domain.NewValidationError("quantity", "el stock resultante supera el máximo admitido")
		}
		return current + quantity, false, nil
	}
	next := current - quantity
	if next < 0 {
		return 0, true, nil
	}
	return next, false, nil
}
