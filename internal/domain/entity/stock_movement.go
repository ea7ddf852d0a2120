package entity

import "time"

// MovementType tipo de movimiento de stock.
type MovementType string

const (
	MovementAdd    MovementType = "add"    // entrada
	MovementRemove MovementType = "remove" // salida
)

// Valid indica si el tipo es add o remove.
func (t MovementType) Valid() bool {
	return t == MovementAdd || t == MovementRemove
}

// Razones conocidas de ajuste. Reason es texto libre; estas son las del formulario.
const (
	ReasonManualAdjustment = "manual_adjustment"
	ReasonDamaged          = "damaged"
	ReasonLost             = "lost"
	ReasonReturned         = "returned"
	ReasonCorrection       = "correction"
)

// DefaultUserID atribución cuando no hay usuario autenticado.
const DefaultUserID = "current_user"

// StockMovement registro inmutable de un cambio de stock. Quantity es la cantidad solicitada (> 0).
type StockMovement struct {
	ID        string
	ProductID string
	Type      MovementType
	Quantity  int
	Reason    string
	Notes     string
	Timestamp time.Time
	UserID    string
}

// MovementPatch campos opcionales para Update (ningún flujo de la UI lo usa).
type MovementPatch struct {
	ProductID *string
	Type      *MovementType
	Quantity  *int
	Reason    *string
	Notes     *string
	Timestamp *time.Time
	UserID    *string
}

// Apply aplica el patch sobre una copia del movimiento.
func (p MovementPatch) Apply(m StockMovement) StockMovement {
	if p.ProductID != nil {
		m.ProductID = *p.ProductID
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Quantity != nil {
		m.Quantity = *p.Quantity
	}
	if p.Reason != nil {
		m.Reason = *p.Reason
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if p.Timestamp != nil {
		m.Timestamp = *p.Timestamp
	}
	if p.UserID != nil {
		m.UserID = *p.UserID
	}
	return m
}
