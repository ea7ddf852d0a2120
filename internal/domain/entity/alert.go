package entity

import "time"

// AlertType tipo de alerta de umbral.
type AlertType string

const (
	AlertLowStock   AlertType = "low_stock"
	AlertOutOfStock AlertType = "out_of_stock"
	AlertHighStock  AlertType = "high_stock"
)

// Alert evento de umbral de stock. CurrentLevel es una instantánea del momento del disparo
// y nunca se recalcula; el estado vivo se deriva del Product actual.
type Alert struct {
	ID             string
	ProductID      string
	Type           AlertType
	Threshold      int
	CurrentLevel   int
	Triggered      bool
	AcknowledgedAt *time.Time
	Timestamp      time.Time // momento del disparo
}

// Active es true si la alerta está disparada y sin reconocer.
func (a Alert) Active() bool {
	return a.Triggered && a.AcknowledgedAt == nil
}

// Acknowledged es true si la alerta ya fue reconocida.
func (a Alert) Acknowledged() bool {
	return a.AcknowledgedAt != nil
}

// Clone devuelve una copia profunda (AcknowledgedAt incluido).
func (a Alert) Clone() Alert {
	if a.AcknowledgedAt != nil {
		t := *a.AcknowledgedAt
		a.AcknowledgedAt = &t
	}
	return a
}

// AlertPatch campos opcionales para Update.
type AlertPatch struct {
	ProductID      *string
	Type           *AlertType
	Threshold      *int
	CurrentLevel   *int
	Triggered      *bool
	AcknowledgedAt **time.Time
}

// Apply aplica el patch sobre una copia de la alerta.
func (p AlertPatch) Apply(a Alert) Alert {
	a = a.Clone()
	if p.ProductID != nil {
		a.ProductID = *p.ProductID
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Threshold != nil {
		a.Threshold = *p.Threshold
	}
	if p.CurrentLevel != nil {
		a.CurrentLevel = *p.CurrentLevel
	}
	if p.Triggered != nil {
		a.Triggered = *p.Triggered
	}
	if p.AcknowledgedAt != nil {
		if *p.AcknowledgedAt == nil {
			a.AcknowledgedAt = nil
		} else {
			t := **p.AcknowledgedAt
			a.AcknowledgedAt = &t
		}
	}
	return a
}
