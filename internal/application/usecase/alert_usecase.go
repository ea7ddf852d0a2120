package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/domain/search"
)

// AlertUseCase pestañas de alertas y reconocimiento.
type AlertUseCase struct {
	repo     repository.AlertRepository
	products repository.ProductRepository
	now      func() time.Time
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository, products repository.ProductRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo, products: products, now: time.Now}
}

// List alertas de la pestaña ordenadas por prioridad, con los contadores de todas las pestañas.
func (uc *AlertUseCase) List(ctx context.Context, tab string) (*dto.AlertListResponse, error) {
	alerts, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	t := search.ParseAlertTab(tab)
	selected := search.Alerts(alerts, t)
	inventory.SortAlerts(selected)
	return &dto.AlertListResponse{
		Tab:   string(t),
		Items: dto.NewAlertResponses(selected, products),
		Counts: dto.AlertCounts{
			Total:        len(alerts),
			Active:       len(search.Alerts(alerts, search.TabActive)),
			Acknowledged: len(search.Alerts(alerts, search.TabAcknowledged)),
		},
	}, nil
}

// GetByID obtiene una alerta.
func (uc *AlertUseCase) GetByID(ctx context.Context, id string) (*dto.AlertResponse, error) {
	a, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, *a), nil
}

// Create registra una alerta disparada externamente.
func (uc *AlertUseCase) Create(ctx context.Context, in dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	if in.ProductID == "" {
		return nil, domain.NewValidationError("productId", "es requerido")
	}
	t, err := parseAlertType(in.Type)
	if err != nil {
		return nil, err
	}
	a := entity.Alert{
		ProductID:    in.ProductID,
		Type:         t,
		Threshold:    in.Threshold,
		CurrentLevel: in.CurrentLevel,
		Triggered:    in.Triggered,
		Timestamp:    uc.now(),
	}
	if in.Timestamp != nil {
		a.Timestamp = *in.Timestamp
	}
	created, err := uc.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, *created), nil
}

// Update merge superficial de una alerta.
func (uc *AlertUseCase) Update(ctx context.Context, id string, in dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	patch := entity.AlertPatch{
		Threshold:    in.Threshold,
		CurrentLevel: in.CurrentLevel,
		Triggered:    in.Triggered,
	}
	if in.Type != nil {
		t, err := parseAlertType(*in.Type)
		if err != nil {
			return nil, err
		}
		patch.Type = &t
	}
	if in.AcknowledgedAt != nil {
		patch.AcknowledgedAt = &in.AcknowledgedAt
	}
	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, *updated), nil
}

// Delete elimina una alerta.
func (uc *AlertUseCase) Delete(ctx context.Context, id string) (*dto.AlertResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewAlertResponse(*deleted, nil)
	return &out, nil
}

// Acknowledge marca la alerta como reconocida. Reconocer dos veces conserva la primera fecha.
func (uc *AlertUseCase) Acknowledge(ctx context.Context, id string) (*dto.AlertResponse, error) {
	a, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Acknowledged() {
		return uc.respond(ctx, *a), nil
	}
	now := uc.now()
	ack := &now
	updated, err := uc.repo.Update(ctx, id, entity.AlertPatch{AcknowledgedAt: &ack})
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, *updated), nil
}

func (uc *AlertUseCase) find(ctx context.Context, id string) (*entity.Alert, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound("alert", id)
	}
	return a, nil
}

func (uc *AlertUseCase) respond(ctx context.Context, a entity.Alert) *dto.AlertResponse {
	var products []entity.Product
	if p, err := uc.products.GetByID(ctx, a.ProductID); err == nil && p != nil {
		products = []entity.Product{*p}
	}
	out := dto.NewAlertResponse(a, dto.IndexProducts(products))
	return &out
}

func parseAlertType(s string) (entity.AlertType, error) {
	switch t := entity.AlertType(s); t {
	case entity.AlertLowStock, entity.AlertOutOfStock, entity.AlertHighStock:
		return t, nil
	}
	return "", domain.NewValidationError("type", "debe ser low_stock, out_of_stock o high_stock")
}
