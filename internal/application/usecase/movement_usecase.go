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

// MovementUseCase acceso directo al historial de movimientos. Create no toca el stock del
// producto; los ajustes pasan por inventory.AdjustStockUseCase.
type MovementUseCase struct {
	repo     repository.StockMovementRepository
	products repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository, products repository.ProductRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo, products: products}
}

// MovementFilter filtros de la página de movimientos.
type MovementFilter struct {
	Search string
	Type   string
	Reason string
}

// List movimientos filtrados, más reciente primero, con nombre y SKU resueltos.
func (uc *MovementUseCase) List(ctx context.Context, f MovementFilter) (*dto.MovementListResponse, error) {
	c := search.MovementCriteria{Search: f.Search, Reason: f.Reason}
	if f.Type != "" {
		t := entity.MovementType(f.Type)
		if !t.Valid() {
			return nil, domain.NewValidationError("type", "debe ser add o remove")
		}
		c.Type = t
	}
	movements, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := search.Movements(movements, products, c)
	inventory.SortMovementsNewestFirst(filtered)
	return dto.NewMovementList(filtered, products), nil
}

// Reasons razones distintas presentes en el historial.
func (uc *MovementUseCase) Reasons(ctx context.Context) ([]string, error) {
	movements, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Reasons(movements), nil
}

// GetByID obtiene un movimiento.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("movement", id)
	}
	return uc.respond(ctx, *m)
}

// Create agrega un movimiento al historial. Timestamp vacío = ahora.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" {
		return nil, domain.NewValidationError("productId", "es requerido")
	}
	t := entity.MovementType(in.Type)
	if !t.Valid() {
		return nil, domain.NewValidationError("type", "debe ser add o remove")
	}
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "ingrese una cantidad válida")
	}
	m := entity.StockMovement{
		ProductID: in.ProductID,
		Type:      t,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Notes:     in.Notes,
		UserID:    in.UserID,
	}
	if m.Reason == "" {
		m.Reason = entity.ReasonManualAdjustment
	}
	if m.UserID == "" {
		m.UserID = entity.DefaultUserID
	}
	if in.Timestamp != nil {
		m.Timestamp = *in.Timestamp
	} else {
		m.Timestamp = time.Now()
	}
	created, err := uc.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, *created)
}

// Update merge superficial de un movimiento.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	patch := entity.MovementPatch{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Notes:     in.Notes,
		Timestamp: in.Timestamp,
		UserID:    in.UserID,
	}
	if in.Type != nil {
		t := entity.MovementType(*in.Type)
		if !t.Valid() {
			return nil, domain.NewValidationError("type", "debe ser add o remove")
		}
		patch.Type = &t
	}
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "ingrese una cantidad válida")
	}
	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, *updated)
}

// Delete elimina un movimiento del historial.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) (*dto.MovementResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewMovementResponse(*deleted, nil)
	return &out, nil
}

func (uc *MovementUseCase) respond(ctx context.Context, m entity.StockMovement) (*dto.MovementResponse, error) {
	var byID map[string]entity.Product
	p, err := uc.products.GetByID(ctx, m.ProductID)
	if err == nil && p != nil {
		byID = map[string]entity.Product{p.ID: *p}
	}
	out := dto.NewMovementResponse(m, byID)
	return &out, nil
}
