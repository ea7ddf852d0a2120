package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/domain/search"
)

// SupplierUseCase casos de uso para proveedores y sus métricas.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	products repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, products repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, products: products}
}

// List proveedores filtrados con las métricas de cada tarjeta.
func (uc *SupplierUseCase) List(ctx context.Context, term string) (*dto.SupplierListResponse, error) {
	suppliers, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := search.Suppliers(suppliers, term)
	items := make([]dto.SupplierCardResponse, 0, len(filtered))
	for _, s := range filtered {
		items = append(items, dto.SupplierCardResponse{
			SupplierResponse: dto.NewSupplierResponse(s),
			Metrics:          dto.NewSupplierMetricsResponse(inventory.SupplierMetricsFor(s.ID, products)),
		})
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewSupplierResponse(*s)
	return &out, nil
}

// Metrics agregados de los productos del proveedor. Sin productos todo es cero.
func (uc *SupplierUseCase) Metrics(ctx context.Context, id string) (*dto.SupplierMetricsResponse, error) {
	if _, err := uc.find(ctx, id); err != nil {
		return nil, err
	}
	products, err := uc.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewSupplierMetricsResponse(inventory.SupplierMetricsFor(id, products))
	return &out, nil
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "el nombre es requerido")
	}
	if in.LeadTime < 0 {
		return nil, domain.NewValidationError("leadTime", "no puede ser negativo")
	}
	created, err := uc.repo.Create(ctx, entity.Supplier{
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       strings.TrimSpace(in.Email),
		Phone:       in.Phone,
		Address:     in.Address,
		LeadTime:    in.LeadTime,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewSupplierResponse(*created)
	return &out, nil
}

// Update merge superficial del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.NewValidationError("name", "el nombre no puede quedar vacío")
	}
	if in.LeadTime != nil && *in.LeadTime < 0 {
		return nil, domain.NewValidationError("leadTime", "no puede ser negativo")
	}
	updated, err := uc.repo.Update(ctx, id, entity.SupplierPatch{
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		LeadTime:    in.LeadTime,
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewSupplierResponse(*updated)
	return &out, nil
}

// Delete elimina el proveedor; los productos conservan su supplierId (referencia débil).
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewSupplierResponse(*deleted)
	return &out, nil
}

func (uc *SupplierUseCase) find(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("supplier", id)
	}
	return s, nil
}
