package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/domain/search"
)

// DefaultUnit unidad por defecto cuando el formulario no envía una.
const DefaultUnit = "pcs"

// ProductUseCase casos de uso CRUD para productos. El stock cambia normalmente vía ajustes.
type ProductUseCase struct {
	repo      repository.ProductRepository
	movements repository.StockMovementRepository
	alerts    repository.AlertRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movements repository.StockMovementRepository, alerts repository.AlertRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movements: movements, alerts: alerts}
}

// ProductFilter filtros de la página de productos tal como llegan en la query.
type ProductFilter struct {
	Search   string
	Category string
	Stock    string
}

// List devuelve los productos que cumplen el filtro; siempre evalúa contra la colección completa.
func (uc *ProductUseCase) List(ctx context.Context, f ProductFilter) (*dto.ProductListResponse, error) {
	products, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	c := search.ProductCriteria{Search: f.Search, Category: f.Category}
	if f.Stock != "" {
		status, ok := inventory.ParseStockStatus(f.Stock)
		if !ok {
			return nil, domain.NewValidationError("stock", "debe ser low, normal o high")
		}
		c.Stock = status
	}
	return dto.NewProductList(search.Products(products, c)), nil
}

// Categories categorías distintas para el filtro.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Categories(products), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("product", id)
	}
	out := dto.NewProductResponse(*product)
	return &out, nil
}

// Create crea un nuevo producto; SKU duplicado devuelve ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if in.Name == "" || in.SKU == "" {
		return nil, domain.NewValidationError("sku", "sku y name son requeridos")
	}
	if err := validateAmounts(&in.CostPrice, &in.SalePrice, &in.CurrentStock, &in.MinStock, &in.MaxStock); err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueSKU(ctx, in.SKU, ""); err != nil {
		return nil, err
	}
	if in.Unit == "" {
		in.Unit = DefaultUnit
	}
	product := entity.Product{
		Name:         in.Name,
		SKU:          in.SKU,
		Description:  in.Description,
		Category:     in.Category,
		CostPrice:    in.CostPrice,
		SalePrice:    in.SalePrice,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		Unit:         in.Unit,
		SupplierID:   normalizeSupplierID(in.SupplierID),
		LastUpdated:  time.Now(),
	}
	created, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(*created)
	return &out, nil
}

// Update aplica un merge superficial; lastUpdated se re-estampa siempre.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validateAmounts(in.CostPrice, in.SalePrice, in.CurrentStock, in.MinStock, in.MaxStock); err != nil {
		return nil, err
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return nil, domain.NewValidationError("sku", "sku no puede quedar vacío")
		}
		if err := uc.ensureUniqueSKU(ctx, sku, id); err != nil {
			return nil, err
		}
		in.SKU = &sku
	}
	now := time.Now()
	patch := entity.ProductPatch{
		Name:         in.Name,
		SKU:          in.SKU,
		Description:  in.Description,
		Category:     in.Category,
		CostPrice:    in.CostPrice,
		SalePrice:    in.SalePrice,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		Unit:         in.Unit,
		LastUpdated:  &now,
	}
	if in.SupplierID != nil {
		supplierID := normalizeSupplierID(in.SupplierID)
		patch.SupplierID = &supplierID
	}
	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(*updated)
	return &out, nil
}

// Delete elimina un producto. Movimientos y alertas conservan la referencia (sin cascada).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.ProductResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(*deleted)
	return &out, nil
}

// Movements historial de movimientos del producto, más reciente primero.
func (uc *ProductUseCase) Movements(ctx context.Context, id string) (*dto.MovementListResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("product", id)
	}
	movements, err := uc.movements.GetByProductID(ctx, id)
	if err != nil {
		return nil, err
	}
	inventory.SortMovementsNewestFirst(movements)
	return dto.NewMovementList(movements, []entity.Product{*product}), nil
}

// Alerts alertas del producto ordenadas por prioridad.
func (uc *ProductUseCase) Alerts(ctx context.Context, id string) ([]dto.AlertResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("product", id)
	}
	alerts, err := uc.alerts.GetByProductID(ctx, id)
	if err != nil {
		return nil, err
	}
	inventory.SortAlerts(alerts)
	return dto.NewAlertResponses(alerts, []entity.Product{*product}), nil
}

func (uc *ProductUseCase) ensureUniqueSKU(ctx context.Context, sku, exceptID string) error {
	products, err := uc.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.ID != exceptID && strings.EqualFold(p.SKU, sku) {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func validateAmounts(cost, sale *decimal.Decimal, stocks ...*int) error {
	if cost != nil && cost.IsNegative() {
		return domain.NewValidationError("costPrice", "no puede ser negativo")
	}
	if sale != nil && sale.IsNegative() {
		return domain.NewValidationError("salePrice", "no puede ser negativo")
	}
	for _, s := range stocks {
		if s != nil && *s < 0 {
			return domain.NewValidationError("stock", "los niveles de stock no pueden ser negativos")
		}
		if s != nil && *s > inventory.MaxStockLevel {
			return domain.NewValidationError("stock", "los niveles de stock superan el máximo admitido")
		}
	}
	return nil
}

func normalizeSupplierID(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}
