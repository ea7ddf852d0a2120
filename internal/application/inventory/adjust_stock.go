package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// Etapas reportadas cuando un ajuste falla.
const (
	StageValidation = "validation"
	StageNotFound   = "not_found"
	StagePersist    = "persist"
)

// AdjustStockUseCase registra un movimiento y actualiza el stock del producto como una sola
// operación: ambos pasos corren dentro de TxRunner.Run, así que si la actualización del
// producto falla el movimiento no queda visible.
type AdjustStockUseCase struct {
	txRunner  repository.TxRunner
	notifier  ports.Notifier
	log       zerolog.Logger
	listeners []ports.StockChangeListener
	failures  ports.AdjustmentFailureRecorder
	now       func() time.Time
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner repository.TxRunner, notifier ports.Notifier, log zerolog.Logger) *AdjustStockUseCase {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &AdjustStockUseCase{
		txRunner: txRunner,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// AddListener registra un receptor del aviso de refresco tras cada ajuste confirmado.
func (uc *AdjustStockUseCase) AddListener(l ports.StockChangeListener) {
	uc.listeners = append(uc.listeners, l)
}

// SetFailureRecorder registra el contador de fallos por etapa.
func (uc *AdjustStockUseCase) SetFailureRecorder(r ports.AdjustmentFailureRecorder) {
	uc.failures = r
}

// WithClock reemplaza el reloj (tests).
func (uc *AdjustStockUseCase) WithClock(now func() time.Time) *AdjustStockUseCase {
	uc.now = now
	return uc
}

// AdjustStockInput datos del formulario de ajuste. Quantity llega como texto.
type AdjustStockInput struct {
	ProductID string
	Type      string
	Quantity  string
	Reason    string
	Notes     string
	UserID    string
}

// AdjustStockResult estado resultante del ajuste.
type AdjustStockResult struct {
	Product       entity.Product
	Movement      entity.StockMovement
	PreviousStock int
	NewStock      int
	Clamped       bool
	Status        inventory.StockStatus
	AlertState    entity.AlertType
	Message       string
}

type validatedAdjustment struct {
	productID string
	typ       entity.MovementType
	quantity  int
	reason    string
	notes     string
	userID    string
}

func (uc *AdjustStockUseCase) validate(in AdjustStockInput) (validatedAdjustment, error) {
	qty, err := inventory.ParseQuantity(in.Quantity)
	if err != nil {
		return validatedAdjustment{}, err
	}
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return validatedAdjustment{}, domain.NewValidationError("productId", "no hay producto seleccionado para el ajuste")
	}
	typ := entity.MovementType(in.Type)
	if typ == "" {
		typ = entity.MovementAdd
	}
	if !typ.Valid() {
		return validatedAdjustment{}, domain.NewValidationError("type", "el tipo debe ser add o remove")
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = entity.ReasonManualAdjustment
	}
	userID := in.UserID
	if userID == "" {
		userID = entity.DefaultUserID
	}
	return validatedAdjustment{
		productID: productID,
		typ:       typ,
		quantity:  qty,
		reason:    reason,
		notes:     in.Notes,
		userID:    userID,
	}, nil
}

// Adjust valida la entrada, agrega el StockMovement y actualiza currentStock/lastUpdated.
// La salida con cantidad mayor al stock deja el producto en 0 sin error; el movimiento
// conserva la cantidad solicitada.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in AdjustStockInput) (*AdjustStockResult, error) {
	adj, err := uc.validate(in)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			uc.notifier.Error(ctx, ve.Message)
		}
		uc.recordFailure(StageValidation)
		return nil, err
	}

	now := uc.now()
	var result AdjustStockResult

	err = uc.txRunner.Run(ctx, func(tx repository.Store) error {
		// bloquea la fila: dos ajustes simultáneos no leen el mismo stock
		product, err := tx.Products().GetForUpdate(ctx, adj.productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("product", adj.productID)
		}
		newStock, clamped, err := inventory.ApplyMovement(product.CurrentStock, adj.typ, adj.quantity)
		if err != nil {
			return err
		}

		movement, err := tx.Movements().Create(ctx, entity.StockMovement{
			ProductID: product.ID,
			Type:      adj.typ,
			Quantity:  adj.quantity,
			Reason:    adj.reason,
			Notes:     adj.notes,
			Timestamp: now,
			UserID:    adj.userID,
		})
		if err != nil {
			return fmt.Errorf("registrar movimiento: %w", err)
		}

		updated, err := tx.Products().Update(ctx, product.ID, entity.ProductPatch{
			CurrentStock: &newStock,
			LastUpdated:  &now,
		})
		if err != nil {
			return fmt.Errorf("actualizar stock del producto: %w", err)
		}

		result = AdjustStockResult{
			Product:       *updated,
			Movement:      *movement,
			PreviousStock: product.CurrentStock,
			NewStock:      updated.CurrentStock,
			Clamped:       clamped,
			Status:        inventory.Status(*updated),
			AlertState:    inventory.AlertStateFor(*updated),
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).
			Str("product_id", adj.productID).
			Str("type", string(adj.typ)).
			Int("quantity", adj.quantity).
			Msg("ajuste de stock fallido")
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			uc.notifier.Error(ctx, ve.Message)
			uc.recordFailure(StageValidation)
		case errors.Is(err, domain.ErrNotFound):
			uc.notifier.Error(ctx, "no se pudo ajustar el stock")
			uc.recordFailure(StageNotFound)
		default:
			uc.notifier.Error(ctx, "no se pudo ajustar el stock")
			uc.recordFailure(StagePersist)
		}
		return nil, err
	}

	result.Message = successMessage(adj.typ)
	uc.notifier.Success(ctx, result.Message)
	uc.log.Info().
		Str("product_id", result.Product.ID).
		Str("movement_id", result.Movement.ID).
		Int("previous_stock", result.PreviousStock).
		Int("new_stock", result.NewStock).
		Bool("clamped", result.Clamped).
		Msg("stock ajustado")

	for _, l := range uc.listeners {
		l.StockAdjusted(ctx, result.Product, result.Movement)
	}
	return &result, nil
}

func (uc *AdjustStockUseCase) recordFailure(stage string) {
	if uc.failures != nil {
		uc.failures.AdjustmentFailed(stage)
	}
}

func successMessage(t entity.MovementType) string {
	if t == entity.MovementAdd {
		return "Stock incrementado correctamente"
	}
	return "Stock disminuido correctamente"
}
