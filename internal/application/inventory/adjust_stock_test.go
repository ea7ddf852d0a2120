package inventory

import (
	"context"
	"errors"
	"math"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(_ context.Context, msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(_ context.Context, msg string)   { n.errors = append(n.errors, msg) }

type recordingListener struct{ calls int }

func (l *recordingListener) StockAdjusted(context.Context, entity.Product, entity.StockMovement) {
	l.calls++
}

type recordingFailures struct{ stages []string }

func (r *recordingFailures) AdjustmentFailed(stage string) { r.stages = append(r.stages, stage) }

// failingUpdateRunner ejecuta sobre el store real pero falla en Products().Update.
type failingUpdateRunner struct{ inner *memory.Store }

func (f failingUpdateRunner) Run(ctx context.Context, fn func(tx repository.Store) error) error {
	return f.inner.Run(ctx, func(tx repository.Store) error {
		return fn(failingStore{Store: tx})
	})
}

type failingStore struct{ repository.Store }

func (f failingStore) Products() repository.ProductRepository {
	return failingProducts{ProductRepository: f.Store.Products()}
}

type failingProducts struct{ repository.ProductRepository }

func (failingProducts) Update(context.Context, string, entity.ProductPatch) (*entity.Product, error) {
	return nil, errors.New("conexión perdida")
}

func newStoreWith(t *testing.T, current int) (*memory.Store, string) {
	t.Helper()
	s := memory.New()
	p, err := s.Products().Create(context.Background(), entity.Product{
		Name: "Widget", SKU: "W-1", CurrentStock: current, MinStock: 2, MaxStock: 20, Unit: "pcs",
	})
	require.NoError(t, err)
	return s, p.ID
}

func TestAdjust_AddRoundTrip(t *testing.T) {
	s, id := newStoreWith(t, 10)
	n := &recordingNotifier{}
	l := &recordingListener{}
	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	uc := NewAdjustStockUseCase(s, n, zerolog.Nop()).WithClock(func() time.Time { return now })
	uc.AddListener(l)
	ctx := context.Background()

	res, err := uc.Adjust(ctx, AdjustStockInput{ProductID: id, Type: "add", Quantity: "5"})
	require.NoError(t, err)
	assert.Equal(t, 10, res.PreviousStock)
	assert.Equal(t, 15, res.NewStock)
	assert.False(t, res.Clamped)
	assert.Equal(t, "Stock incrementado correctamente", res.Message)

	p, err := s.Products().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 15, p.CurrentStock)
	assert.Equal(t, now, p.LastUpdated)

	movs, err := s.Movements().GetByProductID(ctx, id)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementAdd, movs[0].Type)
	assert.Equal(t, 5, movs[0].Quantity)
	assert.Equal(t, entity.ReasonManualAdjustment, movs[0].Reason)
	assert.Equal(t, entity.DefaultUserID, movs[0].UserID)
	assert.Equal(t, now, movs[0].Timestamp)

	assert.Equal(t, []string{"Stock incrementado correctamente"}, n.successes)
	assert.Empty(t, n.errors)
	assert.Equal(t, 1, l.calls)
}

func TestAdjust_RemovalFloorsAtZero(t *testing.T) {
	s, id := newStoreWith(t, 3)
	uc := NewAdjustStockUseCase(s, nil, zerolog.Nop())
	ctx := context.Background()

	res, err := uc.Adjust(ctx, AdjustStockInput{ProductID: id, Type: "remove", Quantity: "10", Reason: "damaged", UserID: "u-7"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewStock)
	assert.True(t, res.Clamped)
	assert.Equal(t, entity.AlertOutOfStock, res.AlertState)
	assert.Equal(t, "Stock disminuido correctamente", res.Message)

	movs, err := s.Movements().GetByProductID(ctx, id)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, 10, movs[0].Quantity)
	assert.Equal(t, "damaged", movs[0].Reason)
	assert.Equal(t, "u-7", movs[0].UserID)
}

func TestAdjust_InvalidQuantity(t *testing.T) {
	for _, raw := range []string{"", "0", "-3", "abc", "2.5"} {
		t.Run(raw, func(t *testing.T) {
			s, id := newStoreWith(t, 10)
			n := &recordingNotifier{}
			f := &recordingFailures{}
			uc := NewAdjustStockUseCase(s, n, zerolog.Nop())
			uc.SetFailureRecorder(f)

			_, err := uc.Adjust(context.Background(), AdjustStockInput{ProductID: id, Type: "add", Quantity: raw})
			require.ErrorIs(t, err, domain.ErrValidation)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "quantity", ve.Field)
			assert.Equal(t, []string{"ingrese una cantidad válida"}, n.errors)
			assert.Equal(t, []string{StageValidation}, f.stages)

			movs, err := s.Movements().GetAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, movs)
		})
	}
}

func TestAdjust_Validation(t *testing.T) {
	s, id := newStoreWith(t, 10)
	uc := NewAdjustStockUseCase(s, nil, zerolog.Nop())

	_, err := uc.Adjust(context.Background(), AdjustStockInput{Type: "add", Quantity: "1"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "productId", ve.Field)

	_, err = uc.Adjust(context.Background(), AdjustStockInput{ProductID: id, Type: "transfer", Quantity: "1"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Field)
}

func TestAdjust_ProductNotFound(t *testing.T) {
	s := memory.New()
	f := &recordingFailures{}
	uc := NewAdjustStockUseCase(s, nil, zerolog.Nop())
	uc.SetFailureRecorder(f)

	_, err := uc.Adjust(context.Background(), AdjustStockInput{ProductID: "ghost", Type: "add", Quantity: "1"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{StageNotFound}, f.stages)
}

func TestAdjust_RollsBackMovementWhenUpdateFails(t *testing.T) {
	s, id := newStoreWith(t, 10)
	n := &recordingNotifier{}
	l := &recordingListener{}
	f := &recordingFailures{}
	uc := NewAdjustStockUseCase(failingUpdateRunner{inner: s}, n, zerolog.Nop())
	uc.AddListener(l)
	uc.SetFailureRecorder(f)
	ctx := context.Background()

	_, err := uc.Adjust(ctx, AdjustStockInput{ProductID: id, Type: "add", Quantity: "5"})
	require.Error(t, err)

	movs, err := s.Movements().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, movs)

	p, err := s.Products().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10, p.CurrentStock)

	assert.Equal(t, []string{"no se pudo ajustar el stock"}, n.errors)
	assert.Empty(t, n.successes)
	assert.Zero(t, l.calls)
	assert.Equal(t, []string{StagePersist}, f.stages)
}

func TestAdjust_RejectsQuantitiesThatOverflowStock(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		quantity string
		message  string
	}{
		{"cantidad fuera de rango", 10, strconv.Itoa(math.MaxInt - 5), "la cantidad supera el máximo admitido"},
		{"stock resultante fuera de rango", 10, strconv.Itoa(inventory.MaxStockLevel), "el stock resultante supera el máximo admitido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, id := newStoreWith(t, tc.current)
			n := &recordingNotifier{}
			f := &recordingFailures{}
			uc := NewAdjustStockUseCase(s, n, zerolog.Nop())
			uc.SetFailureRecorder(f)
			ctx := context.Background()

			_, err := uc.Adjust(ctx, AdjustStockInput{ProductID: id, Type: "add", Quantity: tc.quantity})
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "quantity", ve.Field)
			assert.Equal(t, []string{tc.message}, n.errors)
			assert.Equal(t, []string{StageValidation}, f.stages)

			p, err := s.Products().GetByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tc.current, p.CurrentStock)

			movs, err := s.Movements().GetAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, movs)
		})
	}
}

func TestAdjust_ConcurrentAdjustmentsAreNotLost(t *testing.T) {
	s, id := newStoreWith(t, 10)
	uc := NewAdjustStockUseCase(s, nil, zerolog.Nop())
	ctx := context.Background()

	const workers = 25
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Adjust(ctx, AdjustStockInput{ProductID: id, Type: "add", Quantity: "3"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	p, err := s.Products().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10+workers*3, p.CurrentStock)

	movs, err := s.Movements().GetByProductID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, movs, workers)
}
