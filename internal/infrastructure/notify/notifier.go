// Package notify implementa el canal de notificaciones (toasts) de los casos de uso.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-dashboard/internal/application/ports"
)

// Niveles de notificación.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// DefaultCapacity tamaño del buffer expuesto en /api/notifications.
const DefaultCapacity = 50

// Notification un toast emitido.
type Notification struct {
	Level     string
	Message   string
	Timestamp time.Time
}

// Feed registra cada notificación en el log y la guarda en un buffer circular.
type Feed struct {
	log zerolog.Logger
	now func() time.Time

	mu    sync.Mutex
	buf   []Notification
	next  int
	count int
}

var _ ports.Notifier = (*Feed)(nil)

// NewFeed crea el feed; capacity <= 0 usa DefaultCapacity.
func NewFeed(log zerolog.Logger, capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{log: log, now: time.Now, buf: make([]Notification, capacity)}
}

func (f *Feed) Success(_ context.Context, message string) {
	f.log.Info().Str("level_ui", LevelSuccess).Msg(message)
	f.push(LevelSuccess, message)
}

func (f *Feed) Error(_ context.Context, message string) {
	f.log.Warn().Str("level_ui", LevelError).Msg(message)
	f.push(LevelError, message)
}

func (f *Feed) push(level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf[f.next] = Notification{Level: level, Message: message, Timestamp: f.now()}
	f.next = (f.next + 1) % len(f.buf)
	if f.count < len(f.buf) {
		f.count++
	}
}

// Recent devuelve hasta limit notificaciones, la más reciente primero. limit <= 0 = todas.
func (f *Feed) Recent(limit int) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.count
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Notification, 0, n)
	for i := 1; i <= n; i++ {
		idx := (f.next - i + len(f.buf)) % len(f.buf)
		out = append(out, f.buf[idx])
	}
	return out
}
