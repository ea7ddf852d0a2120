package ports

import "context"

// Notifier puerto de salida hacia el canal de notificaciones (toasts de la UI).
// Es un canal lateral: ningún caso de uso consume un valor de retorno.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// NopNotifier descarta todas las notificaciones.
type NopNotifier struct{}

func (NopNotifier) Success(context.Context, string) {}
func (NopNotifier) Error(context.Context, string)   {}
