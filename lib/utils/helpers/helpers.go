package helpers

import (
	"context"
	"time"
)

const msPerDay = 86_400_000

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// WithTimeout ограничивает ожидание внешнего вызова.
// Если у ctx уже есть более ранний дедлайн, он сохраняется.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// DaysBetween - дробное количество суток между датами, без округления
func DaysBetween(from, to time.Time) float64 {
	return float64(to.UnixMilli()-from.UnixMilli()) / msPerDay
}

func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
