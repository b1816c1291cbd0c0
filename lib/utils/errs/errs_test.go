package errs

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGateway(t *testing.T) {
	t.Run(`nil stays nil`, func(t *testing.T) {
		require.Nil(t, Gateway(nil, "msg"))
	})

	t.Run(`io error is gateway error`, func(t *testing.T) {
		err := Gateway(errors.New("connection refused"), "ошибка чтения")
		require.True(t, errors.Is(err, ErrGateway))
		require.False(t, errors.Is(err, ErrTimeout))
		require.Contains(t, err.Error(), "connection refused")
	})

	t.Run(`deadline is timeout and gateway error`, func(t *testing.T) {
		err := Gateway(errors.Wrap(context.DeadlineExceeded, "query"), "ошибка чтения")
		require.True(t, errors.Is(err, ErrTimeout))
		require.True(t, errors.Is(err, ErrGateway))
		require.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run(`known errors are not reclassified`, func(t *testing.T) {
		err := Gateway(ErrStaleState, "ошибка перемещения")
		require.True(t, errors.Is(err, ErrStaleState))
		require.False(t, errors.Is(err, ErrGateway))
	})

	t.Run(`validation`, func(t *testing.T) {
		err := Validation("не указан этап")
		require.True(t, errors.Is(err, ErrValidation))
		require.True(t, IsKnown(err))
	})
}
