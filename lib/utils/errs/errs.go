package errs

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrConfiguration - не настроены этапы подбора, любая операция воронки невозможна
	ErrConfiguration = errors.New("этапы подбора не настроены")
	// ErrStaleState - кандидат уже перемещен другим запросом, нужно перечитать и повторить
	ErrStaleState = errors.New("данные устарели, обновите и повторите операцию")
	ErrValidation = errors.New("некорректные данные")
	ErrGateway    = errors.New("ошибка хранилища данных")
	// ErrTimeout обрабатывается так же как ErrGateway
	ErrTimeout error = timeoutError{}
)

type timeoutError struct{}

func (timeoutError) Error() string {
	return "превышено время ожидания ответа хранилища"
}

func (timeoutError) Is(target error) bool {
	return target == ErrGateway
}

// Gateway классифицирует ошибку ввода-вывода хранилища.
// Ошибки уже из таксономии возвращаются как есть.
func Gateway(err error, msg string) error {
	if err == nil {
		return nil
	}
	if IsKnown(err) {
		return errors.Wrap(err, msg)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(&wrapped{kind: ErrTimeout, cause: err}, msg)
	}
	return errors.Wrap(&wrapped{kind: ErrGateway, cause: err}, msg)
}

func Validation(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}

func IsKnown(err error) bool {
	return errors.Is(err, ErrConfiguration) ||
		errors.Is(err, ErrStaleState) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrGateway)
}

type wrapped struct {
	kind  error
	cause error
}

func (w *wrapped) Error() string {
	return w.kind.Error() + ": " + w.cause.Error()
}

func (w *wrapped) Is(target error) bool {
	return errors.Is(w.kind, target)
}

func (w *wrapped) Unwrap() error {
	return w.cause
}
