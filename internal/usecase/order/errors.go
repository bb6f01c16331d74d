package order

import "fmt"

// Ровно два вида ошибок: локальная валидация и отказ биржи/сети.

// ValidationError — ввод не прошёл проверку, до сети дело не дошло.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// OrderError — внешний клиент вернул ошибку; текст отдаём как есть,
// без повторов.
type OrderError struct {
	Op  string // MARKET | LIMIT | STOP_LIMIT
	Err error
}

func (e *OrderError) Error() string { return fmt.Sprintf("%s order failed: %v", e.Op, e.Err) }

func (e *OrderError) Unwrap() error { return e.Err }
