package retry

import "time"

// WithRetry выполняет op с повторами и простым экспоненциальным бэкоффом.
// Только для идемпотентных чтений: выставление заявок не повторяем.
func WithRetry(attempts int, sleep time.Duration, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	backoff := sleep
	for i := 0; i < attempts; i++ {
		if err = op(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		time.Sleep(backoff)
		if backoff < 5*time.Second {
			backoff *= 2
		}
	}
	return err
}
