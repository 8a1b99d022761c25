package postgres

import (
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	readRetryAttempts = 3
	readRetryDelay    = time.Second
)

// withReadRetry reexecuta uma consulta read-only em erro transitório de
// conexão. Escritas não passam por aqui: erro de escrita propaga direto.
func withReadRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < readRetryAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(readRetryDelay)
		}
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
	}
	return err
}

func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Classe 08: connection exception.
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08"
	}
	return pgconn.SafeToRetry(err)
}
