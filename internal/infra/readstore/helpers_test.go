//go:build unit

package readstore_test

import (
	"errors"
	"time"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	baseTime            = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
)
