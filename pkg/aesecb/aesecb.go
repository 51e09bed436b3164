// Package aesecb is the public entry point of the AES-128/AES-256 ECB dispatch layer. It is bound to
// the backend and driver strategy compiled into the build (see the ecb_* build tags) on first use.
//
// Every schedule returned by Load128 or Load256 must be released exactly once with the matching
// FreeSchedule function, which overwrites the round keys with zeros. Buffer lengths passed to the
// encryption functions must be multiples of BlockSize; anything else panics.
package aesecb

import (
	"fmt"
	"sync"

	"github.com/MGTheTrain/aes-ecb/internal/app"
	domain "github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/config"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/logger"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// BlockSize is the AES block size in bytes
const BlockSize = domain.BlockSize

// Schedule128 is an expanded AES-128 key
type Schedule128 = domain.Schedule128

// Schedule256 is an expanded AES-256 key
type Schedule256 = domain.Schedule256

// PreconditionError is the panic value raised on caller misuse
type PreconditionError = domain.PreconditionError

var (
	defaultService *app.ECBService
	defaultErr     error
	defaultOnce    sync.Once

	// dispatchSettings yields the selection the default service is bound to
	dispatchSettings = app.DefaultDispatchSettings
)

// service returns the default service, building it on first use. A failed build is reported
// again on every call.
func service() *app.ECBService {
	defaultOnce.Do(func() {
		defaultService, defaultErr = newDefaultService()
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultService
}

func newDefaultService() (*app.ECBService, error) {
	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("aesecb: %w", err)
	}

	svc, err := app.NewECBService(dispatchSettings(), defaultLogger(), m)
	if err != nil {
		return nil, fmt.Errorf("aesecb: build default service: %w", err)
	}
	return svc, nil
}

// defaultLogger returns the process logger, or an error level console logger when none was initialized
func defaultLogger() logger.Logger {
	log, err := logger.GetLogger()
	if err != nil {
		return logger.NewConsoleLogger(config.LogLevelError)
	}
	return log
}

// Backend returns the name of the compiled-in block backend
func Backend() string {
	return service().Backend()
}

// Load128 expands a 16 byte key
func Load128(key [16]byte) *Schedule128 {
	return service().Load128(key)
}

// Load256 expands a 32 byte key
func Load256(key [32]byte) *Schedule256 {
	return service().Load256(key)
}

// EncryptECB128 returns the ECB encryption of plaintext under schedule
func EncryptECB128(plaintext []byte, schedule *Schedule128) []byte {
	return service().EncryptECB128(plaintext, schedule)
}

// EncryptECB256 returns the ECB encryption of plaintext under schedule
func EncryptECB256(plaintext []byte, schedule *Schedule256) []byte {
	return service().EncryptECB256(plaintext, schedule)
}

// FreeSchedule128 overwrites the schedule with zeros
func FreeSchedule128(schedule *Schedule128) {
	service().FreeSchedule128(schedule)
}

// FreeSchedule256 overwrites the schedule with zeros
func FreeSchedule256(schedule *Schedule256) {
	service().FreeSchedule256(schedule)
}
