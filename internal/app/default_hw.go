//go:build ecb_hw

package app

import "github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

const (
	defaultBackend  = aesecb.BackendHardware
	defaultStrategy = aesecb.StrategyChunked
	// per call cap of the accelerator interface
	defaultMaxChunkBytes = 4096
	defaultWorkers       = 0
)
