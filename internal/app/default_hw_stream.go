//go:build ecb_hw_stream

package app

import "github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

const (
	defaultBackend       = aesecb.BackendHardware
	defaultStrategy      = aesecb.StrategyStream
	defaultMaxChunkBytes = 0
	defaultWorkers       = 0
)
