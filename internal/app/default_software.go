//go:build !ecb_cpu && !ecb_extlib && !ecb_hw && !ecb_hw_stream

package app

import "github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

const (
	defaultBackend       = aesecb.BackendSoftware
	defaultStrategy      = aesecb.StrategySingleBlock
	defaultMaxChunkBytes = 0
	defaultWorkers       = 0
)
