//go:build ecb_cpu

package app

import "github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

const (
	defaultBackend       = aesecb.BackendCPU
	defaultStrategy      = aesecb.StrategySingleBlock
	defaultMaxChunkBytes = 0
	defaultWorkers       = 0
)
