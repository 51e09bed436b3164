//go:build ecb_extlib

package app

import "github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

const (
	defaultBackend       = aesecb.BackendExternal
	defaultStrategy      = aesecb.StrategySingleBlock
	defaultMaxChunkBytes = 0
	defaultWorkers       = 0
)
