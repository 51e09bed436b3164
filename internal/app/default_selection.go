package app

import "github.com/MGTheTrain/aes-ecb/internal/pkg/config"

// DefaultDispatchSettings returns the backend and strategy compiled into this build. Pick another
// one with exactly one of the build tags ecb_cpu, ecb_extlib, ecb_hw or ecb_hw_stream.
func DefaultDispatchSettings() *config.DispatchSettings {
	return &config.DispatchSettings{
		Backend:       defaultBackend,
		Strategy:      defaultStrategy,
		MaxChunkBytes: defaultMaxChunkBytes,
		Workers:       defaultWorkers,
	}
}
