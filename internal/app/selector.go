package app

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
	"github.com/MGTheTrain/aes-ecb/internal/infrastructure/backend"
	"github.com/MGTheTrain/aes-ecb/internal/infrastructure/driver"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/config"
)

// NewBackend creates the block backend named by settings. factory is only used by the external
// backend; nil selects crypto/aes.
func NewBackend(settings *config.DispatchSettings, factory backend.CipherFactory) (aesecb.BlockBackend, error) {
	switch settings.Backend {
	case aesecb.BackendSoftware:
		return backend.NewSoftwareBackend(), nil
	case aesecb.BackendCPU:
		return backend.NewCPUBackend()
	case aesecb.BackendExternal:
		return backend.NewExternalBackend(factory), nil
	case aesecb.BackendHardware:
		return backend.NewAcceleratorBackend(settings.MaxChunkBytes)
	default:
		return nil, fmt.Errorf("unsupported backend: %s", settings.Backend)
	}
}

// NewDriver creates the driver strategy named by settings on top of b.
func NewDriver(settings *config.DispatchSettings, b aesecb.BlockBackend) (aesecb.Driver, error) {
	switch settings.Strategy {
	case aesecb.StrategySingleBlock:
		return driver.NewSingleBlockDriver(b), nil
	case aesecb.StrategyParallel:
		return driver.NewParallelDriver(b, settings.Workers)
	case aesecb.StrategyChunked, aesecb.StrategyStream:
		stream, ok := b.(aesecb.StreamBackend)
		if !ok {
			return nil, fmt.Errorf("strategy %s needs a streaming backend, %s is not one", settings.Strategy, b.Name())
		}
		if settings.Strategy == aesecb.StrategyChunked {
			return driver.NewChunkedDriver(stream, settings.MaxChunkBytes)
		}
		return driver.NewStreamDriver(stream)
	default:
		return nil, fmt.Errorf("unsupported strategy: %s", settings.Strategy)
	}
}
