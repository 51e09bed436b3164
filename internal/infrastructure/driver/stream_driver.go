package driver

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
)

type streamDriver struct {
	backend aesecb.StreamBackend
}

// NewStreamDriver creates a driver that passes the whole buffer to the backend in one call.
// The backend must not cap its call size.
func NewStreamDriver(backend aesecb.StreamBackend) (aesecb.Driver, error) {
	if limit := backend.MaxChunkBytes(); limit != 0 {
		return nil, fmt.Errorf("stream driver needs an uncapped backend, %s is capped at %d bytes", backend.Name(), limit)
	}
	return &streamDriver{backend: backend}, nil
}

func (d *streamDriver) Strategy() string {
	return aesecb.StrategyStream
}

func (d *streamDriver) EncryptECB(ks *aesecb.KeySchedule, dst, src []byte) error {
	aesecb.CheckBuffers(d.Strategy(), dst, src)
	if len(src) == 0 {
		return nil
	}
	return d.backend.EncryptStream(ks, dst[:len(src)], src)
}
