package driver

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

	"golang.org/x/sync/errgroup"
)

// minBlocksPerWorker keeps small buffers on the calling goroutine.
const minBlocksPerWorker = 64

type parallelDriver struct {
	backend aesecb.BlockBackend
	workers int
}

// NewParallelDriver creates a driver that splits the buffer into contiguous block ranges, one per
// worker. Each worker owns its slice of dst; the schedule is shared read-only.
func NewParallelDriver(backend aesecb.BlockBackend, workers int) (aesecb.Driver, error) {
	if workers < 1 {
		return nil, fmt.Errorf("parallel driver needs at least one worker, got %d", workers)
	}
	return &parallelDriver{backend: backend, workers: workers}, nil
}

func (d *parallelDriver) Strategy() string {
	return aesecb.StrategyParallel
}

func (d *parallelDriver) EncryptECB(ks *aesecb.KeySchedule, dst, src []byte) error {
	aesecb.CheckBuffers(d.Strategy(), dst, src)

	blocks := len(src) / aesecb.BlockSize
	workers := d.workers
	if most := blocks / minBlocksPerWorker; most < workers {
		workers = most
	}
	if workers <= 1 {
		return encryptBlocks(d.backend, ks, dst, src, 0)
	}

	per := (blocks + workers - 1) / workers

	var g errgroup.Group
	for first := 0; first < blocks; first += per {
		first := first
		last := min(first+per, blocks)
		lo, hi := first*aesecb.BlockSize, last*aesecb.BlockSize
		g.Go(func() error {
			return encryptBlocks(d.backend, ks, dst[lo:hi], src[lo:hi], first)
		})
	}
	return g.Wait()
}
