//go:build unit
// +build unit

package driver

import (
	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
	"github.com/MGTheTrain/aes-ecb/internal/infrastructure/backend"
)

// recordingBackend wraps the accelerator model and records the size of every call it receives.
type recordingBackend struct {
	aesecb.StreamBackend
	calls []int
}

func newRecordingBackend(maxChunkBytes int) *recordingBackend {
	inner, err := backend.NewAcceleratorBackend(maxChunkBytes)
	if err != nil {
		panic(err)
	}
	return &recordingBackend{StreamBackend: inner}
}

func (r *recordingBackend) EncryptStream(ks *aesecb.KeySchedule, dst, src []byte) error {
	r.calls = append(r.calls, len(src))
	return r.StreamBackend.EncryptStream(ks, dst, src)
}

func (r *recordingBackend) EncryptBlock(ks *aesecb.KeySchedule, dst, src []byte) error {
	r.calls = append(r.calls, len(src))
	return r.StreamBackend.EncryptBlock(ks, dst, src)
}

// failingBackend fails on the block with the given index.
type failingBackend struct {
	aesecb.BlockBackend
	failAt int
	seen   int
	err    error
}

func (f *failingBackend) EncryptBlock(ks *aesecb.KeySchedule, dst, src []byte) error {
	defer func() { f.seen++ }()
	if f.seen == f.failAt {
		return f.err
	}
	return f.BlockBackend.EncryptBlock(ks, dst, src)
}
