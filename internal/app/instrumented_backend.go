package app

import (
	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

	"github.com/prometheus/client_golang/prometheus"
)

type countingBackend struct {
	aesecb.BlockBackend
	calls prometheus.Counter
}

func (b *countingBackend) EncryptBlock(ks *aesecb.KeySchedule, dst, src []byte) error {
	b.calls.Inc()
	return b.BlockBackend.EncryptBlock(ks, dst, src)
}

type countingStreamBackend struct {
	aesecb.StreamBackend
	calls prometheus.Counter
}

func (b *countingStreamBackend) EncryptBlock(ks *aesecb.KeySchedule, dst, src []byte) error {
	b.calls.Inc()
	return b.StreamBackend.EncryptBlock(ks, dst, src)
}

func (b *countingStreamBackend) EncryptStream(ks *aesecb.KeySchedule, dst, src []byte) error {
	b.calls.Inc()
	return b.StreamBackend.EncryptStream(ks, dst, src)
}

// instrument counts every call the driver makes into b, keeping its streaming capability.
func instrument(b aesecb.BlockBackend, calls prometheus.Counter) aesecb.BlockBackend {
	if stream, ok := b.(aesecb.StreamBackend); ok {
		return &countingStreamBackend{StreamBackend: stream, calls: calls}
	}
	return &countingBackend{BlockBackend: b, calls: calls}
}
