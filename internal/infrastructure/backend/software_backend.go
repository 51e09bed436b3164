package backend

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
)

// softwareBackend is the portable reference implementation. It is always available and serves as
// the correctness baseline for every other backend.
type softwareBackend struct{}

// NewSoftwareBackend creates the pure Go reference backend
func NewSoftwareBackend() aesecb.BlockBackend {
	return &softwareBackend{}
}

func (b *softwareBackend) Name() string {
	return aesecb.BackendSoftware
}

func (b *softwareBackend) Expand(key []byte, ks *aesecb.KeySchedule) error {
	return expandInto(key, ks)
}

func (b *softwareBackend) EncryptBlock(ks *aesecb.KeySchedule, dst, src []byte) error {
	encryptBlock(ks.Bytes(), dst, src)
	return nil
}

// expandInto checks the key length against the schedule variant and runs the key expansion.
func expandInto(key []byte, ks *aesecb.KeySchedule) error {
	if len(key) != ks.Variant().KeySize() {
		return fmt.Errorf("key has %d bytes, %v needs %d", len(key), ks.Variant(), ks.Variant().KeySize())
	}
	expandKey(key, ks.Bytes())
	return nil
}
