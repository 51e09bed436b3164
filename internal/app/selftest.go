package app

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
)

// KnownAnswer is a single block AES test vector
type KnownAnswer struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
}

// KnownAnswers holds the FIPS-197 appendix C vectors and the all zero vectors for both key sizes
var KnownAnswers = []KnownAnswer{
	{"FIPS-197 C.1", "000102030405060708090a0b0c0d0e0f", "00112233445566778899aabbccddeeff", "69c4e0d86a7b0430d8cdb78070b4c55a"},
	{"zero key AES-128", "00000000000000000000000000000000", "00000000000000000000000000000000", "66e94bd4ef8a2c3b884cfa59ca342b2e"},
	{"FIPS-197 C.3", "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "00112233445566778899aabbccddeeff", "8ea2b7ca516745bfeafc49904b496089"},
	{"zero key AES-256", "0000000000000000000000000000000000000000000000000000000000000000", "00000000000000000000000000000000", "dc95c078a2408989ad48a21492842087"},
}

// SelfTest runs every known answer through the bound backend and driver. Each plaintext block is
// repeated across several blocks so multi block calls are exercised too.
func (s *ECBService) SelfTest() error {
	var errs []error
	for _, kat := range KnownAnswers {
		if err := s.runKnownAnswer(kat); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", kat.Name, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Info("self test passed on backend=", s.Backend(), " strategy=", s.Strategy())
	return nil
}

func (s *ECBService) runKnownAnswer(kat KnownAnswer) error {
	const repeat = 5

	key, err := hex.DecodeString(kat.Key)
	if err != nil {
		return err
	}
	block, err := hex.DecodeString(kat.Plaintext)
	if err != nil {
		return err
	}
	want, err := hex.DecodeString(kat.Ciphertext)
	if err != nil {
		return err
	}

	plaintext := bytes.Repeat(block, repeat)
	var got []byte
	switch len(key) {
	case aesecb.KeySize128:
		err = s.With128([aesecb.KeySize128]byte(key), func(ks *aesecb.Schedule128) error {
			got = s.EncryptECB128(plaintext, ks)
			return nil
		})
	case aesecb.KeySize256:
		err = s.With256([aesecb.KeySize256]byte(key), func(ks *aesecb.Schedule256) error {
			got = s.EncryptECB256(plaintext, ks)
			return nil
		})
	default:
		return fmt.Errorf("unsupported key length %d", len(key))
	}
	if err != nil {
		return err
	}

	if !bytes.Equal(got, bytes.Repeat(want, repeat)) {
		return fmt.Errorf("ciphertext mismatch: got %x, want %x", got[:aesecb.BlockSize], want)
	}
	return nil
}
