package app

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
	"github.com/MGTheTrain/aes-ecb/internal/infrastructure/backend"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/config"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/logger"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// Option customises an ECBService
type Option func(*serviceOptions)

type serviceOptions struct {
	cipherFactory backend.CipherFactory
}

// WithCipherFactory sets the library cipher constructor used by the external backend
func WithCipherFactory(factory backend.CipherFactory) Option {
	return func(o *serviceOptions) {
		o.cipherFactory = factory
	}
}

// ECBService binds one block backend and one driver strategy for its whole lifetime and exposes the
// key schedule lifecycle and ECB encryption on top of them.
type ECBService struct {
	backend aesecb.BlockBackend
	driver  aesecb.Driver
	logger  logger.Logger

	blocks128 prometheus.Counter
	blocks256 prometheus.Counter
	live128   prometheus.Gauge
	live256   prometheus.Gauge
	faults    prometheus.Counter
}

// NewECBService validates settings and wires the selected backend and driver. A nil m records
// into a private registry.
func NewECBService(settings *config.DispatchSettings, logger logger.Logger, m *metrics.Metrics, opts ...Option) (*ECBService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dispatch settings: %w", err)
	}

	if m == nil {
		var err error
		if m, err = metrics.New(prometheus.NewRegistry()); err != nil {
			return nil, err
		}
	}

	var o serviceOptions
	for _, opt := range opts {
		opt(&o)
	}

	b, err := NewBackend(settings, o.cipherFactory)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s backend: %w", settings.Backend, err)
	}

	d, err := NewDriver(settings, instrument(b, m.BackendCalls.WithLabelValues(b.Name(), settings.Strategy)))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", settings.Strategy, err)
	}

	logger.Info(fmt.Sprintf("ECB dispatch bound to backend=%s strategy=%s", b.Name(), d.Strategy()))

	return &ECBService{
		backend:   b,
		driver:    d,
		logger:    logger,
		blocks128: m.BlocksEncrypted.WithLabelValues(b.Name(), aesecb.AES128.String()),
		blocks256: m.BlocksEncrypted.WithLabelValues(b.Name(), aesecb.AES256.String()),
		live128:   m.LiveSchedules.WithLabelValues(aesecb.AES128.String()),
		live256:   m.LiveSchedules.WithLabelValues(aesecb.AES256.String()),
		faults:    m.BackendFaults.WithLabelValues(b.Name()),
	}, nil
}

// Backend returns the name of the bound backend
func (s *ECBService) Backend() string {
	return s.backend.Name()
}

// Strategy returns the name of the bound driver strategy
func (s *ECBService) Strategy() string {
	return s.driver.Strategy()
}

// Load128 expands a 16 byte key. The caller owns the schedule and must release it with FreeSchedule128.
func (s *ECBService) Load128(key [aesecb.KeySize128]byte) *aesecb.Schedule128 {
	ks := s.load("Load128", aesecb.AES128, key[:])
	s.live128.Inc()
	return &aesecb.Schedule128{KeySchedule: ks}
}

// Load256 expands a 32 byte key. The caller owns the schedule and must release it with FreeSchedule256.
func (s *ECBService) Load256(key [aesecb.KeySize256]byte) *aesecb.Schedule256 {
	ks := s.load("Load256", aesecb.AES256, key[:])
	s.live256.Inc()
	return &aesecb.Schedule256{KeySchedule: ks}
}

// EncryptECB128 returns the ECB encryption of plaintext, whose length must be a multiple of 16.
func (s *ECBService) EncryptECB128(plaintext []byte, ks *aesecb.Schedule128) []byte {
	ciphertext := make([]byte, len(plaintext))
	s.EncryptECB128Into(ciphertext, plaintext, ks)
	return ciphertext
}

// EncryptECB256 returns the ECB encryption of plaintext, whose length must be a multiple of 16.
func (s *ECBService) EncryptECB256(plaintext []byte, ks *aesecb.Schedule256) []byte {
	ciphertext := make([]byte, len(plaintext))
	s.EncryptECB256Into(ciphertext, plaintext, ks)
	return ciphertext
}

// EncryptECB128Into encrypts src into dst. dst may be src itself.
func (s *ECBService) EncryptECB128Into(dst, src []byte, ks *aesecb.Schedule128) {
	const op = "EncryptECB128"
	if ks == nil {
		aesecb.Fail(op, "nil key schedule")
	}
	s.encrypt(op, aesecb.AES128, ks.KeySchedule, dst, src)
	s.blocks128.Add(float64(len(src) / aesecb.BlockSize))
}

// EncryptECB256Into encrypts src into dst. dst may be src itself.
func (s *ECBService) EncryptECB256Into(dst, src []byte, ks *aesecb.Schedule256) {
	const op = "EncryptECB256"
	if ks == nil {
		aesecb.Fail(op, "nil key schedule")
	}
	s.encrypt(op, aesecb.AES256, ks.KeySchedule, dst, src)
	s.blocks256.Add(float64(len(src) / aesecb.BlockSize))
}

// FreeSchedule128 zeroes the schedule. Releasing a schedule twice panics.
func (s *ECBService) FreeSchedule128(ks *aesecb.Schedule128) {
	const op = "FreeSchedule128"
	if ks == nil {
		aesecb.Fail(op, "nil key schedule")
	}
	s.free(op, aesecb.AES128, ks.KeySchedule)
	s.live128.Dec()
}

// FreeSchedule256 zeroes the schedule. Releasing a schedule twice panics.
func (s *ECBService) FreeSchedule256(ks *aesecb.Schedule256) {
	const op = "FreeSchedule256"
	if ks == nil {
		aesecb.Fail(op, "nil key schedule")
	}
	s.free(op, aesecb.AES256, ks.KeySchedule)
	s.live256.Dec()
}

// With128 loads key, runs fn and releases the schedule on every exit path, panics included.
func (s *ECBService) With128(key [aesecb.KeySize128]byte, fn func(*aesecb.Schedule128) error) error {
	ks := s.Load128(key)
	defer s.FreeSchedule128(ks)
	return fn(ks)
}

// With256 loads key, runs fn and releases the schedule on every exit path, panics included.
func (s *ECBService) With256(key [aesecb.KeySize256]byte, fn func(*aesecb.Schedule256) error) error {
	ks := s.Load256(key)
	defer s.FreeSchedule256(ks)
	return fn(ks)
}

func (s *ECBService) load(op string, variant aesecb.Variant, key []byte) *aesecb.KeySchedule {
	ks := aesecb.NewKeySchedule(variant)
	if err := s.backend.Expand(key, ks); err != nil {
		ks.Zero()
		s.fatal(op, err)
	}
	s.logger.Debug(op, ": loaded ", variant, " schedule on ", s.backend.Name())
	return ks
}

func (s *ECBService) encrypt(op string, variant aesecb.Variant, ks *aesecb.KeySchedule, dst, src []byte) {
	aesecb.CheckSchedule(op, ks, variant)
	aesecb.CheckBuffers(op, dst, src)

	if err := s.driver.EncryptECB(ks, dst, src); err != nil {
		s.fatal(op, err)
	}
}

func (s *ECBService) free(op string, variant aesecb.Variant, ks *aesecb.KeySchedule) {
	aesecb.CheckSchedule(op, ks, variant)
	ks.Zero()
	s.logger.Debug(op, ": released ", variant, " schedule")
}

// fatal reports a backend fault and terminates. It panics should the logger return.
func (s *ECBService) fatal(op string, err error) {
	s.faults.Inc()
	s.logger.Fatal(fmt.Sprintf("%s: unrecoverable fault in %s backend: %v", op, s.backend.Name(), err))
	panic(fmt.Errorf("%s: %w", op, err))
}
