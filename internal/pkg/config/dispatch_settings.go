package config

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// DispatchSettings selects the block backend and the ECB driver strategy bound at startup
type DispatchSettings struct {
	Backend       string `yaml:"backend" validate:"required,oneof=software cpu external hardware"`
	Strategy      string `yaml:"strategy" validate:"required,oneof=single-block chunked stream parallel"`
	MaxChunkBytes int    `yaml:"max_chunk_bytes" validate:"chunkbytes"`
	Workers       int    `yaml:"workers" validate:"gte=0,lte=256"`
}

// Validate checks the individual fields and the coupling between backend and strategy
func (s *DispatchSettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("chunkbytes", validators.ChunkBytesValidation); err != nil {
		return fmt.Errorf("failed to register chunkbytes validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DispatchSettings: %w", err)
	}

	streaming := s.Strategy == aesecb.StrategyChunked || s.Strategy == aesecb.StrategyStream
	if (s.Backend == aesecb.BackendHardware) != streaming {
		return fmt.Errorf("strategy %q cannot drive backend %q", s.Strategy, s.Backend)
	}

	switch s.Strategy {
	case aesecb.StrategyChunked:
		if s.MaxChunkBytes == 0 {
			return fmt.Errorf("max chunk bytes is required for the chunked strategy")
		}
	case aesecb.StrategyStream:
		if s.MaxChunkBytes != 0 {
			return fmt.Errorf("max chunk bytes must be 0 for the stream strategy")
		}
	case aesecb.StrategyParallel:
		if s.Workers < 1 {
			return fmt.Errorf("workers must be at least 1 for the parallel strategy")
		}
	}

	return nil
}
