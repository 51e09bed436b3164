package validators

import (
	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

	"github.com/go-playground/validator/v10"
)

// KeySizeValidation accepts AES key sizes in bytes supported by the dispatch layer (16 or 32).
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	return keySize == aesecb.KeySize128 || keySize == aesecb.KeySize256
}

// ChunkBytesValidation accepts 0 (uncapped) or a positive multiple of the AES block size.
func ChunkBytesValidation(fl validator.FieldLevel) bool {
	chunk := fl.Field().Int()
	return chunk >= 0 && chunk%aesecb.BlockSize == 0
}
