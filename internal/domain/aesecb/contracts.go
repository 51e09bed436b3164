package aesecb

// BlockBackend encrypts single AES blocks under an expanded key schedule.
// Every implementation must produce output identical to the software reference for the same input.
type BlockBackend interface {
	// Name returns the backend name, one of the Backend* constants.
	Name() string

	// Expand derives the round keys of key into ks and attaches any backend context.
	// The key length must match ks.Variant().
	Expand(key []byte, ks *KeySchedule) error

	// EncryptBlock encrypts exactly one block of src into dst. dst and src may overlap entirely.
	EncryptBlock(ks *KeySchedule, dst, src []byte) error
}

// StreamBackend is a block backend able to encrypt several blocks in one call.
type StreamBackend interface {
	BlockBackend

	// MaxChunkBytes returns the largest input accepted by a single EncryptStream call, or 0
	// when the backend accepts buffers of any length.
	MaxChunkBytes() int

	// EncryptStream encrypts a whole number of blocks of src into dst.
	EncryptStream(ks *KeySchedule, dst, src []byte) error
}

// Driver turns a backend into bulk ECB encryption.
type Driver interface {
	// Strategy returns the strategy name, one of the Strategy* constants.
	Strategy() string

	// EncryptECB encrypts src into dst block by block. len(src) must be a multiple of BlockSize
	// and dst at least as long as src; a violation panics with a PreconditionError.
	EncryptECB(ks *KeySchedule, dst, src []byte) error
}
