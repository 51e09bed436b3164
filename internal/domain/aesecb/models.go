package aesecb

import (
	"crypto/cipher"
	"fmt"
)

// Variant identifies the AES key size a schedule was derived for.
type Variant int

const (
	// AES128 uses a 16 byte key and 10 rounds
	AES128 Variant = iota + 1
	// AES256 uses a 32 byte key and 14 rounds
	AES256
)

// KeySize returns the raw key length in bytes.
func (v Variant) KeySize() int {
	switch v {
	case AES128:
		return KeySize128
	case AES256:
		return KeySize256
	default:
		return 0
	}
}

// ScheduleSize returns the expanded key length in bytes.
func (v Variant) ScheduleSize() int {
	switch v {
	case AES128:
		return ScheduleSize128
	case AES256:
		return ScheduleSize256
	default:
		return 0
	}
}

// Rounds returns the number of AES rounds.
func (v Variant) Rounds() int {
	return v.ScheduleSize()/BlockSize - 1
}

func (v Variant) String() string {
	switch v {
	case AES128:
		return "AES-128"
	case AES256:
		return "AES-256"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// KeySchedule holds the expanded round keys of one AES key together with an optional
// backend cipher context. It is owned by a single caller, read-only while encrypting,
// and must be released with Zero exactly once.
type KeySchedule struct {
	variant  Variant
	rounds   []byte
	block    cipher.Block
	released bool
}

// NewKeySchedule allocates a zero filled schedule for the given variant.
func NewKeySchedule(variant Variant) *KeySchedule {
	size := variant.ScheduleSize()
	if size == 0 {
		Fail("NewKeySchedule", "unsupported variant %v", variant)
	}
	return &KeySchedule{
		variant: variant,
		rounds:  make([]byte, size),
	}
}

// Variant returns the variant the schedule was allocated for.
func (ks *KeySchedule) Variant() Variant {
	return ks.variant
}

// Bytes returns the round key buffer. Backends write it while expanding a key; everybody else
// must treat it as read-only.
func (ks *KeySchedule) Bytes() []byte {
	return ks.rounds
}

// Len returns the size of the round key buffer.
func (ks *KeySchedule) Len() int {
	return len(ks.rounds)
}

// Context returns the backend cipher context attached during expansion, if any.
func (ks *KeySchedule) Context() cipher.Block {
	return ks.block
}

// SetContext attaches a backend cipher context. The schedule owns it from now on.
func (ks *KeySchedule) SetContext(block cipher.Block) {
	ks.block = block
}

// Released reports whether Zero has been called.
func (ks *KeySchedule) Released() bool {
	return ks.released
}

// Zero overwrites every round key byte with zero and drops the backend context.
func (ks *KeySchedule) Zero() {
	clear(ks.rounds)
	ks.block = nil
	ks.released = true
}

// IsZero reports whether every round key byte is zero.
func (ks *KeySchedule) IsZero() bool {
	var acc byte
	for _, b := range ks.rounds {
		acc |= b
	}
	return acc == 0
}

// Schedule128 is a key schedule derived from a 16 byte key.
type Schedule128 struct {
	*KeySchedule
}

// Schedule256 is a key schedule derived from a 32 byte key.
type Schedule256 struct {
	*KeySchedule
}
