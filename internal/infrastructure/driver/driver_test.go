//go:build unit
// +build unit

package driver

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
	"github.com/MGTheTrain/aes-ecb/internal/infrastructure/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

func setupSchedule(t testingT, variant aesecb.Variant, key []byte) *aesecb.KeySchedule {
	t.Helper()
	ks := aesecb.NewKeySchedule(variant)
	require.NoError(t, backend.NewSoftwareBackend().Expand(key, ks))
	return ks
}

func referenceECB(t testingT, ks *aesecb.KeySchedule, src []byte) []byte {
	t.Helper()
	ref := backend.NewSoftwareBackend()
	out := make([]byte, len(src))
	for off := 0; off < len(src); off += aesecb.BlockSize {
		require.NoError(t, ref.EncryptBlock(ks, out[off:off+16], src[off:off+16]))
	}
	return out
}

func allDrivers(t *testing.T) []aesecb.Driver {
	t.Helper()

	uncapped, err := backend.NewAcceleratorBackend(0)
	require.NoError(t, err)
	capped, err := backend.NewAcceleratorBackend(48)
	require.NoError(t, err)

	chunked, err := NewChunkedDriver(capped, 48)
	require.NoError(t, err)
	stream, err := NewStreamDriver(uncapped)
	require.NoError(t, err)
	parallel, err := NewParallelDriver(backend.NewSoftwareBackend(), 4)
	require.NoError(t, err)

	return []aesecb.Driver{
		NewSingleBlockDriver(backend.NewSoftwareBackend()),
		chunked,
		stream,
		parallel,
	}
}

func TestDriversZeroKeyVector(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES128, make([]byte, 16))
	for _, d := range allDrivers(t) {
		t.Run(d.Strategy(), func(t *testing.T) {
			src := make([]byte, 3*aesecb.BlockSize)
			dst := make([]byte, len(src))
			require.NoError(t, d.EncryptECB(ks, dst, src))

			for off := 0; off < len(dst); off += aesecb.BlockSize {
				assert.Equal(t, "66e94bd4ef8a2c3b884cfa59ca342b2e", hex.EncodeToString(dst[off:off+16]))
			}
		})
	}
}

func TestDriversRejectPartialBlocks(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES128, make([]byte, 16))
	for _, d := range allDrivers(t) {
		for _, n := range []int{15, 17, 31} {
			src := make([]byte, n)
			dst := make([]byte, n)
			assert.PanicsWithError(t,
				fmt.Sprintf("%s: precondition violated: input length %d is not a multiple of 16", d.Strategy(), n),
				func() { _ = d.EncryptECB(ks, dst, src) },
				"%s with %d bytes", d.Strategy(), n)
		}
	}
}

func TestDriversRejectShortOutput(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES128, make([]byte, 16))
	for _, d := range allDrivers(t) {
		assert.Panics(t, func() { _ = d.EncryptECB(ks, make([]byte, 16), make([]byte, 32)) }, d.Strategy())
	}
}

func TestDriversEmptyBuffer(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES128, make([]byte, 16))
	for _, d := range allDrivers(t) {
		assert.NoError(t, d.EncryptECB(ks, nil, nil), d.Strategy())
	}
}

func TestChunkedDriverSplitsFullChunksThenRemainder(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES128, make([]byte, 16))

	tests := []struct {
		name   string
		cap    int
		length int
		calls  []int
	}{
		{"single block cap", 16, 64, []int{16, 16, 16, 16}},
		{"two block cap", 32, 64, []int{32, 32}},
		{"cap equals length", 64, 64, []int{64}},
		{"cap larger than length", 128, 64, []int{64}},
		{"cap does not divide length", 48, 112, []int{48, 48, 16}},
		{"remainder of two blocks", 48, 80, []int{48, 32}},
		{"one block buffer", 48, 16, []int{16}},
		{"empty buffer", 32, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecordingBackend(tt.cap)
			d, err := NewChunkedDriver(rec, tt.cap)
			require.NoError(t, err)

			src := bytes.Repeat([]byte{0xa5}, tt.length)
			dst := make([]byte, tt.length)
			require.NoError(t, d.EncryptECB(ks, dst, src))

			assert.Equal(t, tt.calls, rec.calls)
			assert.Equal(t, referenceECB(t, ks, src), dst)
		})
	}
}

func TestChunkedDriverConfiguration(t *testing.T) {
	capped, err := backend.NewAcceleratorBackend(32)
	require.NoError(t, err)

	for _, c := range []int{0, -16, 24} {
		_, err := NewChunkedDriver(capped, c)
		assert.Error(t, err, "cap %d", c)
	}

	_, err = NewChunkedDriver(capped, 64)
	assert.Error(t, err, "driver cap above device cap")

	_, err = NewChunkedDriver(capped, 16)
	assert.NoError(t, err)
}

func TestStreamDriverSingleCall(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES256, make([]byte, 32))
	rec := newRecordingBackend(0)
	d, err := NewStreamDriver(rec)
	require.NoError(t, err)

	src := make([]byte, 10*aesecb.BlockSize)
	dst := make([]byte, len(src))
	require.NoError(t, d.EncryptECB(ks, dst, src))

	assert.Equal(t, []int{len(src)}, rec.calls)
	assert.Equal(t, "dc95c078a2408989ad48a21492842087", hex.EncodeToString(dst[:16]))

	capped, err := backend.NewAcceleratorBackend(32)
	require.NoError(t, err)
	_, err = NewStreamDriver(capped)
	assert.Error(t, err)
}

func TestSingleBlockDriverCallsOncePerBlock(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES128, make([]byte, 16))
	rec := newRecordingBackend(16)
	d := NewSingleBlockDriver(rec)

	require.NoError(t, d.EncryptECB(ks, make([]byte, 64), make([]byte, 64)))
	assert.Equal(t, []int{16, 16, 16, 16}, rec.calls)
}

func TestDriversPropagateBackendErrors(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES128, make([]byte, 16))
	fault := &aesecb.BackendFault{Backend: "test", Op: "encrypt", Err: errors.New("boom")}

	t.Run("single-block", func(t *testing.T) {
		d := NewSingleBlockDriver(&failingBackend{BlockBackend: backend.NewSoftwareBackend(), failAt: 2, err: fault})
		err := d.EncryptECB(ks, make([]byte, 64), make([]byte, 64))
		require.ErrorIs(t, err, fault)
		assert.Contains(t, err.Error(), "block 2")
	})

	t.Run("parallel", func(t *testing.T) {
		d, err := NewParallelDriver(&failingBackend{BlockBackend: backend.NewSoftwareBackend(), failAt: 0, err: fault}, 1)
		require.NoError(t, err)
		err = d.EncryptECB(ks, make([]byte, 64), make([]byte, 64))
		assert.ErrorIs(t, err, fault)
	})

	t.Run("chunked", func(t *testing.T) {
		capped, err := backend.NewAcceleratorBackend(16)
		require.NoError(t, err)
		d := &chunkedDriver{backend: capped, maxChunkBytes: 32}
		err = d.EncryptECB(ks, make([]byte, 64), make([]byte, 64))
		assert.ErrorIs(t, err, aesecb.ErrChunkTooLarge)
	})
}

func TestParallelDriverConfiguration(t *testing.T) {
	_, err := NewParallelDriver(backend.NewSoftwareBackend(), 0)
	assert.Error(t, err)
}

func TestParallelDriverSplits(t *testing.T) {
	ks := setupSchedule(t, aesecb.AES256, bytes.Repeat([]byte{7}, 32))

	for _, blocks := range []int{129, 191, 453, 1000, 1001} {
		src := make([]byte, blocks*aesecb.BlockSize)
		for i := range src {
			src[i] = byte(i * 31)
		}
		want := referenceECB(t, ks, src)

		for _, workers := range []int{2, 3, 7, 8, 256} {
			t.Run(fmt.Sprintf("%d blocks over %d workers", blocks, workers), func(t *testing.T) {
				d, err := NewParallelDriver(backend.NewSoftwareBackend(), workers)
				require.NoError(t, err)

				dst := make([]byte, len(src))
				require.NoError(t, d.EncryptECB(ks, dst, src))
				assert.Equal(t, want, dst)
			})
		}
	}
}

func TestBlockIndependenceProperty(t *testing.T) {
	drivers := allDrivers(t)
	rapid.Check(t, func(rt *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(rt, "key")
		blocks := rapid.IntRange(1, 40).Draw(rt, "blocks")
		src := rapid.SliceOfN(rapid.Byte(), blocks*16, blocks*16).Draw(rt, "plaintext")
		d := drivers[rapid.IntRange(0, len(drivers)-1).Draw(rt, "driver")]

		ks := setupSchedule(rt, aesecb.AES128, key)
		dst := make([]byte, len(src))
		if err := d.EncryptECB(ks, dst, src); err != nil {
			rt.Fatalf("%s: %v", d.Strategy(), err)
		}
		if len(dst) != len(src) {
			rt.Fatalf("length changed from %d to %d", len(src), len(dst))
		}

		single := NewSingleBlockDriver(backend.NewSoftwareBackend())
		for off := 0; off < len(src); off += 16 {
			one := make([]byte, 16)
			if err := single.EncryptECB(ks, one, src[off:off+16]); err != nil {
				rt.Fatal(err)
			}
			if !bytes.Equal(one, dst[off:off+16]) {
				rt.Fatalf("%s: block %d differs from isolated encryption", d.Strategy(), off/16)
			}
		}
	})
}

func TestChunkBoundaryInvarianceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(rt, "key")
		blocks := rapid.IntRange(1, 64).Draw(rt, "blocks")
		src := rapid.SliceOfN(rapid.Byte(), blocks*16, blocks*16).Draw(rt, "plaintext")
		capBlocks := rapid.IntRange(1, blocks).Draw(rt, "capBlocks")

		ks := setupSchedule(rt, aesecb.AES256, key)
		want := referenceECB(rt, ks, src)

		rec := newRecordingBackend(capBlocks * 16)
		d, err := NewChunkedDriver(rec, capBlocks*16)
		if err != nil {
			rt.Fatal(err)
		}
		got := make([]byte, len(src))
		if err := d.EncryptECB(ks, got, src); err != nil {
			rt.Fatal(err)
		}
		if !bytes.Equal(want, got) {
			rt.Fatalf("cap %d changed the ciphertext", capBlocks*16)
		}

		total := 0
		for i, c := range rec.calls {
			total += c
			if i < len(rec.calls)-1 && c != capBlocks*16 {
				rt.Fatalf("call %d carried %d bytes, want a full chunk", i, c)
			}
		}
		if total != len(src) {
			rt.Fatalf("calls covered %d bytes of %d", total, len(src))
		}
	})
}
