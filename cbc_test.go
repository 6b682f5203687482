// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/symcrypt"
	"github.com/bytemare/symcrypt/rng"
)

// SP800-38A appendix F: the common AES-128 key, IV and plaintext blocks.
const (
	sp800Key = "2b7e151628aed2a6abf7158809cf4f3c"
	sp800IV  = "000102030405060708090a0b0c0d0e0f"
	sp800Pt  = "6bc1bee22e409f96e93d7e117393172a" +
		"ae2d8a571e03ac9c9eb76fac45af8e51" +
		"30c81c46a35ce411e5fbc1191a0a52ef" +
		"f69f2445df4f9b17ad2b417be66c3710"
)

const sp800CbcCt = "7649abac8119b246cee98e9b12e9197d" +
	"5086cb9b507219ee95db113a917678b2" +
	"73bed6b8e3c1743b7116e69e22229516" +
	"3ff1caa1681fac09120eca307586e1a7"

func newCBC(t *testing.T, encryption bool, key, iv []byte) *symcrypt.CBC {
	t.Helper()

	cipher, err := symcrypt.NewRHX()
	require.NoError(t, err)

	mode, err := symcrypt.NewCBC(cipher)
	require.NoError(t, err)
	require.NoError(t, mode.Initialize(encryption, newKey(t, key, iv)))

	return mode
}

func TestCBC_KnownAnswer(t *testing.T) {
	key := fromHex(t, sp800Key)
	iv := fromHex(t, sp800IV)
	plaintext := fromHex(t, sp800Pt)
	ciphertext := fromHex(t, sp800CbcCt)

	enc := newCBC(t, true, key, iv)
	out := make([]byte, len(plaintext))
	require.NoError(t, enc.Transform(plaintext, out))
	require.Equal(t, ciphertext, out)

	dec := newCBC(t, false, key, iv)
	back := make([]byte, len(ciphertext))
	require.NoError(t, dec.Transform(ciphertext, back))
	require.Equal(t, plaintext, back)
}

func TestCBC_FirstBlockZeroIV(t *testing.T) {
	// With a zero IV the first chained block degenerates to the raw block
	// transform, so the FIPS-197 cipher example must come out verbatim.
	key := fromHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	plaintext := fromHex(t, "3243f6a8885a308d313198a2e0370734")

	enc := newCBC(t, true, key, make([]byte, 16))
	out := make([]byte, 16)
	require.NoError(t, enc.Transform(plaintext, out))
	require.Equal(t, fromHex(t, "3925841d02dc09fbdc118597196a0b32"), out)
}

func TestCBC_RoundTrip(t *testing.T) {
	for _, blockSize := range []int{16, 32} {
		for _, blocks := range []int{1, 2, 7, 64} {
			key := rng.RandomBytes(32)
			iv := rng.RandomBytes(blockSize)
			plaintext := rng.RandomBytes(blocks * blockSize)

			cipher, err := symcrypt.NewRHX(symcrypt.WithBlockSize(blockSize))
			require.NoError(t, err)

			enc, err := symcrypt.NewCBC(cipher)
			require.NoError(t, err)
			require.NoError(t, enc.Initialize(true, newKey(t, key, iv)))

			ciphertext := make([]byte, len(plaintext))
			require.NoError(t, enc.Transform(plaintext, ciphertext))
			require.NotEqual(t, plaintext, ciphertext)

			decipher, err := symcrypt.NewRHX(symcrypt.WithBlockSize(blockSize))
			require.NoError(t, err)

			dec, err := symcrypt.NewCBC(decipher)
			require.NoError(t, err)
			require.NoError(t, dec.Initialize(false, newKey(t, key, iv)))

			back := make([]byte, len(ciphertext))
			require.NoError(t, dec.Transform(ciphertext, back))
			require.Equal(t, plaintext, back)
		}
	}
}

func TestCBC_Streaming(t *testing.T) {
	// Transforming in one call or across several calls yields the same
	// stream: the chaining register carries over between calls.
	key := rng.RandomBytes(32)
	iv := rng.RandomBytes(16)
	plaintext := rng.RandomBytes(8 * 16)

	whole := newCBC(t, true, key, iv)
	reference := make([]byte, len(plaintext))
	require.NoError(t, whole.Transform(plaintext, reference))

	split := newCBC(t, true, key, iv)
	out := make([]byte, len(plaintext))
	require.NoError(t, split.Transform(plaintext[:3*16], out[:3*16]))
	require.NoError(t, split.Transform(plaintext[3*16:], out[3*16:]))
	require.Equal(t, reference, out)
}

func TestCBC_ChainingDiffusion(t *testing.T) {
	// A change in plaintext block i alters every ciphertext block from i on.
	key := rng.RandomBytes(32)
	iv := rng.RandomBytes(16)
	plaintext := rng.RandomBytes(4 * 16)

	mutated := append([]byte(nil), plaintext...)
	mutated[16] ^= 0x01

	a := make([]byte, len(plaintext))
	require.NoError(t, newCBC(t, true, key, iv).Transform(plaintext, a))

	b := make([]byte, len(mutated))
	require.NoError(t, newCBC(t, true, key, iv).Transform(mutated, b))

	require.Equal(t, a[:16], b[:16])

	for block := 1; block < 4; block++ {
		require.NotEqual(t, a[block*16:(block+1)*16], b[block*16:(block+1)*16])
	}
}

func TestCBC_InPlace(t *testing.T) {
	key := rng.RandomBytes(32)
	iv := rng.RandomBytes(16)
	plaintext := rng.RandomBytes(4 * 16)

	buffer := append([]byte(nil), plaintext...)
	require.NoError(t, newCBC(t, true, key, iv).Transform(buffer, buffer))
	require.NoError(t, newCBC(t, false, key, iv).Transform(buffer, buffer))
	require.Equal(t, plaintext, buffer)
}

func TestCBC_Errors(t *testing.T) {
	cipher, err := symcrypt.NewRHX()
	require.NoError(t, err)

	_, err = symcrypt.NewCBC(nil)
	require.ErrorIs(t, err, symcrypt.ErrCodeConfiguration)

	mode, err := symcrypt.NewCBC(cipher)
	require.NoError(t, err)

	buffer := make([]byte, 32)
	require.ErrorIs(t, mode.Transform(buffer, buffer), symcrypt.ErrCodeState)

	require.ErrorIs(t, mode.Initialize(true, nil), symcrypt.ErrCodeConfiguration)

	// The nonce must be one full block.
	require.ErrorIs(t,
		mode.Initialize(true, newKey(t, rng.RandomBytes(32), rng.RandomBytes(15))),
		symcrypt.ErrCodeConfiguration)
	require.False(t, mode.IsInitialized())

	// A key the engine rejects leaves the mode uninitialized.
	require.ErrorIs(t,
		mode.Initialize(true, newKey(t, rng.RandomBytes(17), rng.RandomBytes(16))),
		symcrypt.ErrCodeConfiguration)
	require.False(t, mode.IsInitialized())

	require.NoError(t, mode.Initialize(true, newKey(t, rng.RandomBytes(32), rng.RandomBytes(16))))

	require.ErrorIs(t, mode.Transform(nil, buffer), symcrypt.ErrCodeSize)
	require.ErrorIs(t, mode.Transform(make([]byte, 33), make([]byte, 33)), symcrypt.ErrCodeSize)
	require.ErrorIs(t, mode.Transform(buffer, make([]byte, 16)), symcrypt.ErrCodeSize)
}

func TestCBC_FailedCallDoesNotAdvance(t *testing.T) {
	key := rng.RandomBytes(32)
	iv := rng.RandomBytes(16)
	plaintext := rng.RandomBytes(4 * 16)

	reference := make([]byte, len(plaintext))
	require.NoError(t, newCBC(t, true, key, iv).Transform(plaintext, reference))

	mode := newCBC(t, true, key, iv)
	out := make([]byte, len(plaintext))
	require.NoError(t, mode.Transform(plaintext[:32], out[:32]))

	// A rejected call must leave the chaining register where it was.
	require.ErrorIs(t, mode.Transform(plaintext[:17], out), symcrypt.ErrCodeSize)

	require.NoError(t, mode.Transform(plaintext[32:], out[32:]))
	require.Equal(t, reference, out)
}

func TestCBC_Destroy(t *testing.T) {
	mode := newCBC(t, true, rng.RandomBytes(32), rng.RandomBytes(16))

	mode.Destroy()
	mode.Destroy()

	buffer := make([]byte, 16)
	require.ErrorIs(t, mode.Transform(buffer, buffer), symcrypt.ErrCodeState)
	require.ErrorIs(t,
		mode.Initialize(true, newKey(t, rng.RandomBytes(32), rng.RandomBytes(16))),
		symcrypt.ErrCodeState)
	require.False(t, mode.IsInitialized())
	require.False(t, mode.Engine().IsInitialized())
}
