// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt

// CBC implements the Cipher Block Chaining mode (NIST SP800-38A) over a
// BlockCipher. Encryption is strictly sequential; decryption chains from
// ciphertext known in advance and is processed in parallel on inputs of
// ParallelBlockSize bytes or more when IsParallel is set.
type CBC struct {
	modeState
}

// NewCBC returns a CBC mode wrapping the given block cipher.
func NewCBC(cipher BlockCipher) (*CBC, error) {
	state, err := newModeState(cipher)
	if err != nil {
		return nil, err
	}

	return &CBC{modeState: state}, nil
}

// Name returns the mode name.
func (m *CBC) Name() string {
	return "CBC"
}

// Initialize seeds the chaining register with the container's nonce and
// initializes the wrapped cipher in the requested direction.
func (m *CBC) Initialize(encryption bool, key *SymmetricKey) error {
	if err := m.modeState.initialize(encryption, key); err != nil {
		return err
	}

	if err := m.cipher.Initialize(encryption, key); err != nil {
		m.isInitialized = false
		return err
	}

	return nil
}

// Transform processes len(src) bytes from src into dst: whole blocks only.
func (m *CBC) Transform(src, dst []byte) error {
	if err := m.transformArgs(src, dst); err != nil {
		return err
	}

	if m.isEncryption {
		return m.encrypt(src, dst)
	}

	if m.useParallel(len(src)) {
		return m.decryptParallel(src, dst, m.decryptSegment)
	}

	return m.decryptSegment(src, dst, m.register)
}

// Destroy destroys the wrapped cipher and zeroes the chaining state. Idempotent.
func (m *CBC) Destroy() {
	m.destroy()
}

// encrypt chains each plaintext block into the cipher input. Sequential by
// construction: block i's input depends on block i-1's output.
func (m *CBC) encrypt(src, dst []byte) error {
	bs := m.blockSize

	for off := 0; off < len(src); off += bs {
		for i := 0; i < bs; i++ {
			m.register[i] ^= src[off+i]
		}

		if err := m.cipher.EncryptBlock(m.register, dst[off:off+bs]); err != nil {
			return err
		}

		copy(m.register, dst[off:off+bs])
	}

	return nil
}

// decryptSegment decrypts a run of blocks chaining from register, which
// aliases the mode register on the sequential path. The ciphertext block is
// saved before the output write so src and dst may overlap.
func (m *CBC) decryptSegment(src, dst, register []byte) error {
	bs := m.blockSize
	next := make([]byte, bs)

	for off := 0; off < len(src); off += bs {
		copy(next, src[off:off+bs])

		if err := m.cipher.DecryptBlock(src[off:off+bs], dst[off:off+bs]); err != nil {
			return err
		}

		for i := 0; i < bs; i++ {
			dst[off+i] ^= register[i]
		}

		copy(register, next)
	}

	return nil
}
