// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt

// CFB implements the full-block Cipher Feedback mode (NIST SP800-38A) over a
// BlockCipher. Both directions drive the inner cipher forward, so the
// wrapped cipher is always initialized for encryption. Encryption is
// strictly sequential; decryption chains from ciphertext known in advance
// and is processed in parallel on inputs of ParallelBlockSize bytes or more
// when IsParallel is set.
type CFB struct {
	modeState
}

// NewCFB returns a CFB mode wrapping the given block cipher.
func NewCFB(cipher BlockCipher) (*CFB, error) {
	state, err := newModeState(cipher)
	if err != nil {
		return nil, err
	}

	return &CFB{modeState: state}, nil
}

// Name returns the mode name.
func (m *CFB) Name() string {
	return "CFB"
}

// Initialize seeds the feedback register with the container's nonce and
// initializes the wrapped cipher, always in the encrypt direction.
func (m *CFB) Initialize(encryption bool, key *SymmetricKey) error {
	if err := m.modeState.initialize(encryption, key); err != nil {
		return err
	}

	if err := m.cipher.Initialize(true, key); err != nil {
		m.isInitialized = false
		return err
	}

	return nil
}

// Transform processes len(src) bytes from src into dst: whole blocks only.
func (m *CFB) Transform(src, dst []byte) error {
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
func (m *CFB) Destroy() {
	m.destroy()
}

// encrypt XORs each plaintext block with the encrypted register and shifts
// the produced ciphertext back in. Sequential by construction.
func (m *CFB) encrypt(src, dst []byte) error {
	bs := m.blockSize
	pad := make([]byte, bs)

	for off := 0; off < len(src); off += bs {
		if err := m.cipher.EncryptBlock(m.register, pad); err != nil {
			return err
		}

		for i := 0; i < bs; i++ {
			dst[off+i] = src[off+i] ^ pad[i]
		}

		copy(m.register, dst[off:off+bs])
	}

	return nil
}

// decryptSegment decrypts a run of blocks chaining from register, which
// aliases the mode register on the sequential path. The ciphertext block is
// saved before the output write so src and dst may overlap.
func (m *CFB) decryptSegment(src, dst, register []byte) error {
	bs := m.blockSize
	pad := make([]byte, bs)
	next := make([]byte, bs)

	for off := 0; off < len(src); off += bs {
		if err := m.cipher.EncryptBlock(register, pad); err != nil {
			return err
		}

		copy(next, src[off:off+bs])

		for i := 0; i < bs; i++ {
			dst[off+i] = next[i] ^ pad[i]
		}

		copy(register, next)
	}

	return nil
}
