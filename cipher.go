// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt

var (
	_ BlockCipher = (*RHX)(nil)
	_ CipherMode  = (*CBC)(nil)
	_ CipherMode  = (*CFB)(nil)
)

// BlockCipher is the capability interface of a fixed-block-size keyed
// permutation. Cipher modes are generic over this interface, not over a
// concrete cipher.
type BlockCipher interface {
	// Name returns the cipher name.
	Name() string

	// BlockSize returns the unit block size in bytes.
	BlockSize() int

	// Rounds returns the number of diffusion rounds processed by the transform.
	Rounds() int

	// LegalKeySizes returns the supported key lengths in bytes, in ascending order.
	LegalKeySizes() []int

	// LegalRounds returns the supported diffusion round counts.
	LegalRounds() []int

	// IsInitialized returns whether the cipher is ready to transform data.
	IsInitialized() bool

	// IsEncryption returns whether the cipher was initialized for encryption.
	IsEncryption() bool

	// Initialize derives the round keys from the container's key. The flag
	// selects the transform direction reported by IsEncryption; both block
	// operations remain callable either way.
	Initialize(encryption bool, key *SymmetricKey) error

	// EncryptBlock encrypts exactly one block from src into dst.
	EncryptBlock(src, dst []byte) error

	// DecryptBlock decrypts exactly one block from src into dst.
	DecryptBlock(src, dst []byte) error

	// Destroy zeroes the round keys and retires the instance. Idempotent.
	Destroy()
}

// CipherMode is the interface of a block-chaining mode wrapping a BlockCipher.
type CipherMode interface {
	// Name returns the mode name.
	Name() string

	// BlockSize returns the block size of the wrapped cipher in bytes.
	BlockSize() int

	// Engine returns the wrapped block cipher.
	Engine() BlockCipher

	// IsInitialized returns whether the mode is ready to transform data.
	IsInitialized() bool

	// IsEncryption returns whether the mode was initialized for encryption.
	IsEncryption() bool

	// IsParallel returns whether parallel decryption is enabled.
	IsParallel() bool

	// SetParallel enables or disables parallel decryption.
	SetParallel(enabled bool)

	// ParallelBlockSize returns the input length that triggers parallel processing.
	ParallelBlockSize() int

	// SetParallelBlockSize sets the parallel trigger length. The value must be
	// a positive multiple of ParallelMinimumSize, at most ParallelMaximumSize.
	SetParallelBlockSize(size int) error

	// ParallelMinimumSize returns the smallest valid parallel block size.
	ParallelMinimumSize() int

	// ParallelMaximumSize returns the largest valid parallel block size.
	ParallelMaximumSize() int

	// Initialize seeds the chaining register with the container's nonce and
	// initializes the wrapped cipher with its key.
	Initialize(encryption bool, key *SymmetricKey) error

	// Transform processes len(src) bytes from src into dst. The length must be
	// a positive multiple of BlockSize; sub-slice the buffers to apply offsets.
	Transform(src, dst []byte) error

	// Destroy destroys the wrapped cipher and zeroes the chaining state. Idempotent.
	Destroy()
}
