// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt

import (
	"runtime"
)

const (
	// parallelDefaultBlock is the target parallel trigger length before
	// rounding to the parallel minimum size.
	parallelDefaultBlock = 64000

	// parallelMaxAlloc caps the parallel block size at 100 MB.
	parallelMaxAlloc = 100000000
)

// modeState carries the chaining register and the parallel-processing
// profile shared by the block-chaining modes.
type modeState struct {
	cipher            BlockCipher
	register          []byte
	blockSize         int
	processorCount    int
	parallelBlockSize int
	isParallel        bool
	isEncryption      bool
	isInitialized     bool
	isDestroyed       bool
}

func newModeState(cipher BlockCipher) (modeState, error) {
	if cipher == nil {
		return modeState{}, ErrNilCipher
	}

	procs := runtime.GOMAXPROCS(0)
	if procs < 1 {
		procs = 1
	}

	m := modeState{
		cipher:         cipher,
		blockSize:      cipher.BlockSize(),
		processorCount: procs,
		isParallel:     procs > 1,
	}

	m.parallelBlockSize = parallelDefaultBlock - parallelDefaultBlock%m.ParallelMinimumSize()
	if m.parallelBlockSize == 0 {
		m.parallelBlockSize = m.ParallelMinimumSize()
	}

	return m, nil
}

// BlockSize returns the block size of the wrapped cipher in bytes.
func (m *modeState) BlockSize() int {
	return m.blockSize
}

// Engine returns the wrapped block cipher.
func (m *modeState) Engine() BlockCipher {
	return m.cipher
}

// IsInitialized returns whether the mode is ready to transform data.
func (m *modeState) IsInitialized() bool {
	return m.isInitialized
}

// IsEncryption returns whether the mode was initialized for encryption.
func (m *modeState) IsEncryption() bool {
	return m.isEncryption
}

// IsParallel returns whether parallel decryption is enabled.
func (m *modeState) IsParallel() bool {
	return m.isParallel
}

// SetParallel enables or disables parallel decryption.
func (m *modeState) SetParallel(enabled bool) {
	m.isParallel = enabled
}

// ParallelBlockSize returns the input length that triggers parallel processing.
func (m *modeState) ParallelBlockSize() int {
	return m.parallelBlockSize
}

// SetParallelBlockSize sets the parallel trigger length. The value must be a
// positive multiple of ParallelMinimumSize, at most ParallelMaximumSize.
func (m *modeState) SetParallelBlockSize(size int) error {
	if size <= 0 || size%m.ParallelMinimumSize() != 0 || size > m.ParallelMaximumSize() {
		return ErrParallelBlockSize
	}

	m.parallelBlockSize = size

	return nil
}

// ParallelMinimumSize returns the smallest valid parallel block size: one
// block per processor.
func (m *modeState) ParallelMinimumSize() int {
	return m.processorCount * m.blockSize
}

// ParallelMaximumSize returns the largest valid parallel block size.
func (m *modeState) ParallelMaximumSize() int {
	return parallelMaxAlloc
}

// initialize seeds the chaining register from the container's nonce. The
// wrapped cipher is initialized by the calling mode, which owns the
// transform direction of the inner cipher.
func (m *modeState) initialize(encryption bool, key *SymmetricKey) error {
	if m.isDestroyed {
		return ErrDestroyed
	}

	if key == nil {
		return ErrNilKey
	}

	iv := key.Nonce()
	if len(iv) != m.blockSize {
		return ErrIVSize
	}

	m.register = iv
	m.isEncryption = encryption
	m.isInitialized = true

	return nil
}

// transformArgs validates a Transform call. The chaining register is not
// touched, so a failed call never advances the mode state.
func (m *modeState) transformArgs(src, dst []byte) error {
	if m.isDestroyed {
		return ErrDestroyed
	}

	if !m.isInitialized {
		return ErrNotInitialized
	}

	if len(src) == 0 || len(src)%m.blockSize != 0 {
		return ErrTransformLength
	}

	if len(dst) < len(src) {
		return ErrOutputLength
	}

	return nil
}

// useParallel reports whether a decryption of length bytes takes the
// parallel path.
func (m *modeState) useParallel(length int) bool {
	return m.isParallel && length >= m.parallelBlockSize && length/m.blockSize > 1
}

// destroy destroys the wrapped cipher and zeroes the chaining state. Idempotent.
func (m *modeState) destroy() {
	m.cipher.Destroy()
	wipe(m.register)
	m.register = nil
	m.isInitialized = false
	m.isDestroyed = true
}
