// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package padding provides block-alignment padding schemes. The chaining
// modes operate on whole blocks only; callers pad the final partial block
// before encryption and unpad after decryption.
package padding

import (
	"errors"
)

var (
	// ErrIdentifier indicates an unknown padding identifier.
	ErrIdentifier = errors.New("invalid padding identifier")

	// ErrBlockSize indicates a non-positive or oversized block size.
	ErrBlockSize = errors.New("invalid padding block size")

	// ErrPadding indicates corrupt or inconsistent padding bytes.
	ErrPadding = errors.New("invalid padding")
)

// Identifier designates a padding scheme.
type Identifier byte

const (
	// PKCS7 pads with n bytes of value n (RFC 5652).
	PKCS7 Identifier = 1 + iota

	// X923 pads with zeros and a final count byte (ANSI X9.23).
	X923

	// Zero pads with zeros. Not self-describing: unpadding strips all
	// trailing zeros, so the plaintext must not end in a zero byte.
	Zero

	maxID
)

// Available returns whether the identifier designates a usable scheme.
func (i Identifier) Available() bool {
	return i > 0 && i < maxID
}

// String returns the scheme name.
func (i Identifier) String() string {
	switch i {
	case PKCS7:
		return "PKCS7"
	case X923:
		return "X923"
	case Zero:
		return "Zero"
	default:
		return ""
	}
}

// Pad returns data extended to a multiple of blockSize under the scheme.
// PKCS7 and X923 always append between 1 and blockSize bytes; Zero appends
// only what alignment requires. The block size must be between 1 and 255.
func (i Identifier) Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize > 255 {
		return nil, ErrBlockSize
	}

	n := blockSize - len(data)%blockSize

	switch i {
	case PKCS7:
		out := append([]byte(nil), data...)
		for j := 0; j < n; j++ {
			out = append(out, byte(n))
		}

		return out, nil
	case X923:
		out := append([]byte(nil), data...)
		for j := 0; j < n-1; j++ {
			out = append(out, 0)
		}

		return append(out, byte(n)), nil
	case Zero:
		out := append([]byte(nil), data...)
		if n == blockSize {
			return out, nil
		}

		for j := 0; j < n; j++ {
			out = append(out, 0)
		}

		return out, nil
	default:
		return nil, ErrIdentifier
	}
}

// Unpad strips the scheme's padding from data, which must be a non-empty
// multiple of blockSize.
func (i Identifier) Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize > 255 {
		return nil, ErrBlockSize
	}

	if i == Zero {
		end := len(data)
		for end > 0 && data[end-1] == 0 {
			end--
		}

		return append([]byte(nil), data[:end]...), nil
	}

	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrPadding
	}

	switch i {
	case PKCS7:
		for _, b := range data[len(data)-n:] {
			if b != byte(n) {
				return nil, ErrPadding
			}
		}
	case X923:
		for _, b := range data[len(data)-n : len(data)-1] {
			if b != 0 {
				return nil, ErrPadding
			}
		}
	default:
		return nil, ErrIdentifier
	}

	return append([]byte(nil), data[:len(data)-n]...), nil
}
