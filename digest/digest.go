// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package digest provides the pluggable digest contract consumed by the key
// schedule, KDF, MAC and PRNG layers: a fixed set of hash functions exposed
// through output size, internal block size, HMAC, and HKDF extract/expand.
package digest

import (
	"crypto"
	"errors"

	"github.com/bytemare/hash"

	_ "crypto/sha256" // registers SHA-256 and SHA-384
	_ "crypto/sha512" // registers SHA-512

	_ "golang.org/x/crypto/sha3" // registers the SHA-3 family
)

// ErrIdentifier indicates an unavailable digest identifier.
var ErrIdentifier = errors.New("invalid digest identifier")

// Identifier designates a hash function usable as a key-schedule and KDF engine.
type Identifier byte

const (
	// SHA256 identifies SHA2-256.
	SHA256 Identifier = 1 + iota

	// SHA384 identifies SHA2-384.
	SHA384

	// SHA512 identifies SHA2-512.
	SHA512

	// SHA3_256 identifies SHA3-256.
	SHA3_256

	// SHA3_512 identifies SHA3-512.
	SHA3_512

	maxID
)

// Default is the digest used when none is specified.
const Default = SHA512

// Available returns whether the identifier designates a usable hash function.
func (i Identifier) Available() bool {
	return i > 0 && i < maxID
}

// String returns the canonical name of the hash function.
func (i Identifier) String() string {
	switch i {
	case SHA256:
		return "SHA256"
	case SHA384:
		return "SHA384"
	case SHA512:
		return "SHA512"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_512:
		return "SHA3-512"
	default:
		return ""
	}
}

// CryptoID returns the stdlib crypto.Hash identifier of the hash function.
func (i Identifier) CryptoID() crypto.Hash {
	switch i {
	case SHA256:
		return crypto.SHA256
	case SHA384:
		return crypto.SHA384
	case SHA512:
		return crypto.SHA512
	case SHA3_256:
		return crypto.SHA3_256
	case SHA3_512:
		return crypto.SHA3_512
	default:
		return 0
	}
}

// OutputSize returns the digest output length in bytes.
func (i Identifier) OutputSize() int {
	switch i {
	case SHA256, SHA3_256:
		return 32
	case SHA384:
		return 48
	case SHA512, SHA3_512:
		return 64
	default:
		return 0
	}
}

// BlockSize returns the internal block (rate) size of the hash function in bytes.
func (i Identifier) BlockSize() int {
	switch i {
	case SHA256:
		return 64
	case SHA384, SHA512:
		return 128
	case SHA3_256:
		return 136
	case SHA3_512:
		return 72
	default:
		return 0
	}
}

// New returns a Digest engine for the identifier.
func (i Identifier) New() (*Digest, error) {
	if !i.Available() {
		return nil, ErrIdentifier
	}

	return &Digest{
		id: i,
		h:  hash.FromCrypto(i.CryptoID()).GetHashFunction(),
	}, nil
}

// Digest wraps a hash function and exposes the operations the library
// consumes: plain hashing, HMAC, and HKDF extract/expand.
type Digest struct {
	h  *hash.Fixed
	id Identifier
}

// Identifier returns the identifier the engine was built from.
func (d *Digest) Identifier() Identifier {
	return d.id
}

// Size returns the digest output length in bytes.
func (d *Digest) Size() int {
	return d.id.OutputSize()
}

// BlockSize returns the internal block size of the hash function in bytes.
func (d *Digest) BlockSize() int {
	return d.id.BlockSize()
}

// Compute returns the hash of the concatenation of the input slices.
func (d *Digest) Compute(input ...[]byte) []byte {
	d.h.Reset()

	for _, in := range input {
		_, _ = d.h.Write(in)
	}

	return d.h.Sum(nil)
}

// Hmac computes the keyed hash of message under key.
func (d *Digest) Hmac(message, key []byte) []byte {
	return d.h.Hmac(message, key)
}

// Extract derives a pseudo-random key from the input keying material and an
// optional salt, per the HKDF extract step.
func (d *Digest) Extract(salt, ikm []byte) []byte {
	return d.h.HKDFExtract(ikm, salt)
}

// Expand derives length bytes from a pseudo-random key and an optional info
// string, per the HKDF expand step.
func (d *Digest) Expand(prk, info []byte, length int) []byte {
	return d.h.HKDFExpand(prk, info, length)
}
