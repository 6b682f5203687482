// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package rng provides the random-byte sources of the library: a system
// entropy reader and a deterministic passphrase-seeded generator.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/bytemare/ksf"

	"github.com/bytemare/symcrypt/digest"
	"github.com/bytemare/symcrypt/internal/encoding"
	"github.com/bytemare/symcrypt/kdf"
)

// seedLength is the hardened seed size fed to the extraction step of the
// passphrase generator.
const seedLength = 64

// RandomBytes returns random bytes of the given length (wrapper for crypto/rand).
func RandomBytes(length int) []byte {
	r := make([]byte, length)
	if _, err := cryptorand.Read(r); err != nil {
		// We can as well not panic and try again in a loop.
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}

// SecureRandom reads system entropy and exposes typed outputs.
type SecureRandom struct{}

// NewSecureRandom returns a system entropy source.
func NewSecureRandom() *SecureRandom {
	return &SecureRandom{}
}

// Read fills p with random bytes. It implements io.Reader and never returns
// a short read without an error.
func (r *SecureRandom) Read(p []byte) (int, error) {
	return cryptorand.Read(p)
}

// Bytes returns length random bytes.
func (r *SecureRandom) Bytes(length int) []byte {
	return RandomBytes(length)
}

// Uint32 returns a random 32-bit unsigned integer.
func (r *SecureRandom) Uint32() uint32 {
	return binary.BigEndian.Uint32(RandomBytes(4))
}

// Uint64 returns a random 64-bit unsigned integer.
func (r *SecureRandom) Uint64() uint64 {
	return binary.BigEndian.Uint64(RandomBytes(8))
}

// PassphrasePRNG is a deterministic byte generator seeded by a hardened
// passphrase: the passphrase is stretched by a key-stretching function, the
// result extracted into a pseudo-random key, and output blocks are produced
// by HMAC over a big-endian block counter. Equal inputs yield equal streams.
type PassphrasePRNG struct {
	d       *digest.Digest
	prk     []byte
	buf     []byte
	counter int
}

// NewPassphrasePRNG returns a deterministic generator seeded from passphrase
// and salt, hardened with the identified key-stretching function.
func NewPassphrasePRNG(
	stretching ksf.Identifier, hashing digest.Identifier, passphrase, salt []byte,
) (*PassphrasePRNG, error) {
	d, err := hashing.New()
	if err != nil {
		return nil, err
	}

	seed := kdf.Stretch(stretching, passphrase, salt, seedLength)

	return &PassphrasePRNG{
		d:   d,
		prk: d.Extract(salt, seed),
	}, nil
}

// Read fills p with the next bytes of the deterministic stream. It
// implements io.Reader and never fails.
func (r *PassphrasePRNG) Read(p []byte) (int, error) {
	for len(r.buf) < len(p) {
		r.counter++
		r.buf = append(r.buf, r.d.Hmac(encoding.I2OSP(r.counter, 4), r.prk)...)
	}

	copy(p, r.buf[:len(p)])
	r.buf = r.buf[len(p):]

	return len(p), nil
}

// Bytes returns the next length bytes of the deterministic stream.
func (r *PassphrasePRNG) Bytes(length int) []byte {
	out := make([]byte, length)
	_, _ = r.Read(out)

	return out
}

// Zero overwrites the generator's keyed state. The generator must not be
// used afterwards.
func (r *PassphrasePRNG) Zero() {
	for i := range r.prk {
		r.prk[i] = 0
	}

	for i := range r.buf {
		r.buf[i] = 0
	}

	r.buf = nil
}
