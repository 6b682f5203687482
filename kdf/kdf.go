// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package kdf provides the key-derivation functions of the library: an HKDF
// extract-and-expand generator, a KDF2 counter generator, and a passphrase
// stretcher delegating to a key-stretching function.
package kdf

import (
	"github.com/bytemare/ksf"

	"github.com/bytemare/symcrypt/digest"
	"github.com/bytemare/symcrypt/internal/encoding"
)

// HKDF is an HMAC-based extract-and-expand key derivation function (RFC 5869)
// over a pluggable digest.
type HKDF struct {
	d *digest.Digest
}

// NewHKDF returns an HKDF generator powered by the identified digest.
func NewHKDF(id digest.Identifier) (*HKDF, error) {
	d, err := id.New()
	if err != nil {
		return nil, err
	}

	return &HKDF{d: d}, nil
}

// Size returns the output size of the Extract step.
func (k *HKDF) Size() int {
	return k.d.Size()
}

// Extract derives a pseudo-random key from the input keying material and an
// optional salt.
func (k *HKDF) Extract(salt, ikm []byte) []byte {
	return k.d.Extract(salt, ikm)
}

// Expand derives length bytes from a pseudo-random key and an optional info string.
func (k *HKDF) Expand(prk, info []byte, length int) []byte {
	return k.d.Expand(prk, info, length)
}

// Derive runs Extract then Expand.
func (k *HKDF) Derive(ikm, salt, info []byte, length int) []byte {
	return k.Expand(k.Extract(salt, ikm), info, length)
}

// KDF2 is the counter-based key derivation function of ISO/IEC 18033-2 over
// a pluggable digest.
type KDF2 struct {
	d *digest.Digest
}

// NewKDF2 returns a KDF2 generator powered by the identified digest.
func NewKDF2(id digest.Identifier) (*KDF2, error) {
	d, err := id.New()
	if err != nil {
		return nil, err
	}

	return &KDF2{d: d}, nil
}

// Size returns the output size of one digest iteration.
func (k *KDF2) Size() int {
	return k.d.Size()
}

// Derive returns length bytes derived from the secret and an optional info
// string, hashing the secret with a big-endian block counter starting at 1.
func (k *KDF2) Derive(secret, info []byte, length int) []byte {
	out := make([]byte, 0, length)

	for counter := 1; len(out) < length; counter++ {
		out = append(out, k.d.Compute(secret, encoding.I2OSP(counter, 4), info)...)
	}

	return out[:length]
}

// Stretch hardens a passphrase into length bytes with the identified
// key-stretching function and its canonical parameters.
func Stretch(id ksf.Identifier, passphrase, salt []byte, length int) []byte {
	return id.Get().Harden(passphrase, salt, length)
}
