// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package mac provides message authentication over the pluggable digest
// contract, with one-shot and streaming computation.
package mac

import (
	"crypto/hmac"
	"io"

	"github.com/bytemare/symcrypt/digest"
)

// HMAC computes hash-based message authentication codes (RFC 2104) with the
// identified digest.
type HMAC struct {
	d  *digest.Digest
	id digest.Identifier
}

// NewHMAC returns an HMAC engine powered by the identified digest.
func NewHMAC(id digest.Identifier) (*HMAC, error) {
	d, err := id.New()
	if err != nil {
		return nil, err
	}

	return &HMAC{d: d, id: id}, nil
}

// Size returns the MAC output length in bytes.
func (m *HMAC) Size() int {
	return m.d.Size()
}

// Compute returns the MAC of message under key.
func (m *HMAC) Compute(key, message []byte) []byte {
	return m.d.Hmac(message, key)
}

// Verify returns a constant-time comparison of the expected tag against the
// MAC of message under key.
func (m *HMAC) Verify(key, message, tag []byte) bool {
	return hmac.Equal(m.Compute(key, message), tag)
}

// ComputeStream returns the MAC of the reader's content under key, consuming
// the reader to EOF.
func (m *HMAC) ComputeStream(key []byte, r io.Reader) ([]byte, error) {
	h := hmac.New(m.id.CryptoID().New, key)

	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}
