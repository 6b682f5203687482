// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt

// KeySizes describes the byte lengths of the members of a SymmetricKey.
type KeySizes struct {
	KeySize   int
	NonceSize int
	InfoSize  int
}

// SymmetricKey is a container for the keying material used to initialize
// ciphers, modes, MACs and generators. The constructor copies its inputs,
// and consumers copy the bytes they need, so the container can be zeroed
// as soon as initialization returns.
type SymmetricKey struct {
	key   []byte
	nonce []byte
	info  []byte
}

// NewSymmetricKey returns a container holding copies of key, nonce and info.
// The nonce and info members are optional and may be nil.
func NewSymmetricKey(key, nonce, info []byte) (*SymmetricKey, error) {
	if len(key) == 0 {
		return nil, ErrNilKey
	}

	return &SymmetricKey{
		key:   append([]byte(nil), key...),
		nonce: append([]byte(nil), nonce...),
		info:  append([]byte(nil), info...),
	}, nil
}

// Key returns a copy of the primary key.
func (k *SymmetricKey) Key() []byte {
	return append([]byte(nil), k.key...)
}

// Nonce returns a copy of the nonce, or nil if none was set.
func (k *SymmetricKey) Nonce() []byte {
	if len(k.nonce) == 0 {
		return nil
	}

	return append([]byte(nil), k.nonce...)
}

// Info returns a copy of the personalization string, or nil if none was set.
func (k *SymmetricKey) Info() []byte {
	if len(k.info) == 0 {
		return nil
	}

	return append([]byte(nil), k.info...)
}

// KeySizes returns the byte lengths of the container members.
func (k *SymmetricKey) KeySizes() KeySizes {
	return KeySizes{
		KeySize:   len(k.key),
		NonceSize: len(k.nonce),
		InfoSize:  len(k.info),
	}
}

// Zero overwrites all keying material held by the container. The container
// must not be used for initialization afterwards. Zero is idempotent.
func (k *SymmetricKey) Zero() {
	wipe(k.key)
	wipe(k.nonce)
	wipe(k.info)
}

// wipe overwrites b with zeros.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
