// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package symcrypt provides symmetric-cryptography primitives: an extended
// Rijndael block cipher (RHX) with a digest-driven key schedule for
// non-standard key sizes, and block-chaining modes (CBC, CFB) with parallel
// decryption.
//
// A block cipher is wrapped in a cipher mode, initialized with a
// SymmetricKey holding the key and IV, and then driven through Transform
// over whole blocks. Padding of the last block is the caller's
// responsibility (see the padding subpackage).
//
//	cipher, _ := symcrypt.NewRHX()
//	mode, _ := symcrypt.NewCBC(cipher)
//	key, _ := symcrypt.NewSymmetricKey(k, iv, nil)
//	_ = mode.Initialize(true, key)
//	_ = mode.Transform(plaintext, ciphertext)
//	mode.Destroy()
package symcrypt
