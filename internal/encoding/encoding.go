// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package encoding provides byte-level encoding utilities.
package encoding

import (
	"encoding/binary"
	"errors"
)

var (
	errLengthRange = errors.New("length must be between 1 and 4")
	errInputRange  = errors.New("input does not fit the requested length")
)

// I2OSP is the 32-bit Integer to Octet Stream Primitive on maximum 4 bytes.
func I2OSP(value, length int) []byte {
	if length <= 0 || length > 4 {
		panic(errLengthRange)
	}

	if value < 0 || length < 4 && value >= 1<<(8*length) {
		panic(errInputRange)
	}

	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(value))

	return out[4-length:]
}
