// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package padding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/symcrypt/padding"
)

func TestIdentifier(t *testing.T) {
	for _, id := range []padding.Identifier{padding.PKCS7, padding.X923, padding.Zero} {
		require.True(t, id.Available())
		require.NotEmpty(t, id.String())
	}

	var invalid padding.Identifier
	require.False(t, invalid.Available())
	require.Empty(t, invalid.String())

	_, err := invalid.Pad([]byte("data"), 16)
	require.ErrorIs(t, err, padding.ErrIdentifier)

	_, err = invalid.Unpad(make([]byte, 16), 16)
	require.ErrorIs(t, err, padding.ErrIdentifier)
}

func TestPad_RoundTrip(t *testing.T) {
	for _, id := range []padding.Identifier{padding.PKCS7, padding.X923} {
		for _, blockSize := range []int{16, 32} {
			for length := 0; length <= 2*blockSize; length++ {
				data := make([]byte, length)
				for i := range data {
					data[i] = byte(i%254) + 1
				}

				padded, err := id.Pad(data, blockSize)
				require.NoError(t, err)
				require.Zero(t, len(padded)%blockSize)
				require.Greater(t, len(padded), length)

				back, err := id.Unpad(padded, blockSize)
				require.NoError(t, err)
				require.Equal(t, data, back)
			}
		}
	}
}

func TestPad_Values(t *testing.T) {
	padded, err := padding.PKCS7.Pad([]byte{0xaa, 0xbb, 0xcc}, 8)
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc, 5, 5, 5, 5, 5}, padded)

	padded, err = padding.X923.Pad([]byte{0xaa, 0xbb, 0xcc}, 8)
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0, 0, 0, 0, 5}, padded)

	// Aligned input still gains a full padding block under PKCS7 and X923.
	padded, err = padding.PKCS7.Pad(make([]byte, 8), 8)
	require.NoError(t, err)
	require.Len(t, padded, 16)

	// Zero padding only fills to alignment.
	padded, err = padding.Zero.Pad([]byte{0xaa, 0xbb, 0xcc}, 8)
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0, 0, 0, 0, 0}, padded)

	padded, err = padding.Zero.Pad(make([]byte, 8), 8)
	require.NoError(t, err)
	require.Len(t, padded, 8)
}

func TestZero_RoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}

	padded, err := padding.Zero.Pad(data, 16)
	require.NoError(t, err)

	back, err := padding.Zero.Unpad(padded, 16)
	require.NoError(t, err)
	require.Equal(t, data, back)

	// Not self-describing: trailing plaintext zeros are stripped too.
	padded, err = padding.Zero.Pad([]byte{1, 2, 3, 0}, 16)
	require.NoError(t, err)

	back, err = padding.Zero.Unpad(padded, 16)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, back)
}

func TestUnpad_Corrupt(t *testing.T) {
	corrupt := [][]byte{
		{1, 2, 3, 4, 5, 6, 7, 0},    // count byte zero
		{1, 2, 3, 4, 5, 6, 7, 9},    // count exceeds block
		{1, 2, 3, 4, 5, 3, 2, 3},    // PKCS7 filler mismatch
		make([]byte, 7),             // not block aligned
		nil,                         // empty
	}

	for _, data := range corrupt {
		_, err := padding.PKCS7.Unpad(data, 8)
		require.ErrorIs(t, err, padding.ErrPadding)
	}

	// X923 filler must be zero.
	_, err := padding.X923.Unpad([]byte{1, 2, 3, 4, 5, 0xff, 0, 3}, 8)
	require.ErrorIs(t, err, padding.ErrPadding)
}

func TestPad_BlockSize(t *testing.T) {
	for _, blockSize := range []int{0, -1, 256} {
		_, err := padding.PKCS7.Pad([]byte("data"), blockSize)
		require.ErrorIs(t, err, padding.ErrBlockSize)

		_, err = padding.PKCS7.Unpad(make([]byte, 16), blockSize)
		require.ErrorIs(t, err, padding.ErrBlockSize)
	}
}
