// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt

import (
	"golang.org/x/sync/errgroup"
)

// segment is a contiguous run of ciphertext blocks owned by one decryption task.
type segment struct {
	start  int
	blocks int
}

// partition splits blocks into degree near-equal contiguous segments.
func partition(blocks, degree int) []segment {
	base := blocks / degree
	rem := blocks % degree

	segments := make([]segment, 0, degree)
	start := 0

	for k := 0; k < degree; k++ {
		n := base
		if k < rem {
			n++
		}

		segments = append(segments, segment{start: start, blocks: n})
		start += n
	}

	return segments
}

// segmentDecrypter decrypts one segment of ciphertext into its disjoint
// output slice, chaining from the given register.
type segmentDecrypter func(src, dst, register []byte) error

// decryptParallel partitions the input into independent segments and runs
// one decryption task per segment. Segment 0 chains from the mode register;
// every later segment chains from the ciphertext block preceding it, which
// is known before any decryption begins. On success the mode register is
// advanced to the last ciphertext block; on failure it is left unchanged.
func (m *modeState) decryptParallel(src, dst []byte, decrypt segmentDecrypter) error {
	bs := m.blockSize
	blocks := len(src) / bs

	degree := m.processorCount
	if degree > blocks {
		degree = blocks
	}

	segments := partition(blocks, degree)

	// Every seed register and the last ciphertext block are captured before
	// any task launches: dst may alias src, and a running task overwrites
	// the ciphertext block the following segment chains from.
	registers := make([][]byte, len(segments))
	for k, seg := range segments {
		registers[k] = make([]byte, bs)
		if seg.start == 0 {
			copy(registers[k], m.register)
		} else {
			copy(registers[k], src[(seg.start-1)*bs:seg.start*bs])
		}
	}

	last := append([]byte(nil), src[len(src)-bs:]...)

	var group errgroup.Group

	for k, seg := range segments {
		lo, hi := seg.start*bs, (seg.start+seg.blocks)*bs
		segSrc, segDst, register := src[lo:hi], dst[lo:hi], registers[k]

		group.Go(func() error {
			return decrypt(segSrc, segDst, register)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	copy(m.register, last)

	return nil
}
