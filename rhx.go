// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt

import (
	"encoding/binary"

	"github.com/bytemare/symcrypt/digest"
)

const (
	block16 = 16
	block32 = 32

	// maxStandardKey is the largest key length expanded with the classical
	// Rijndael schedule; longer keys go through the HKDF expansion.
	maxStandardKey = 64

	minRounds     = 10
	maxRounds     = 38
	defaultRounds = 22

	// legalKeyCount is the number of advertised key sizes: the four standard
	// lengths plus ten HKDF-extended lengths.
	legalKeyCount = 14
)

// hkdfDistribution is the default HKDF info string. A different distribution
// code yields a unique variant of the cipher.
var hkdfDistribution = []byte("information string RHX version 1")

// RHX is an extended Rijndael block cipher. Standard key lengths (16, 24, 32
// and 64 bytes) use the classical iterative key schedule; longer keys are
// expanded into the working round-key array with an HKDF generator powered by
// a pluggable digest. Block sizes are 16 and 32 bytes, rounds 10 to 38.
type RHX struct {
	kdf           *digest.Digest
	info          []byte
	roundKeys     []uint32
	legalKeySizes []int
	blockSize     int
	rounds        int
	ikmSize       int
	roundsSet     bool
	isEncryption  bool
	isInitialized bool
	isDestroyed   bool
}

// RHXOption configures an RHX instance at construction.
type RHXOption func(*RHX) error

// WithDigest selects the digest powering the HKDF key schedule. The default
// is SHA2-512.
func WithDigest(id digest.Identifier) RHXOption {
	return func(c *RHX) error {
		if !id.Available() {
			return ErrDigest
		}

		d, err := id.New()
		if err != nil {
			return ErrDigest
		}

		c.kdf = d

		return nil
	}
}

// WithBlockSize selects the cipher block size, 16 or 32 bytes. The default is 16.
func WithBlockSize(size int) RHXOption {
	return func(c *RHX) error {
		if size != block16 && size != block32 {
			return ErrBlockSize
		}

		c.blockSize = size

		return nil
	}
}

// WithRounds overrides the number of diffusion rounds: an even count between
// 10 and 38. When not set, standard 16-byte-block keys use the classical
// mapping (10, 12 or 14 rounds) and everything else uses 22.
func WithRounds(rounds int) RHXOption {
	return func(c *RHX) error {
		if rounds < minRounds || rounds > maxRounds || rounds%2 != 0 {
			return ErrRounds
		}

		c.rounds = rounds
		c.roundsSet = true

		return nil
	}
}

// NewRHX returns an RHX cipher with the given options applied. Without
// options, the cipher uses 16-byte blocks, SHA2-512 and 22 rounds.
func NewRHX(options ...RHXOption) (*RHX, error) {
	c := &RHX{
		blockSize: block16,
		rounds:    defaultRounds,
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	if c.kdf == nil {
		d, err := digest.Default.New()
		if err != nil {
			return nil, ErrDigest
		}

		c.kdf = d
	}

	c.ikmSize = c.kdf.Size()
	c.info = append([]byte(nil), hkdfDistribution...)
	c.setLegalKeySizes()

	return c, nil
}

// setLegalKeySizes recomputes the advertised key lengths from the current
// digest and ikm size.
func (c *RHX) setLegalKeySizes() {
	sizes := make([]int, 0, legalKeyCount)
	sizes = append(sizes, 16, 24, 32, 64)

	for n := 1; n <= legalKeyCount-4; n++ {
		sizes = append(sizes, c.ikmSize+n*c.kdf.BlockSize())
	}

	c.legalKeySizes = sizes
}

// Name returns the cipher name.
func (c *RHX) Name() string {
	return "RHX"
}

// BlockSize returns the unit block size in bytes.
func (c *RHX) BlockSize() int {
	return c.blockSize
}

// Rounds returns the number of diffusion rounds processed by the transform.
func (c *RHX) Rounds() int {
	return c.rounds
}

// IkmSize returns the length of the input-keying-material segment consumed
// from extended keys.
func (c *RHX) IkmSize() int {
	return c.ikmSize
}

// SetIkmSize sets the length of the input-keying-material segment of
// extended keys: a positive multiple of the digest output size, at most the
// digest block size. Must be called before Initialize.
func (c *RHX) SetIkmSize(size int) error {
	if c.isDestroyed {
		return ErrDestroyed
	}

	if c.isInitialized {
		return ErrInitialized
	}

	if size <= 0 || size%c.kdf.Size() != 0 || size > c.kdf.BlockSize() {
		return ErrIkmSize
	}

	c.ikmSize = size
	c.setLegalKeySizes()

	return nil
}

// DistributionCode returns a copy of the HKDF info string.
func (c *RHX) DistributionCode() []byte {
	return append([]byte(nil), c.info...)
}

// SetDistributionCode replaces the HKDF info string, creating a unique
// distribution of the cipher. Must be called before Initialize.
func (c *RHX) SetDistributionCode(info []byte) error {
	if c.isDestroyed {
		return ErrDestroyed
	}

	if c.isInitialized {
		return ErrInitialized
	}

	c.info = append([]byte(nil), info...)

	return nil
}

// LegalKeySizes returns the supported key lengths in bytes, in ascending order.
func (c *RHX) LegalKeySizes() []int {
	return append([]int(nil), c.legalKeySizes...)
}

// LegalRounds returns the supported diffusion round counts.
func (c *RHX) LegalRounds() []int {
	rounds := make([]int, 0, (maxRounds-minRounds)/2+1)
	for r := minRounds; r <= maxRounds; r += 2 {
		rounds = append(rounds, r)
	}

	return rounds
}

// IsInitialized returns whether the cipher is ready to transform data.
func (c *RHX) IsInitialized() bool {
	return c.isInitialized
}

// IsEncryption returns whether the cipher was initialized for encryption.
func (c *RHX) IsEncryption() bool {
	return c.isEncryption
}

// Initialize derives the round-key array from the container's key and
// readies the cipher for block transforms.
func (c *RHX) Initialize(encryption bool, key *SymmetricKey) error {
	if c.isDestroyed {
		return ErrDestroyed
	}

	if key == nil {
		return ErrNilKey
	}

	raw := key.Key()
	defer wipe(raw)

	if !c.legalKeySize(len(raw)) {
		return ErrKeySize
	}

	if !c.roundsSet {
		c.rounds = c.resolveRounds(len(raw))
	}

	if len(raw) > maxStandardKey {
		c.roundKeys = c.secureExpand(raw)
	} else {
		c.roundKeys = standardExpand(raw, c.blockSize, c.rounds)
	}

	c.isEncryption = encryption
	c.isInitialized = true

	return nil
}

// Destroy zeroes the round keys, releases the key-schedule digest and the
// distribution code, and retires the instance. Idempotent.
func (c *RHX) Destroy() {
	for i := range c.roundKeys {
		c.roundKeys[i] = 0
	}

	wipe(c.info)

	c.roundKeys = nil
	c.info = nil
	c.kdf = nil
	c.isInitialized = false
	c.isDestroyed = true
}

// EncryptBlock encrypts exactly one block from src into dst.
func (c *RHX) EncryptBlock(src, dst []byte) error {
	if err := c.blockArgs(src, dst); err != nil {
		return err
	}

	c.encryptBlock(src, dst)

	return nil
}

// DecryptBlock decrypts exactly one block from src into dst.
func (c *RHX) DecryptBlock(src, dst []byte) error {
	if err := c.blockArgs(src, dst); err != nil {
		return err
	}

	c.decryptBlock(src, dst)

	return nil
}

func (c *RHX) blockArgs(src, dst []byte) error {
	if c.isDestroyed {
		return ErrDestroyed
	}

	if !c.isInitialized {
		return ErrNotInitialized
	}

	if len(src) != c.blockSize || len(dst) != c.blockSize {
		return ErrBlockLength
	}

	return nil
}

func (c *RHX) legalKeySize(length int) bool {
	for _, s := range c.legalKeySizes {
		if s == length {
			return true
		}
	}

	return false
}

// resolveRounds returns the automatic rounds count for a key length: the
// classical Rijndael mapping for standard keys on 16-byte blocks, 22
// everywhere else.
func (c *RHX) resolveRounds(keyLength int) int {
	if c.blockSize != block16 {
		return defaultRounds
	}

	switch keyLength {
	case 16:
		return 10
	case 24:
		return 12
	case 32:
		return 14
	default:
		return defaultRounds
	}
}

// standardExpand runs the classical Rijndael iterative key schedule,
// generalized over the key word count.
func standardExpand(key []byte, blockSize, rounds int) []uint32 {
	nb := blockSize / 4
	nk := len(key) / 4
	total := nb * (rounds + 1)

	w := make([]uint32, total)
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := nk; i < total; i++ {
		temp := w[i-1]

		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp)) ^ uint32(rcon(i/nk))<<24
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}

		w[i] = w[i-nk] ^ temp
	}

	return w
}

// secureExpand fills the round-key array with the HKDF generator: the key's
// leading ikmSize bytes are the input keying material, the remainder is the
// extraction salt.
func (c *RHX) secureExpand(key []byte) []uint32 {
	ikm := key[:c.ikmSize]
	salt := key[c.ikmSize:]

	prk := c.kdf.Extract(salt, ikm)
	okm := c.kdf.Expand(prk, c.info, c.blockSize*(c.rounds+1))

	nb := c.blockSize / 4
	w := make([]uint32, nb*(c.rounds+1))
	for i := range w {
		w[i] = binary.BigEndian.Uint32(okm[4*i:])
	}

	wipe(prk)
	wipe(okm)

	return w
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func subWord(w uint32) uint32 {
	return uint32(sbox[byte(w>>24)])<<24 |
		uint32(sbox[byte(w>>16)])<<16 |
		uint32(sbox[byte(w>>8)])<<8 |
		uint32(sbox[byte(w)])
}

// rowShifts returns the ShiftRows offsets for the column count.
func rowShifts(nb int) [4]int {
	if nb == 8 {
		return [4]int{0, 1, 3, 4}
	}

	return [4]int{0, 1, 2, 3}
}

func (c *RHX) encryptBlock(src, dst []byte) {
	nb := c.blockSize / 4

	var s [4][8]byte
	loadState(&s, nb, src)

	addRoundKey(&s, nb, c.roundKeys[:nb])

	for r := 1; r < c.rounds; r++ {
		subBytes(&s, nb)
		shiftRows(&s, nb)
		mixColumns(&s, nb)
		addRoundKey(&s, nb, c.roundKeys[r*nb:(r+1)*nb])
	}

	subBytes(&s, nb)
	shiftRows(&s, nb)
	addRoundKey(&s, nb, c.roundKeys[c.rounds*nb:])

	storeState(&s, nb, dst)
}

func (c *RHX) decryptBlock(src, dst []byte) {
	nb := c.blockSize / 4

	var s [4][8]byte
	loadState(&s, nb, src)

	addRoundKey(&s, nb, c.roundKeys[c.rounds*nb:])

	for r := c.rounds - 1; r > 0; r-- {
		invShiftRows(&s, nb)
		invSubBytes(&s, nb)
		addRoundKey(&s, nb, c.roundKeys[r*nb:(r+1)*nb])
		invMixColumns(&s, nb)
	}

	invShiftRows(&s, nb)
	invSubBytes(&s, nb)
	addRoundKey(&s, nb, c.roundKeys[:nb])

	storeState(&s, nb, dst)
}

func loadState(s *[4][8]byte, nb int, src []byte) {
	for col := 0; col < nb; col++ {
		for row := 0; row < 4; row++ {
			s[row][col] = src[4*col+row]
		}
	}
}

func storeState(s *[4][8]byte, nb int, dst []byte) {
	for col := 0; col < nb; col++ {
		for row := 0; row < 4; row++ {
			dst[4*col+row] = s[row][col]
		}
	}
}

func addRoundKey(s *[4][8]byte, nb int, keys []uint32) {
	for col := 0; col < nb; col++ {
		k := keys[col]
		s[0][col] ^= byte(k >> 24)
		s[1][col] ^= byte(k >> 16)
		s[2][col] ^= byte(k >> 8)
		s[3][col] ^= byte(k)
	}
}

func subBytes(s *[4][8]byte, nb int) {
	for row := 0; row < 4; row++ {
		for col := 0; col < nb; col++ {
			s[row][col] = sbox[s[row][col]]
		}
	}
}

func invSubBytes(s *[4][8]byte, nb int) {
	for row := 0; row < 4; row++ {
		for col := 0; col < nb; col++ {
			s[row][col] = invSbox[s[row][col]]
		}
	}
}

func shiftRows(s *[4][8]byte, nb int) {
	shifts := rowShifts(nb)

	for row := 1; row < 4; row++ {
		var t [8]byte
		for col := 0; col < nb; col++ {
			t[col] = s[row][(col+shifts[row])%nb]
		}

		s[row] = t
	}
}

func invShiftRows(s *[4][8]byte, nb int) {
	shifts := rowShifts(nb)

	for row := 1; row < 4; row++ {
		var t [8]byte
		for col := 0; col < nb; col++ {
			t[(col+shifts[row])%nb] = s[row][col]
		}

		s[row] = t
	}
}

func mixColumns(s *[4][8]byte, nb int) {
	for col := 0; col < nb; col++ {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gfMul(a0, 0x02) ^ gfMul(a1, 0x03) ^ a2 ^ a3
		s[1][col] = a0 ^ gfMul(a1, 0x02) ^ gfMul(a2, 0x03) ^ a3
		s[2][col] = a0 ^ a1 ^ gfMul(a2, 0x02) ^ gfMul(a3, 0x03)
		s[3][col] = gfMul(a0, 0x03) ^ a1 ^ a2 ^ gfMul(a3, 0x02)
	}
}

func invMixColumns(s *[4][8]byte, nb int) {
	for col := 0; col < nb; col++ {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gfMul(a0, 0x0e) ^ gfMul(a1, 0x0b) ^ gfMul(a2, 0x0d) ^ gfMul(a3, 0x09)
		s[1][col] = gfMul(a0, 0x09) ^ gfMul(a1, 0x0e) ^ gfMul(a2, 0x0b) ^ gfMul(a3, 0x0d)
		s[2][col] = gfMul(a0, 0x0d) ^ gfMul(a1, 0x09) ^ gfMul(a2, 0x0e) ^ gfMul(a3, 0x0b)
		s[3][col] = gfMul(a0, 0x0b) ^ gfMul(a1, 0x0d) ^ gfMul(a2, 0x09) ^ gfMul(a3, 0x0e)
	}
}
