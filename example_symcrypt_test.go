// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt_test

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/bytemare/symcrypt"
	"github.com/bytemare/symcrypt/padding"
)

// ExampleRHX shows a single-block transform. A 16-byte key on the default
// 16-byte block runs the classical 10-round schedule.
func ExampleRHX() {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext, _ := hex.DecodeString("3243f6a8885a308d313198a2e0370734")

	cipher, err := symcrypt.NewRHX()
	if err != nil {
		log.Fatalln(err)
	}

	container, err := symcrypt.NewSymmetricKey(key, nil, nil)
	if err != nil {
		log.Fatalln(err)
	}

	if err := cipher.Initialize(true, container); err != nil {
		log.Fatalln(err)
	}

	container.Zero()

	ciphertext := make([]byte, cipher.BlockSize())
	if err := cipher.EncryptBlock(plaintext, ciphertext); err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("%x\n", ciphertext)

	cipher.Destroy()

	// Output: 3925841d02dc09fbdc118597196a0b32
}

// ExampleCBC encrypts and decrypts a padded message in CBC mode.
func ExampleCBC() {
	key, _ := hex.DecodeString("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	message := []byte("a secret worth chaining")

	newMode := func(encryption bool) *symcrypt.CBC {
		cipher, err := symcrypt.NewRHX()
		if err != nil {
			log.Fatalln(err)
		}

		mode, err := symcrypt.NewCBC(cipher)
		if err != nil {
			log.Fatalln(err)
		}

		container, err := symcrypt.NewSymmetricKey(key, iv, nil)
		if err != nil {
			log.Fatalln(err)
		}

		defer container.Zero()

		if err := mode.Initialize(encryption, container); err != nil {
			log.Fatalln(err)
		}

		return mode
	}

	padded, err := padding.PKCS7.Pad(message, 16)
	if err != nil {
		log.Fatalln(err)
	}

	enc := newMode(true)
	ciphertext := make([]byte, len(padded))
	if err := enc.Transform(padded, ciphertext); err != nil {
		log.Fatalln(err)
	}

	enc.Destroy()

	dec := newMode(false)
	recovered := make([]byte, len(ciphertext))
	if err := dec.Transform(ciphertext, recovered); err != nil {
		log.Fatalln(err)
	}

	dec.Destroy()

	unpadded, err := padding.PKCS7.Unpad(recovered, 16)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println(string(unpadded))

	// Output: a secret worth chaining
}

// ExampleCFB decrypts the SP800-38A CFB128-AES128 example stream.
func ExampleCFB() {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	ciphertext, _ := hex.DecodeString(
		"3b3fd92eb72dad20333449f8e83cfb4a" +
			"c8a64537a0b3a93fcde3cdad9f1ce58b")

	cipher, err := symcrypt.NewRHX()
	if err != nil {
		log.Fatalln(err)
	}

	mode, err := symcrypt.NewCFB(cipher)
	if err != nil {
		log.Fatalln(err)
	}

	container, err := symcrypt.NewSymmetricKey(key, iv, nil)
	if err != nil {
		log.Fatalln(err)
	}

	if err := mode.Initialize(false, container); err != nil {
		log.Fatalln(err)
	}

	container.Zero()

	plaintext := make([]byte, len(ciphertext))
	if err := mode.Transform(ciphertext, plaintext); err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("%x\n", plaintext)

	mode.Destroy()

	// Output: 6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51
}
