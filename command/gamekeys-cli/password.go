// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const minimumPasswordLength = 8

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// ask twice for a password protecting a new identity
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password(length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", ErrInvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", ErrPasswordMismatch
	}

	return password, nil
}

func promptCheckPassword() (string, error) {
	return readPassword("password: ")
}
