/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package crypto generates the random secrets used for signing keys,
// verification codes and reset tokens
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"math/big"
)

// RandomString returns n characters drawn uniformly from charset
func RandomString(charset string, n int) (string, error) {
	if charset == "" || n < 1 {
		return "", errors.New("charset and length are required")
	}

	out := make([]byte, n)
	charsetLen := big.NewInt(int64(len(charset)))
	for i := range out {
		randomIndex, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		out[i] = charset[randomIndex.Int64()]
	}
	return string(out), nil
}

// RandomToken returns n random bytes, base64 URL encoded
func RandomToken(n int) (string, error) {
	token := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, token); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(token), nil
}
