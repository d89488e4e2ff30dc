// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides password hashing for the account service.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into self-describing hashes and checks
// passwords against them. It knows nothing about users or storage.
//
// Encoded hashes have the form
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
//
// with salt and key in unpadded standard base64, so the parameters used at
// hashing time travel with the hash and may change between deployments.
type PasswordHasher interface {
	// Hash derives a key from password and a fresh random salt and returns
	// the encoded hash.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed hash
	// is an error; a wrong password is (false, nil).
	Verify(password, encodedHash string) (bool, error)
}
