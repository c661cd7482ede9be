// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprints are pure functions of the raw DER encoding: the same
// bytes always produce the same hex string.

// FingerprintMD5 returns the lowercase hex MD5 digest of the raw DER encoding.
// Retained for interoperability with legacy tooling only.
func (i *Info) FingerprintMD5() string {
	sum := md5.Sum(i.cert.Raw)
	return hex.EncodeToString(sum[:])
}

// FingerprintSHA1 returns the lowercase hex SHA-1 digest of the raw DER encoding.
func (i *Info) FingerprintSHA1() string {
	sum := sha1.Sum(i.cert.Raw)
	return hex.EncodeToString(sum[:])
}

// FingerprintSHA256 returns the lowercase hex SHA-256 digest of the raw DER encoding.
func (i *Info) FingerprintSHA256() string {
	sum := sha256.Sum256(i.cert.Raw)
	return hex.EncodeToString(sum[:])
}
