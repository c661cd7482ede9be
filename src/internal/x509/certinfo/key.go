// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/hex"
	"fmt"
)

// KeyTypeMismatchError reports a request for a key-type-specific
// parameter that does not apply to the certificate's key algorithm,
// e.g. asking for an RSA exponent on an EC key.
type KeyTypeMismatchError struct {
	Requested string // key family the accessor belongs to
	Actual    string // key algorithm actually present
}

// Error implements the error interface.
func (e *KeyTypeMismatchError) Error() string {
	return fmt.Sprintf("certinfo: key type mismatch: requested %s parameters on %s key", e.Requested, e.Actual)
}

// RSAModulus returns the RSA modulus as a lowercase hex string.
// Non-RSA keys fail with [*KeyTypeMismatchError].
func (i *Info) RSAModulus() (string, error) {
	key, ok := i.cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return "", &KeyTypeMismatchError{Requested: "RSA", Actual: i.PublicKeyAlgorithm()}
	}
	return hex.EncodeToString(key.N.Bytes()), nil
}

// RSAExponent returns the RSA public exponent.
// Non-RSA keys fail with [*KeyTypeMismatchError].
func (i *Info) RSAExponent() (int, error) {
	key, ok := i.cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return 0, &KeyTypeMismatchError{Requested: "RSA", Actual: i.PublicKeyAlgorithm()}
	}
	return key.E, nil
}

// Curve returns the named curve of an EC public key.
// Non-EC keys fail with [*KeyTypeMismatchError].
func (i *Info) Curve() (string, error) {
	key, ok := i.cert.PublicKey.(*ecdsa.PublicKey)
	if !ok {
		return "", &KeyTypeMismatchError{Requested: "EC", Actual: i.PublicKeyAlgorithm()}
	}
	return key.Curve.Params().Name, nil
}

// BitLength returns the public key size in bits: modulus length for RSA,
// curve field size for ECDSA, fixed key size for Ed25519. Unknown key
// types report 0.
func (i *Info) BitLength() int {
	switch key := i.cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return key.N.BitLen()
	case *ecdsa.PublicKey:
		return key.Curve.Params().BitSize
	case ed25519.PublicKey:
		return len(key) * 8
	default:
		return 0
	}
}
