// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

// Code identifies which policy check failed. Values are stable across
// releases and safe to branch on or persist: existing codes are never
// renumbered, new codes are only appended.
type Code int

const (
	// CodeOK marks a passed verification. Never appears in a failure log.
	CodeOK Code = 0

	// CodeExpired: the certificate validity period ended before the
	// verification time.
	CodeExpired Code = 1

	// CodeNotYetValid: the certificate validity period starts after the
	// verification time.
	CodeNotYetValid Code = 2

	// CodeBadSignature: the certificate signature does not verify under
	// its issuer's public key.
	CodeBadSignature Code = 3

	// CodeUntrustedRoot: the chain terminates at a certificate that is
	// not a trusted anchor.
	CodeUntrustedRoot Code = 4

	// CodeIncompleteChain: the chain is truncated; its last certificate
	// is neither self-signed nor anchored.
	CodeIncompleteChain Code = 5

	// CodeNotCA: an issuing certificate lacks the CA basic constraint.
	CodeNotCA Code = 6

	// CodeUsageMismatch: key usage is inconsistent with the requested
	// usage, on the leaf or on an issuer lacking certificate signing.
	CodeUsageMismatch Code = 7

	// CodePathLenExceeded: an issuer's path-length constraint is
	// exceeded by the chain below it.
	CodePathLenExceeded Code = 8

	// CodeRevoked: the revocation checker reported the certificate revoked.
	CodeRevoked Code = 9

	// CodeRevocationUnknown: revocation status could not be determined
	// and the caller required it.
	CodeRevocationUnknown Code = 10

	// CodeNameMismatch: the leaf certificate does not match the
	// requested hostname.
	CodeNameMismatch Code = 11
)

// String returns a short stable identifier for the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeExpired:
		return "expired"
	case CodeNotYetValid:
		return "not-yet-valid"
	case CodeBadSignature:
		return "bad-signature"
	case CodeUntrustedRoot:
		return "untrusted-root"
	case CodeIncompleteChain:
		return "incomplete-chain"
	case CodeNotCA:
		return "not-a-ca"
	case CodeUsageMismatch:
		return "usage-mismatch"
	case CodePathLenExceeded:
		return "path-length-exceeded"
	case CodeRevoked:
		return "revoked"
	case CodeRevocationUnknown:
		return "revocation-unknown"
	case CodeNameMismatch:
		return "name-mismatch"
	default:
		return "unknown"
	}
}
