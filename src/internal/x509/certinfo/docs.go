// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certinfo models a parsed [X.509] certificate as an immutable,
// queryable value. It provides:
//   - Decoding from [PEM], DER, and [PKCS7] input, all converging on one
//     internal representation.
//   - Distinguished-name attribute access, including multi-valued RDN
//     attributes and the EV jurisdiction-of-incorporation fields.
//   - Extension access with per-accessor decode errors, so one malformed
//     extension never invalidates the rest of the certificate.
//   - MD5/SHA-1/SHA-256 fingerprints over the raw DER encoding.
//   - Public-key parameter extraction for RSA and EC keys.
//   - Hostname matching against SAN entries with single-label wildcards.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package certinfo
