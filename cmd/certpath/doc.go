// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Command certpath inspects X.509 certificates, resolves certificate
// chains, and verifies them against a configurable trust store.
//
// Usage:
//
//	certpath inspect cert.pem
//	certpath resolve cert.pem -o chain.pem
//	certpath verify cert.pem --roots roots.pem --policy pkix --host example.com
//	certpath remote example.com:443 --json
package main
