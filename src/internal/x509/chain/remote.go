// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"time"
)

// FetchRemotePeers establishes a TLS connection to the target host and
// returns the certificates presented during the handshake, leaf first.
// No verification happens here; the caller feeds the leaf and the
// presented intermediates into [Builder.Build] and then verifies the
// resulting chain.
func FetchRemotePeers(ctx context.Context, hostname string, port int, timeout time.Duration) ([]*x509.Certificate, error) {
	dialer := &net.Dialer{Timeout: timeout}

	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	conn, err := tls.DialWithDialer(dialer, "tcp", fmt.Sprintf("%s:%d", hostname, port),
		// We just want the presented chain, not to verify it here
		&tls.Config{InsecureSkipVerify: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%d: %w", hostname, port, err)
	}
	defer conn.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	peerCerts := conn.ConnectionState().PeerCertificates
	if len(peerCerts) == 0 {
		return nil, fmt.Errorf("no certificates received from %s:%d", hostname, port)
	}

	return peerCerts, nil
}
