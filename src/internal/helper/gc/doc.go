// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers for I/O heavy paths.
//
// The certificate fetchers download issuer certificates and OCSP
// responses over HTTP; pooling the read buffers keeps allocation
// pressure flat when many chains are resolved concurrently.
package gc
