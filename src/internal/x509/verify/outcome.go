// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import "crypto/x509"

// Entry attributes one failed check to one certificate in the chain.
type Entry struct {
	Cert *x509.Certificate
	Code Code
}

// Outcome is the result of one verification call: either the success
// form (OK true, empty log) or the failure form (OK false, first failing
// code, ordered log). It is never partially populated.
type Outcome struct {
	entries []Entry
}

// OK reports whether every check passed.
func (o Outcome) OK() bool { return len(o.entries) == 0 }

// Code returns the first failing check's code, or CodeOK on success.
func (o Outcome) Code() Code {
	if len(o.entries) == 0 {
		return CodeOK
	}
	return o.entries[0].Code
}

// Log returns the ordered (certificate, code) failure entries. Empty on
// success. In boolean mode the log holds at most the first failure.
func (o Outcome) Log() []Entry {
	out := make([]Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

// recorder accumulates failure entries during a policy run. In boolean
// mode the first entry stops further checking.
type recorder struct {
	mode    Mode
	entries []Entry
}

func (r *recorder) add(cert *x509.Certificate, code Code) {
	if r.stopped() {
		return
	}
	r.entries = append(r.entries, Entry{Cert: cert, Code: code})
}

func (r *recorder) stopped() bool {
	return r.mode == ModeBoolean && len(r.entries) > 0
}

func (r *recorder) outcome() Outcome {
	return Outcome{entries: r.entries}
}
