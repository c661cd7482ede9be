// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTree renders the report as an ASCII tree diagram showing the
// relationship between leaf, intermediate, and root certificates.
// statuses optionally maps serial numbers (hex) to verification or
// revocation status strings.
func RenderTree(r *Report, statuses map[string]string) string {
	if len(r.Certificates) == 0 {
		return "No certificates in chain"
	}

	var result strings.Builder
	for i, cert := range r.Certificates {
		connector := "├── "
		if i == len(r.Certificates)-1 {
			connector = "└── "
		}

		marker := "✓"
		if status, exists := statuses[cert.SerialNumber]; exists && status != "ok" && status != "good" {
			marker = "✗"
		}

		subject := cert.Subject
		result.WriteString(fmt.Sprintf("%s[%s] %s (%s)\n", connector, marker, subject, cert.Role))
	}

	return result.String()
}

// RenderTable renders the report as a markdown table: role, subject,
// issuer, validity, key size, and status per certificate.
func RenderTable(r *Report, statuses map[string]string) string {
	if len(r.Certificates) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "Key", "Status"})

	var rows [][]string
	for i, cert := range r.Certificates {
		status := "unknown"
		if s, exists := statuses[cert.SerialNumber]; exists {
			status = s
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			cert.Role,
			cert.Subject,
			cert.Issuer,
			cert.NotAfter.Format("2006-01-02"),
			fmt.Sprintf("%d-bit %s", cert.KeySize, cert.PublicKeyAlgorithm),
			status,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
