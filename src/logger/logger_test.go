// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amannb/certpath/src/logger"
)

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("resolved %d certificate(s)", 3)

				assert.Contains(t, buf.String(), "resolved 3 certificate(s)")
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("chain", "complete")

				assert.Contains(t, buf.String(), "chain complete")
			},
		},
		{
			name: "SetOutput redirects",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")
				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first")
				assert.NotContains(t, buf1.String(), "second")
				assert.Contains(t, buf2.String(), "second")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestJSONLogger(t *testing.T) {
	t.Run("emits one JSON object per line", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewJSONLogger(&buf)

		log.Printf("fetched %s", "http://pki.test/ca.der")
		log.Println("done")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "fetched http://pki.test/ca.der", entry["message"])
	})

	t.Run("nil writer discards", func(t *testing.T) {
		log := logger.NewJSONLogger(nil)
		// Must not panic.
		log.Printf("dropped %d", 1)
		log.Println("dropped")

		log.SetOutput(nil)
		log.Println("still dropped")
	})

	t.Run("concurrent use", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewJSONLogger(&buf)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				log.Printf("worker %d", n)
			}(i)
		}
		wg.Wait()

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 16)
		for _, line := range lines {
			var entry map[string]any
			assert.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		}
	})
}

func TestDiscardLogger(t *testing.T) {
	// The package-level Discard logger silently drops everything.
	require.NotNil(t, logger.Discard)
	logger.Discard.Printf("ignored %v", 42)
	logger.Discard.Println("ignored")
}
