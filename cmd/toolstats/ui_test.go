package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	prevConsole, prevColor := console, useColor
	t.Cleanup(func() { console, useColor = prevConsole, prevColor })

	var buf bytes.Buffer
	console = &buf

	useColor = false
	PrintSuccess("%d passed", 3)
	PrintHeader("Results")
	assert.Equal(t, "✓ 3 passed\n\n=== Results ===\n", buf.String())

	buf.Reset()
	useColor = true
	PrintError("boom")
	assert.Equal(t, statusError.color+"✗ boom"+colorReset+"\n", buf.String())
}
