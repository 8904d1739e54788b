package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize   = 1 << 10
	maxPooledBufferSize = 64 << 10
)

// responseBuffers holds encode buffers for JSON responses. Stats snapshots
// are small, so a buffer that grew past maxPooledBufferSize is left to the GC.
var responseBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
