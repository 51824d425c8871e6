package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical single prediction; list responses grow it
const initialBufferSize = 512

// maxPooledBufferSize keeps one huge list response from pinning memory in the pool
const maxPooledBufferSize = 64 << 10

// bufferPool reuses JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
