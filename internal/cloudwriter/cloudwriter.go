// Package cloudwriter buffers exported files and uploads them to object
// storage when they are closed.
package cloudwriter

import "io"

type CloudWriter interface {
	io.WriteCloser
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
