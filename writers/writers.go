package writers

import (
	"io"
	"os"
)

// LazyFileWriter opens its target file on the first write, so a run that
// fails before producing any output leaves no empty file behind.
type LazyFileWriter struct {
	path string
	file io.WriteCloser
}

func NewLazyFileWriter(path string) *LazyFileWriter {
	return &LazyFileWriter{path: path}
}

func (w *LazyFileWriter) Write(p []byte) (int, error) {
	if w.file == nil {
		f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return 0, err
		}
		w.file = f
	}
	return w.file.Write(p)
}

func (w *LazyFileWriter) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}
