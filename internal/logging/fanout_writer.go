package logging

import (
	"io"

	"go.uber.org/multierr"
)

// fanoutWriter writes every log line to all sinks. A failing sink does not stop the others,
// and its error is reported together with the errors of the rest.
type fanoutWriter struct {
	sinks []io.Writer
}

func newFanoutWriter(sinks ...io.Writer) *fanoutWriter {
	return &fanoutWriter{sinks: sinks}
}

func (fw *fanoutWriter) Write(p []byte) (int, error) {
	var err error
	for _, s := range fw.sinks {
		n, werr := s.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		err = multierr.Append(err, werr)
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
