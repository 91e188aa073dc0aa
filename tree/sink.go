package tree

import "io"

// LineSink receives rendered lines in order, without trailing newlines.
type LineSink interface {
	WriteLine(line string) error
}

// LineSinkFunc adapts a function to a LineSink.
type LineSinkFunc func(line string) error

func (f LineSinkFunc) WriteLine(line string) error {
	return f(line)
}

// WriterSink writes each line to W followed by a newline.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) WriteLine(line string) error {
	_, err := io.WriteString(s.W, line+"\n")
	return err
}
