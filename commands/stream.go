package commands

import (
	"io"

	"github.com/josephlewis42/rush/core/value"
)

// StreamKind identifies where a command's input comes from.
type StreamKind int

const (
	// StreamNone means the command is first in its pipeline.
	StreamNone StreamKind = iota
	// StreamInternal carries a Value produced by a built-in.
	StreamInternal
	// StreamExternal carries bytes produced by an OS process.
	StreamExternal
)

// InStream is the input handed to a pipeline stage.
type InStream struct {
	kind   StreamKind
	value  value.Value
	reader io.Reader
}

// NoStream is the input of the first stage in a pipeline.
func NoStream() InStream {
	return InStream{kind: StreamNone}
}

// InternalStream wraps the value produced by the previous built-in.
func InternalStream(v value.Value) InStream {
	return InStream{kind: StreamInternal, value: v}
}

// ExternalStream wraps the output of the previous OS process.
func ExternalStream(r io.Reader) InStream {
	return InStream{kind: StreamExternal, reader: r}
}

// Kind returns where the stream comes from.
func (s InStream) Kind() StreamKind {
	return s.kind
}

// Value returns the wrapped value, or nil if the stream isn't internal.
func (s InStream) Value() value.Value {
	return s.value
}

// Reader returns the wrapped reader, or nil if the stream isn't external.
func (s InStream) Reader() io.Reader {
	return s.reader
}

// List returns the input as a list. It fails with ErrExternalStream for byte
// streams and ErrNotAList when there's no input or it's some other value.
func (s InStream) List() (value.List, error) {
	switch s.kind {
	case StreamExternal:
		return nil, ErrExternalStream
	case StreamInternal:
		if list, ok := s.value.(value.List); ok {
			return list, nil
		}
	}
	return nil, ErrNotAList
}

// Objects is like List but also checks that every element is an object.
func (s InStream) Objects() (value.List, error) {
	list, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, elem := range list {
		if _, ok := elem.(*value.Object); !ok {
			return nil, ErrNotAList
		}
	}
	return list, nil
}
