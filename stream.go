package jsontab

import (
	"io"
	"iter"
)

// WriteIter collects records from an iterator and writes them to w. Every
// format needs all records for column layout, so nothing is written until
// the sequence ends.
func WriteIter(w io.Writer, f Format, seq iter.Seq[Value]) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	var records []Value
	for v := range seq {
		records = append(records, v)
	}
	return writeGrid(w, f, Flatten(Array(records...)))
}

// WriteChan collects records from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, ch <-chan Value) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
