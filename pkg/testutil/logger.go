package testutil

import (
	"bytes"

	"github.com/rs/zerolog"
)

// NewLogger returns a trace-level JSON logger writing into the returned buffer
func NewLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf).Level(zerolog.TraceLevel), buf
}
