package input

import "github.com/ardnew/cio/pkg"

// ErrInputClosed is returned when the input stream fails or reaches
// end-of-file before a value is accepted.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrInputClosed = pkg.MakeErrorf("input stream closed")
