package cmd

import "github.com/ardnew/cio/pkg"

// Sentinel errors for command execution.
var (
	ErrWriteOutput = pkg.MakeErrorf("write output")
	ErrUnknownType = pkg.MakeErrorf("unknown input type")
)
