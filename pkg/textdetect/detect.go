// Package textdetect decides which discovered files are prose jandent
// should read. It relies on go-enry's binary and vendor heuristics.
package textdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Reason explains why a file is skipped. The zero value means the file is kept.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonBinary    Reason = "binary"
	ReasonVendored  Reason = "vendored"
	ReasonGenerated Reason = "generated"
)

// sniffLen bounds how much content is inspected.
const sniffLen = 8000

// CheckPath classifies a file by its path alone. Discovery calls it before
// reading, so vendored trees are never opened.
func CheckPath(path string) Reason {
	if enry.IsVendor(filepath.ToSlash(path)) {
		return ReasonVendored
	}
	return ReasonNone
}

// CheckContent classifies a file by its path and leading content.
func CheckContent(path string, content []byte) Reason {
	if reason := CheckPath(path); reason != ReasonNone {
		return reason
	}

	head := content
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if enry.IsBinary(head) {
		return ReasonBinary
	}
	if enry.IsGenerated(filepath.ToSlash(path), head) {
		return ReasonGenerated
	}
	return ReasonNone
}
