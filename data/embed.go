// Package data holds the stock conversion tables, word frequencies and
// dictionary, compiled into the binary.
package data

import "embed"

// Files contains f2p-beginning.txt, f2p-middle.txt, f2p-ending.txt,
// persian-word-freq.txt and f2p-dict.txt at its root.
//
//go:embed *.txt
var Files embed.FS
