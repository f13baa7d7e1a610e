// SPDX-License-Identifier: MIT
// Package: enigma/cmd/enigma
//
// text.go - input folding and output grouping around the machine.

package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/enigma/alphabet"
)

// foldText strips combining marks and upper-cases s, so that "Noël" reaches
// the machine as "NOEL" instead of passing "ë" through untouched.
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return strings.ToUpper(out)
}

// groupLetters keeps only A..Z and splits them into space-separated groups
// of n, the way messages were transmitted.
func groupLetters(s string, n int) string {
	var b strings.Builder
	k := 0
	for _, r := range s {
		if !alphabet.Contains(r) {
			continue
		}
		if k > 0 && k%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		k++
	}

	return b.String()
}

func countLetters(s string) int {
	k := 0
	for _, r := range s {
		if alphabet.Contains(r) {
			k++
		}
	}

	return k
}
