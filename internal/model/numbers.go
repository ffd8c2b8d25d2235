package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumbers cleans a sequence of raw score tokens. All-digit tokens
// are re-rendered as zero-padded decimals of at least two digits ("6" ->
// "06", "007" -> "07"); values of three or more digits keep their natural
// width. Anything else passes through trimmed. It never fails: a digit
// token that cannot be parsed is kept as its trimmed original.
func FormatNumbers(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if isDigits(tok) {
			if n, err := strconv.ParseUint(tok, 10, 64); err == nil {
				out = append(out, fmt.Sprintf("%02d", n))
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
