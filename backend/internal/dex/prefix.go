package dex

import (
	"strings"
	"unicode"
)

// attributeLetters maps attribute names to their query shorthand
var attributeLetters = map[string]string{
	"fire":  "r",
	"water": "b",
	"wood":  "g",
	"light": "l",
	"dark":  "d",
}

// assignPrefixes derives the prefix set for one entity from its attributes
// and display name. Dual-attribute entities get both the concatenated and the
// slash-joined pair so "rb sonia" and "r/b sonia" both resolve.
func assignPrefixes(e *Entity) {
	if len(e.Attributes) > 0 {
		if first, ok := attributeLetters[strings.ToLower(e.Attributes[0])]; ok {
			e.addPrefix(first)
			if len(e.Attributes) > 1 {
				if second, ok := attributeLetters[strings.ToLower(e.Attributes[1])]; ok {
					e.addPrefix(first + second)
					e.addPrefix(first + "/" + second)
				}
			}
		}
	}

	// An all-lowercase display name marks the chibi series.
	if !containsUpper(e.NameNA) {
		e.addPrefix("chibi")
	}

	lowered := strings.ToLower(e.NameNA)
	if strings.Contains(lowered, "awoken") {
		e.addPrefix("a")
	}
	if strings.Contains(lowered, "reincarnated") {
		e.addPrefix("revo")
	}
}

func containsUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}
