// Package letters classifies statistics tokens as vowels or consonants and
// removes tokens of a class from a result collection.
package letters

import (
	"fmt"
	"github.com/nj-eka/LetterStatsGo/regs"
	"strings"
	"unicode"
)

type Class int

const (
	ClassNone Class = iota // mixed, empty or containing non-letters
	ClassVowel
	ClassConsonant
)

func (c Class) String() string {
	switch c {
	case ClassVowel:
		return "vowel"
	case ClassConsonant:
		return "consonant"
	}
	return "none"
}

func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vowel", "vowels":
		return ClassVowel, nil
	case "consonant", "consonants":
		return ClassConsonant, nil
	case "none", "":
		return ClassNone, nil
	}
	return ClassNone, fmt.Errorf("unknown letter class: %q (supported: vowel, consonant, none)", s)
}

// vowels holds lower case forms only; lookups fold case first.
var vowels = map[rune]struct{}{
	'а': {}, 'е': {}, 'ё': {}, 'и': {}, 'о': {}, 'у': {}, 'ы': {}, 'э': {}, 'ю': {}, 'я': {},
	'a': {}, 'e': {}, 'i': {}, 'o': {}, 'u': {}, 'y': {},
}

func IsVowel(r rune) bool {
	_, ok := vowels[unicode.ToLower(r)]
	return ok
}

// Classify reports ClassVowel (ClassConsonant) if every rune of token is a letter
// and every one is (is not) a vowel.
func Classify(token string) Class {
	if token == "" {
		return ClassNone
	}
	allVowels, allConsonants := true, true
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return ClassNone
		}
		if IsVowel(r) {
			allConsonants = false
		} else {
			allVowels = false
		}
	}
	switch {
	case allVowels:
		return ClassVowel
	case allConsonants:
		return ClassConsonant
	}
	return ClassNone
}

// RemoveByClass deletes in place every entry of stats whose token is of class.
// ClassNone removes nothing. Returns the number of removed entries.
func RemoveByClass(stats regs.Stats, class Class) int {
	if class == ClassNone {
		return 0
	}
	return stats.RemoveIf(func(token string) bool {
		return Classify(token) == class
	})
}
