package workflow

import (
	"context"
	"errors"
	"fmt"
	cu "github.com/nj-eka/LetterStatsGo/ctxutils"
	"github.com/nj-eka/LetterStatsGo/errs"
	"github.com/nj-eka/LetterStatsGo/regs"
	"github.com/nj-eka/LetterStatsGo/source"
	"strings"
	"unicode"
)

// Accumulator scans a source from its start and builds a result collection.
type Accumulator interface {
	Name() string
	Accumulate(ctx context.Context, src source.CharSource) (regs.Stats, errs.Error)
}

// scan resets src and feeds every character to visit until the end of input.
func scan(ctx context.Context, src source.CharSource, visit func(r rune)) errs.Error {
	if err := src.Reset(); err != nil {
		return errs.E(ctx, errs.KindIO, err)
	}
	for !src.AtEnd() {
		r, err := src.ReadNextChar()
		if err != nil {
			if errors.Is(err, source.ErrEndOfInput) {
				break
			}
			return errs.E(ctx, errs.KindIO, err)
		}
		visit(r)
	}
	return nil
}

// SingleLetters counts every letter as is (case-sensitive).
type SingleLetters struct{}

func NewSingleLetters() *SingleLetters {
	return &SingleLetters{}
}

func (a *SingleLetters) Name() string {
	return "single"
}

func (a *SingleLetters) Accumulate(ctx context.Context, src source.CharSource) (regs.Stats, errs.Error) {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation("single_letters"))
	stats := regs.NewStats(64)
	if err := scan(ctx, src, func(r rune) {
		if unicode.IsLetter(r) {
			stats.CheckIn(string(r))
		}
	}); err != nil {
		return nil, err
	}
	return stats, nil
}

type PairCase int

const (
	PairCaseUpper PairCase = iota
	PairCaseLower
)

func (c PairCase) String() string {
	if c == PairCaseLower {
		return "lower"
	}
	return "upper"
}

func ParsePairCase(s string) (PairCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper", "":
		return PairCaseUpper, nil
	case "lower":
		return PairCaseLower, nil
	}
	return PairCaseUpper, fmt.Errorf("unknown pair case: %q (supported: upper, lower)", s)
}

// letterKey maps all case variants of a letter to one rune (σ, ς and Σ to σ; ß and ẞ to ß).
func letterKey(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

func (c PairCase) fold(r rune) rune {
	if c == PairCaseLower {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}

// PairLetters counts adjacent identical letters case-insensitively.
// A run of n identical letters yields n-1 pairs; any non-letter breaks a run.
// Case only decides how the pair token is written, never which letters match.
type PairLetters struct {
	Case PairCase
}

func NewPairLetters(c PairCase) *PairLetters {
	return &PairLetters{Case: c}
}

func (a *PairLetters) Name() string {
	return "pairs"
}

func (a *PairLetters) Accumulate(ctx context.Context, src source.CharSource) (regs.Stats, errs.Error) {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation("pair_letters"))
	stats := regs.NewStats(32)
	var (
		prevKey rune
		hasPrev bool
	)
	if err := scan(ctx, src, func(r rune) {
		if !unicode.IsLetter(r) {
			hasPrev = false
			return
		}
		key := letterKey(r)
		if hasPrev && prevKey == key {
			letter := a.Case.fold(key)
			stats.CheckIn(string([]rune{letter, letter}))
		}
		prevKey, hasPrev = key, true
	}); err != nil {
		return nil, err
	}
	return stats, nil
}
