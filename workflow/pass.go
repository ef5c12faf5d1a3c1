package workflow

import (
	"context"
	"fmt"
	cu "github.com/nj-eka/LetterStatsGo/ctxutils"
	"github.com/nj-eka/LetterStatsGo/errs"
	"github.com/nj-eka/LetterStatsGo/logging"
	"github.com/nj-eka/LetterStatsGo/regs"
	"github.com/nj-eka/LetterStatsGo/source"
	"os/user"
	"time"
)

type PassStats struct {
	Name                  string
	FilePath              string
	StartTime, FinishTime time.Time
	FileSize              int64
	Read                  source.ReadStats
	Tokens, Total         int
}

// Pass is one full scan of a file by an accumulator.
type Pass struct {
	filePath string
	acc      Accumulator
	usr      *user.User
	stats    PassStats
}

func NewPass(filePath string, acc Accumulator, usr *user.User) *Pass {
	return &Pass{
		filePath: filePath,
		acc:      acc,
		usr:      usr,
		stats:    PassStats{Name: acc.Name(), FilePath: filePath},
	}
}

// Run opens the file, scans it and closes it on every exit path.
// On failure no partial result is returned.
func (r *Pass) Run(ctx context.Context) (result regs.Stats, err errs.Error) {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation(cu.Operation(r.acc.Name())))
	r.stats.StartTime = time.Now()
	defer OnExit(ctx, &err, fmt.Sprintf("pass [%s] over [%s]", r.acc.Name(), r.filePath), func() {
		r.stats.FinishTime = time.Now()
		if err != nil {
			result = nil
		}
	})

	src, err := source.Open(ctx, r.filePath, r.usr)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logging.LogError(ctx, errs.SeverityWarning, errs.KindIO, fmt.Errorf("< close [%s] failed: %w", src.Name(), cerr))
		}
	}()
	r.stats.FilePath = src.Name()
	r.stats.FileSize = src.Size()

	if result, err = r.acc.Accumulate(ctx, src); err != nil {
		return nil, err
	}
	r.stats.Read = src.Stats()
	r.stats.Tokens = result.KeysCount()
	r.stats.Total = result.TotalCount()
	logging.Msg(ctx).Infof("read input file [%s] - ok: (%d runes / %d bytes, %d tokens, total %d)",
		src.Name(), r.stats.Read.Runes, r.stats.Read.Bytes, r.stats.Tokens, r.stats.Total)
	return result, nil
}

func (r *Pass) Stats() interface{} {
	return &r.stats
}
