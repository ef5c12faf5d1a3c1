package workflow

import (
	"context"
	"fmt"
	"github.com/nj-eka/LetterStatsGo/errs"
	"github.com/nj-eka/LetterStatsGo/logging"
)

// OnExit must be deferred directly: it turns a panic into *perr, logs completion and calls fn.
func OnExit(ctx context.Context, perr *errs.Error, prefixMsg string, fn func()) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		*perr = errs.E(ctx, errs.KindInternal, errs.SeverityCritical, fmt.Errorf("%s - interrupted: %w", prefixMsg, err))
	} else if *perr == nil && len(prefixMsg) > 0 {
		logging.Msg(ctx).Debug(prefixMsg, " - ok")
	}
	if fn != nil {
		fn()
	}
}
