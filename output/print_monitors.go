package output

import (
	"bufio"
	"fmt"
	cu "github.com/nj-eka/LetterStatsGo/ctxutils"
	"github.com/nj-eka/LetterStatsGo/fh"
	"github.com/nj-eka/LetterStatsGo/logging"
	"github.com/nj-eka/LetterStatsGo/workflow"
	"io"
	"runtime"
	"time"
)

const (
	colorReset = "\033[0m"

	colorBlue  = "\033[34m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
)

// PrintProcessMonitors writes elapsed time, memory usage and per-pass counters to w.
func PrintProcessMonitors(w io.Writer, startTime time.Time, statProducers ...workflow.StatProducer) {
	ctx := cu.BuildContext(nil, cu.SetContextOperation("print_monitors"))
	bufOut := bufio.NewWriter(w)
	bout := func(s string) {
		if _, err := bufOut.WriteString(s); err != nil {
			logging.LogError(ctx, fmt.Errorf("bufio write string [%s] failed: %w", s, err))
		}
	}

	bout(fmt.Sprintln("Time elapsed: ", time.Since(startTime).Round(time.Millisecond)))

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	bout(fmt.Sprint(colorCyan, "Mem.usage stats:"))
	bout(fmt.Sprintf("\tAlloc = %v", fh.BytesToHuman(ms.Alloc)))
	bout(fmt.Sprintf("\tTotalAlloc = %v", fh.BytesToHuman(ms.TotalAlloc)))
	bout(fmt.Sprintf("\tSys = %v", fh.BytesToHuman(ms.Sys)))
	bout(fmt.Sprintf("\tNumGC = %v\n", ms.NumGC))
	bout(fmt.Sprint(colorReset))

	for i, statProducer := range statProducers {
		st, ok := statProducer.Stats().(*workflow.PassStats)
		if !ok {
			continue
		}
		color := colorBlue
		if i%2 == 1 {
			color = colorGreen
		}
		since, status := time.Since(st.StartTime), "in progress"
		switch {
		case st.StartTime.IsZero():
			since, status = 0, "not started"
		case !st.FinishTime.IsZero():
			since, status = st.FinishTime.Sub(st.StartTime), "done"
		}
		bout(fmt.Sprint(color))
		bout(fmt.Sprintf("Pass [%s] stats: %s - %v\n", st.Name, status, since))
		bout(fmt.Sprintf("%8s: %s (%s)\n", "file", st.FilePath, fh.BytesToHuman(uint64(st.FileSize))))
		bout(fmt.Sprintf("%8s: %d(runes) %s(read)\n", "input", st.Read.Runes, fh.BytesToHuman(uint64(st.Read.Bytes))))
		bout(fmt.Sprintf("%8s: %d(tokens) %d(total)\n", "output", st.Tokens, st.Total))
	}

	bout(fmt.Sprint(colorReset))

	if err := bufOut.Flush(); err != nil {
		logging.LogError(ctx, fmt.Errorf("bufio flush failed: %w", err))
	}
}
