package main

import (
	"fmt"
	"io"
	"time"

	"jsoncmp"
)

const stageRead = jsoncmp.Stage("read")

// stageTimings collects per-stage wall times for the --timings output
type stageTimings map[jsoncmp.Stage]time.Duration

// observe satisfies jsoncmp.StageObserver
func (t stageTimings) observe(s jsoncmp.Stage, d time.Duration) {
	t[s] = d
}

func printStageTimings(out io.Writer, t stageTimings, total time.Duration) {
	if out == nil {
		return
	}
	order := []jsoncmp.Stage{stageRead, jsoncmp.StageCount, jsoncmp.StageDiff, jsoncmp.StageSummarize}
	for _, s := range order {
		if d, ok := t[s]; ok {
			fmt.Fprintf(out, "%s %.1f ms\n", s, toMillis(d))
		}
	}
	fmt.Fprintf(out, "total %.1f ms\n", toMillis(total))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
