package scan

import (
	"sync"

	"github.com/xpenseai/expense-tracker/constants"
)

// Stage percentages. OCR owns the bottom window, categorization the top; the
// fixed middle stages are quick enough that a single value each reads fine.
const (
	pctUpload          = 5
	pctOCRStart        = 5
	pctOCREnd          = 30
	pctStructuring     = 40
	pctSummary         = 50
	pctSavingPhoto     = 60
	pctCategorizeStart = 70
	pctCategorizeEnd   = 95
	pctDone            = 100
)

// ProgressFunc receives stage transitions and an overall percentage.
type ProgressFunc func(stage constants.ScanStage, pct int)

// tracker serializes progress reports and keeps the percentage monotonic, so
// a late OCR tick can never rewind past a stage that already advanced.
type tracker struct {
	mu   sync.Mutex
	pct  int
	emit ProgressFunc
}

func newTracker(emit ProgressFunc) *tracker {
	if emit == nil {
		emit = func(constants.ScanStage, int) {}
	}
	return &tracker{emit: emit}
}

// set reports the stage under the lock: emitting after unlocking would let a
// preempted goroutine deliver its stale percentage after a later one. The
// callback must not call back into the tracker.
func (t *tracker) set(stage constants.ScanStage, pct int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if pct < t.pct {
		pct = t.pct
	}
	t.pct = pct
	t.emit(stage, pct)
}

// window maps a 0..1 fraction onto [lo,hi] for the given stage.
func (t *tracker) window(stage constants.ScanStage, lo, hi int) func(frac float64) {
	return func(frac float64) {
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		t.set(stage, lo+int(frac*float64(hi-lo)))
	}
}
