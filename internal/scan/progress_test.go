package scan

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/xpenseai/expense-tracker/constants"
)

var _ = Describe("progress tracker", func() {
	It("never delivers a regressing percentage to the observer, even across goroutines", func() {
		var (
			mu   sync.Mutex
			pcts []int
		)
		track := newTracker(func(_ constants.ScanStage, pct int) {
			mu.Lock()
			pcts = append(pcts, pct)
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for p := 0; p <= 100; p++ {
			wg.Add(1)
			go func(p int) {
				defer wg.Done()
				track.set(constants.StageCategorizing, p)
			}(p)
		}
		wg.Wait()

		Expect(pcts).To(HaveLen(101))
		for i := 1; i < len(pcts); i++ {
			Expect(pcts[i]).To(BeNumerically(">=", pcts[i-1]))
		}
		Expect(pcts[len(pcts)-1]).To(Equal(100))
	})

	It("clamps window fractions to the stage bounds", func() {
		var last int
		track := newTracker(func(_ constants.ScanStage, pct int) { last = pct })
		w := track.window(constants.StageOCRRunning, pctOCRStart, pctOCREnd)

		w(-0.5)
		Expect(last).To(Equal(pctOCRStart))
		w(0.5)
		Expect(last).To(Equal((pctOCRStart + pctOCREnd) / 2))
		w(2.0)
		Expect(last).To(Equal(pctOCREnd))
	})
})
