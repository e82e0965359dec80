package movement_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/cashbook-management/internal/movement"
)

var _ = Describe("Filter", func() {
	Describe("SinceIncludes", func() {
		// UTC-4, where a late evening entry is already the next day in UTC
		caracas := time.FixedZone("VET", -4*60*60)

		since := func(t time.Time) movement.Filter {
			return movement.Filter{Since: &t}
		}

		It("includes everything when no window is set", func() {
			Expect(movement.Filter{}.SinceIncludes(time.Date(1999, 1, 1, 0, 0, 0, 0, caracas))).To(BeTrue())
		})

		It("keeps a near-midnight movement in its local calendar day", func() {
			lateEvening := time.Date(2026, 3, 14, 23, 30, 0, 0, caracas)

			sameDay := since(time.Date(2026, 3, 14, 0, 0, 0, 0, caracas))
			Expect(sameDay.SinceIncludes(lateEvening)).To(BeTrue())

			// in UTC the movement is already March 15th; the local date rules
			nextDay := since(time.Date(2026, 3, 15, 0, 0, 0, 0, caracas))
			Expect(nextDay.SinceIncludes(lateEvening)).To(BeFalse())
		})

		It("ignores the time of day on the window boundary", func() {
			earlyMorning := time.Date(2026, 3, 14, 0, 5, 0, 0, caracas)
			windowOpen := since(time.Date(2026, 3, 14, 23, 59, 0, 0, caracas))
			Expect(windowOpen.SinceIncludes(earlyMorning)).To(BeTrue())
		})

		It("excludes movements before the window", func() {
			old := time.Date(2026, 3, 1, 12, 0, 0, 0, caracas)
			window := since(time.Date(2026, 3, 10, 0, 0, 0, 0, caracas))
			Expect(window.SinceIncludes(old)).To(BeFalse())
		})
	})
})
