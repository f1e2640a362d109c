package solo_test

import (
	"errors"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ib-77/lift/pkg/lift"
	"github.com/ib-77/lift/pkg/lift/solo"
)

var (
	increment = func(n int) int { return n + 1 }
	double    = func(n int) int { return n * 2 }
	stringify = strconv.Itoa
)

var _ = Describe("MapOptional laws", func() {
	optionals := []lift.Optional[int]{lift.Present(0), lift.Present(-3), lift.Present(41), lift.Absent[int]()}

	It("preserves identity", func() {
		for _, x := range optionals {
			Expect(solo.MapOptional(solo.Identity[int])(x)).To(Equal(x))
		}
	})

	It("preserves composition", func() {
		composed := solo.MapOptional(solo.Compose(solo.Compose(increment, double), stringify))
		chained := solo.Compose(
			solo.Compose(solo.MapOptional(increment), solo.MapOptional(double)),
			solo.MapOptional(stringify))

		for _, x := range optionals {
			Expect(composed(x)).To(Equal(chained(x)))
		}
	})

	It("never calls f on absence", func() {
		calls := 0
		counting := func(n int) int {
			calls++
			return n
		}

		Expect(solo.MapOptional(counting)(lift.Absent[int]())).To(Equal(lift.Absent[int]()))
		Expect(calls).To(BeZero())
	})

	It("applies f to a present value", func() {
		Expect(solo.MapOptional(increment)(lift.Present(1))).To(Equal(lift.Present(2)))
		Expect(solo.MapOptional(stringify)(lift.Present(9))).To(Equal(lift.Present("9")))
	})
})

var _ = Describe("MapFailable laws", func() {
	boom := errors.New("boom")
	failables := []lift.Result[int]{lift.Ok[int, error](0), lift.Ok[int, error](12), lift.Err[int](boom)}

	It("preserves identity", func() {
		for _, x := range failables {
			Expect(solo.MapFailable[int, int, error](solo.Identity[int])(x)).To(Equal(x))
		}
	})

	It("preserves composition", func() {
		composed := solo.MapFailable[int, string, error](solo.Compose(solo.Compose(increment, double), stringify))
		chained := solo.Compose(
			solo.Compose(solo.MapFailable[int, int, error](increment), solo.MapFailable[int, int, error](double)),
			solo.MapFailable[int, string, error](stringify))

		for _, x := range failables {
			Expect(composed(x)).To(Equal(chained(x)))
		}
	})

	It("passes the error payload through without calling f", func() {
		calls := 0
		counting := func(n int) string {
			calls++
			return stringify(n)
		}

		out := solo.MapFailable[int, string, error](counting)(lift.Err[int](boom))
		Expect(out.IsErr()).To(BeTrue())
		Expect(out.Err()).To(BeIdenticalTo(boom))
		Expect(calls).To(BeZero())
	})

	It("accepts any payload shape", func() {
		out := solo.MapFailable[int, string, string](stringify)(lift.Err[int]("boom"))
		Expect(out).To(Equal(lift.Err[string]("boom")))

		ok := solo.MapFailable[int, string, string](stringify)(lift.Ok[int, string](4))
		Expect(ok).To(Equal(lift.Ok[string, string]("4")))
	})
})
