// Package demo runs the self-test scenarios of the liftdemo command.
package demo

import (
	"fmt"
	"strconv"

	"github.com/ib-77/lift/pkg/lift"
	"github.com/ib-77/lift/pkg/lift/check"
	"github.com/ib-77/lift/pkg/lift/solo"
	"github.com/ib-77/lift/pkg/lift/trace"
)

type Outcome struct {
	Scenario string
	Expected string
	Got      string
}

func (o Outcome) Passed() bool {
	return o.Expected == o.Got
}

type scenario struct {
	name     string
	expected string
	run      func(opts []trace.Option) string
}

func increment(n int) int { return n + 1 }

var scenarios = []scenario{
	{
		name:     "mapOptional(increment)(Present(1))",
		expected: "Present(2)",
		run: func([]trace.Option) string {
			return solo.MapOptional(increment)(lift.Present(1)).String()
		},
	},
	{
		name:     "mapOptional(increment)(Absent)",
		expected: "Absent",
		run: func([]trace.Option) string {
			return solo.MapOptional(increment)(lift.Absent[int]()).String()
		},
	},
	{
		name:     "mapFailable(stringify)(Ok(4))",
		expected: "Ok(4)",
		run: func([]trace.Option) string {
			return solo.MapFailable[int, string, string](strconv.Itoa)(lift.Ok[int, string](4)).String()
		},
	},
	{
		name:     "mapFailable(stringify)(Err(boom))",
		expected: "Err(boom)",
		run: func([]trace.Option) string {
			return solo.MapFailable[int, string, string](strconv.Itoa)(lift.Err[int]("boom")).String()
		},
	},
	{
		name:     "withLogging(increment)(3)",
		expected: "4",
		run: func(opts []trace.Option) string {
			return strconv.Itoa(trace.WithLogging("increment", increment, opts...)(3))
		},
	},
	{
		name:     "mapOptional(withLogging(increment))(Absent)",
		expected: "Absent",
		run: func(opts []trace.Option) string {
			return solo.MapOptional(trace.WithLogging("increment", increment, opts...))(lift.Absent[int]()).String()
		},
	},
	{
		name:     "assertThat(2 > 1)",
		expected: "ok",
		run: func([]trace.Option) string {
			return assertion(func() { check.AssertThat(2 > 1) })
		},
	},
	{
		name:     "assertThat(1 > 2)",
		expected: "panic: assertion failed",
		run: func([]trace.Option) string {
			return assertion(func() { check.AssertThat(1 > 2) })
		},
	},
}

func assertion(f func()) (got string) {
	defer func() {
		if r := recover(); r != nil {
			got = fmt.Sprintf("panic: %v", r)
		}
	}()
	f()
	return "ok"
}

// Run executes every scenario in order. Options are passed to the scenarios
// that wrap functions with trace.
func Run(opts ...trace.Option) []Outcome {
	outcomes := make([]Outcome, 0, len(scenarios))
	for _, s := range scenarios {
		outcomes = append(outcomes, Outcome{
			Scenario: s.name,
			Expected: s.expected,
			Got:      s.run(opts),
		})
	}
	return outcomes
}

func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.Passed() {
			n++
		}
	}
	return n
}
