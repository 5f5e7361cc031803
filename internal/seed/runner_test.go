package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunner() *Runner {
	return NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRunnerRunsStepsInOrder(t *testing.T) {
	var order []string

	step := func(name string) Step {
		return Step{
			Name: name,
			Run: func(context.Context) error {
				order = append(order, name)
				return nil
			},
		}
	}

	err := testRunner().Run(context.Background(), []Step{step("a"), step("b"), step("c")})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestRunnerCompensatesInReverseOnFailure(t *testing.T) {
	var trace []string
	boom := errors.New("disk full")

	step := func(name string, fail bool) Step {
		return Step{
			Name: name,
			Run: func(context.Context) error {
				if fail {
					return boom
				}
				trace = append(trace, "run:"+name)
				return nil
			},
			Compensate: func(context.Context) error {
				trace = append(trace, "undo:"+name)
				return nil
			},
		}
	}

	steps := []Step{step("event", false), step("tickets", false), step("images", true)}

	err := testRunner().Run(context.Background(), steps)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "images")
	assert.Equal(t, []string{"run:event", "run:tickets", "undo:tickets", "undo:event"}, trace)
}

func TestRunnerSkipsFailedCompensation(t *testing.T) {
	var trace []string
	boom := errors.New("verify failed")

	steps := []Step{
		{
			Name: "event",
			Run:  func(context.Context) error { return nil },
			Compensate: func(context.Context) error {
				trace = append(trace, "undo:event")
				return nil
			},
		},
		{
			Name: "tickets",
			Run:  func(context.Context) error { return nil },
			Compensate: func(context.Context) error {
				return errors.New("delete blocked")
			},
		},
		{
			Name: "verify",
			Run:  func(context.Context) error { return boom },
		},
	}

	err := testRunner().Run(context.Background(), steps)

	// the tickets compensation failed but the event one still ran, and the
	// caller sees the step error, not the compensation error
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"undo:event"}, trace)
}

func TestRunnerSkipsNilCompensation(t *testing.T) {
	var trace []string

	steps := []Step{
		{
			Name: "schema",
			Run:  func(context.Context) error { return nil },
		},
		{
			Name: "event",
			Run:  func(context.Context) error { return nil },
			Compensate: func(context.Context) error {
				trace = append(trace, "undo:event")
				return nil
			},
		},
		{
			Name: "verify",
			Run:  func(context.Context) error { return errors.New("missing rows") },
		},
	}

	err := testRunner().Run(context.Background(), steps)

	require.Error(t, err)
	assert.Equal(t, []string{"undo:event"}, trace)
}
