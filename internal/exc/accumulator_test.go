package exc

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporter(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		nonFatal  []string
		code      string
		wantFatal bool
	}{
		{name: "grammar error is fatal", code: CodeExpectedToken, wantFatal: true},
		{name: "duplicate modifier is non-fatal", code: CodeModifierAlreadySeen, wantFatal: false},
		{name: "configured non-fatal", nonFatal: []string{CodeExpectedType}, code: CodeExpectedType, wantFatal: false},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			r := NewReporter(testCase.nonFatal)
			e := New(Location{URI: "/test"}, testCase.code, "message")
			got := r.Report(e)
			require.Equal(t, testCase.wantFatal, r.IsFatal(e))
			if testCase.wantFatal {
				require.NotNil(t, got)
				require.Len(t, r.Fatal(), 1)
			} else {
				require.Nil(t, got)
				require.Empty(t, r.Fatal())
			}
			require.Len(t, r.Reported(), 1)
		})
	}
}

func TestReporterConcurrent(t *testing.T) {
	t.Parallel()
	r := NewReporter(nil)
	var wg sync.WaitGroup
	for x := 0; x < 32; x = x + 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Report(New(Location{}, CodeExpectedToken, "x"))
		}()
	}
	wg.Wait()
	require.Len(t, r.Reported(), 32)
}

func TestWrap(t *testing.T) {
	t.Parallel()
	require.Nil(t, Wrap(Location{}, CodeUnknownFatal, nil))

	cause := errors.New("boom")
	e := WrapUnknown(Location{URI: "/a.ts", Line: 2, Column: 3}, cause)
	require.ErrorIs(t, e, cause)
	require.Equal(t, CodeUnknownFatal, e.Code())
	require.Equal(t, "/a.ts:2:3 -- M0000: boom", e.Error())
}
