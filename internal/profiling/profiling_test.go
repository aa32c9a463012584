package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrackAccumulatesUnderName(t *testing.T) {
	ResetRun()
	stop := Track("meshing.Generate")
	time.Sleep(time.Millisecond)
	stop()

	snap := Snapshot()
	require.Contains(t, snap, "meshing.Generate")
	require.Greater(t, snap["meshing.Generate"], time.Duration(0))
}

func TestResetRunClearsTotals(t *testing.T) {
	ResetRun()
	Track("meshing.Generate.+X")()
	require.NotEmpty(t, Snapshot())
	ResetRun()
	require.Empty(t, Snapshot())
}

func TestTopNOrdersBySlowestFirst(t *testing.T) {
	ResetRun()
	func() {
		stop := Track("meshing.Generate.+X")
		time.Sleep(2 * time.Millisecond)
		stop()
	}()
	func() {
		stop := Track("meshing.Generate.-X")
		time.Sleep(time.Millisecond)
		stop()
	}()

	out := TopN(1)
	require.Contains(t, out, "meshing.Generate.+X")
}
