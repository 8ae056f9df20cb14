package occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"occupancy-agent-go/internal/models"
)

func TestCountPeople(t *testing.T) {
	t.Parallel()

	t.Run("counts distinct person track IDs", func(t *testing.T) {
		t.Parallel()
		objects := []models.TrackedObject{
			{TrackID: 1, Class: models.TrackClassPerson},
			{TrackID: 2, Class: models.TrackClassPerson},
			{TrackID: 3, Class: models.TrackClassPerson},
		}
		assert.Equal(t, 3, CountPeople(objects))
	})

	t.Run("duplicate IDs within a frame collapse to one", func(t *testing.T) {
		t.Parallel()
		objects := []models.TrackedObject{
			{TrackID: 7, Class: models.TrackClassPerson},
			{TrackID: 7, Class: models.TrackClassPerson},
		}
		assert.Equal(t, 1, CountPeople(objects))
	})

	t.Run("non-person classes are ignored", func(t *testing.T) {
		t.Parallel()
		objects := []models.TrackedObject{
			{TrackID: 1, Class: models.TrackClassPerson},
			{TrackID: 2, Class: models.TrackClassVehicle},
			{TrackID: 3, Class: models.TrackClassUnknown},
		}
		assert.Equal(t, 1, CountPeople(objects))
	})

	t.Run("empty frame counts zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, CountPeople(nil))
	})
}

func TestAccumulator(t *testing.T) {
	t.Parallel()

	t.Run("averages samples with rounding", func(t *testing.T) {
		t.Parallel()
		var acc Accumulator
		for _, c := range []int{2, 4, 3} {
			acc.Add(c)
		}

		avg, samples, ok := acc.Drain()
		require.True(t, ok)
		assert.Equal(t, 3, avg)
		assert.Equal(t, 3, samples)
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		t.Parallel()
		var acc Accumulator
		acc.Add(1)
		acc.Add(2)

		avg, _, ok := acc.Drain()
		require.True(t, ok)
		assert.Equal(t, 2, avg) // 1.5 rounds up
	})

	t.Run("drain with no samples reports not ok", func(t *testing.T) {
		t.Parallel()
		var acc Accumulator

		avg, samples, ok := acc.Drain()
		assert.False(t, ok)
		assert.Zero(t, avg)
		assert.Zero(t, samples)
	})

	t.Run("drain resets the accumulator", func(t *testing.T) {
		t.Parallel()
		var acc Accumulator
		acc.Add(5)
		acc.Add(5)
		_, _, _ = acc.Drain()

		// A fresh window must not see the prior window's samples
		assert.Equal(t, 0, acc.Samples())
		acc.Add(1)
		avg, samples, ok := acc.Drain()
		require.True(t, ok)
		assert.Equal(t, 1, avg)
		assert.Equal(t, 1, samples)
	})

	t.Run("samples tracks folds since last drain", func(t *testing.T) {
		t.Parallel()
		var acc Accumulator
		assert.Equal(t, 0, acc.Samples())
		acc.Add(0)
		acc.Add(3)
		assert.Equal(t, 2, acc.Samples())
	})
}

func TestWindow(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("not due before interval elapses", func(t *testing.T) {
		t.Parallel()
		w := NewWindow(time.Minute, base)
		assert.False(t, w.Due(base.Add(59*time.Second)))
	})

	t.Run("due at and after interval", func(t *testing.T) {
		t.Parallel()
		w := NewWindow(time.Minute, base)
		assert.True(t, w.Due(base.Add(time.Minute)))
		assert.True(t, w.Due(base.Add(2*time.Minute)))
	})

	t.Run("advance returns window boundaries and resets", func(t *testing.T) {
		t.Parallel()
		w := NewWindow(time.Minute, base)
		flushAt := base.Add(61 * time.Second)

		start, end := w.Advance(flushAt)
		assert.Equal(t, base, start)
		assert.Equal(t, flushAt, end)

		// Next window opens where the previous closed
		assert.Equal(t, flushAt, w.Start())
		assert.False(t, w.Due(flushAt.Add(30*time.Second)))
		assert.True(t, w.Due(flushAt.Add(time.Minute)))
	})
}
