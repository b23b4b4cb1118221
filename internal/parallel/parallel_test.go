package parallel

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForSequentialFallback(t *testing.T) {
	cfg := Config{Enabled: false}
	var sum int
	For(10, func(i int) { sum += i }, cfg)
	assert.Equal(t, 45, sum)
}

func TestForParallelCoversAllIndices(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	const n = 1000

	seen := make([]int32, n)
	For(n, func(i int) { atomic.AddInt32(&seen[i], 1) }, cfg)

	for i, c := range seen {
		require.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestForErrNoError(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	var count atomic.Int32
	err := ForErr(100, func(int) error {
		count.Add(1)
		return nil
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(100), count.Load())
}

func TestForErrSequentialStopsAtFirstError(t *testing.T) {
	cfg := Config{Enabled: false}
	boom := errors.New("boom")
	var calls int
	err := ForErr(10, func(i int) error {
		calls++
		if i == 3 {
			return boom
		}
		return nil
	}, cfg)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, calls)
}

func TestForErrReturnsLowestIndexError(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 4}
	const n = 512

	// Every index fails with a distinct error; the winner must always be
	// index 0 regardless of scheduling.
	for run := 0; run < 20; run++ {
		err := ForErr(n, func(i int) error {
			return fmt.Errorf("fail at %d", i)
		}, cfg)
		require.Error(t, err)
		assert.EqualError(t, err, "fail at 0", "run %d", run)
	}
}
