//go:build unit
// +build unit

package log

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTask(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, SetupMetricsLog(dir))
	defer CloseMetricsLog()

	RecordTask(TaskMetrics{Device: "braket_sv", Kind: "run", Shots: 100, Qubits: 3, Elapsed: 15 * time.Millisecond})
	RecordTask(TaskMetrics{Device: "SV1", Kind: "wavefunction", Err: errors.New("task failed")})

	blob, err := os.ReadFile(filepath.Join(dir, dailyFileName(time.Now())))
	require.Nil(t, err)
	content := string(blob)
	assert.Contains(t, content, `"msg":"Metrics"`)
	assert.Contains(t, content, `"device":"braket_sv"`)
	assert.Contains(t, content, `"shots":100`)
	assert.Contains(t, content, `"elapsed_ms":15`)
	assert.Contains(t, content, `"error":"task failed"`)
}

func TestRecordTaskWithoutSetup(t *testing.T) {
	CloseMetricsLog()
	assert.NotPanics(t, func() {
		RecordTask(TaskMetrics{Device: "braket_sv"})
	})
}

func TestSetupMetricsLogNotWritable(t *testing.T) {
	assert.NotNil(t, SetupMetricsLog("/no/such/dir"))
}

func TestDailyFileName(t *testing.T) {
	d := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "metrics-2024-05-01.log", dailyFileName(d))
}
