package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oqtopus-team/oqtopus-braket/common"
	"go.uber.org/zap"
)

const (
	deviceKeyInMetrics  = "device"
	kindKeyInMetrics    = "kind"
	shotsKeyInMetrics   = "shots"
	qubitsKeyInMetrics  = "qubits"
	elapsedKeyInMetrics = "elapsed_ms"
	errorKeyInMetrics   = "error"
)

// TaskMetrics describes one dispatch of a runner to its device.
type TaskMetrics struct {
	Device  string
	Kind    string
	Shots   int
	Qubits  int
	Elapsed time.Duration
	Err     error
}

var (
	metricsMu     sync.Mutex
	metricsLogger *slog.Logger
	metricsDaily  *dailyLogger
)

// SetupMetricsLog starts writing task metrics as JSON lines into one file per day under fileDir.
func SetupMetricsLog(fileDir string) error {
	if err := common.IsDirWritable(fileDir); err != nil {
		zap.L().Error("failed to set up metrics log", zap.Error(err))
		return fmt.Errorf("failed to write to %s: %w", fileDir, err)
	}
	metricsMu.Lock()
	defer metricsMu.Unlock()
	if metricsDaily != nil {
		metricsDaily.Close()
	}
	metricsDaily = newDailyLogger(fileDir)
	metricsLogger = slog.New(slog.NewJSONHandler(metricsDaily, nil))
	return nil
}

func CloseMetricsLog() {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	if metricsDaily != nil {
		metricsDaily.Close()
	}
	metricsDaily = nil
	metricsLogger = nil
}

// RecordTask writes m to the metrics log. It does nothing until SetupMetricsLog succeeds.
func RecordTask(m TaskMetrics) {
	metricsMu.Lock()
	l := metricsLogger
	metricsMu.Unlock()
	if l == nil {
		return
	}
	attrs := []any{
		slog.String(deviceKeyInMetrics, m.Device),
		slog.String(kindKeyInMetrics, m.Kind),
		slog.Int(shotsKeyInMetrics, m.Shots),
		slog.Int(qubitsKeyInMetrics, m.Qubits),
		slog.Int64(elapsedKeyInMetrics, m.Elapsed.Milliseconds()),
	}
	if m.Err != nil {
		attrs = append(attrs, slog.String(errorKeyInMetrics, m.Err.Error()))
	}
	l.Info("Metrics", attrs...)
}

type dailyLogger struct {
	mu              sync.Mutex
	fileDir         string
	currentFileName string
	file            *os.File
}

func newDailyLogger(fileDir string) *dailyLogger {
	return &dailyLogger{
		fileDir: fileDir,
	}
}

func (dl *dailyLogger) Write(p []byte) (n int, err error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	fileName := dailyFileName(time.Now())
	filePath := filepath.Join(dl.fileDir, fileName)
	currentFilePath := filepath.Join(dl.fileDir, dl.currentFileName)

	if dl.file == nil || currentFilePath != filePath {
		if dl.file != nil {
			dl.file.Close()
		}
		var err error
		dl.file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		dl.currentFileName = fileName
	}

	return dl.file.Write(p)
}

func (dl *dailyLogger) Close() error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file != nil {
		err := dl.file.Close()
		dl.file = nil
		return err
	}
	return nil
}

func dailyFileName(t time.Time) string {
	return fmt.Sprintf("metrics-%s.log", t.Format("2006-01-02"))
}
