package core

type Conf struct {
	Version            string `long:"version" description:"version of the braket runner" env:"OQTOPUS_BRAKET_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"OQTOPUS_BRAKET_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"OQTOPUS_BRAKET_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"OQTOPUS_BRAKET_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"OQTOPUS_BRAKET_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"OQTOPUS_BRAKET_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"OQTOPUS_BRAKET_LOG_ROTATION_MAX_DAYS"`
	EnableMetricsLog   bool   `long:"enable-metrics-log" description:"write task metrics to daily files" env:"OQTOPUS_BRAKET_ENABLE_METRICS_LOG"`
	MetricsLogDir      string `long:"metrics-log-dir" description:"task metrics log dir" default:"./shares/metrics" env:"OQTOPUS_BRAKET_METRICS_LOG_DIR"`
	Runner             string `long:"runner" description:"circuit runner" default:"local" choice:"local" choice:"aws" env:"OQTOPUS_BRAKET_RUNNER"`
	SettingPath        string `long:"setting-path" description:"setting file path" default:"./setting/setting.toml" env:"OQTOPUS_BRAKET_SETTING_PATH"`
}
