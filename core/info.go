package core

import (
	"fmt"

	"go.uber.org/zap"
)

type NonSecretConf struct {
	DevMode            bool
	DisableStdoutLog   bool
	EnableFileLog      bool
	LogDir             string
	LogLevel           string
	LogRotationMaxDays int
	EnableMetricsLog   bool
	MetricsLogDir      string
	Runner             string
	SettingPath        string
}

type Info struct {
	Version string
	Conf    *NonSecretConf
}

var CurrentInfo *Info

// SetInfo records the startup configuration. AWS credentials live in the
// setting file and are never part of Info.
func SetInfo(c *Conf) {
	conf := &NonSecretConf{
		DevMode:            c.DevMode,
		DisableStdoutLog:   c.DisableStdoutLog,
		EnableFileLog:      c.EnableFileLog,
		LogDir:             c.LogDir,
		LogLevel:           c.LogLevel,
		LogRotationMaxDays: c.LogRotationMaxDays,
		EnableMetricsLog:   c.EnableMetricsLog,
		MetricsLogDir:      c.MetricsLogDir,
		Runner:             c.Runner,
		SettingPath:        c.SettingPath,
	}

	CurrentInfo = &Info{
		Version: Version,
		Conf:    conf,
	}
	zap.L().Debug(fmt.Sprintf("current info:%+v", *conf))
}
