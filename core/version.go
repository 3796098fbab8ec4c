package core

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	APP_NAME  = "oqtopus-braket"
	NoVersion = "no_version_info"
)

var Version = NoVersion

// SetVersion prefers the version embedded at build time over the configured one.
func SetVersion(c *Conf, versionByBuildFlag string) string {
	switch {
	case versionByBuildFlag != "":
		Version = versionByBuildFlag
	case c.Version != "":
		Version = c.Version
	default:
		Version = NoVersion
	}
	zap.L().Info(fmt.Sprintf("Version is %s", Version))
	return Version
}

// AppID is sent as the application id of every AWS request.
func AppID() string {
	return fmt.Sprintf("%s/%s", APP_NAME, Version)
}
