package runner

import (
	"fmt"
	"time"

	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"github.com/oqtopus-team/oqtopus-braket/localsim"
)

const (
	BRAKET_SETTING_KEY = "braket"
	LOCAL_SETTING_KEY  = "local"

	DEFAULT_REGION = "us-east-1"
	DEFAULT_DEVICE = braket.SV1_DEVICE_NAME
)

// RegisterSettings puts default [com.braket] and [com.local] settings into the
// global registry, to be filled by core.ParseSettingFromPath.
func RegisterSettings() {
	core.RegisterSetting(BRAKET_SETTING_KEY, NewBraketSetting())
	core.RegisterSetting(LOCAL_SETTING_KEY, NewLocalSetting())
}

// RegisteredSettings looks both runner settings up in the global registry.
func RegisteredSettings() (*LocalSetting, *BraketSetting, error) {
	lv, ok := core.GetComponentSetting(LOCAL_SETTING_KEY)
	if !ok {
		return nil, nil, fmt.Errorf("%w: com.%s is not registered", core.ErrInvalidSetting, LOCAL_SETTING_KEY)
	}
	local, ok := lv.(*LocalSetting)
	if !ok {
		return nil, nil, fmt.Errorf("%w: com.%s has type %T", core.ErrInvalidSetting, LOCAL_SETTING_KEY, lv)
	}
	bv, ok := core.GetComponentSetting(BRAKET_SETTING_KEY)
	if !ok {
		return nil, nil, fmt.Errorf("%w: com.%s is not registered", core.ErrInvalidSetting, BRAKET_SETTING_KEY)
	}
	bs, ok := bv.(*BraketSetting)
	if !ok {
		return nil, nil, fmt.Errorf("%w: com.%s has type %T", core.ErrInvalidSetting, BRAKET_SETTING_KEY, bv)
	}
	return local, bs, nil
}

// BraketSetting is the [com.braket] table of the setting file.
type BraketSetting struct {
	Region       string `toml:"region"`
	Profile      string `toml:"profile"`
	AccessKey    string `toml:"access_key"`
	SecretKey    string `toml:"secret_key"`
	SessionToken string `toml:"session_token"`

	Device      string `toml:"device"`
	S3Bucket    string `toml:"s3_bucket"`
	S3KeyPrefix string `toml:"s3_key_prefix"`
	Noise       string `toml:"noise"`

	PollTimeoutSeconds  int `toml:"poll_timeout_seconds"`
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
}

func NewBraketSetting() *BraketSetting {
	return &BraketSetting{
		Region:              DEFAULT_REGION,
		Device:              DEFAULT_DEVICE,
		S3KeyPrefix:         braket.DEFAULT_S3_PREFIX,
		PollTimeoutSeconds:  int(braket.DEFAULT_POLL_TIMEOUT / time.Second),
		PollIntervalSeconds: int(braket.DEFAULT_POLL_INTERVAL / time.Second),
	}
}

func (s *BraketSetting) Validate() error {
	if s.Device == "" {
		return fmt.Errorf("device must not be empty")
	}
	if s.PollTimeoutSeconds <= 0 || s.PollIntervalSeconds <= 0 {
		return fmt.Errorf("poll timeout and interval must be positive, got %d and %d",
			s.PollTimeoutSeconds, s.PollIntervalSeconds)
	}
	if s.AccessKey != "" && s.SecretKey == "" {
		return fmt.Errorf("secret_key is required with access_key")
	}
	if _, err := braket.ParseNoise(s.Noise); err != nil {
		return err
	}
	return nil
}

func (s *BraketSetting) SessionParams() braket.SessionParams {
	return braket.SessionParams{
		Region:       s.Region,
		Profile:      s.Profile,
		AccessKey:    s.AccessKey,
		SecretKey:    s.SecretKey,
		SessionToken: s.SessionToken,
	}
}

func (s *BraketSetting) PollOptions() braket.PollOptions {
	return braket.PollOptions{
		Timeout:  time.Duration(s.PollTimeoutSeconds) * time.Second,
		Interval: time.Duration(s.PollIntervalSeconds) * time.Second,
	}
}

func (s *BraketSetting) Destination() *braket.S3Destination {
	if s.S3Bucket == "" {
		return nil
	}
	return &braket.S3Destination{Bucket: s.S3Bucket, Prefix: s.S3KeyPrefix}
}

// LocalSetting is the [com.local] table of the setting file.
type LocalSetting struct {
	Backend string `toml:"backend"`
	Noise   string `toml:"noise"`
	Seed    int64  `toml:"seed"`
}

func NewLocalSetting() *LocalSetting {
	return &LocalSetting{}
}

func (s *LocalSetting) Validate() error {
	switch s.Backend {
	case "", localsim.BACKEND_SV, localsim.BACKEND_DM:
	default:
		return fmt.Errorf("unknown local backend %q", s.Backend)
	}
	if _, err := braket.ParseNoise(s.Noise); err != nil {
		return err
	}
	return nil
}
