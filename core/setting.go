package core

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/oqtopus-team/oqtopus-braket/common"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Validatable is implemented by component settings that check themselves after decoding.
type Validatable interface {
	Validate() error
}

var globalSetting *Setting

// Setting maps a component name to a pointer to its typed setting.
// Each [com.<name>] table of the setting file is decoded into the registered value.
type Setting struct {
	ComponentSetting map[string]interface{}
}

type settingFile struct {
	Com map[string]toml.Primitive `toml:"com"`
}

func ResetSetting() {
	globalSetting = newSetting()
}

func RegisterSetting(settingName string, settingVal interface{}) {
	if globalSetting == nil {
		ResetSetting()
	}
	globalSetting.registerSetting(settingName, settingVal)
}

func ParseSettingFromPath(settingsPath string) error {
	tomlString, err := common.ReadSettingsFile(settingsPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read setting file/reason:%s", err))
		return err
	}
	return globalSetting.parseSetting(tomlString)
}

func GetComponentSetting(name string) (interface{}, bool) {
	if globalSetting == nil {
		zap.L().Error("Setting is not initialized")
		return nil, false
	}
	val, ok := globalSetting.ComponentSetting[name]
	return val, ok
}

func newSetting() *Setting {
	return &Setting{
		ComponentSetting: make(map[string]interface{}),
	}
}

func (s *Setting) registerSetting(settingName string, settingVal interface{}) {
	s.ComponentSetting[settingName] = settingVal
}

func (s *Setting) parseSetting(tomlString string) error {
	f := settingFile{}
	md, err := toml.Decode(tomlString, &f)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse setting/reason:%s", err))
		return err
	}
	var errs error
	for name, prim := range f.Com {
		val, ok := s.ComponentSetting[name]
		if !ok {
			zap.L().Warn(fmt.Sprintf("ignored unregistered setting section com.%s", name))
			continue
		}
		if err := md.PrimitiveDecode(prim, val); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: com.%s: %s", ErrInvalidSetting, name, err))
			continue
		}
	}
	for name, val := range s.ComponentSetting {
		if v, ok := val.(Validatable); ok {
			if err := v.Validate(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%w: com.%s: %s", ErrInvalidSetting, name, err))
			}
		}
	}
	if errs != nil {
		zap.L().Error(fmt.Sprintf("failed to decode setting/reason:%s", errs))
		return errs
	}
	zap.L().Debug(fmt.Sprintf("Setting is %v", s.ComponentSetting))
	return nil
}
