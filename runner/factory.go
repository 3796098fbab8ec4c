package runner

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"github.com/oqtopus-team/oqtopus-braket/localsim"
	"go.uber.org/zap"
)

// NewLocalRunner runs circuits on a local simulator. An empty backend picks the
// density matrix backend when noise is given and the state vector backend otherwise.
func NewLocalRunner(backend string, noise *braket.Noise, opts ...localsim.Option) (*BraketRunner, error) {
	if backend == "" {
		backend = localsim.BACKEND_SV
		if noise != nil {
			backend = localsim.BACKEND_DM
		}
	}
	if noise != nil && backend != localsim.BACKEND_DM {
		return nil, errors.Errorf("%w: noise needs the %s backend, got %s",
			core.ErrIncompatibleNoiseModel, localsim.BACKEND_DM, backend)
	}
	sim, err := localsim.New(backend, opts...)
	if err != nil {
		return nil, err
	}
	zap.L().Info(fmt.Sprintf("created local runner/backend:%s/noise:%v", backend, noise))
	return newBraketRunner(sim, noise), nil
}

type awsRunnerOptions struct {
	noise       *braket.Noise
	destination *braket.S3Destination
	poll        braket.PollOptions
}

type AWSRunnerOption func(*awsRunnerOptions)

func WithNoise(n *braket.Noise) AWSRunnerOption {
	return func(o *awsRunnerOptions) {
		o.noise = n
	}
}

func WithDestination(d *braket.S3Destination) AWSRunnerOption {
	return func(o *awsRunnerOptions) {
		o.destination = d
	}
}

func WithPollOptions(p braket.PollOptions) AWSRunnerOption {
	return func(o *awsRunnerOptions) {
		o.poll = p
	}
}

// NewAWSRunner resolves name among the devices visible to sess and runs circuits on it.
// Noise is accepted only by the DM1 simulator; QPUs need an explicit S3 destination.
func NewAWSRunner(ctx context.Context, sess *braket.Session, name string, opts ...AWSRunnerOption) (*BraketRunner, error) {
	o := &awsRunnerOptions{poll: braket.DefaultPollOptions()}
	for _, opt := range opts {
		opt(o)
	}
	summary, err := braket.ResolveDevice(ctx, sess, name, braket.DeviceTypeAny)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to resolve device %s/reason:%s", name, err))
		return nil, err
	}
	if o.noise != nil && (summary.Type != braket.DeviceTypeSimulator || summary.Name != braket.DM1_DEVICE_NAME) {
		return nil, errors.Errorf("%w: noise can only be simulated by %s, got %s (%s)",
			core.ErrIncompatibleNoiseModel, braket.DM1_DEVICE_NAME, summary.Name, summary.Type)
	}
	if summary.Type == braket.DeviceTypeQPU && o.destination.IsZero() {
		return nil, errors.Wrapf(core.ErrDestinationRequired, "QPU %s", summary.Name)
	}
	device := braket.NewAwsDevice(sess, summary,
		braket.WithDestination(o.destination),
		braket.WithPollOptions(o.poll))
	zap.L().Info(fmt.Sprintf("created aws runner/device:%s/arn:%s/type:%s", summary.Name, summary.ARN, summary.Type))
	return newBraketRunner(device, o.noise), nil
}

func GetQPUNames(ctx context.Context, sess *braket.Session) ([]string, error) {
	return braket.DeviceNames(ctx, sess, braket.DeviceTypeQPU)
}

func GetSimulatorNames(ctx context.Context, sess *braket.Session) ([]string, error) {
	return braket.DeviceNames(ctx, sess, braket.DeviceTypeSimulator)
}

// NewRunnerFromSetting builds the runner selected by kind ("local" or "aws") from registered settings.
func NewRunnerFromSetting(ctx context.Context, kind string, local *LocalSetting, awsSetting *BraketSetting) (*BraketRunner, error) {
	switch kind {
	case "local":
		noise, err := braket.ParseNoise(local.Noise)
		if err != nil {
			return nil, err
		}
		opts := []localsim.Option{}
		if local.Seed != 0 {
			opts = append(opts, localsim.WithSeed(local.Seed))
		}
		return NewLocalRunner(local.Backend, noise, opts...)
	case "aws":
		noise, err := braket.ParseNoise(awsSetting.Noise)
		if err != nil {
			return nil, err
		}
		sess, err := braket.LoadSession(ctx, awsSetting.SessionParams())
		if err != nil {
			return nil, err
		}
		return NewAWSRunner(ctx, sess, awsSetting.Device,
			WithNoise(noise),
			WithDestination(awsSetting.Destination()),
			WithPollOptions(awsSetting.PollOptions()))
	default:
		return nil, fmt.Errorf("%s is an unknown runner", kind)
	}
}
