package braket

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsbraket "github.com/aws/aws-sdk-go-v2/service/braket"
	"github.com/aws/aws-sdk-go-v2/service/braket/types"
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"go.uber.org/zap"
)

type DeviceType string

const (
	DeviceTypeQPU       DeviceType = "QPU"
	DeviceTypeSimulator DeviceType = "SIMULATOR"
	// DeviceTypeAny disables type filtering.
	DeviceTypeAny DeviceType = ""
)

const DEVICE_LIST_URL = "https://aws.amazon.com/braket/quantum-computers/"

// Device executes Braket-native circuits. shots == 0 requests the result types
// attached to the circuit instead of measurements.
type Device interface {
	Name() string
	Type() DeviceType
	SupportsResultType(rt ResultType) bool
	Run(ctx context.Context, c *Circuit, shots int) (*TaskResult, error)
}

// BatchDevice is implemented by devices that accept several circuits at once.
type BatchDevice interface {
	Device
	RunBatch(ctx context.Context, cs []*Circuit, shots []int) ([]*TaskResult, error)
}

type DeviceSummary struct {
	ARN      string
	Name     string
	Type     DeviceType
	Provider string
	Status   string
}

// SearchDevices lists every device visible to the session, keeping only
// devices of type filter unless it is DeviceTypeAny.
func SearchDevices(ctx context.Context, sess *Session, filter DeviceType) ([]DeviceSummary, error) {
	devices := []DeviceSummary{}
	var token *string
	for {
		out, err := sess.Braket.SearchDevices(ctx, &awsbraket.SearchDevicesInput{
			Filters:   []types.SearchDevicesFilter{},
			NextToken: token,
		})
		if err != nil {
			zap.L().Error(fmt.Sprintf("failed to search devices/reason:%s", err))
			return nil, errors.Wrap(err, "search devices")
		}
		for _, d := range out.Devices {
			dt := DeviceType(d.DeviceType)
			if filter != DeviceTypeAny && dt != filter {
				continue
			}
			devices = append(devices, DeviceSummary{
				ARN:      aws.ToString(d.DeviceArn),
				Name:     aws.ToString(d.DeviceName),
				Type:     dt,
				Provider: aws.ToString(d.ProviderName),
				Status:   string(d.DeviceStatus),
			})
		}
		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		token = out.NextToken
	}
	zap.L().Debug(fmt.Sprintf("found %d devices/filter:%q", len(devices), filter))
	return devices, nil
}

func DeviceNames(ctx context.Context, sess *Session, filter DeviceType) ([]string, error) {
	devices, err := SearchDevices(ctx, sess, filter)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = d.Name
	}
	return names, nil
}

// ResolveDevice finds the first device named name. The list is fetched on every call.
func ResolveDevice(ctx context.Context, sess *Session, name string, filter DeviceType) (DeviceSummary, error) {
	devices, err := SearchDevices(ctx, sess, filter)
	if err != nil {
		return DeviceSummary{}, err
	}
	for _, d := range devices {
		if d.Name == name {
			return d, nil
		}
	}
	return DeviceSummary{}, errors.Errorf("%w: no device named %q. Check %s for the devices available on Braket",
		core.ErrUnknownDevice, name, DEVICE_LIST_URL)
}

func ResolveARN(ctx context.Context, sess *Session, name string, filter DeviceType) (string, error) {
	d, err := ResolveDevice(ctx, sess, name, filter)
	if err != nil {
		return "", err
	}
	return d.ARN, nil
}
