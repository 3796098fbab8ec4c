package braket

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsbraket "github.com/aws/aws-sdk-go-v2/service/braket"
	"github.com/aws/aws-sdk-go-v2/service/braket/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"go.uber.org/zap"
)

const (
	DEFAULT_POLL_TIMEOUT  = time.Duration(432000) * time.Second
	DEFAULT_POLL_INTERVAL = time.Duration(1) * time.Second
	DEFAULT_S3_PREFIX     = "tasks"
	RESULTS_FILE_NAME     = "results.json"

	SV1_DEVICE_NAME = "SV1"
	DM1_DEVICE_NAME = "DM1"
)

type PollOptions struct {
	Timeout  time.Duration
	Interval time.Duration
}

func DefaultPollOptions() PollOptions {
	return PollOptions{
		Timeout:  DEFAULT_POLL_TIMEOUT,
		Interval: DEFAULT_POLL_INTERVAL,
	}
}

func (p PollOptions) withDefaults() PollOptions {
	if p.Timeout <= 0 {
		p.Timeout = DEFAULT_POLL_TIMEOUT
	}
	if p.Interval <= 0 {
		p.Interval = DEFAULT_POLL_INTERVAL
	}
	return p
}

// S3Destination is where a cloud device writes task results.
type S3Destination struct {
	Bucket string
	Prefix string
}

func (d *S3Destination) IsZero() bool {
	return d == nil || d.Bucket == ""
}

// AwsDevice runs circuits as Braket quantum tasks on a cloud device.
type AwsDevice struct {
	summary     DeviceSummary
	sess        *Session
	destination *S3Destination
	poll        PollOptions
}

type AwsDeviceOption func(*AwsDevice)

func WithDestination(d *S3Destination) AwsDeviceOption {
	return func(a *AwsDevice) {
		if !d.IsZero() {
			cp := *d
			a.destination = &cp
		}
	}
}

func WithPollOptions(p PollOptions) AwsDeviceOption {
	return func(a *AwsDevice) {
		a.poll = p.withDefaults()
	}
}

func NewAwsDevice(sess *Session, summary DeviceSummary, opts ...AwsDeviceOption) *AwsDevice {
	d := &AwsDevice{
		summary: summary,
		sess:    sess,
		poll:    DefaultPollOptions(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *AwsDevice) Name() string {
	return d.summary.Name
}

func (d *AwsDevice) ARN() string {
	return d.summary.ARN
}

func (d *AwsDevice) Type() DeviceType {
	return d.summary.Type
}

func (d *AwsDevice) PollOptions() PollOptions {
	return d.poll
}

func (d *AwsDevice) SupportsResultType(rt ResultType) bool {
	if d.summary.Type != DeviceTypeSimulator {
		return false
	}
	switch rt {
	case ResultStateVector:
		return d.summary.Name == SV1_DEVICE_NAME
	case ResultDensityMatrix:
		return d.summary.Name == DM1_DEVICE_NAME
	}
	return false
}

func (d *AwsDevice) Run(ctx context.Context, c *Circuit, shots int) (*TaskResult, error) {
	arn, err := d.createTask(ctx, c, shots)
	if err != nil {
		return nil, err
	}
	return d.waitTask(ctx, arn)
}

// RunBatch creates every task before waiting on any, then collects results in submission order.
func (d *AwsDevice) RunBatch(ctx context.Context, cs []*Circuit, shots []int) ([]*TaskResult, error) {
	if len(cs) != len(shots) {
		return nil, errors.Errorf("%w: %d circuits but %d shot counts", core.ErrInvalidShots, len(cs), len(shots))
	}
	arns := make([]string, 0, len(cs))
	for i, c := range cs {
		arn, err := d.createTask(ctx, c, shots[i])
		if err != nil {
			d.cancelTasks(arns)
			return nil, err
		}
		arns = append(arns, arn)
	}
	results := make([]*TaskResult, len(arns))
	for i, arn := range arns {
		r, err := d.waitTask(ctx, arn)
		if err != nil {
			d.cancelTasks(arns[i+1:])
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

func (d *AwsDevice) createTask(ctx context.Context, c *Circuit, shots int) (string, error) {
	dest, err := d.resolveDestination(ctx)
	if err != nil {
		return "", err
	}
	out, err := d.sess.Braket.CreateQuantumTask(ctx, &awsbraket.CreateQuantumTaskInput{
		Action:            aws.String(ActionDocument(c)),
		ClientToken:       aws.String(uuid.New().String()),
		DeviceArn:         aws.String(d.summary.ARN),
		OutputS3Bucket:    aws.String(dest.Bucket),
		OutputS3KeyPrefix: aws.String(dest.Prefix),
		Shots:             aws.Int64(int64(shots)),
	})
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to create quantum task/device:%s/reason:%s", d.summary.Name, err))
		return "", errors.Wrap(err, "create quantum task")
	}
	arn := aws.ToString(out.QuantumTaskArn)
	zap.L().Debug(fmt.Sprintf("created quantum task/arn:%s/shots:%d", arn, shots))
	return arn, nil
}

// waitTask polls the task every interval until it reaches a terminal state or the timeout elapses.
func (d *AwsDevice) waitTask(ctx context.Context, arn string) (*TaskResult, error) {
	deadline := time.Now().Add(d.poll.Timeout)
	for {
		out, err := d.sess.Braket.GetQuantumTask(ctx, &awsbraket.GetQuantumTaskInput{
			QuantumTaskArn: aws.String(arn),
		})
		if err != nil {
			zap.L().Error(fmt.Sprintf("failed to get quantum task/arn:%s/reason:%s", arn, err))
			return nil, errors.Wrap(err, "get quantum task")
		}
		switch out.Status {
		case types.QuantumTaskStatusCompleted:
			return d.fetchResult(ctx, aws.ToString(out.OutputS3Bucket), aws.ToString(out.OutputS3Directory))
		case types.QuantumTaskStatusFailed, types.QuantumTaskStatusCancelled:
			reason := aws.ToString(out.FailureReason)
			zap.L().Error(fmt.Sprintf("quantum task ended/arn:%s/status:%s/reason:%s", arn, out.Status, reason))
			return nil, errors.Errorf("%w: %s is %s: %s", core.ErrTaskFailed, arn, out.Status, reason)
		}
		zap.L().Debug(fmt.Sprintf("quantum task/arn:%s/status:%s", arn, out.Status))
		if !time.Now().Add(d.poll.Interval).Before(deadline) {
			d.cancelTasks([]string{arn})
			return nil, errors.Errorf("%w: %s did not finish within %s", core.ErrPollTimeout, arn, d.poll.Timeout)
		}
		timer := time.NewTimer(d.poll.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			d.cancelTasks([]string{arn})
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (d *AwsDevice) fetchResult(ctx context.Context, bucket, dir string) (*TaskResult, error) {
	key := strings.TrimSuffix(dir, "/") + "/" + RESULTS_FILE_NAME
	out, err := d.sess.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to get task result/bucket:%s/key:%s/reason:%s", bucket, key, err))
		return nil, errors.Wrap(err, "get task result")
	}
	defer out.Body.Close()
	blob, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read task result")
	}
	return UnmarshalTaskResult(blob)
}

// cancelTasks is best effort; failures are only logged.
func (d *AwsDevice) cancelTasks(arns []string) {
	for _, arn := range arns {
		_, err := d.sess.Braket.CancelQuantumTask(context.Background(), &awsbraket.CancelQuantumTaskInput{
			ClientToken:    aws.String(uuid.New().String()),
			QuantumTaskArn: aws.String(arn),
		})
		if err != nil {
			zap.L().Warn(fmt.Sprintf("failed to cancel quantum task/arn:%s/reason:%s", arn, err))
		}
	}
}

// resolveDestination falls back to the default Braket bucket of the caller's
// account. Only simulators may run without an explicit destination.
func (d *AwsDevice) resolveDestination(ctx context.Context) (*S3Destination, error) {
	if d.destination != nil {
		return d.destination, nil
	}
	if d.summary.Type != DeviceTypeSimulator {
		return nil, errors.Wrapf(core.ErrDestinationRequired, "device %s", d.summary.Name)
	}
	out, err := d.sess.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to get caller identity/reason:%s", err))
		return nil, errors.Wrap(err, "get caller identity")
	}
	d.destination = &S3Destination{
		Bucket: fmt.Sprintf("amazon-braket-%s-%s", d.sess.Region, aws.ToString(out.Account)),
		Prefix: DEFAULT_S3_PREFIX,
	}
	zap.L().Info(fmt.Sprintf("using default s3 destination/bucket:%s/prefix:%s",
		d.destination.Bucket, d.destination.Prefix))
	return d.destination, nil
}
