//go:build unit
// +build unit

package braket

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsbraket "github.com/aws/aws-sdk-go-v2/service/braket"
	"github.com/aws/aws-sdk-go-v2/service/braket/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/golang/mock/gomock"
	"github.com/oqtopus-team/oqtopus-braket/braket/mock"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsJSON = `{"measurements": [[1, 0, 0], [1, 0, 0]], "measuredQubits": [0, 1, 2]}`

var fastPoll = PollOptions{Timeout: time.Second, Interval: time.Millisecond}

type apiMocks struct {
	braket *mock.MockBraketAPI
	s3     *mock.MockS3API
	sts    *mock.MockSTSAPI
	sess   *Session
}

func newAPIMocks(t *testing.T) *apiMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := &apiMocks{
		braket: mock.NewMockBraketAPI(ctrl),
		s3:     mock.NewMockS3API(ctrl),
		sts:    mock.NewMockSTSAPI(ctrl),
	}
	m.sess = &Session{Braket: m.braket, S3: m.s3, STS: m.sts, Region: "us-west-1"}
	return m
}

func taskOutput(status types.QuantumTaskStatus, dir string) *awsbraket.GetQuantumTaskOutput {
	return &awsbraket.GetQuantumTaskOutput{
		Status:            status,
		OutputS3Bucket:    aws.String("my-bucket"),
		OutputS3Directory: aws.String(dir),
		FailureReason:     aws.String("device offline"),
	}
}

func objectOutput(body string) *s3.GetObjectOutput {
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}
}

func TestAwsDeviceCapabilities(t *testing.T) {
	m := newAPIMocks(t)
	sv1 := NewAwsDevice(m.sess, DeviceSummary{ARN: sv1ARN, Name: "SV1", Type: DeviceTypeSimulator})
	dm1 := NewAwsDevice(m.sess, DeviceSummary{ARN: dm1ARN, Name: "DM1", Type: DeviceTypeSimulator})
	qpu := NewAwsDevice(m.sess, DeviceSummary{ARN: ariaARN, Name: "Aria 1", Type: DeviceTypeQPU})

	assert.True(t, sv1.SupportsResultType(ResultStateVector))
	assert.False(t, sv1.SupportsResultType(ResultDensityMatrix))
	assert.True(t, dm1.SupportsResultType(ResultDensityMatrix))
	assert.False(t, dm1.SupportsResultType(ResultStateVector))
	assert.False(t, qpu.SupportsResultType(ResultStateVector))
	assert.Equal(t, DefaultPollOptions(), qpu.PollOptions())
	assert.Equal(t, 432000*time.Second, qpu.PollOptions().Timeout)
}

func TestAwsDeviceRun(t *testing.T) {
	m := newAPIMocks(t)
	d := NewAwsDevice(m.sess,
		DeviceSummary{ARN: sv1ARN, Name: "SV1", Type: DeviceTypeSimulator},
		WithPollOptions(fastPoll))
	c := xCNotCircuit(t)

	gomock.InOrder(
		m.sts.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any()).
			Return(&sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}, nil),
		m.braket.EXPECT().CreateQuantumTask(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *awsbraket.CreateQuantumTaskInput, _ ...func(*awsbraket.Options)) (*awsbraket.CreateQuantumTaskOutput, error) {
				assert.Equal(t, sv1ARN, aws.ToString(in.DeviceArn))
				assert.Equal(t, "amazon-braket-us-west-1-123456789012", aws.ToString(in.OutputS3Bucket))
				assert.Equal(t, DEFAULT_S3_PREFIX, aws.ToString(in.OutputS3KeyPrefix))
				assert.Equal(t, int64(2), aws.ToInt64(in.Shots))
				assert.Equal(t, ActionDocument(c), aws.ToString(in.Action))
				assert.NotEmpty(t, aws.ToString(in.ClientToken))
				return &awsbraket.CreateQuantumTaskOutput{QuantumTaskArn: aws.String("task-1")}, nil
			}),
		m.braket.EXPECT().GetQuantumTask(gomock.Any(), gomock.Any()).
			Return(taskOutput(types.QuantumTaskStatusQueued, ""), nil),
		m.braket.EXPECT().GetQuantumTask(gomock.Any(), gomock.Any()).
			Return(taskOutput(types.QuantumTaskStatusRunning, ""), nil),
		m.braket.EXPECT().GetQuantumTask(gomock.Any(), gomock.Any()).
			Return(taskOutput(types.QuantumTaskStatusCompleted, "tasks/task-1"), nil),
		m.s3.EXPECT().GetObject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
				assert.Equal(t, "my-bucket", aws.ToString(in.Bucket))
				assert.Equal(t, "tasks/task-1/results.json", aws.ToString(in.Key))
				return objectOutput(resultsJSON), nil
			}),
	)

	r, err := d.Run(context.Background(), c, 2)
	require.Nil(t, err)
	assert.Equal(t, [][]int{{1, 0, 0}, {1, 0, 0}}, r.Measurements)
}

func TestAwsDeviceRunFailed(t *testing.T) {
	for _, status := range []types.QuantumTaskStatus{types.QuantumTaskStatusFailed, types.QuantumTaskStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			m := newAPIMocks(t)
			d := NewAwsDevice(m.sess,
				DeviceSummary{ARN: ariaARN, Name: "Aria 1", Type: DeviceTypeQPU},
				WithDestination(&S3Destination{Bucket: "my-bucket", Prefix: "p"}),
				WithPollOptions(fastPoll))
			m.braket.EXPECT().CreateQuantumTask(gomock.Any(), gomock.Any()).
				Return(&awsbraket.CreateQuantumTaskOutput{QuantumTaskArn: aws.String("task-1")}, nil)
			m.braket.EXPECT().GetQuantumTask(gomock.Any(), gomock.Any()).Return(taskOutput(status, ""), nil)

			_, err := d.Run(context.Background(), xCNotCircuit(t), 10)
			assert.True(t, errors.Is(err, core.ErrTaskFailed))
			assert.Contains(t, err.Error(), "device offline")
		})
	}
}

func TestAwsDeviceRunTimeout(t *testing.T) {
	m := newAPIMocks(t)
	d := NewAwsDevice(m.sess,
		DeviceSummary{ARN: sv1ARN, Name: "SV1", Type: DeviceTypeSimulator},
		WithDestination(&S3Destination{Bucket: "my-bucket", Prefix: "p"}),
		WithPollOptions(PollOptions{Timeout: 20 * time.Millisecond, Interval: 5 * time.Millisecond}))
	m.braket.EXPECT().CreateQuantumTask(gomock.Any(), gomock.Any()).
		Return(&awsbraket.CreateQuantumTaskOutput{QuantumTaskArn: aws.String("task-1")}, nil)
	m.braket.EXPECT().GetQuantumTask(gomock.Any(), gomock.Any()).
		Return(taskOutput(types.QuantumTaskStatusQueued, ""), nil).MinTimes(1)
	m.braket.EXPECT().CancelQuantumTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *awsbraket.CancelQuantumTaskInput, _ ...func(*awsbraket.Options)) (*awsbraket.CancelQuantumTaskOutput, error) {
			assert.Equal(t, "task-1", aws.ToString(in.QuantumTaskArn))
			return &awsbraket.CancelQuantumTaskOutput{}, nil
		})

	_, err := d.Run(context.Background(), xCNotCircuit(t), 10)
	assert.True(t, errors.Is(err, core.ErrPollTimeout))
}

func TestAwsDeviceQPURequiresDestination(t *testing.T) {
	m := newAPIMocks(t)
	d := NewAwsDevice(m.sess, DeviceSummary{ARN: ariaARN, Name: "Aria 1", Type: DeviceTypeQPU})
	_, err := d.Run(context.Background(), xCNotCircuit(t), 10)
	assert.True(t, errors.Is(err, core.ErrDestinationRequired))
}

func TestAwsDeviceRunBatch(t *testing.T) {
	m := newAPIMocks(t)
	d := NewAwsDevice(m.sess,
		DeviceSummary{ARN: sv1ARN, Name: "SV1", Type: DeviceTypeSimulator},
		WithDestination(&S3Destination{Bucket: "my-bucket", Prefix: "p"}),
		WithPollOptions(fastPoll))

	created := 0
	m.braket.EXPECT().CreateQuantumTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *awsbraket.CreateQuantumTaskInput, _ ...func(*awsbraket.Options)) (*awsbraket.CreateQuantumTaskOutput, error) {
			created++
			arn := "task-1"
			if created == 2 {
				arn = "task-2"
				assert.Equal(t, int64(3), aws.ToInt64(in.Shots))
			}
			return &awsbraket.CreateQuantumTaskOutput{QuantumTaskArn: aws.String(arn)}, nil
		}).Times(2)
	m.braket.EXPECT().GetQuantumTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *awsbraket.GetQuantumTaskInput, _ ...func(*awsbraket.Options)) (*awsbraket.GetQuantumTaskOutput, error) {
			// both tasks exist before the first one is polled
			assert.Equal(t, 2, created)
			return taskOutput(types.QuantumTaskStatusCompleted, "p/"+aws.ToString(in.QuantumTaskArn)), nil
		}).Times(2)
	m.s3.EXPECT().GetObject(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			if aws.ToString(in.Key) == "p/task-1/results.json" {
				return objectOutput(`{"measurements": [[0]]}`), nil
			}
			return objectOutput(`{"measurements": [[1], [1], [1]]}`), nil
		}).Times(2)

	rs, err := d.RunBatch(context.Background(), []*Circuit{xCNotCircuit(t), xCNotCircuit(t)}, []int{1, 3})
	require.Nil(t, err)
	assert.Equal(t, 2, len(rs))
	assert.Equal(t, [][]int{{0}}, rs[0].Measurements)
	assert.Equal(t, [][]int{{1}, {1}, {1}}, rs[1].Measurements)

	_, err = d.RunBatch(context.Background(), []*Circuit{xCNotCircuit(t)}, []int{1, 3})
	assert.True(t, errors.Is(err, core.ErrInvalidShots))
}
