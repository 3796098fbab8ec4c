package braket

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconf "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsbraket "github.com/aws/aws-sdk-go-v2/service/braket"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"go.uber.org/zap"
)

//go:generate mockgen -source=session.go -destination=mock/mock_api.go -package=mock

type BraketAPI interface {
	CreateQuantumTask(ctx context.Context, params *awsbraket.CreateQuantumTaskInput, optFns ...func(*awsbraket.Options)) (*awsbraket.CreateQuantumTaskOutput, error)
	GetQuantumTask(ctx context.Context, params *awsbraket.GetQuantumTaskInput, optFns ...func(*awsbraket.Options)) (*awsbraket.GetQuantumTaskOutput, error)
	CancelQuantumTask(ctx context.Context, params *awsbraket.CancelQuantumTaskInput, optFns ...func(*awsbraket.Options)) (*awsbraket.CancelQuantumTaskOutput, error)
	SearchDevices(ctx context.Context, params *awsbraket.SearchDevicesInput, optFns ...func(*awsbraket.Options)) (*awsbraket.SearchDevicesOutput, error)
}

type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Session bundles the AWS clients a runner talks to. It is created once and
// shared by every device built from it.
type Session struct {
	Braket BraketAPI
	S3     S3API
	STS    STSAPI
	Region string
}

type SessionParams struct {
	Region       string
	Profile      string
	AccessKey    string
	SecretKey    string
	SessionToken string
}

func NewSession(cfg aws.Config) *Session {
	return &Session{
		Braket: awsbraket.NewFromConfig(cfg),
		S3:     s3.NewFromConfig(cfg),
		STS:    sts.NewFromConfig(cfg),
		Region: cfg.Region,
	}
}

// LoadSession resolves the AWS configuration from the environment and shared
// config files. Static credentials take precedence when an access key is given.
func LoadSession(ctx context.Context, p SessionParams) (*Session, error) {
	opts := []func(*awsconf.LoadOptions) error{
		awsconf.WithAppID(core.AppID()),
	}
	if p.Region != "" {
		opts = append(opts, awsconf.WithRegion(p.Region))
	}
	if p.Profile != "" {
		opts = append(opts, awsconf.WithSharedConfigProfile(p.Profile))
	}
	if p.AccessKey != "" {
		opts = append(opts, awsconf.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(p.AccessKey, p.SecretKey, p.SessionToken)))
	}
	cfg, err := awsconf.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to load aws config/reason:%s", err))
		return nil, err
	}
	zap.L().Info(fmt.Sprintf("loaded aws session/region:%s", cfg.Region))
	return NewSession(cfg), nil
}
