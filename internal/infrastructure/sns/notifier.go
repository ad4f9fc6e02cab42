package sns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/metrovolt-api/internal/config"
)

// Notifier publishes operational events (new orders, new bookings) to an
// SNS topic so staff can subscribe. A nil topic ARN disables publishing.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
	Enabled() bool
}

type notifier struct {
	client   *sns.Client
	topicARN string
}

func NewNotifier(cfg *config.Config) (Notifier, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	clientOpts := []func(*sns.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *sns.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}

	return &notifier{
		client:   sns.NewFromConfig(awsCfg, clientOpts...),
		topicARN: cfg.SNSTopicARN,
	}, nil
}

func (n *notifier) Enabled() bool {
	return n.topicARN != ""
}

func (n *notifier) Publish(ctx context.Context, subject, message string) error {
	if !n.Enabled() {
		return nil
	}
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	return err
}
