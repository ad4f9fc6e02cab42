package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/metrovolt-api/internal/domain"
)

// ContentRepo provides typed DynamoDB operations for the website_content
// table. PK: section, so Put doubles as an upsert.
type ContentRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewContentRepo(client *dynamodb.Client, tableName string) *ContentRepo {
	return &ContentRepo{client: client, tableName: tableName}
}

func (r *ContentRepo) Put(ctx context.Context, c *domain.WebsiteContent) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ContentRepo) Get(ctx context.Context, section string) (*domain.WebsiteContent, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("section", section),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("content not found: %w", domain.ErrNotFound)
	}
	var c domain.WebsiteContent
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepo) Scan(ctx context.Context) ([]domain.WebsiteContent, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	contents := make([]domain.WebsiteContent, 0, len(out.Items))
	for _, item := range out.Items {
		var c domain.WebsiteContent
		if err := attributevalue.UnmarshalMap(item, &c); err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, nil
}
