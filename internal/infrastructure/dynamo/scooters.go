package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/metrovolt-api/internal/domain"
)

// ScooterRepo provides typed DynamoDB operations for the scooters table.
// The catalog is small (tens of models), so listing is a plain Scan.
type ScooterRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewScooterRepo(client *dynamodb.Client, tableName string) *ScooterRepo {
	return &ScooterRepo{client: client, tableName: tableName}
}

func (r *ScooterRepo) Put(ctx context.Context, s *domain.Scooter) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal scooter: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ScooterRepo) Get(ctx context.Context, scooterID string) (*domain.Scooter, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("scooter_id", scooterID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("scooter not found: %w", domain.ErrNotFound)
	}
	var s domain.Scooter
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScooterRepo) Scan(ctx context.Context) ([]domain.Scooter, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	scooters := make([]domain.Scooter, 0, len(out.Items))
	for _, item := range out.Items {
		var s domain.Scooter
		if err := attributevalue.UnmarshalMap(item, &s); err != nil {
			return nil, err
		}
		scooters = append(scooters, s)
	}
	return scooters, nil
}

func (r *ScooterRepo) Update(ctx context.Context, scooterID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("scooter_id", scooterID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *ScooterRepo) Delete(ctx context.Context, scooterID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("scooter_id", scooterID),
	})
	return err
}
