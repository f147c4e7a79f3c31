package repository

import (
	"context"
	"encoding/json"
	"time"

	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfigTableName = "estimation_config"
	globalConfigKey        = "global"
)

type catalogItem struct {
	ID        string `dynamodbav:"id"`
	Document  string `dynamodbav:"document"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists the global configuration in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole catalog lives in a single item under a fixed key, stored as a
// JSON payload. The catalog is always read and written as one document,
// which matches the single-writer mutation model of the store.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONFIG_TABLE", defaultConfigTableName),
	}
}

func (r *CatalogDynamoRepository) Load(ctx context.Context) (entities.GlobalConfig, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: globalConfigKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GlobalConfig{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.GlobalConfig{}, false, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GlobalConfig{}, false, err
	}

	var cfg entities.GlobalConfig
	if err := json.Unmarshal([]byte(it.Document), &cfg); err != nil {
		return entities.GlobalConfig{}, false, err
	}
	return cfg, true, nil
}

func (r *CatalogDynamoRepository) Save(ctx context.Context, cfg entities.GlobalConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(catalogItem{
		ID:        globalConfigKey,
		Document:  string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
