package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "estimation_projects"

var ErrProjectAlreadyExists = errors.New("project already exists")

type projectItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Client    string `dynamodbav:"client,omitempty"`
	Document  string `dynamodbav:"document"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists project documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The document is stored as one JSON payload so blocks this core treats as
// opaque (versions, future UI-owned fields) survive a load/save cycle
// byte-for-byte. Name and timestamps are duplicated as top-level
// attributes to keep listing cheap.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, doc entities.ProjectDocument) (entities.ProjectDocument, error) {
	av, err := marshalProjectItem(doc)
	if err != nil {
		return entities.ProjectDocument{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ProjectDocument{}, ErrProjectAlreadyExists
		}
		return entities.ProjectDocument{}, err
	}
	return doc, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProjectDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProjectDocument{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProjectDocument{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProjectDocument{}, err
	}

	var doc entities.ProjectDocument
	if err := json.Unmarshal([]byte(it.Document), &doc); err != nil {
		return entities.ProjectDocument{}, err
	}
	return doc, nil
}

func (r *ProjectDynamoRepository) Save(ctx context.Context, doc entities.ProjectDocument) (entities.ProjectDocument, error) {
	av, err := marshalProjectItem(doc)
	if err != nil {
		return entities.ProjectDocument{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ProjectDocument{}, err
	}
	return doc, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.ProjectInfo, error) {
	projects := []entities.ProjectInfo{}

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("id, #name, #client, created_at, updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#name":   "name",
			"#client": "client",
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
			updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
			projects = append(projects, entities.ProjectInfo{
				ID:        it.ID,
				Name:      it.Name,
				Client:    it.Client,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			})
		}
	}
	return projects, nil
}

func marshalProjectItem(doc entities.ProjectDocument) (map[string]types.AttributeValue, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(projectItem{
		ID:        doc.Project.ID,
		Name:      doc.Project.Name,
		Client:    doc.Project.Client,
		Document:  string(payload),
		CreatedAt: doc.Project.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: doc.Project.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
}
