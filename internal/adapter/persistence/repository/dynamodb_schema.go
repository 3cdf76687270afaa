package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DynamoTableAPI interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// MigrateDynamoDB creates the task store tables with on-demand billing.
// Existing tables are left alone.
func MigrateDynamoDB(ctx context.Context, ddb DynamoTableAPI, tables DynamoTables) error {
	for _, in := range dynamoTableDefinitions(tables.withDefaults()) {
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		if err != nil && !errors.As(err, &inUse) {
			return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		}
	}
	return nil
}

func dynamoTableDefinitions(t DynamoTables) []*dynamodb.CreateTableInput {
	str := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
	}
	hash := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
	}
	rng := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeRange}
	}
	all := &types.Projection{ProjectionType: types.ProjectionTypeAll}

	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(t.Tasks),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{str("id"), str("operator_id")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(tasksOperatorIndex),
				KeySchema:  []types.KeySchemaElement{hash("operator_id")},
				Projection: all,
			}},
		},
		{
			TableName:            aws.String(t.Logs),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{str("task_id"), str("id")},
			KeySchema:            []types.KeySchemaElement{hash("task_id"), rng("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(logsIDIndex),
				KeySchema:  []types.KeySchemaElement{hash("id")},
				Projection: all,
			}},
		},
		{
			TableName:            aws.String(t.Locks),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{str("lock_key")},
			KeySchema:            []types.KeySchemaElement{hash("lock_key")},
		},
		{
			TableName:            aws.String(t.Audit),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{str("task_id"), str("id")},
			KeySchema:            []types.KeySchemaElement{hash("task_id"), rng("id")},
		},
		{
			TableName:            aws.String(t.Variants),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{str("id")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
		},
	}
}
