package repository

import (
	"context"
	"sort"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// VariantDynamoRepository reads the variant catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small, so ListByWorkstation scans with a contains() filter.
// Variants without workstations match every workstation.

type VariantDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVariantRepository = (*VariantDynamoRepository)(nil)

func NewVariantDynamoRepository(ddb DynamoAPI, tables DynamoTables) *VariantDynamoRepository {
	return &VariantDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Variants}
}

func (r *VariantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Variant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Variant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Variant{}, interfaces.ErrNotFound
	}
	var it variantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Variant{}, err
	}
	return fromVariantItem(it), nil
}

func (r *VariantDynamoRepository) ListByWorkstation(ctx context.Context, workstationID string) ([]entities.Variant, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_not_exists(#ws) OR size(#ws) = :zero OR contains(#ws, :ws)"),
		ExpressionAttributeNames: map[string]string{
			"#ws": "workstation_ids",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ws":   &types.AttributeValueMemberS{Value: workstationID},
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	}

	variants := make([]entities.Variant, 0)
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it variantItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			variants = append(variants, fromVariantItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(variants, func(i, j int) bool {
		if variants[i].ProductName != variants[j].ProductName {
			return variants[i].ProductName < variants[j].ProductName
		}
		return variants[i].Name < variants[j].Name
	})
	return variants, nil
}

func (r *VariantDynamoRepository) Upsert(ctx context.Context, v entities.Variant) error {
	av, err := attributevalue.MarshalMap(toVariantItem(v))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
