package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the adapters use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// TaskDynamoRepository persists tasks in DynamoDB.
//
// Table requirements:
//   - tasks: PK id (string), GSI operator_id-index (PK operator_id)
//   - logs: PK task_id, SK id, GSI id-index (PK id)
//   - locks: PK lock_key
//   - audit: PK task_id, SK id
//
// Exclusivity is kept with lock items: making a task active puts
// operator#<id> and workstation#<id> conditionally, leaving active deletes
// them. Both happen in the same TransactWriteItems as the versioned task put.

type TaskDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb DynamoAPI, tables DynamoTables) *TaskDynamoRepository {
	return &TaskDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *TaskDynamoRepository) GetTask(ctx context.Context, id string) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Tasks),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, interfaces.ErrNotFound
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) GetActiveByOperator(ctx context.Context, operatorID string) (entities.Task, error) {
	return r.activeByLock(ctx, operatorLockKey(operatorID))
}

func (r *TaskDynamoRepository) GetActiveByWorkstation(ctx context.Context, workstationID string) (entities.Task, error) {
	return r.activeByLock(ctx, workstationLockKey(workstationID))
}

func (r *TaskDynamoRepository) ListByOperator(ctx context.Context, operatorID string) ([]entities.Task, error) {
	items, err := r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Tasks),
		IndexName:              aws.String(tasksOperatorIndex),
		KeyConditionExpression: aws.String("operator_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: operatorID},
		},
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.Task, 0, len(items))
	for _, raw := range items {
		var it taskItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		tasks = append(tasks, fromTaskItem(it))
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *TaskDynamoRepository) ListLogs(ctx context.Context, taskID string) ([]entities.IntervalLog, error) {
	items, err := r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Logs),
		KeyConditionExpression: aws.String("task_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: taskID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	logs := make([]entities.IntervalLog, 0, len(items))
	for _, raw := range items {
		var it logItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		logs = append(logs, fromLogItem(it))
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].StartedAt.Before(logs[j].StartedAt)
	})
	return logs, nil
}

// GetLog resolves the owning task through the id-index, then reads the log
// consistently from the base table.
func (r *TaskDynamoRepository) GetLog(ctx context.Context, logID string) (entities.IntervalLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Logs),
		IndexName:              aws.String(logsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: logID},
		},
	})
	if err != nil {
		return entities.IntervalLog{}, err
	}
	if len(out.Items) == 0 {
		return entities.IntervalLog{}, interfaces.ErrNotFound
	}
	var indexed logItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &indexed); err != nil {
		return entities.IntervalLog{}, err
	}

	got, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Logs),
		Key: map[string]types.AttributeValue{
			"task_id": &types.AttributeValueMemberS{Value: indexed.TaskID},
			"id":      &types.AttributeValueMemberS{Value: logID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IntervalLog{}, err
	}
	if len(got.Item) == 0 {
		return entities.IntervalLog{}, interfaces.ErrNotFound
	}
	var it logItem
	if err := attributevalue.UnmarshalMap(got.Item, &it); err != nil {
		return entities.IntervalLog{}, err
	}
	return fromLogItem(it), nil
}

func (r *TaskDynamoRepository) ListAudit(ctx context.Context, taskID string) ([]entities.AuditEntry, error) {
	items, err := r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Audit),
		KeyConditionExpression: aws.String("task_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: taskID},
		},
	})
	if err != nil {
		return nil, err
	}
	entries := make([]entities.AuditEntry, 0, len(items))
	for _, raw := range items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromAuditItem(it))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *TaskDynamoRepository) Commit(ctx context.Context, change interfaces.TaskChange) error {
	in, lockIdx, err := r.buildCommit(change)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, in)
	if err == nil {
		return nil
	}
	return r.translateCommitErr(ctx, err, change, lockIdx)
}

// buildCommit assembles the transaction. lockIdx lists the positions of
// conditional lock puts so a cancellation can be attributed.
func (r *TaskDynamoRepository) buildCommit(change interfaces.TaskChange) (*dynamodb.TransactWriteItemsInput, []int, error) {
	t := change.Task
	taskAV, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return nil, nil, err
	}

	taskPut := &types.Put{
		TableName: aws.String(r.tables.Tasks),
		Item:      taskAV,
	}
	if change.ExpectedVersion == 0 {
		taskPut.ConditionExpression = aws.String("attribute_not_exists(#id)")
		taskPut.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		taskPut.ConditionExpression = aws.String("#version = :expected")
		taskPut.ExpressionAttributeNames = map[string]string{"#version": "version"}
		taskPut.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", change.ExpectedVersion)},
		}
	}
	items := []types.TransactWriteItem{{Put: taskPut}}
	var lockIdx []int

	becomesActive := t.Status == entities.TaskStatusActive && (change.ExpectedVersion == 0 || change.PreviousStatus != entities.TaskStatusActive)
	leavesActive := t.Status != entities.TaskStatusActive && change.PreviousStatus == entities.TaskStatusActive

	lockKeys := []string{operatorLockKey(t.OperatorID), workstationLockKey(t.WorkstationID)}
	switch {
	case becomesActive:
		for _, key := range lockKeys {
			av, err := attributevalue.MarshalMap(newLockItem(key, t, t.UpdatedAt))
			if err != nil {
				return nil, nil, err
			}
			lockIdx = append(lockIdx, len(items))
			items = append(items, types.TransactWriteItem{Put: &types.Put{
				TableName:           aws.String(r.tables.Locks),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#lk) OR #tid = :tid"),
				ExpressionAttributeNames: map[string]string{
					"#lk":  "lock_key",
					"#tid": "task_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":tid": &types.AttributeValueMemberS{Value: t.ID},
				},
			}})
		}
	case leavesActive:
		for _, key := range lockKeys {
			items = append(items, types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(r.tables.Locks),
				Key: map[string]types.AttributeValue{
					"lock_key": &types.AttributeValueMemberS{Value: key},
				},
				ConditionExpression:      aws.String("attribute_not_exists(#lk) OR #tid = :tid"),
				ExpressionAttributeNames: map[string]string{"#lk": "lock_key", "#tid": "task_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":tid": &types.AttributeValueMemberS{Value: t.ID},
				},
			}})
		}
	}

	for _, l := range change.UpsertLogs {
		av, err := attributevalue.MarshalMap(toLogItem(t.ID, l))
		if err != nil {
			return nil, nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(r.tables.Logs),
			Item:      av,
		}})
	}
	for _, id := range change.DeleteLogIDs {
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.tables.Logs),
			Key: map[string]types.AttributeValue{
				"task_id": &types.AttributeValueMemberS{Value: t.ID},
				"id":      &types.AttributeValueMemberS{Value: id},
			},
		}})
	}
	if change.Audit != nil {
		av, err := attributevalue.MarshalMap(toAuditItem(t.ID, *change.Audit))
		if err != nil {
			return nil, nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(r.tables.Audit),
			Item:      av,
		}})
	}

	return &dynamodb.TransactWriteItemsInput{TransactItems: items}, lockIdx, nil
}

func (r *TaskDynamoRepository) translateCommitErr(ctx context.Context, err error, change interfaces.TaskChange, lockIdx []int) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		var conflict *types.TransactionConflictException
		if errors.As(err, &conflict) {
			return fmt.Errorf("task %s: %w", change.Task.ID, interfaces.ErrStaleTask)
		}
		return err
	}

	for i, reason := range tce.CancellationReasons {
		code := aws.ToString(reason.Code)
		switch code {
		case "TransactionConflict":
			return fmt.Errorf("task %s: %w", change.Task.ID, interfaces.ErrStaleTask)
		case "ConditionalCheckFailed":
		default:
			continue
		}
		if i == 0 {
			return fmt.Errorf("task %s: %w", change.Task.ID, interfaces.ErrStaleTask)
		}
		for j, idx := range lockIdx {
			if idx != i {
				continue
			}
			key := operatorLockKey(change.Task.OperatorID)
			if j == 1 {
				key = workstationLockKey(change.Task.WorkstationID)
			}
			if holder, lerr := r.getLock(ctx, key); lerr == nil {
				return &interfaces.ExclusivityViolation{TaskID: holder.TaskID, OperatorID: holder.OperatorID, WorkstationID: holder.WorkstationID}
			}
			return fmt.Errorf("task %s: %w", change.Task.ID, interfaces.ErrExclusivity)
		}
	}
	return err
}

func (r *TaskDynamoRepository) activeByLock(ctx context.Context, key string) (entities.Task, error) {
	lock, err := r.getLock(ctx, key)
	if err != nil {
		return entities.Task{}, err
	}
	t, err := r.GetTask(ctx, lock.TaskID)
	if err != nil {
		return entities.Task{}, err
	}
	if t.Status != entities.TaskStatusActive {
		return entities.Task{}, interfaces.ErrNotFound
	}
	return t, nil
}

func (r *TaskDynamoRepository) getLock(ctx context.Context, key string) (lockItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Locks),
		Key: map[string]types.AttributeValue{
			"lock_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return lockItem{}, err
	}
	if len(out.Item) == 0 {
		return lockItem{}, interfaces.ErrNotFound
	}
	var it lockItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return lockItem{}, err
	}
	return it, nil
}

func (r *TaskDynamoRepository) queryAll(ctx context.Context, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
