package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
)

type ElderStorage interface {
	Get(ctx context.Context, id int) (*CouncilElder, error)
	GetAll(ctx context.Context) ([]*CouncilElder, error)
	IncrementPoints(ctx context.Context, id int, name string) (*CouncilElder, error)
}

type DynamoElderStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoElderStorage) Get(ctx context.Context, id int) (*CouncilElder, error) {
	key, err := attributevalue.MarshalMap(map[string]int{"PK": id})
	if err != nil {
		logging.Log.Errorf("ELDER: failed to marshal key for ID %d: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("ELDER: GetItem for ID %d failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrElderNotFound
	}

	var elder CouncilElder
	if err := attributevalue.UnmarshalMap(out.Item, &elder); err != nil {
		logging.Log.Errorf("ELDER: failed to unmarshal elder: %v", err)
		return nil, err
	}
	return &elder, nil
}

func (s *DynamoElderStorage) GetAll(ctx context.Context) ([]*CouncilElder, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("ELDER: scan failed: %v", err)
		return nil, err
	}

	var elders []*CouncilElder
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &elders); err != nil {
		logging.Log.Errorf("ELDER: failed to unmarshal elder list: %v", err)
		return nil, err
	}
	return elders, nil
}

// IncrementPoints adds one point to the elder's row, creating it on a first
// win. A single UpdateItem keeps concurrent debates naming the same winner
// from losing updates.
func (s *DynamoElderStorage) IncrementPoints(ctx context.Context, id int, name string) (*CouncilElder, error) {
	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		UpdateExpression: aws.String("SET #n = :name, LastWin = :win ADD Points :inc"),
		ExpressionAttributeNames: map[string]string{
			"#n": "Name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
			":win":  &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			":inc":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		logging.Log.Errorf("ELDER: failed to increment points for ID %d: %v", id, err)
		return nil, err
	}

	var elder CouncilElder
	if err := attributevalue.UnmarshalMap(out.Attributes, &elder); err != nil {
		logging.Log.Errorf("ELDER: failed to unmarshal updated elder: %v", err)
		return nil, err
	}
	logging.Log.Infof("ELDER: %s now has %d points", elder.Name, elder.Points)
	return &elder, nil
}
