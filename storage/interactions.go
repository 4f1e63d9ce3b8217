package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
)

type InteractionStorage interface {
	Put(ctx context.Context, interaction *Interaction) error
	GetAll(ctx context.Context) ([]*Interaction, error)
}

type DynamoInteractionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoInteractionStorage) Put(ctx context.Context, interaction *Interaction) error {
	if interaction.Datetime.IsZero() {
		interaction.Datetime = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(interaction)
	if err != nil {
		logging.Log.Errorf("INTERACTION: failed to marshal interaction: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("INTERACTION: PUT storage failed: %v", err)
		return err
	}
	return nil
}

func (s *DynamoInteractionStorage) GetAll(ctx context.Context) ([]*Interaction, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("INTERACTION: scan failed: %v", err)
		return nil, err
	}

	var interactions []*Interaction
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &interactions); err != nil {
		logging.Log.Errorf("INTERACTION: failed to unmarshal list: %v", err)
		return nil, err
	}
	return interactions, nil
}
