package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTableAdmin struct {
	describeErr error
	created     *dynamodb.CreateTableInput
	ttl         *dynamodb.UpdateTimeToLiveInput
}

func (f *fakeTableAdmin) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

func (f *fakeTableAdmin) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = in
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeTableAdmin) UpdateTimeToLive(_ context.Context, in *dynamodb.UpdateTimeToLiveInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error) {
	f.ttl = in
	return &dynamodb.UpdateTimeToLiveOutput{}, nil
}

func TestEnsureSessionsTable(t *testing.T) {
	t.Run("existing table is left alone", func(t *testing.T) {
		api := &fakeTableAdmin{}
		if err := EnsureSessionsTable(context.Background(), api, "sessions"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.created != nil || api.ttl != nil {
			t.Fatalf("expected no changes")
		}
	})

	t.Run("missing table is created with ttl", func(t *testing.T) {
		api := &fakeTableAdmin{describeErr: &types.ResourceNotFoundException{Message: aws.String("missing")}}
		if err := EnsureSessionsTable(context.Background(), api, "sessions"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.created == nil || aws.ToString(api.created.TableName) != "sessions" {
			t.Fatalf("expected table to be created, got %+v", api.created)
		}
		if api.ttl == nil || aws.ToString(api.ttl.TimeToLiveSpecification.AttributeName) != "ttl" {
			t.Fatalf("expected ttl on attribute ttl, got %+v", api.ttl)
		}
	})

	t.Run("other describe errors propagate", func(t *testing.T) {
		api := &fakeTableAdmin{describeErr: errors.New("access denied")}
		if err := EnsureSessionsTable(context.Background(), api, "sessions"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
