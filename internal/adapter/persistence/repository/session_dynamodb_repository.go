package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultSessionsTableName = "sessions"

var ErrSessionAlreadyExists = errors.New("session already exists")

// SessionTableAPI is the subset of *dynamodb.Client the session repository uses.
type SessionTableAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type sessionItem struct {
	ID          string `dynamodbav:"id"`
	Token       string `dynamodbav:"token"`
	Role        string `dynamodbav:"role"`
	ActorID     string `dynamodbav:"actor_id"`
	DisplayName string `dynamodbav:"display_name,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	ExpiresAt   string `dynamodbav:"expires_at"`
	TTL         int64  `dynamodbav:"ttl,omitempty"`
}

// SessionDynamoRepository persists Session entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL enabled on attribute "ttl" (epoch seconds)
type SessionDynamoRepository struct {
	ddb       SessionTableAPI
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb SessionTableAPI, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = DefaultSessionsTableName
	}
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.Session{}, err
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
			return entities.Session{}, fmt.Errorf("%w: %s", ErrSessionAlreadyExists, s.ID)
		}
		log.Printf("[session][repository] put failed session_id=%s err=%v", s.ID, err)
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Printf("[session][repository] get failed session_id=%s err=%v", id, err)
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

// Delete is idempotent: deleting a missing session is not an error.
func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		log.Printf("[session][repository] delete failed session_id=%s err=%v", id, err)
	}
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	it := sessionItem{
		ID:          s.ID,
		Token:       s.Token,
		Role:        string(s.Role),
		ActorID:     s.ActorID,
		DisplayName: s.DisplayName,
		CreatedAt:   formatTime(s.CreatedAt),
		ExpiresAt:   formatTime(s.ExpiresAt),
	}
	if !s.ExpiresAt.IsZero() {
		it.TTL = s.ExpiresAt.Unix()
	}
	return it
}

// fromSessionItem maps a stored item back to a session. An unreadable expires_at
// yields a session that is already expired.
func fromSessionItem(it sessionItem) entities.Session {
	s := entities.Session{
		ID:          it.ID,
		Token:       it.Token,
		Role:        entities.Role(it.Role),
		ActorID:     it.ActorID,
		DisplayName: it.DisplayName,
	}
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		log.Printf("[session][repository] invalid created_at session_id=%s err=%v", it.ID, err)
	}
	s.CreatedAt = createdAt

	expiresAt, err := parseTime(it.ExpiresAt)
	if err != nil {
		log.Printf("[session][repository] invalid expires_at, treating as expired session_id=%s err=%v", it.ID, err)
		expiresAt = time.Unix(0, 0).UTC()
	}
	s.ExpiresAt = expiresAt
	return s
}
