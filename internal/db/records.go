package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexbilevskiy/tdapi/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record is a TDJSON object kept in the journal. Payload holds its wire form.
type Record struct {
	Id          string
	Constructor string
	Class       string
	Extra       string
	ClientId    int32
	ReceivedAt  time.Time
	Payload     []byte
}

type recordDoc struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	Constructor string             `bson:"constructor"`
	Class       string             `bson:"class"`
	Extra       string             `bson:"extra"`
	ClientId    int32              `bson:"clientid"`
	ReceivedAt  time.Time          `bson:"receivedat"`
	Payload     bson.Raw           `bson:"payload"`
}

type RecordsStorage struct {
	recordsColl *mongo.Collection
}

func NewRecordsStorage(cfg *config.Config, dbClient *mongo.Client) *RecordsStorage {
	return &RecordsStorage{
		recordsColl: dbClient.Database(cfg.Mongo["db"]).Collection("records"),
	}
}

func (rs *RecordsStorage) EnsureIndexes(ctx context.Context) error {
	mctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := rs.recordsColl.Indexes().CreateOne(mctx, mongo.IndexModel{
		Keys: bson.D{{Key: "extra", Value: 1}, {Key: "receivedat", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create records index: %w", err)
	}

	return nil
}

// Append stores rec and returns the id assigned to it. A zero ReceivedAt is
// set to the current time.
func (rs *RecordsStorage) Append(ctx context.Context, rec *Record) (string, error) {
	doc, err := toDoc(rec)
	if err != nil {
		return "", err
	}
	mctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	res, err := rs.recordsColl.InsertOne(mctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert record %s: %w", rec.Constructor, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id %T", res.InsertedID)
	}
	rec.Id = oid.Hex()
	rec.ReceivedAt = doc.ReceivedAt

	return rec.Id, nil
}

// FindByExtra returns records sharing extra, oldest first.
func (rs *RecordsStorage) FindByExtra(ctx context.Context, extra string) ([]*Record, error) {
	if extra == "" {
		return nil, errors.New("empty extra")
	}
	mctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "receivedat", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := rs.recordsColl.Find(mctx, bson.D{{Key: "extra", Value: extra}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	var docs []recordDoc
	if err := cur.All(mctx, &docs); err != nil {
		return nil, fmt.Errorf("find records cursor: %w", err)
	}

	records := make([]*Record, 0, len(docs))
	for i := range docs {
		rec, err := fromDoc(&docs[i])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func toDoc(rec *Record) (*recordDoc, error) {
	payload, err := payloadToBSON(rec.Payload)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", rec.Constructor, err)
	}
	doc := &recordDoc{
		Constructor: rec.Constructor,
		Class:       rec.Class,
		Extra:       rec.Extra,
		ClientId:    rec.ClientId,
		ReceivedAt:  rec.ReceivedAt,
		Payload:     payload,
	}
	if rec.Id != "" {
		doc.Id, err = primitive.ObjectIDFromHex(rec.Id)
		if err != nil {
			return nil, fmt.Errorf("record id: %w", err)
		}
	}
	if doc.ReceivedAt.IsZero() {
		doc.ReceivedAt = time.Now()
	}
	// mongo keeps milliseconds
	doc.ReceivedAt = doc.ReceivedAt.UTC().Truncate(time.Millisecond)

	return doc, nil
}

func fromDoc(doc *recordDoc) (*Record, error) {
	payload, err := payloadFromBSON(doc.Payload)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", doc.Id.Hex(), err)
	}

	return &Record{
		Id:          doc.Id.Hex(),
		Constructor: doc.Constructor,
		Class:       doc.Class,
		Extra:       doc.Extra,
		ClientId:    doc.ClientId,
		ReceivedAt:  doc.ReceivedAt.UTC(),
		Payload:     payload,
	}, nil
}

func payloadToBSON(data []byte) (bson.Raw, error) {
	var raw bson.Raw
	if err := bson.UnmarshalExtJSON(data, false, &raw); err != nil {
		return nil, fmt.Errorf("payload to bson: %w", err)
	}

	return raw, nil
}

func payloadFromBSON(raw bson.Raw) ([]byte, error) {
	data, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, fmt.Errorf("payload from bson: %w", err)
	}

	return data, nil
}
