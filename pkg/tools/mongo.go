package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/praxis-works/praxis/pkg/models"
)

const mongoMaxDocs = 100

// mongoBackend lazily connects to the attached MongoDB datasource.
type mongoBackend struct {
	binding   models.DatasourceBinding
	defaultDB string

	mu     sync.Mutex
	client *mongo.Client
}

func newMongoBackend(binding models.DatasourceBinding) *mongoBackend {
	defaultDB := ""
	if u, err := url.Parse(binding.ConnectionURL); err == nil {
		defaultDB = strings.TrimPrefix(u.Path, "/")
	}
	return &mongoBackend{binding: binding, defaultDB: defaultDB}
}

func (b *mongoBackend) collection(ctx context.Context, database, coll string) (*mongo.Collection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.client == nil {
		client, err := mongo.Connect(options.Client().ApplyURI(b.binding.ConnectionURL))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to datasource %s: %w", b.binding.Name, err)
		}
		b.client = client
	}
	if database == "" {
		database = b.defaultDB
	}
	if database == "" {
		return nil, fmt.Errorf("no database specified and the connection URL names none")
	}
	return b.client.Database(database).Collection(coll), nil
}

func (b *mongoBackend) database(ctx context.Context, database string) (*mongo.Database, error) {
	// collection("") would reject an empty name; reuse the connect path.
	coll, err := b.collection(ctx, database, "placeholder")
	if err != nil {
		return nil, err
	}
	return coll.Database(), nil
}

// Close disconnects the client if it was opened.
func (b *mongoBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.client != nil {
		_ = b.client.Disconnect(context.Background())
		b.client = nil
	}
}

func parseExtJSON(raw, what string) (bson.D, error) {
	if strings.TrimSpace(raw) == "" {
		return bson.D{}, nil
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON([]byte(raw), true, &doc); err != nil {
		return nil, fmt.Errorf("invalid %s document: %w", what, err)
	}
	return doc, nil
}

func renderDocs(ctx context.Context, cur *mongo.Cursor, limit int) (string, error) {
	defer cur.Close(ctx)
	var b strings.Builder
	count := 0
	for cur.Next(ctx) {
		if count >= limit {
			fmt.Fprintf(&b, "... (truncated at %d documents)\n", limit)
			break
		}
		data, err := bson.MarshalExtJSON(cur.Current, false, false)
		if err != nil {
			return "", fmt.Errorf("failed to render document: %w", err)
		}
		b.Write(data)
		b.WriteString("\n")
		count++
	}
	if err := cur.Err(); err != nil {
		return "", fmt.Errorf("cursor failed: %w", err)
	}
	fmt.Fprintf(&b, "(%d documents)\n", count)
	return b.String(), nil
}

// MongoTools exposes the attached MongoDB datasource. Write tools are
// omitted for read-only bindings.
func MongoTools(binding models.DatasourceBinding) ([]Tool, func()) {
	backend := newMongoBackend(binding)

	ts := []Tool{
		&funcTool{
			name:        "mongo_query",
			description: fmt.Sprintf("Find documents in MongoDB datasource %q using an extended-JSON filter.", binding.Name),
			category:    CategoryMongoDB,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "collection": {"type": "string", "minLength": 1, "description": "Collection name."},
    "filter": {"type": "string", "description": "Extended-JSON filter document (default {})."},
    "database": {"type": "string", "description": "Database name; defaults to the one in the connection URL."},
    "limit": {"type": "integer", "minimum": 1, "description": "Maximum documents (default 100)."}
  },
  "required": ["collection"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Collection string `json:"collection"`
					Filter     string `json:"filter"`
					Database   string `json:"database"`
					Limit      int    `json:"limit"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if in.Limit <= 0 || in.Limit > mongoMaxDocs {
					in.Limit = mongoMaxDocs
				}
				coll, err := backend.collection(ctx, in.Database, in.Collection)
				if err != nil {
					return "", err
				}
				filter, err := parseExtJSON(in.Filter, "filter")
				if err != nil {
					return "", err
				}
				cur, err := coll.Find(ctx, filter, options.Find().SetLimit(int64(in.Limit)+1))
				if err != nil {
					return "", fmt.Errorf("find failed: %w", err)
				}
				return renderDocs(ctx, cur, in.Limit)
			},
		},
		&funcTool{
			name:        "mongo_aggregate",
			description: fmt.Sprintf("Run an aggregation pipeline against MongoDB datasource %q.", binding.Name),
			category:    CategoryMongoDB,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "collection": {"type": "string", "minLength": 1, "description": "Collection name."},
    "pipeline": {"type": "string", "minLength": 1, "description": "Extended-JSON array of pipeline stages."},
    "database": {"type": "string", "description": "Database name; defaults to the one in the connection URL."}
  },
  "required": ["collection", "pipeline"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Collection string `json:"collection"`
					Pipeline   string `json:"pipeline"`
					Database   string `json:"database"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				coll, err := backend.collection(ctx, in.Database, in.Collection)
				if err != nil {
					return "", err
				}
				var pipeline []bson.D
				if err := bson.UnmarshalExtJSON([]byte(in.Pipeline), true, &pipeline); err != nil {
					return "", fmt.Errorf("invalid pipeline: %w", err)
				}
				cur, err := coll.Aggregate(ctx, pipeline)
				if err != nil {
					return "", fmt.Errorf("aggregation failed: %w", err)
				}
				return renderDocs(ctx, cur, mongoMaxDocs)
			},
		},
		&funcTool{
			name:        "mongo_schema",
			description: fmt.Sprintf("List collections of MongoDB datasource %q with a sample document each.", binding.Name),
			category:    CategoryMongoDB,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "database": {"type": "string", "description": "Database name; defaults to the one in the connection URL."}
  },
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Database string `json:"database"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				db, err := backend.database(ctx, in.Database)
				if err != nil {
					return "", err
				}
				names, err := db.ListCollectionNames(ctx, bson.D{})
				if err != nil {
					return "", fmt.Errorf("failed to list collections: %w", err)
				}
				var b strings.Builder
				for _, name := range names {
					fmt.Fprintf(&b, "## %s\n", name)
					var sample bson.D
					err := db.Collection(name).FindOne(ctx, bson.D{}).Decode(&sample)
					switch {
					case errors.Is(err, mongo.ErrNoDocuments):
						b.WriteString("(empty)\n")
					case err != nil:
						fmt.Fprintf(&b, "(sample failed: %v)\n", err)
					default:
						data, _ := bson.MarshalExtJSON(sample, false, false)
						b.Write(data)
						b.WriteString("\n")
					}
				}
				if len(names) == 0 {
					return "No collections.", nil
				}
				return b.String(), nil
			},
		},
	}

	if !binding.ReadOnly {
		ts = append(ts,
			&funcTool{
				name:        "mongo_insert",
				description: fmt.Sprintf("Insert a document into MongoDB datasource %q.", binding.Name),
				category:    CategoryMongoDB,
				phases:      PhaseBoth,
				writes:      true,
				schema: `{
  "type": "object",
  "properties": {
    "collection": {"type": "string", "minLength": 1, "description": "Collection name."},
    "document": {"type": "string", "minLength": 1, "description": "Extended-JSON document to insert."},
    "database": {"type": "string", "description": "Database name; defaults to the one in the connection URL."}
  },
  "required": ["collection", "document"],
  "additionalProperties": false
}`,
				fn: func(ctx context.Context, args json.RawMessage) (string, error) {
					var in struct {
						Collection string `json:"collection"`
						Document   string `json:"document"`
						Database   string `json:"database"`
					}
					if err := decode(args, &in); err != nil {
						return "", err
					}
					coll, err := backend.collection(ctx, in.Database, in.Collection)
					if err != nil {
						return "", err
					}
					doc, err := parseExtJSON(in.Document, "insert")
					if err != nil {
						return "", err
					}
					res, err := coll.InsertOne(ctx, doc)
					if err != nil {
						return "", fmt.Errorf("insert failed: %w", err)
					}
					return fmt.Sprintf("Inserted document with _id %v.", res.InsertedID), nil
				},
			},
			&funcTool{
				name:        "mongo_update",
				description: fmt.Sprintf("Update documents in MongoDB datasource %q matching a filter.", binding.Name),
				category:    CategoryMongoDB,
				phases:      PhaseBoth,
				writes:      true,
				schema: `{
  "type": "object",
  "properties": {
    "collection": {"type": "string", "minLength": 1, "description": "Collection name."},
    "filter": {"type": "string", "minLength": 1, "description": "Extended-JSON filter selecting documents."},
    "update": {"type": "string", "minLength": 1, "description": "Extended-JSON update document, e.g. {\"$set\": {...}}."},
    "database": {"type": "string", "description": "Database name; defaults to the one in the connection URL."}
  },
  "required": ["collection", "filter", "update"],
  "additionalProperties": false
}`,
				fn: func(ctx context.Context, args json.RawMessage) (string, error) {
					var in struct {
						Collection string `json:"collection"`
						Filter     string `json:"filter"`
						Update     string `json:"update"`
						Database   string `json:"database"`
					}
					if err := decode(args, &in); err != nil {
						return "", err
					}
					coll, err := backend.collection(ctx, in.Database, in.Collection)
					if err != nil {
						return "", err
					}
					filter, err := parseExtJSON(in.Filter, "filter")
					if err != nil {
						return "", err
					}
					update, err := parseExtJSON(in.Update, "update")
					if err != nil {
						return "", err
					}
					res, err := coll.UpdateMany(ctx, filter, update)
					if err != nil {
						return "", fmt.Errorf("update failed: %w", err)
					}
					return fmt.Sprintf("Matched %d, modified %d documents.", res.MatchedCount, res.ModifiedCount), nil
				},
			},
		)
	}

	return ts, backend.Close
}
