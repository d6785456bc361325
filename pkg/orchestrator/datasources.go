package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/pkg/models"
)

// datasourceCategories maps a datasource type to the tool category it
// injects and the read/write tool names within it.
var datasourceCategories = map[string]struct {
	category string
	read     []string
	write    []string
}{
	"postgresql": {
		category: "sql",
		read:     []string{"sql_query", "sql_schema"},
		write:    []string{"sql_execute"},
	},
	"mongodb": {
		category: "mongodb",
		read:     []string{"mongo_query", "mongo_aggregate", "mongo_schema"},
		write:    []string{"mongo_insert", "mongo_update"},
	},
	"neo4j": {
		category: "graph",
		read:     []string{"execute_cypher_query", "get_database_schema"},
		write:    []string{"cypher_write"},
	},
}

// DatasourceRequest is the POST/PUT /datasources body.
type DatasourceRequest struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	ConnectionURL string         `json:"connection_url"`
	Credentials   map[string]any `json:"credentials,omitempty"`
	ReadOnly      bool           `json:"read_only"`
	JobID         string         `json:"job_id,omitempty"`
}

// DatasourceService manages external database bindings: CRUD, per-job
// resolution, and the tool override applied to resolved configs.
type DatasourceService struct {
	client *ent.Client
}

// NewDatasourceService creates a new DatasourceService.
func NewDatasourceService(client *ent.Client) *DatasourceService {
	return &DatasourceService{client: client}
}

// Create persists a datasource. An empty JobID makes it global; at most one
// datasource may exist per (type, scope).
func (s *DatasourceService) Create(ctx context.Context, req DatasourceRequest) (*ent.Datasource, error) {
	if err := validateDatasourceRequest(req); err != nil {
		return nil, err
	}

	scope := datasource.ScopeGlobal
	scopeKey := "global"
	if req.JobID != "" {
		scope = datasource.ScopeJob
		scopeKey = req.JobID
	}

	builder := s.client.Datasource.Create().
		SetID(uuid.New().String()).
		SetType(datasource.Type(req.Type)).
		SetName(req.Name).
		SetDescription(req.Description).
		SetConnectionURL(req.ConnectionURL).
		SetReadOnly(req.ReadOnly).
		SetScope(scope).
		SetScopeKey(scopeKey)
	if req.Credentials != nil {
		builder.SetCredentials(req.Credentials)
	}
	if req.JobID != "" {
		builder.SetJobID(req.JobID)
	}

	ds, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: a %s datasource already exists for this scope", ErrAlreadyExists, req.Type)
		}
		return nil, fmt.Errorf("failed to create datasource: %w", err)
	}
	slog.Info("Datasource created", "datasource_id", ds.ID, "type", ds.Type, "scope", ds.Scope)
	return ds, nil
}

// Get returns a datasource by id.
func (s *DatasourceService) Get(ctx context.Context, id string) (*ent.Datasource, error) {
	ds, err := s.client.Datasource.Query().Where(datasource.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: datasource %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load datasource: %w", err)
	}
	return ds, nil
}

// List returns all datasources, global first.
func (s *DatasourceService) List(ctx context.Context) ([]*ent.Datasource, error) {
	out, err := s.client.Datasource.Query().
		Order(ent.Asc(datasource.FieldScope), ent.Asc(datasource.FieldType)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasources: %w", err)
	}
	return out, nil
}

// Update replaces the mutable fields of a datasource.
func (s *DatasourceService) Update(ctx context.Context, id string, req DatasourceRequest) (*ent.Datasource, error) {
	if err := validateDatasourceRequest(req); err != nil {
		return nil, err
	}
	update := s.client.Datasource.UpdateOneID(id).
		SetName(req.Name).
		SetDescription(req.Description).
		SetConnectionURL(req.ConnectionURL).
		SetReadOnly(req.ReadOnly)
	if req.Credentials != nil {
		update.SetCredentials(req.Credentials)
	}
	ds, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: datasource %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to update datasource: %w", err)
	}
	return ds, nil
}

// Delete removes a datasource.
func (s *DatasourceService) Delete(ctx context.Context, id string) error {
	err := s.client.Datasource.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: datasource %s", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete datasource: %w", err)
	}
	return nil
}

// ResolveForJob selects the effective datasource per type: the job-scoped
// one when present, else the global one. At most one binding per type.
func (s *DatasourceService) ResolveForJob(ctx context.Context, jobID string) ([]models.DatasourceBinding, error) {
	rows, err := s.client.Datasource.Query().
		Where(datasource.ScopeKeyIn("global", jobID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve datasources: %w", err)
	}

	byType := make(map[string]*ent.Datasource)
	for _, ds := range rows {
		existing, ok := byType[string(ds.Type)]
		if !ok || (existing.ScopeKey == "global" && ds.ScopeKey == jobID) {
			byType[string(ds.Type)] = ds
		}
	}

	var out []models.DatasourceBinding
	for _, ds := range byType {
		out = append(out, models.DatasourceBinding{
			ID:            ds.ID,
			Type:          string(ds.Type),
			Name:          ds.Name,
			Description:   ds.Description,
			ConnectionURL: ds.ConnectionURL,
			Credentials:   ds.Credentials,
			ReadOnly:      ds.ReadOnly,
		})
	}
	return out, nil
}

// ApplyToolOverride rewrites tools.categories in a resolved config map so
// the tool surface matches the attached datasources exactly: attached types
// get their category (write tools stripped when read_only), unattached
// types lose theirs no matter what the expert config said. Arrays replace
// entirely, so the category lists never partially merge.
func ApplyToolOverride(resolved map[string]any, bindings []models.DatasourceBinding) {
	toolsMap, ok := resolved["tools"].(map[string]any)
	if !ok {
		toolsMap = map[string]any{}
		resolved["tools"] = toolsMap
	}
	categories, ok := toolsMap["categories"].(map[string]any)
	if !ok {
		categories = map[string]any{}
		toolsMap["categories"] = categories
	}

	attached := make(map[string]models.DatasourceBinding, len(bindings))
	for _, b := range bindings {
		attached[b.Type] = b
	}

	for dsType, spec := range datasourceCategories {
		binding, ok := attached[dsType]
		if !ok {
			delete(categories, spec.category)
			continue
		}
		names := make([]any, 0, len(spec.read)+len(spec.write))
		for _, n := range spec.read {
			names = append(names, n)
		}
		if !binding.ReadOnly {
			for _, n := range spec.write {
				names = append(names, n)
			}
		}
		categories[spec.category] = names
	}
}

// SeedDefaultsFromEnv creates global datasources from DEFAULT_DS_* env
// variables when no global datasource of that type exists yet.
func (s *DatasourceService) SeedDefaultsFromEnv(ctx context.Context) error {
	for _, dsType := range []string{"postgresql", "neo4j", "mongodb"} {
		prefix := "DEFAULT_DS_" + strings.ToUpper(dsType) + "_"
		url := os.Getenv(prefix + "URL")
		if url == "" {
			continue
		}

		exists, err := s.client.Datasource.Query().
			Where(datasource.TypeEQ(datasource.Type(dsType)), datasource.ScopeKeyEQ("global")).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing %s datasource: %w", dsType, err)
		}
		if exists {
			continue
		}

		name := os.Getenv(prefix + "NAME")
		if name == "" {
			name = "default-" + dsType
		}
		req := DatasourceRequest{
			Type:          dsType,
			Name:          name,
			ConnectionURL: url,
			ReadOnly:      os.Getenv(prefix+"READ_ONLY") == "true",
		}
		if dsType == "neo4j" {
			user := os.Getenv(prefix + "USERNAME")
			pass := os.Getenv(prefix + "PASSWORD")
			if user != "" {
				req.Credentials = map[string]any{"username": user, "password": pass}
			}
		}
		if _, err := s.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed default %s datasource: %w", dsType, err)
		}
		slog.Info("Seeded default datasource from environment", "type", dsType, "name", name)
	}
	return nil
}

func validateDatasourceRequest(req DatasourceRequest) error {
	if _, ok := datasourceCategories[req.Type]; !ok {
		return NewValidationError("type", fmt.Sprintf("must be one of postgresql, neo4j, mongodb; got %q", req.Type))
	}
	if req.Name == "" {
		return NewValidationError("name", "required")
	}
	if req.ConnectionURL == "" {
		return NewValidationError("connection_url", "required")
	}
	return nil
}
