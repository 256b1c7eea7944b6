// Package store adapts the MongoDB collections to the reader interfaces
// the analytics engine consumes.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fluxcrm/internal/analytics"
	"fluxcrm/internal/registry"
	"fluxcrm/models"
)

// LeadStore reads the leads collection.
type LeadStore struct {
	coll *mongo.Collection
}

func NewLeadStore(db *mongo.Database) *LeadStore {
	return &LeadStore{coll: db.Collection("leads")}
}

func leadQuery(f analytics.LeadFilter) bson.M {
	q := bson.M{}
	if f.Stage != "" {
		q["stage"] = f.Stage
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.OrgIDs != nil {
		q["organization_id"] = bson.M{"$in": f.OrgIDs}
	}
	return q
}

func (s *LeadStore) Count(ctx context.Context, f analytics.LeadFilter) (int64, error) {
	return s.coll.CountDocuments(ctx, leadQuery(f))
}

func (s *LeadStore) Find(ctx context.Context, f analytics.LeadFilter) ([]models.Lead, error) {
	cursor, err := s.coll.Find(ctx, leadQuery(f))
	if err != nil {
		return nil, err
	}
	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// OrganizationStore reads the organizations collection.
type OrganizationStore struct {
	coll *mongo.Collection
}

func NewOrganizationStore(db *mongo.Database) *OrganizationStore {
	return &OrganizationStore{coll: db.Collection("organizations")}
}

func orgQuery(f analytics.OrganizationFilter) bson.M {
	q := bson.M{}
	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.State != "" {
		q["state"] = f.State
	}
	return q
}

func (s *OrganizationStore) Count(ctx context.Context, f analytics.OrganizationFilter) (int64, error) {
	return s.coll.CountDocuments(ctx, orgQuery(f))
}

func (s *OrganizationStore) IDs(ctx context.Context, f analytics.OrganizationFilter) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"id": 1, "_id": 0})
	cursor, err := s.coll.Find(ctx, orgQuery(f), opts)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// StageLabels lists the merged stage names: built-in stages plus the
// lead_stages collection, read fresh on every call.
type StageLabels struct {
	coll *mongo.Collection
}

func NewStageLabels(db *mongo.Database) *StageLabels {
	return &StageLabels{coll: db.Collection("lead_stages")}
}

func (s *StageLabels) Names(ctx context.Context) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var custom []models.LeadStage
	if err := cursor.All(ctx, &custom); err != nil {
		return nil, err
	}
	merged := registry.MergeLeadStages(models.DefaultLeadStages, custom)
	names := make([]string, 0, len(merged))
	for _, stage := range merged {
		names = append(names, stage.Name)
	}
	return names, nil
}

// TypeLabels lists the merged organization-type names: built-in types plus
// the org_types collection, read fresh on every call.
type TypeLabels struct {
	coll *mongo.Collection
}

func NewTypeLabels(db *mongo.Database) *TypeLabels {
	return &TypeLabels{coll: db.Collection("org_types")}
}

func (s *TypeLabels) Names(ctx context.Context) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var custom []models.OrgType
	if err := cursor.All(ctx, &custom); err != nil {
		return nil, err
	}
	merged := registry.MergeOrgTypes(models.DefaultOrgTypes, custom)
	names := make([]string, 0, len(merged))
	for _, orgType := range merged {
		names = append(names, orgType.Name)
	}
	return names, nil
}
