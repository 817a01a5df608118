package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
)

// In-memory repository fakes shared by the service tests

type fakeAssetRepo struct {
	assets map[uuid.UUID]*domain.Asset
}

func newFakeAssetRepo(assets ...*domain.Asset) *fakeAssetRepo {
	r := &fakeAssetRepo{assets: make(map[uuid.UUID]*domain.Asset)}
	for _, a := range assets {
		r.assets[a.ID] = a
	}
	return r
}

func (r *fakeAssetRepo) Save(_ context.Context, asset *domain.Asset) error {
	r.assets[asset.ID] = asset
	return nil
}

func (r *fakeAssetRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Asset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return nil, errors.New("asset not found")
	}
	return asset, nil
}

func (r *fakeAssetRepo) FindAll(_ context.Context, filters map[string]interface{}) ([]*domain.Asset, error) {
	var out []*domain.Asset
	for _, a := range r.assets {
		if uid, ok := filters["asset_uid"]; ok && a.AssetUID != uid {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAssetRepo) Update(_ context.Context, asset *domain.Asset) error {
	if _, ok := r.assets[asset.ID]; !ok {
		return errors.New("asset not found")
	}
	r.assets[asset.ID] = asset
	return nil
}

func (r *fakeAssetRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.assets[id]; !ok {
		return errors.New("asset not found")
	}
	delete(r.assets, id)
	return nil
}

type fakePlanRepo struct {
	plans map[uuid.UUID]*domain.MaintenancePlan
}

func newFakePlanRepo(plans ...*domain.MaintenancePlan) *fakePlanRepo {
	r := &fakePlanRepo{plans: make(map[uuid.UUID]*domain.MaintenancePlan)}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) Save(_ context.Context, plan *domain.MaintenancePlan) error {
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.MaintenancePlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, errors.New("maintenance plan not found")
	}
	return plan, nil
}

func (r *fakePlanRepo) FindByAssetID(_ context.Context, assetID uuid.UUID) (*domain.MaintenancePlan, error) {
	for _, p := range r.plans {
		if p.AssetID == assetID {
			return p, nil
		}
	}
	return nil, errors.New("maintenance plan not found")
}

func (r *fakePlanRepo) FindAll(_ context.Context) ([]*domain.MaintenancePlan, error) {
	var out []*domain.MaintenancePlan
	for _, p := range r.plans {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *domain.MaintenancePlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return errors.New("maintenance plan not found")
	}
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.plans[id]; !ok {
		return errors.New("maintenance plan not found")
	}
	delete(r.plans, id)
	return nil
}

type fakeRecordRepo struct {
	records map[uuid.UUID]*domain.MaintenanceRecord
	parts   []*domain.RecordPart
}

func newFakeRecordRepo(records ...*domain.MaintenanceRecord) *fakeRecordRepo {
	r := &fakeRecordRepo{records: make(map[uuid.UUID]*domain.MaintenanceRecord)}
	for _, rec := range records {
		r.records[rec.ID] = rec
	}
	return r
}

func (r *fakeRecordRepo) Save(_ context.Context, record *domain.MaintenanceRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.MaintenanceRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, errors.New("maintenance record not found")
	}
	return record, nil
}

func (r *fakeRecordRepo) FindByAssetID(_ context.Context, assetID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	var out []*domain.MaintenanceRecord
	for _, rec := range r.records {
		if rec.AssetID == assetID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) FindAll(_ context.Context, _ map[string]interface{}) ([]*domain.MaintenanceRecord, error) {
	var out []*domain.MaintenanceRecord
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeRecordRepo) Update(_ context.Context, record *domain.MaintenanceRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return errors.New("maintenance record not found")
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return errors.New("maintenance record not found")
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRecordRepo) AddRecordPart(_ context.Context, part *domain.RecordPart) error {
	r.parts = append(r.parts, part)
	return nil
}

func (r *fakeRecordRepo) FindRecordParts(_ context.Context, recordID uuid.UUID) ([]*domain.RecordPart, error) {
	var out []*domain.RecordPart
	for _, p := range r.parts {
		if p.RecordID == recordID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePartRepo struct {
	parts map[uuid.UUID]*domain.SparePart
}

func newFakePartRepo(parts ...*domain.SparePart) *fakePartRepo {
	r := &fakePartRepo{parts: make(map[uuid.UUID]*domain.SparePart)}
	for _, p := range parts {
		r.parts[p.ID] = p
	}
	return r
}

func (r *fakePartRepo) Save(_ context.Context, part *domain.SparePart) error {
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.SparePart, error) {
	part, ok := r.parts[id]
	if !ok {
		return nil, errors.New("spare part not found")
	}
	return part, nil
}

func (r *fakePartRepo) FindAll(_ context.Context) ([]*domain.SparePart, error) {
	var out []*domain.SparePart
	for _, p := range r.parts {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartRepo) Update(_ context.Context, part *domain.SparePart) error {
	if _, ok := r.parts[part.ID]; !ok {
		return errors.New("spare part not found")
	}
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.parts[id]; !ok {
		return errors.New("spare part not found")
	}
	delete(r.parts, id)
	return nil
}
