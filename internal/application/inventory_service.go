package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
	"github.com/FahadAljabr/arms/internal/ports"
)

// InventoryService handles the business logic for spare-part stock
type InventoryService struct {
	partRepo ports.SparePartRepository
}

// NewInventoryService creates a new InventoryService instance
func NewInventoryService(partRepo ports.SparePartRepository) *InventoryService {
	return &InventoryService{
		partRepo: partRepo,
	}
}

// CreatePart registers a new spare part in the inventory
func (s *InventoryService) CreatePart(ctx context.Context, partName, partNumber, unit string, unitCost *float64, reorderThreshold, quantityOnHand int) (*domain.SparePart, error) {
	if partName == "" {
		return nil, errors.New("part name is required")
	}
	if reorderThreshold < 0 {
		return nil, errors.New("reorder threshold cannot be negative")
	}
	if quantityOnHand < 0 {
		return nil, errors.New("quantity on hand cannot be negative")
	}

	now := time.Now()
	part := &domain.SparePart{
		ID:               uuid.New(),
		PartName:         partName,
		PartNumber:       partNumber,
		Unit:             unit,
		UnitCost:         unitCost,
		ReorderThreshold: reorderThreshold,
		QuantityOnHand:   quantityOnHand,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.partRepo.Save(ctx, part); err != nil {
		return nil, err
	}

	return part, nil
}

// UpdatePart applies mutable part fields; nil leaves a field unchanged
func (s *InventoryService) UpdatePart(ctx context.Context, partID uuid.UUID, partName, partNumber, unit *string, unitCost *float64, reorderThreshold *int) (*domain.SparePart, error) {
	part, err := s.partRepo.FindByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	if partName != nil {
		part.PartName = *partName
	}
	if partNumber != nil {
		part.PartNumber = *partNumber
	}
	if unit != nil {
		part.Unit = *unit
	}
	if unitCost != nil {
		part.UnitCost = unitCost
	}
	if reorderThreshold != nil {
		if *reorderThreshold < 0 {
			return nil, errors.New("reorder threshold cannot be negative")
		}
		part.ReorderThreshold = *reorderThreshold
	}
	part.UpdatedAt = time.Now()

	if err := s.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	return part, nil
}

// AdjustStock moves the on-hand quantity by delta; stock never drops below zero
func (s *InventoryService) AdjustStock(ctx context.Context, partID uuid.UUID, delta int) (*domain.SparePart, error) {
	part, err := s.partRepo.FindByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	if part.QuantityOnHand+delta < 0 {
		return nil, errors.New("insufficient stock")
	}
	part.QuantityOnHand += delta
	part.UpdatedAt = time.Now()

	if err := s.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	return part, nil
}

// GetPartByID fetches a spare part by ID
func (s *InventoryService) GetPartByID(ctx context.Context, partID uuid.UUID) (*domain.SparePart, error) {
	return s.partRepo.FindByID(ctx, partID)
}

// ListParts fetches all spare parts
func (s *InventoryService) ListParts(ctx context.Context) ([]*domain.SparePart, error) {
	return s.partRepo.FindAll(ctx)
}

// DeletePart removes a spare part from the inventory
func (s *InventoryService) DeletePart(ctx context.Context, partID uuid.UUID) error {
	return s.partRepo.Delete(ctx, partID)
}
