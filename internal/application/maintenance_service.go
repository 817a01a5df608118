package application

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
	"github.com/FahadAljabr/arms/internal/ports"
)

// MaintenanceService handles the business logic for maintenance records,
// plans, consumed parts and record attachments
type MaintenanceService struct {
	recordRepo ports.MaintenanceRecordRepository
	planRepo   ports.MaintenancePlanRepository
	assetRepo  ports.AssetRepository
	partRepo   ports.SparePartRepository
	storage    ports.AttachmentStorage
}

// NewMaintenanceService creates a new MaintenanceService instance
func NewMaintenanceService(
	recordRepo ports.MaintenanceRecordRepository,
	planRepo ports.MaintenancePlanRepository,
	assetRepo ports.AssetRepository,
	partRepo ports.SparePartRepository,
	storage ports.AttachmentStorage,
) *MaintenanceService {
	return &MaintenanceService{
		recordRepo: recordRepo,
		planRepo:   planRepo,
		assetRepo:  assetRepo,
		partRepo:   partRepo,
		storage:    storage,
	}
}

// OpenRecordInput carries the fields accepted when opening a record
type OpenRecordInput struct {
	AssetID            uuid.UUID
	TechnicianID       string
	OfficerID          string
	IssueDate          *time.Time
	ProblemDescription string
	ActionTaken        string
	OdometerKm         *int
	DowntimeHours      *int
	Severity           *domain.Severity
	Category           string
}

// OpenRecord opens a new maintenance record against an existing asset
func (s *MaintenanceService) OpenRecord(ctx context.Context, input OpenRecordInput) (*domain.MaintenanceRecord, error) {
	if input.TechnicianID == "" {
		return nil, errors.New("technician id is required")
	}
	if input.Severity != nil && !validSeverity(*input.Severity) {
		return nil, errors.New("unknown severity")
	}

	// The record must point at a registered asset
	if _, err := s.assetRepo.FindByID(ctx, input.AssetID); err != nil {
		return nil, err
	}

	now := time.Now()
	issueDate := now
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}

	record := &domain.MaintenanceRecord{
		ID:                 uuid.New(),
		AssetID:            input.AssetID,
		TechnicianID:       input.TechnicianID,
		OfficerID:          input.OfficerID,
		IssueDate:          issueDate,
		ProblemDescription: input.ProblemDescription,
		ActionTaken:        input.ActionTaken,
		Status:             domain.RecordStatusOpen,
		OdometerKm:         input.OdometerKm,
		DowntimeHours:      input.DowntimeHours,
		Severity:           input.Severity,
		Category:           input.Category,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// UpdateRecordInput carries the mutable record fields; nil leaves a field unchanged
type UpdateRecordInput struct {
	TechnicianID       *string
	OfficerID          *string
	ProblemDescription *string
	ActionTaken        *string
	Status             *domain.RecordStatus
	OdometerKm         *int
	DowntimeHours      *int
	Severity           *domain.Severity
	Category           *string
}

// UpdateRecord applies field updates to an open record. Closing must go
// through CloseRecord so the completion date is stamped consistently.
func (s *MaintenanceService) UpdateRecord(ctx context.Context, recordID uuid.UUID, input UpdateRecordInput) (*domain.MaintenanceRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status == domain.RecordStatusClosed {
		return nil, errors.New("record is closed")
	}

	if input.Status != nil {
		if *input.Status == domain.RecordStatusClosed {
			return nil, errors.New("use close to complete a record")
		}
		if !validRecordStatus(*input.Status) {
			return nil, errors.New("unknown record status")
		}
		record.Status = *input.Status
	}
	if input.TechnicianID != nil {
		record.TechnicianID = *input.TechnicianID
	}
	if input.OfficerID != nil {
		record.OfficerID = *input.OfficerID
	}
	if input.ProblemDescription != nil {
		record.ProblemDescription = *input.ProblemDescription
	}
	if input.ActionTaken != nil {
		record.ActionTaken = *input.ActionTaken
	}
	if input.OdometerKm != nil {
		record.OdometerKm = input.OdometerKm
	}
	if input.DowntimeHours != nil {
		record.DowntimeHours = input.DowntimeHours
	}
	if input.Severity != nil {
		if !validSeverity(*input.Severity) {
			return nil, errors.New("unknown severity")
		}
		record.Severity = input.Severity
	}
	if input.Category != nil {
		record.Category = *input.Category
	}
	record.UpdatedAt = time.Now()

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// CloseRecord completes a maintenance record, stamping the completion date
// and rolling the asset's last service date forward
func (s *MaintenanceService) CloseRecord(ctx context.Context, recordID uuid.UUID, actionTaken string) (*domain.MaintenanceRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status == domain.RecordStatusClosed {
		return nil, errors.New("record is already closed")
	}

	now := time.Now()
	record.Status = domain.RecordStatusClosed
	record.CompletionDate = &now
	if actionTaken != "" {
		record.ActionTaken = actionTaken
	}
	record.UpdatedAt = now

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	// Best effort: a missing asset should not fail the close itself
	if asset, err := s.assetRepo.FindByID(ctx, record.AssetID); err == nil {
		asset.LastServiceAt = &now
		if record.OdometerKm != nil {
			asset.CurrentKm = record.OdometerKm
		}
		asset.UpdatedAt = now
		if err := s.assetRepo.Update(ctx, asset); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// GetRecordByID fetches a maintenance record by ID
func (s *MaintenanceService) GetRecordByID(ctx context.Context, recordID uuid.UUID) (*domain.MaintenanceRecord, error) {
	return s.recordRepo.FindByID(ctx, recordID)
}

// ListRecords fetches maintenance records, optionally filtered
func (s *MaintenanceService) ListRecords(ctx context.Context, filters map[string]interface{}) ([]*domain.MaintenanceRecord, error) {
	return s.recordRepo.FindAll(ctx, filters)
}

// ListRecordsForAsset fetches the maintenance history of one asset
func (s *MaintenanceService) ListRecordsForAsset(ctx context.Context, assetID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	return s.recordRepo.FindByAssetID(ctx, assetID)
}

// DeleteRecord removes a maintenance record
func (s *MaintenanceService) DeleteRecord(ctx context.Context, recordID uuid.UUID) error {
	return s.recordRepo.Delete(ctx, recordID)
}

// ConsumePart books a spare part against a record and decrements stock
func (s *MaintenanceService) ConsumePart(ctx context.Context, recordID, partID uuid.UUID, quantity int) (*domain.RecordPart, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status == domain.RecordStatusClosed {
		return nil, errors.New("record is closed")
	}

	part, err := s.partRepo.FindByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part.QuantityOnHand < quantity {
		return nil, errors.New("insufficient stock")
	}

	part.QuantityOnHand -= quantity
	part.UpdatedAt = time.Now()
	if err := s.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	usage := &domain.RecordPart{
		RecordID:     recordID,
		PartID:       partID,
		QuantityUsed: quantity,
	}
	if err := s.recordRepo.AddRecordPart(ctx, usage); err != nil {
		return nil, err
	}

	return usage, nil
}

// ListConsumedParts fetches the parts booked against a record
func (s *MaintenanceService) ListConsumedParts(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordPart, error) {
	return s.recordRepo.FindRecordParts(ctx, recordID)
}

// CreatePlan creates the maintenance plan for an asset; each asset carries
// at most one plan
func (s *MaintenanceService) CreatePlan(ctx context.Context, assetID uuid.UUID, description string, frequencyKm, frequencyDays *int, nextDueDate *time.Time) (*domain.MaintenancePlan, error) {
	if _, err := s.assetRepo.FindByID(ctx, assetID); err != nil {
		return nil, err
	}

	if existing, err := s.planRepo.FindByAssetID(ctx, assetID); err == nil && existing != nil {
		return nil, errors.New("asset already has a maintenance plan")
	}

	now := time.Now()
	plan := &domain.MaintenancePlan{
		ID:              uuid.New(),
		AssetID:         assetID,
		PlanDescription: description,
		FrequencyKm:     frequencyKm,
		FrequencyDays:   frequencyDays,
		NextDueDate:     nextDueDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// UpdatePlan applies mutable plan fields; nil leaves a field unchanged
func (s *MaintenanceService) UpdatePlan(ctx context.Context, planID uuid.UUID, description *string, frequencyKm, frequencyDays *int, nextDueDate *time.Time) (*domain.MaintenancePlan, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if description != nil {
		plan.PlanDescription = *description
	}
	if frequencyKm != nil {
		plan.FrequencyKm = frequencyKm
	}
	if frequencyDays != nil {
		plan.FrequencyDays = frequencyDays
	}
	if nextDueDate != nil {
		plan.NextDueDate = nextDueDate
	}
	plan.UpdatedAt = time.Now()

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// GetPlanByID fetches a maintenance plan by ID
func (s *MaintenanceService) GetPlanByID(ctx context.Context, planID uuid.UUID) (*domain.MaintenancePlan, error) {
	return s.planRepo.FindByID(ctx, planID)
}

// GetPlanForAsset fetches the plan tied to an asset
func (s *MaintenanceService) GetPlanForAsset(ctx context.Context, assetID uuid.UUID) (*domain.MaintenancePlan, error) {
	return s.planRepo.FindByAssetID(ctx, assetID)
}

// ListPlans fetches all maintenance plans
func (s *MaintenanceService) ListPlans(ctx context.Context) ([]*domain.MaintenancePlan, error) {
	return s.planRepo.FindAll(ctx)
}

// DeletePlan removes a maintenance plan
func (s *MaintenanceService) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	return s.planRepo.Delete(ctx, planID)
}

// AttachFile stores a file against a maintenance record
func (s *MaintenanceService) AttachFile(ctx context.Context, recordID uuid.UUID, fileName string, data io.Reader, size int64) (*domain.RecordAttachment, error) {
	if fileName == "" {
		return nil, errors.New("file name is required")
	}
	if _, err := s.recordRepo.FindByID(ctx, recordID); err != nil {
		return nil, err
	}

	return s.storage.SaveAttachment(ctx, recordID, fileName, data, size)
}

// ListAttachments fetches the attachments stored against a record
func (s *MaintenanceService) ListAttachments(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordAttachment, error) {
	return s.storage.ListAttachments(ctx, recordID)
}

// OpenAttachment streams a stored attachment back to the caller
func (s *MaintenanceService) OpenAttachment(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	return s.storage.GetAttachment(ctx, objectKey)
}

// RemoveAttachment deletes a stored attachment
func (s *MaintenanceService) RemoveAttachment(ctx context.Context, objectKey string) error {
	return s.storage.DeleteAttachment(ctx, objectKey)
}

func validRecordStatus(s domain.RecordStatus) bool {
	switch s {
	case domain.RecordStatusOpen, domain.RecordStatusInProgress, domain.RecordStatusClosed:
		return true
	}
	return false
}

func validSeverity(s domain.Severity) bool {
	switch s {
	case domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh:
		return true
	}
	return false
}
