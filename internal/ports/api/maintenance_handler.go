package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/application"
	"github.com/FahadAljabr/arms/internal/domain"
)

// MaintenanceHandler handles HTTP requests for maintenance records, plans,
// consumed parts and record attachments
type MaintenanceHandler struct {
	maintenanceService *application.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(maintenanceService *application.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// RegisterRoutes registers the routes for MaintenanceHandler
func (h *MaintenanceHandler) RegisterRoutes(r chi.Router) {
	r.Route("/maintenance", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Get("/", h.ListRecords)
			r.Post("/", h.OpenRecord)
			r.Get("/{id}", h.GetRecord)
			r.Put("/{id}", h.UpdateRecord)
			r.Post("/{id}/close", h.CloseRecord)
			r.Delete("/{id}", h.DeleteRecord)
			r.Get("/{id}/parts", h.ListConsumedParts)
			r.Post("/{id}/parts", h.ConsumePart)
			r.Get("/{id}/attachments", h.ListAttachments)
			r.Post("/{id}/attachments", h.UploadAttachment)
		})
		r.Get("/attachments/{key}", h.DownloadAttachment)
		r.Delete("/attachments/{key}", h.DeleteAttachment)
		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.ListPlans)
			r.Post("/", h.CreatePlan)
			r.Get("/{id}", h.GetPlan)
			r.Put("/{id}", h.UpdatePlan)
			r.Delete("/{id}", h.DeletePlan)
		})
	})
}

// ListRecords handles GET /maintenance/records
func (h *MaintenanceHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters := make(map[string]interface{})
	if status := r.URL.Query().Get("status"); status != "" {
		filters["status"] = status
	}
	if severity := r.URL.Query().Get("severity"); severity != "" {
		filters["severity"] = severity
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filters["category"] = category
	}
	if technicianID := r.URL.Query().Get("technician_id"); technicianID != "" {
		filters["technician_id"] = technicianID
	}

	records, err := h.maintenanceService.ListRecords(ctx, filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// OpenRecord handles POST /maintenance/records
func (h *MaintenanceHandler) OpenRecord(w http.ResponseWriter, r *http.Request) {
	var request struct {
		AssetID            string     `json:"asset_id"`
		TechnicianID       string     `json:"technician_id"`
		OfficerID          string     `json:"officer_id"`
		IssueDate          *time.Time `json:"issue_date"`
		ProblemDescription string     `json:"problem_description"`
		ActionTaken        string     `json:"action_taken"`
		OdometerKm         *int       `json:"odometer_km"`
		DowntimeHours      *int       `json:"downtime_hours"`
		Severity           *string    `json:"severity"`
		Category           string     `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	assetID, err := uuid.Parse(request.AssetID)
	if err != nil {
		http.Error(w, "Invalid asset ID", http.StatusBadRequest)
		return
	}

	var severity *domain.Severity
	if request.Severity != nil {
		s := domain.Severity(*request.Severity)
		severity = &s
	}

	ctx := r.Context()
	record, err := h.maintenanceService.OpenRecord(ctx, application.OpenRecordInput{
		AssetID:            assetID,
		TechnicianID:       request.TechnicianID,
		OfficerID:          request.OfficerID,
		IssueDate:          request.IssueDate,
		ProblemDescription: request.ProblemDescription,
		ActionTaken:        request.ActionTaken,
		OdometerKm:         request.OdometerKm,
		DowntimeHours:      request.DowntimeHours,
		Severity:           severity,
		Category:           request.Category,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetRecord handles GET /maintenance/records/{id}
func (h *MaintenanceHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	record, err := h.maintenanceService.GetRecordByID(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// UpdateRecord handles PUT /maintenance/records/{id}
func (h *MaintenanceHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	var request struct {
		TechnicianID       *string `json:"technician_id"`
		OfficerID          *string `json:"officer_id"`
		ProblemDescription *string `json:"problem_description"`
		ActionTaken        *string `json:"action_taken"`
		Status             *string `json:"status"`
		OdometerKm         *int    `json:"odometer_km"`
		DowntimeHours      *int    `json:"downtime_hours"`
		Severity           *string `json:"severity"`
		Category           *string `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var status *domain.RecordStatus
	if request.Status != nil {
		s := domain.RecordStatus(*request.Status)
		status = &s
	}
	var severity *domain.Severity
	if request.Severity != nil {
		s := domain.Severity(*request.Severity)
		severity = &s
	}

	ctx := r.Context()
	record, err := h.maintenanceService.UpdateRecord(ctx, id, application.UpdateRecordInput{
		TechnicianID:       request.TechnicianID,
		OfficerID:          request.OfficerID,
		ProblemDescription: request.ProblemDescription,
		ActionTaken:        request.ActionTaken,
		Status:             status,
		OdometerKm:         request.OdometerKm,
		DowntimeHours:      request.DowntimeHours,
		Severity:           severity,
		Category:           request.Category,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// CloseRecord handles POST /maintenance/records/{id}/close
func (h *MaintenanceHandler) CloseRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	var request struct {
		ActionTaken string `json:"action_taken"`
	}
	// An empty body closes the record without amending the action taken
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && err != io.EOF {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	record, err := h.maintenanceService.CloseRecord(ctx, id, request.ActionTaken)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DeleteRecord handles DELETE /maintenance/records/{id}
func (h *MaintenanceHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.maintenanceService.DeleteRecord(ctx, id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListConsumedParts handles GET /maintenance/records/{id}/parts
func (h *MaintenanceHandler) ListConsumedParts(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	parts, err := h.maintenanceService.ListConsumedParts(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(parts); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// ConsumePart handles POST /maintenance/records/{id}/parts
func (h *MaintenanceHandler) ConsumePart(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	var request struct {
		PartID   string `json:"part_id"`
		Quantity int    `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	partID, err := uuid.Parse(request.PartID)
	if err != nil {
		http.Error(w, "Invalid part ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	usage, err := h.maintenanceService.ConsumePart(ctx, id, partID, request.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(usage); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// ListAttachments handles GET /maintenance/records/{id}/attachments
func (h *MaintenanceHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	attachments, err := h.maintenanceService.ListAttachments(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(attachments); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// UploadAttachment handles POST /maintenance/records/{id}/attachments
func (h *MaintenanceHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 25*1024*1024) // 25 MB limit
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Error retrieving file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ctx := r.Context()
	attachment, err := h.maintenanceService.AttachFile(ctx, id, handler.Filename, file, handler.Size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(attachment); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DownloadAttachment handles GET /maintenance/attachments/{key}
func (h *MaintenanceHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		http.Error(w, "Object key is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	dataReader, err := h.maintenanceService.OpenAttachment(ctx, key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer dataReader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", key))

	if _, err := io.Copy(w, dataReader); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DeleteAttachment handles DELETE /maintenance/attachments/{key}
func (h *MaintenanceHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		http.Error(w, "Object key is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.maintenanceService.RemoveAttachment(ctx, key); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPlans handles GET /maintenance/plans
func (h *MaintenanceHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// ?asset_id= narrows the listing to one asset's plan
	if assetIDStr := r.URL.Query().Get("asset_id"); assetIDStr != "" {
		assetID, err := uuid.Parse(assetIDStr)
		if err != nil {
			http.Error(w, "Invalid asset ID", http.StatusBadRequest)
			return
		}

		plan, err := h.maintenanceService.GetPlanForAsset(ctx, assetID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]*domain.MaintenancePlan{plan}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	plans, err := h.maintenanceService.ListPlans(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(plans); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// CreatePlan handles POST /maintenance/plans
func (h *MaintenanceHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var request struct {
		AssetID         string     `json:"asset_id"`
		PlanDescription string     `json:"plan_description"`
		FrequencyKm     *int       `json:"frequency_km"`
		FrequencyDays   *int       `json:"frequency_days"`
		NextDueDate     *time.Time `json:"next_due_date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	assetID, err := uuid.Parse(request.AssetID)
	if err != nil {
		http.Error(w, "Invalid asset ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	plan, err := h.maintenanceService.CreatePlan(ctx, assetID, request.PlanDescription, request.FrequencyKm, request.FrequencyDays, request.NextDueDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetPlan handles GET /maintenance/plans/{id}
func (h *MaintenanceHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid plan ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	plan, err := h.maintenanceService.GetPlanByID(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// UpdatePlan handles PUT /maintenance/plans/{id}
func (h *MaintenanceHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid plan ID", http.StatusBadRequest)
		return
	}

	var request struct {
		PlanDescription *string    `json:"plan_description"`
		FrequencyKm     *int       `json:"frequency_km"`
		FrequencyDays   *int       `json:"frequency_days"`
		NextDueDate     *time.Time `json:"next_due_date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	plan, err := h.maintenanceService.UpdatePlan(ctx, id, request.PlanDescription, request.FrequencyKm, request.FrequencyDays, request.NextDueDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DeletePlan handles DELETE /maintenance/plans/{id}
func (h *MaintenanceHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid plan ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.maintenanceService.DeletePlan(ctx, id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
