package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/application"
)

// InventoryHandler handles HTTP requests for spare-part inventory
type InventoryHandler struct {
	inventoryService *application.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *application.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// RegisterRoutes registers the routes for InventoryHandler
func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/spare-parts", func(r chi.Router) {
		r.Get("/", h.ListParts)
		r.Post("/", h.CreatePart)
		r.Get("/{id}", h.GetPart)
		r.Put("/{id}", h.UpdatePart)
		r.Post("/{id}/adjust", h.AdjustStock)
		r.Delete("/{id}", h.DeletePart)
	})
}

// ListParts handles GET /spare-parts
func (h *InventoryHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parts, err := h.inventoryService.ListParts(ctx)
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

// CreatePart handles POST /spare-parts
func (h *InventoryHandler) CreatePart(w http.ResponseWriter, r *http.Request) {
	var request struct {
		PartName         string   `json:"part_name"`
		PartNumber       string   `json:"part_number"`
		Unit             string   `json:"unit"`
		UnitCost         *float64 `json:"unit_cost"`
		ReorderThreshold int      `json:"reorder_threshold"`
		QuantityOnHand   int      `json:"quantity_on_hand"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	part, err := h.inventoryService.CreatePart(ctx, request.PartName, request.PartNumber, request.Unit, request.UnitCost, request.ReorderThreshold, request.QuantityOnHand)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(part); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetPart handles GET /spare-parts/{id}
func (h *InventoryHandler) GetPart(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid part ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	part, err := h.inventoryService.GetPartByID(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(part); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// UpdatePart handles PUT /spare-parts/{id}
func (h *InventoryHandler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid part ID", http.StatusBadRequest)
		return
	}

	var request struct {
		PartName         *string  `json:"part_name"`
		PartNumber       *string  `json:"part_number"`
		Unit             *string  `json:"unit"`
		UnitCost         *float64 `json:"unit_cost"`
		ReorderThreshold *int     `json:"reorder_threshold"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	part, err := h.inventoryService.UpdatePart(ctx, id, request.PartName, request.PartNumber, request.Unit, request.UnitCost, request.ReorderThreshold)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(part); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// AdjustStock handles POST /spare-parts/{id}/adjust
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid part ID", http.StatusBadRequest)
		return
	}

	var request struct {
		Delta int `json:"delta"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	part, err := h.inventoryService.AdjustStock(ctx, id, request.Delta)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(part); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DeletePart handles DELETE /spare-parts/{id}
func (h *InventoryHandler) DeletePart(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid part ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.inventoryService.DeletePart(ctx, id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
