package handler

import (
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// AddItemRequest is the body of POST /api/v1/items
type AddItemRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality" validate:"min=0"`
}

// AdvanceDaysRequest is the body of POST /api/v1/days/advance. Days defaults to 1.
type AdvanceDaysRequest struct {
	Days *int `json:"days,omitempty" validate:"omitempty,min=1,max=365"`
}

// ItemResponse is the wire form of a stocked item
type ItemResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	SellIn   int    `json:"sell_in"`
	Quality  int    `json:"quality"`
	Category string `json:"category"`
}

// InventoryResponse is the wire form of an inventory snapshot
type InventoryResponse struct {
	Day   int            `json:"day"`
	Items []ItemResponse `json:"items"`
}

func toItemResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		SellIn:   item.SellIn,
		Quality:  item.Quality,
		Category: item.ResolveCategory().String(),
	}
}

func toInventoryResponse(snapshot *domain.Snapshot) InventoryResponse {
	resp := InventoryResponse{
		Day:   snapshot.Day,
		Items: make([]ItemResponse, len(snapshot.Items)),
	}
	for i, item := range snapshot.Items {
		resp.Items[i] = toItemResponse(item)
	}
	return resp
}

// InventoryHandler serves the inventory API
type InventoryHandler struct {
	service inventory.Service
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// HandleListItems returns every item and the current day
func (h *InventoryHandler) HandleListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := h.service.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListItems, err)
			return
		}

		respondJSON(w, http.StatusOK, toInventoryResponse(snapshot))
	}
}

// HandleGetItem returns one item by ID
func (h *InventoryHandler) HandleGetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w, "id")
		if !ok {
			return
		}

		item, err := h.service.GetItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, OpGetItem, err)
			return
		}

		respondJSON(w, http.StatusOK, toItemResponse(*item))
	}
}

// HandleAddItem stocks a new item
func (h *InventoryHandler) HandleAddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAddItem, false); err != nil {
			return
		}

		item, err := h.service.AddItem(r.Context(), req.Name, req.SellIn, req.Quality)
		if err != nil {
			respondServiceError(w, r, OpAddItem, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgItemAdded, "id", item.ID, "name", item.Name)
		respondJSON(w, http.StatusCreated, toItemResponse(*item))
	}
}

// HandleAdvanceDays runs the day update and returns the new inventory
func (h *InventoryHandler) HandleAdvanceDays() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdvanceDaysRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAdvanceDays, true); err != nil {
			return
		}

		days := 1
		if req.Days != nil {
			days = *req.Days
		}

		snapshot, err := h.service.AdvanceDays(r.Context(), days)
		if err != nil {
			respondServiceError(w, r, OpAdvanceDays, err)
			return
		}

		respondJSON(w, http.StatusOK, toInventoryResponse(snapshot))
	}
}
