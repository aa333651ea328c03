package dto

import (
	"time"

	"github.com/noah-isme/gradebook-api/internal/models"
)

// ActivityListRequest filters the audit trail listing.
type ActivityListRequest struct {
	Page       int    `query:"page"`
	PageSize   int    `query:"page_size" validate:"omitempty,max=100"`
	Action     string `query:"action"`
	EntityType string `query:"entity_type"`
}

// ActivityResponse is one serialized audit entry.
type ActivityResponse struct {
	ID         uint                   `json:"id"`
	ActorEmail string                 `json:"actor_email"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
}

// ActivityListResponse wraps a page of audit entries.
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
	Total int64              `json:"total"`
}

// NewActivityResponse converts a model into a DTO.
func NewActivityResponse(model models.ActivityLog) ActivityResponse {
	return ActivityResponse{
		ID:         model.ID,
		ActorEmail: model.ActorEmail,
		Action:     model.Action,
		EntityType: model.EntityType,
		EntityID:   model.EntityID,
		Metadata:   model.Metadata,
		CreatedAt:  model.CreatedAt,
	}
}

// NewActivityListResponse converts a page of models into the list DTO.
func NewActivityListResponse(entries []models.ActivityLog, total int64) ActivityListResponse {
	items := make([]ActivityResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, NewActivityResponse(entry))
	}

	return ActivityListResponse{Items: items, Total: total}
}
