package models

// ToggleRequest is the body of POST /v1/likes/toggle.
type ToggleRequest struct {
	ItemID    string `json:"itemId" validate:"required"`
	VisitorID string `json:"visitorId" validate:"required"`
}

// ToggleResponse is the authoritative state after a toggle.
type ToggleResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// StatusRequest is the body of POST /v1/likes/status.
type StatusRequest struct {
	ItemIDs   []string `json:"itemIds" validate:"required,min=1,dive,required"`
	VisitorID string   `json:"visitorId" validate:"required"`
}

// ItemStatus is the per-item slice of a status response.
type ItemStatus struct {
	Count int64 `json:"count"`
	Liked bool  `json:"liked"`
}

// StatusResponse maps every requested item id directly to its status; the
// body has no envelope around the mapping.
type StatusResponse map[string]ItemStatus
