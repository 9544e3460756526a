package domain

import "time"

// PlanInfo is a cached resolution result.
type PlanInfo struct {
	Key        string             `json:"key"`
	Tasks      []Task             `json:"tasks"`
	Unresolved []UnresolvedModule `json:"unresolved,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}
