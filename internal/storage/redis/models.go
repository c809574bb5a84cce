package redis

import "servismotor-bot/internal/estimator"

// SessionState is everything stored for one chat between updates.
type SessionState struct {
	Step string `json:"step"`
	// name typed in the first step of the add-part dialog
	PendingPartName *string             `json:"pending_part_name,omitempty"`
	Estimate        *estimator.Snapshot `json:"estimate,omitempty"`
}
