package entity

import "time"

// Task is a backend-defined processing task attached to a mission. The client
// only ever lists tasks; all fields besides ID are owned by the backend and
// may be absent.
type Task struct {
	ID          string     `json:"id"`
	Type        string     `json:"type,omitempty"`
	Status      string     `json:"status,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Error       string     `json:"error,omitempty"`
}
