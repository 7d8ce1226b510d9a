package entity

// Organization is the top level of the observation hierarchy. Key is the
// human-chosen slug used in API paths, ID is the backend-generated identifier.
type Organization struct {
	ID          string            `json:"id"`
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}
