package models

// Exercise is a single catalog entry. IDs are synthesized client-side from a
// slugified name plus the item's index within one fetch result, so they are
// stable within a result set but not across repeated fetches.
type Exercise struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Muscle       string `json:"muscle,omitempty"`
	Equipment    string `json:"equipment,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Image        string `json:"image,omitempty"`
}
