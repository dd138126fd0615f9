package models

// College is a catalog entry students pick during signup. IsCustom marks
// entries appended ad hoc rather than pre-seeded.
type College struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsCustom bool   `json:"is_custom,omitempty"`
}
