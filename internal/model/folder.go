package model

import "time"

// Folder is a named container for forms.
//
// The folder does NOT store its own list of form IDs. Form.FolderID is the
// single source of truth for the relationship; the FormIDs / Forms fields
// below are derived by the repository at read time. Storing the list on
// both sides would give us two copies that can drift apart.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // unique — enforced at write time
	FormIDs   []string  `json:"forms"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FolderWithForms is a folder with its forms fully resolved, returned by
// the authenticated listing route. Same derived relationship as Folder,
// but "forms" carries the complete form records instead of bare IDs.
type FolderWithForms struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Forms     []Form    `json:"forms"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
