package model

import "time"

// Form is a named entity belonging to exactly one folder.
//
// FolderID is the authoritative owner of the relationship. Deleting a
// folder does not touch its forms — they remain fetchable by ID and by
// folder, pointing at a folder that no longer exists. That matches the
// behaviour the frontend was built against.
type Form struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FolderID  string    `json:"folderId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GlobalForm is a standalone named form, unrelated to folders.
type GlobalForm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
