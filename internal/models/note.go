package models

import "time"

// Note is a free-form text note.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteInput is the payload for creating a note.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NotePatch carries the fields of a partial note update. Nil fields are left untouched.
type NotePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NewNote builds a note from input with both timestamps set to now.
func NewNote(in NoteInput, now time.Time) Note {
	return Note{
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply merges the patch into n and refreshes UpdatedAt.
func (p NotePatch) Apply(n *Note, now time.Time) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	n.UpdatedAt = now
}
