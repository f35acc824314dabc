package models

import "time"

// Checklist is a titled, ordered list of items.
type Checklist struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChecklistWithItems is a checklist together with its items sorted by Order.
type ChecklistWithItems struct {
	Checklist
	Items []ChecklistItem `json:"items"`
}

// ChecklistInput is the payload for creating a checklist.
type ChecklistInput struct {
	Title string `json:"title"`
}

// ChecklistPatch carries the fields of a partial checklist update.
type ChecklistPatch struct {
	Title *string `json:"title"`
}

// NewChecklist builds a checklist from input.
func NewChecklist(in ChecklistInput, now time.Time) Checklist {
	return Checklist{Title: in.Title, CreatedAt: now}
}

// Apply merges the patch into c.
func (p ChecklistPatch) Apply(c *Checklist) {
	if p.Title != nil {
		c.Title = *p.Title
	}
}

// ChecklistItem is one entry of a checklist. Order is caller-supplied and never renumbered.
type ChecklistItem struct {
	ID          int64  `json:"id"`
	ChecklistID int64  `json:"checklistId"`
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
	Order       int    `json:"order"`
}

// ChecklistItemInput is the payload for creating a checklist item.
type ChecklistItemInput struct {
	ChecklistID int64  `json:"checklistId"`
	Title       string `json:"title"`
	Completed   *bool  `json:"completed"`
	Order       *int   `json:"order"`
}

// ChecklistItemPatch carries the fields of a partial checklist item update.
type ChecklistItemPatch struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Order     *int    `json:"order"`
}

// NewChecklistItem builds an item from input; Completed defaults to false.
func NewChecklistItem(in ChecklistItemInput) ChecklistItem {
	item := ChecklistItem{
		ChecklistID: in.ChecklistID,
		Title:       in.Title,
	}
	if in.Completed != nil {
		item.Completed = *in.Completed
	}
	if in.Order != nil {
		item.Order = *in.Order
	}
	return item
}

// Apply merges the patch into item.
func (p ChecklistItemPatch) Apply(item *ChecklistItem) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Completed != nil {
		item.Completed = *p.Completed
	}
	if p.Order != nil {
		item.Order = *p.Order
	}
}
