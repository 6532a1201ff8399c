package model

import "time"

const FieldID = "id"

// Todo is the stored record. ID and CreatedAt are assigned on creation and never change.
type Todo struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}
