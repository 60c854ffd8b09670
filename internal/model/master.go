package model

import "time"

// Group is a top-level classification for tasks (work, home, ...).
type Group struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Project is an optional second-level classification under a group.
type Project struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	GroupID   *string   `gorm:"index" json:"groupId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Bucket is a free-form tag; tasks may carry any number of bucket ids.
type Bucket struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
