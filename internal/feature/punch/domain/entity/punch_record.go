// Package entity defines the domain entities for the punch feature.
package entity

import "time"

// PunchRecord represents a single timestamped in/out event for a user at a location.
// Records are created once per punch action and never mutated.
type PunchRecord struct {
	// ID is the unique identifier for the record.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID references the user who punched. It is a by-value reference only;
	// no foreign key or cascade is enforced.
	UserID uint `gorm:"not null;index:punch_user_type_time,priority:1" json:"userId"`

	// Location is the caller-supplied, free-form location selector.
	Location string `gorm:"size:255" json:"location"`

	// PunchType is the punch direction, "in" or "out".
	PunchType string `gorm:"size:8;not null;index:punch_user_type_time,priority:2" json:"punchType"`

	// Time is the authoritative event time, recorded in the configured punch timezone.
	Time time.Time `gorm:"not null;index:punch_user_type_time,priority:3" json:"time"`

	// CreatedAt is the timestamp when the record was persisted.
	CreatedAt time.Time `json:"createdAt"`
}
