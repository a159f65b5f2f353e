package entity

import "time"

// Comment is a user remark on a listing. Comments are append-only.
type Comment struct {
	ID uint `gorm:"primaryKey"`

	// Content is the comment text.
	Content string `gorm:"type:text;not null"`

	// AuthorID is nil after the authoring account has been deleted; the
	// presentation layer renders a "deleted user" placeholder in that case.
	AuthorID *uint `gorm:"index;constraint:OnDelete:SET NULL"`

	// ListingID references the commented listing. Comments are
	// cascade-deleted with their listing.
	ListingID uint `gorm:"index;not null;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}
