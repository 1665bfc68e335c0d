package entity

import "time"

// Calificación permitida en una reseña.
const (
	MinRating = 1
	MaxRating = 5
)

// Review reseña de un usuario sobre un spa.
type Review struct {
	ID        string
	Rating    int
	Comment   string
	CreatedAt time.Time
	Active    bool
	UserID    string
	SpaID     string
}

// ValidRating informa si r está en [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
