package kernel

import (
	"math"

	"dispatch/internal/pkg/errs"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Rating is a restaurant score in [MinRating, MaxRating].
type Rating float64

// NewRating validates the range bounds inclusively.
func NewRating(value float64) (Rating, error) {
	if math.IsNaN(value) || value < MinRating || value > MaxRating {
		return 0, errs.NewValueIsOutOfRangeError("rating", value, MinRating, MaxRating)
	}
	return Rating(value), nil
}

func (r Rating) Float64() float64 {
	return float64(r)
}
