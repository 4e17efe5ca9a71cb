package ir

import (
	"github.com/go-playground/validator/v10"
)

// Image is a raster asset extracted from a document section. Contents is
// the raw image bytes; everything else is optional metadata. Images have no
// identity beyond structural equality and are owned by their Section.
type Image struct {
	Contents []byte   `json:"contents" validate:"required"`
	OCRText  string   `json:"ocr_text,omitempty"`
	Height   *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
	Width    *float64 `json:"width,omitempty" validate:"omitempty,gte=0"`
	Name     string   `json:"name,omitempty"`
	Alt      string   `json:"alt,omitempty"`
}

// Validate checks that contents is present and that dimensions, when set,
// are non-negative.
func (i *Image) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}
