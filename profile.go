package mask

import (
	"time"

	validation "github.com/jellydator/validation"
	"github.com/yaitoo/mask/masker"
)

// Profile a named pattern and prefix
type Profile struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Pattern   string    `json:"pattern"`
	Prefix    string    `json:"prefix,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (p Profile) MaxLength() int {
	return masker.MaxLength(p.Pattern, p.Prefix)
}

// Format formats text with the profile's pattern and prefix
func (p Profile) Format(text string) string {
	return masker.Format(text, p.Pattern, p.Prefix)
}

// validate checks p against the mask_profile column bounds
func (p Profile) validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required,
			validation.Length(1, 64),
		),
		validation.Field(&p.Pattern,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&p.Prefix,
			validation.Length(0, 64),
		),
	)

	if err != nil {
		return ErrInvalidProfile
	}

	return nil
}
