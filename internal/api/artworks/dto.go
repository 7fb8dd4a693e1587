package artworks

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts both 92 and "92" so numeric-looking form values survive
// the JSON round trip.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %q", s)
	}
	*n = FlexInt(v)
	return nil
}

func (n *FlexInt) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

// Unknown fields are ignored on purpose; clients may send ahead of the
// server.
type CreateArtworkRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Price       string   `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Style       *string  `json:"style"`
	Medium      *string  `json:"medium"`
	Width       *FlexInt `json:"width"`
	Height      *FlexInt `json:"height"`
	Year        *FlexInt `json:"year"`
	IsAvailable *bool    `json:"isAvailable"`
	IsFeatured  *bool    `json:"isFeatured"`
}

type UpdateArtworkRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	Style       *string  `json:"style"`
	Medium      *string  `json:"medium"`
	Width       *FlexInt `json:"width"`
	Height      *FlexInt `json:"height"`
	Year        *FlexInt `json:"year"`
	IsAvailable *bool    `json:"isAvailable"`
	IsFeatured  *bool    `json:"isFeatured"`
}
