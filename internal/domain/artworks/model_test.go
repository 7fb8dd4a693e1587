package artworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImagesSingleURL(t *testing.T) {
	a := Artwork{ImageURL: "/sun.webp"}
	assert.Equal(t, []string{"/sun.webp"}, a.Images())
}

func TestImagesJSONArray(t *testing.T) {
	a := Artwork{ImageURL: `["/a.webp","/b.webp"]`}
	assert.Equal(t, []string{"/a.webp", "/b.webp"}, a.Images())
}

func TestImagesSkipsEmptyAndCaps(t *testing.T) {
	a := Artwork{ImageURL: `["/1","","/2","/3","/4","/5","/6"]`}
	assert.Equal(t, []string{"/1", "/2", "/3", "/4", "/5"}, a.Images())
}

func TestImagesMalformedArrayFallsBackToRaw(t *testing.T) {
	a := Artwork{ImageURL: `[not json`}
	assert.Equal(t, []string{`[not json`}, a.Images())
}

func TestImagesEmpty(t *testing.T) {
	a := Artwork{}
	assert.Nil(t, a.Images())
}
