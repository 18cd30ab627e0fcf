package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Luxury Lakeside Cottage!! ", "luxury-lakeside-cottage"},
		{"Pawna Lakeside Camping", "pawna-lakeside-camping"},
		{"Royal   Villa -- Lonavala", "royal-villa-lonavala"},
		{"Café Résidence", "cafe-residence"},
		{"2BHK @ ₹999/night", "2bhk-999-night"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Luxury Lakeside Cottage!! ",
		"Sunset Glamping Dome",
		"Forest   Edge   Cottage",
		"çà et là",
	}

	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "title %q", title)
	}
}

func TestSlugifyCharset(t *testing.T) {
	valid := regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)

	titles := []string{
		"Luxury Lakeside Cottage!! ",
		"  --weird--input--  ",
		"UPPER case MiXeD",
		"tabs\tand\nnewlines",
	}

	for _, title := range titles {
		slug := Slugify(title)
		assert.Regexp(t, valid, slug, "title %q", title)
	}
}
