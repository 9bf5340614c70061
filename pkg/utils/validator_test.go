package utils

import (
	"strings"
	"testing"
	"time"
)

type sortQuery struct {
	SortOrder string `validate:"omitempty,sortorder"`
}

type imageField struct {
	MimeType string `validate:"supported_image"`
}

func TestSortOrderTag(t *testing.T) {
	v := NewValidator()
	for _, ok := range []string{"", "asc", "desc"} {
		if err := v.Struct(sortQuery{SortOrder: ok}); err != nil {
			t.Fatalf("%q should be valid: %v", ok, err)
		}
	}
	err := v.Struct(sortQuery{SortOrder: "bogus"})
	if err == nil {
		t.Fatalf("bogus should be rejected")
	}
	if !strings.Contains(Describe(err), "sortOrder") {
		t.Fatalf("unexpected message %q", Describe(err))
	}
}

func TestSupportedImageTag(t *testing.T) {
	v := NewValidator()
	if err := v.Struct(imageField{MimeType: "image/png"}); err != nil {
		t.Fatalf("png should be valid: %v", err)
	}
	if err := v.Struct(imageField{MimeType: "application/pdf"}); err == nil {
		t.Fatalf("pdf should be rejected")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-07-01")
	if err != nil || !d.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected %v %v", d, err)
	}
	if _, err := ParseDate("2024-07-01T10:00:00Z"); err != nil {
		t.Fatalf("rfc3339 should parse: %v", err)
	}
	if _, err := ParseDate("July 1st"); err == nil {
		t.Fatalf("expected error")
	}
}
