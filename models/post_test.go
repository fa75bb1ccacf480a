package models

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestPostListOptionsValidate(t *testing.T) {
	cases := []struct {
		name  string
		opts  PostListOptions
		field string
	}{
		{"zero", PostListOptions{}, ""},
		{"max", PostListOptions{Limit: MaxPostLimit, Start: 20}, ""},
		{"limit too large", PostListOptions{Limit: MaxPostLimit + 1}, "limit"},
		{"negative limit", PostListOptions{Limit: -1}, "limit"},
		{"negative start", PostListOptions{Start: -1}, "start"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			fieldErrs, ok := err.(validation.Errors)
			if !ok {
				t.Fatalf("error = %v, want validation.Errors", err)
			}
			if _, ok := fieldErrs[tc.field]; !ok {
				t.Errorf("errors %v do not name %q", fieldErrs, tc.field)
			}
		})
	}
}

func TestPostListOptionsDefaults(t *testing.T) {
	o := PostListOptions{Start: -5}
	if o.EffectiveLimit() != DefaultPostLimit || o.EffectiveStart() != 0 {
		t.Errorf("limit=%d start=%d", o.EffectiveLimit(), o.EffectiveStart())
	}
}
