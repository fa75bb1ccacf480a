package services

import (
	"testing"

	"github.com/rpupo63/omie-site-backend/models"
)

func TestPostListQueryIndexed(t *testing.T) {
	q := PostListQuery(models.PostListOptions{Limit: 6, Category: "fiscal", Search: "nfe"}, PopulateIndexed, "featuredImage", "category")

	want := "pagination[limit]=6&pagination[start]=0" +
		"&populate[0]=featuredImage&populate[1]=category" +
		"&filters[category][slug][$eq]=fiscal" +
		"&filters[$or][0][title][$containsi]=nfe" +
		"&filters[$or][1][excerpt][$containsi]=nfe"
	if got := q.Encode(); got != want {
		t.Errorf("Encode =\n%s\nwant\n%s", got, want)
	}
}

func TestPostListQueryCSV(t *testing.T) {
	q := PostListQuery(models.PostListOptions{Start: 20}, PopulateCSV, "featuredImage", "category")

	if got := q.Get("populate"); got != "featuredImage,category" {
		t.Errorf("populate = %q", got)
	}
	if q.Has("populate[0]") {
		t.Error("CSV dialect must not emit indexed keys")
	}
	if q.Get("pagination[limit]") != "10" || q.Get("pagination[start]") != "20" {
		t.Errorf("pagination = %s", q.Encode())
	}
	if q.Has("filters[category][slug][$eq]") || q.Has("filters[$or][0][title][$containsi]") {
		t.Error("empty filters must be omitted")
	}
}

func TestQueryEscapesValues(t *testing.T) {
	var q Query
	q.Set("filters[slug][$eq]", "a b&c")
	if got := q.Encode(); got != "filters[slug][$eq]=a+b%26c" {
		t.Errorf("Encode = %q", got)
	}
	q.Set("filters[slug][$eq]", "x")
	if got := q.Encode(); got != "filters[slug][$eq]=x" {
		t.Errorf("Set must replace: %q", got)
	}
}

func TestDialectForVersion(t *testing.T) {
	if DialectForVersion(4) != PopulateCSV || DialectForVersion(5) != PopulateIndexed || DialectForVersion(0) != PopulateIndexed {
		t.Error("unexpected dialect mapping")
	}
}

func TestMenuPopulate(t *testing.T) {
	got := MenuPopulate(3)
	want := []string{"items", "items.children", "items.children.children"}
	if len(got) != len(want) {
		t.Fatalf("MenuPopulate(3) = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MenuPopulate(3)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := MenuPopulate(0); len(got) != 1 || got[0] != "items" {
		t.Errorf("MenuPopulate(0) = %v", got)
	}
}
