package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/omie-site-backend/errs"
	"github.com/rpupo63/omie-site-backend/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ClientOptions) *StrapiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	opts.BaseURL = server.URL + "/"
	if opts.Token == "" {
		opts.Token = "test-token"
	}
	return NewStrapiClient(opts)
}

func TestFetchPostsSendsHeadersAndQuery(t *testing.T) {
	var gotReq *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		w.Write([]byte(`{"data":[{"id":1,"attributes":{"slug":"a"}},null,{"id":2,"slug":"b"}],"meta":{}}`))
	}, ClientOptions{Version: 5})

	posts, err := client.FetchPosts(context.Background(), models.PostListOptions{Search: "nfe"})
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Errorf("expected nulls to be dropped, got %d entries", len(posts))
	}

	if gotReq.URL.Path != "/api/posts" {
		t.Errorf("path = %q", gotReq.URL.Path)
	}
	if gotReq.Header.Get("Authorization") != "Bearer test-token" || gotReq.Header.Get("Strapi-Response-Format") != "v4" {
		t.Errorf("headers = %v", gotReq.Header)
	}
	q := gotReq.URL.Query()
	if q.Get("populate[0]") != "featuredImage" || q.Get("filters[$or][1][excerpt][$containsi]") != "nfe" {
		t.Errorf("query = %v", q)
	}
}

func TestFetchPostBySlugEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("filters[slug][$eq]") != "nope" {
			t.Errorf("slug filter missing: %v", r.URL.Query())
		}
		w.Write([]byte(`{"data":[]}`))
	}, ClientOptions{Version: 4})

	post, err := client.FetchPostBySlug(context.Background(), "nope")
	if err != nil || post != nil {
		t.Errorf("post=%v err=%v", post, err)
	}
}

func TestFetchPostSlugsSelectsField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("fields") != "slug" || q.Get("pagination[limit]") != "100" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"data":[{"slug":"a"}]}`))
	}, ClientOptions{Version: 4})

	slugs, err := client.FetchPostSlugs(context.Background())
	if err != nil || len(slugs) != 1 {
		t.Errorf("slugs=%v err=%v", slugs, err)
	}
}

func TestGatewayErrorDetail(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"data":null,"error":{"status":403,"name":"ForbiddenError","message":"Forbidden"}}`, "Forbidden"},
		{`{"message":"Bad token"}`, "Bad token"},
		{`<html>` + strings.Repeat("x", 300) + `</html>`, "<html>" + strings.Repeat("x", 194)},
	}
	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(tc.body))
		}, ClientOptions{})

		_, err := client.FetchPosts(context.Background(), models.PostListOptions{})
		var gwErr *errs.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if gwErr.Status != http.StatusForbidden || gwErr.Detail != tc.want {
			t.Errorf("status=%d detail=%q, want %q", gwErr.Status, gwErr.Detail, tc.want)
		}
		if !errors.Is(err, errs.ErrGatewayStatus) {
			t.Error("status errors must match ErrGatewayStatus")
		}
	}
}

func TestGatewayTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, ClientOptions{Timeout: 50 * time.Millisecond})

	_, err := client.FetchMenus(context.Background(), DefaultMenuDepth)
	if !errs.IsGatewayTimeout(err) {
		t.Fatalf("expected timeout, got %v", err)
	}
	var gwErr *errs.GatewayError
	if !errors.As(err, &gwErr) || gwErr.HasStatus() {
		t.Errorf("timeout must carry no status: %+v", gwErr)
	}
}

func TestGatewayUnreachable(t *testing.T) {
	client := NewStrapiClient(ClientOptions{BaseURL: "http://127.0.0.1:1", Token: "x"})
	_, err := client.FetchPageBySlug(context.Background(), "sobre")
	if !errors.Is(err, errs.ErrGatewayUnavailable) && !errs.IsGatewayTimeout(err) {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestFetchSiteConfig(t *testing.T) {
	notFound := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Not Found"}}`, http.StatusNotFound)
	}, ClientOptions{})
	cfg, err := notFound.FetchSiteConfig(context.Background())
	if err != nil || cfg != nil {
		t.Errorf("404 must yield nil without error: %v %v", cfg, err)
	}

	ok := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("populate[3]") != "organizationStructuredData" {
			t.Errorf("populate = %v", r.URL.Query())
		}
		w.Write([]byte(`{"data":{"id":1,"titulo":"Omie"}}`))
	}, ClientOptions{})
	cfg, err = ok.FetchSiteConfig(context.Background())
	if err != nil || cfg["titulo"] != "Omie" {
		t.Errorf("cfg=%v err=%v", cfg, err)
	}

	failing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, ClientOptions{})
	if _, err := failing.FetchSiteConfig(context.Background()); err == nil {
		t.Error("500 must surface as an error")
	}
}

func TestFetchMenusQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("pagination[pageSize]") != "10" || q.Get("populate") != "items,items.children" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"data":{"not":"a list"}}`))
	}, ClientOptions{Version: 4})

	menus, err := client.FetchMenus(context.Background(), 2)
	if err != nil || menus == nil || len(menus) != 0 {
		t.Errorf("non-list data must yield an empty list: %v %v", menus, err)
	}
}

func TestDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}, ClientOptions{})
	_, err := client.FetchPosts(context.Background(), models.PostListOptions{})
	if !errors.Is(err, errs.ErrGatewayDecode) {
		t.Errorf("expected decode error, got %v", err)
	}
}
