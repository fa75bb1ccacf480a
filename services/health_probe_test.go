package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProbeMissingConfig(t *testing.T) {
	report := NewStrapiClient(ClientOptions{}).Probe(context.Background(), true)
	if report.OK || report.Env.StrapiAPIURL != "(empty)" || !report.Env.MockMode {
		t.Errorf("report = %+v", report)
	}
	if !strings.Contains(report.Hint, "STRAPI_API_URL") {
		t.Errorf("hint = %q", report.Hint)
	}

	noToken := NewStrapiClient(ClientOptions{BaseURL: "https://cms.example.com"}).Probe(context.Background(), false)
	if noToken.OK || !strings.Contains(noToken.Hint, "STRAPI_API_TOKEN") {
		t.Errorf("report = %+v", noToken)
	}
}

func TestProbeNeverEchoesToken(t *testing.T) {
	const token = "very-secret-token"
	for _, status := range []int{http.StatusOK, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/menus" || r.URL.Query().Get("pagination[pageSize]") != "5" {
				t.Errorf("unexpected request %s", r.URL)
			}
			w.WriteHeader(status)
			w.Write([]byte(`{"data":[],"error":{"message":"Forbidden"}}`))
		}))

		report := NewStrapiClient(ClientOptions{BaseURL: server.URL, Token: token}).Probe(context.Background(), false)
		server.Close()

		encoded, err := json.Marshal(report)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(encoded), token) {
			t.Errorf("token leaked: %s", encoded)
		}
		if report.Env.StrapiTokenLength != len(token) || report.Strapi.Status == nil || *report.Strapi.Status != status {
			t.Errorf("report = %+v", report)
		}
		if report.OK != (status == http.StatusOK) {
			t.Errorf("status %d: ok = %v", status, report.OK)
		}
		if status == http.StatusForbidden && (report.Strapi.ErrorDetail == nil || *report.Strapi.ErrorDetail != "Forbidden") {
			t.Errorf("error detail = %v", report.Strapi.ErrorDetail)
		}
	}
}
