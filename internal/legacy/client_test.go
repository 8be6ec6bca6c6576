package legacy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vruksha/storefront/internal/config"
)

func newTestClient(baseURL, token string) *Client {
	return NewClient(config.LegacyConfig{BaseURL: baseURL, Token: token, TimeoutMS: 2000})
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "s3cret")
	if _, err := client.FetchProducts(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if gotAuth != "Bearer s3cret" {
		t.Fatalf("authorization want Bearer s3cret, got %q", gotAuth)
	}
}

func TestDecodeListAcceptsAllEnvelopes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bare array", `[{"_id":"p1","name":"Spinach"}]`},
		{"data wrapper", `{"data":[{"_id":"p1","name":"Spinach"}]}`},
		{"named wrapper", `{"products":[{"_id":"p1","name":"Spinach"}]}`},
		{"unknown wrapper", `{"result":[{"_id":"p1","name":"Spinach"}]}`},
	}
	for _, tc := range cases {
		var products []Product
		if err := decodeList([]byte(tc.body), []string{"products"}, &products); err != nil {
			t.Fatalf("%s: decode failed: %v", tc.name, err)
		}
		if len(products) != 1 || products[0].Name != "Spinach" {
			t.Fatalf("%s: decoded wrong: %v", tc.name, products)
		}
	}
}

func TestDecodeListRejectsNonList(t *testing.T) {
	var products []Product
	if err := decodeList([]byte(`{"message":"hello"}`), []string{"products"}, &products); err == nil {
		t.Fatalf("want error for payload without a list")
	}
}

func TestFetchSnapshotIsolatesFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			w.Write([]byte(`{"products":[{"_id":"p1","name":"Spinach","price":"30.00"}]}`))
		case "/api/categories":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/sliders":
			w.Write([]byte(`[]`))
		case "/api/pages":
			w.Write([]byte(`{"data":[{"_id":"g1","slug":"about","title":"About Us"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	snapshot := client.FetchSnapshot(context.Background())

	if len(snapshot.Products) != 1 {
		t.Fatalf("products want 1, got %d", len(snapshot.Products))
	}
	if len(snapshot.Pages) != 1 || snapshot.Pages[0].Slug != "about" {
		t.Fatalf("pages wrong: %v", snapshot.Pages)
	}
	if snapshot.Categories != nil {
		t.Fatalf("failed section must stay nil, got %v", snapshot.Categories)
	}
	if _, ok := snapshot.Errors["categories"]; !ok {
		t.Fatalf("category failure must be recorded, got %v", snapshot.Errors)
	}
	if len(snapshot.Errors) != 1 {
		t.Fatalf("only categories should fail, got %v", snapshot.Errors)
	}
}

func TestClientRejectsNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	if _, err := client.FetchSliders(context.Background()); err == nil {
		t.Fatalf("want error on 502")
	}
}
