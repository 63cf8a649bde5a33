package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestRequest_DecodesJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/cafes" {
			t.Errorf("expected path /cafes; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Blue Cup"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)

	var response struct {
		Name string `json:"name"`
	}
	err := client.Request("GET", "/cafes", nil, nil, nil, &response)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if response.Name != "Blue Cup" {
		t.Errorf("Name = %q; want %q", response.Name, "Blue Cup")
	}
}

func TestRequest_AppendsQueryValues(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)

	query := url.Values{}
	query.Set("page", "0")
	query.Add("tags", "Wi-Fi")
	query.Add("tags", "Vegan")

	if err := client.Request("GET", "/cafes", query, nil, nil, nil); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if gotQuery.Get("page") != "0" {
		t.Errorf("page = %q; want 0", gotQuery.Get("page"))
	}
	if len(gotQuery["tags"]) != 2 {
		t.Errorf("tags = %v; want two values", gotQuery["tags"])
	}
}

func TestRequest_NonSuccessStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)

	err := client.Request("GET", "/cafes", nil, nil, nil, nil)
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}
