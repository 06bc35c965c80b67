package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Lookup_KnownRuntimeSkipsNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected network call for table entry: %s", r.URL)
	}))
	defer server.Close()

	client := New(server.Client(), server.URL, nil)

	for id, want := range KnownRuntimes() {
		result, err := client.Lookup(context.Background(), id)
		if err != nil {
			t.Fatalf("Lookup(%d) error: %v", id, err)
		}
		if !result.Success {
			t.Errorf("Lookup(%d).Success = false, want true", id)
		}
		if !result.FromTable {
			t.Errorf("Lookup(%d).FromTable = false, want true", id)
		}
		if result.Name != want {
			t.Errorf("Lookup(%d).Name = %q, want %q", id, result.Name, want)
		}
	}
}

func TestClient_Lookup_ProtonExperimental(t *testing.T) {
	client := New(nil, "", nil)

	result, err := client.Lookup(context.Background(), 1493710)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Name != "Proton Experimental" {
		t.Errorf("result = %+v, want success with %q", result, "Proton Experimental")
	}
}

func TestClient_Lookup_ExtraRuntimesMergedOverBuiltin(t *testing.T) {
	client := New(nil, "", map[uint32]string{
		1493710: "Proton Experimental (bleeding edge)",
		1161040: "Proton BattlEye Runtime",
	})

	result, err := client.Lookup(context.Background(), 1493710)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Name != "Proton Experimental (bleeding edge)" {
		t.Errorf("Name = %q, want config override to win", result.Name)
	}

	if name, ok := client.RuntimeName(1161040); !ok || name != "Proton BattlEye Runtime" {
		t.Errorf("RuntimeName(1161040) = %q, %v; want added entry", name, ok)
	}
}

func TestClient_Lookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/api/appdetails" {
			t.Errorf("path = %q, want /api/appdetails", got)
		}
		if got := r.URL.Query().Get("appids"); got != "440" {
			t.Errorf("appids = %q, want 440", got)
		}
		_, _ = w.Write([]byte(`{"440":{"success":true,"data":{"name":"Team Fortress 2"}}}`))
	}))
	defer server.Close()

	client := New(server.Client(), server.URL, nil)

	result, err := client.Lookup(context.Background(), 440)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Error("Success = false, want true")
	}
	if result.Name != "Team Fortress 2" {
		t.Errorf("Name = %q, want %q", result.Name, "Team Fortress 2")
	}
	if result.FromTable {
		t.Error("FromTable = true, want false for a store lookup")
	}
}

func TestClient_Lookup_SuccessFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"12345":{"success":false}}`))
	}))
	defer server.Close()

	client := New(server.Client(), server.URL, nil)

	result, err := client.Lookup(context.Background(), 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Error("Success = true, want false")
	}
	if result.Name != "Unknown Application" {
		t.Errorf("Name = %q, want %q", result.Name, "Unknown Application")
	}
}

func TestClient_Lookup_MissingNameDefaultsToUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"440":{"success":true,"data":{}}}`))
	}))
	defer server.Close()

	client := New(server.Client(), server.URL, nil)

	result, err := client.Lookup(context.Background(), 440)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Name != "Unknown" {
		t.Errorf("Name = %q, want %q", result.Name, "Unknown")
	}
}

func TestClient_Lookup_MissingKeyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"99999":{"success":true}}`))
	}))
	defer server.Close()

	client := New(server.Client(), server.URL, nil)

	if _, err := client.Lookup(context.Background(), 440); err == nil {
		t.Fatal("expected error for response missing the app key, got nil")
	}
}

func TestClient_Lookup_MalformedBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer server.Close()

	client := New(server.Client(), server.URL, nil)

	if _, err := client.Lookup(context.Background(), 440); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestClient_Lookup_TransportErrorIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := New(nil, server.URL, nil)

	if _, err := client.Lookup(context.Background(), 440); err == nil {
		t.Fatal("expected transport error, got nil")
	}
}
