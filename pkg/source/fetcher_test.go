package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFetchFromFile(t *testing.T) {
	// Create a test file.
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "portfolio.YAML")
	testContent := "sections: []\n"

	err := os.WriteFile(testFile, []byte(testContent), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Test fetching.
	doc, err := fetchFromFile(testFile)
	if err != nil {
		t.Fatalf("Failed to fetch from file: %v", err)
	}

	if string(doc.Data) != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(doc.Data))
	}

	if doc.Ext != ".yaml" {
		t.Errorf("Expected extension '.yaml', got '%s'", doc.Ext)
	}
}

func TestFetchFromFileNonexistent(t *testing.T) {
	_, err := fetchFromFile("/nonexistent/file.json")
	if err == nil {
		t.Error("Expected error fetching nonexistent file, got nil")
	}
}

func TestFetchFromFileEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	emptyFile := filepath.Join(tmpDir, "empty.json")

	err := os.WriteFile(emptyFile, []byte("  \n"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err = fetchFromFile(emptyFile)
	if err == nil {
		t.Error("Expected error fetching empty file, got nil")
	}
}

func TestFetchFromURL(t *testing.T) {
	// Create a test server.
	testContent := `{"sections": []}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(testContent))
	}))
	defer server.Close()

	ctx := context.Background()
	doc, err := fetchFromURL(ctx, server.URL+"/portfolio.json?v=2")
	if err != nil {
		t.Fatalf("Failed to fetch from URL: %v", err)
	}

	if string(doc.Data) != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(doc.Data))
	}

	if doc.Ext != ".json" {
		t.Errorf("Expected extension '.json', got '%s'", doc.Ext)
	}

	if doc.ContentType != "application/json" {
		t.Errorf("Expected content type 'application/json', got '%s'", doc.ContentType)
	}
}

func TestFetchFromURLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	ctx := context.Background()
	_, err := fetchFromURL(ctx, server.URL)
	if err == nil {
		t.Error("Expected error for 404 response, got nil")
	}
}

func TestFetchFromURLEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := fetchFromURL(context.Background(), server.URL)
	if err == nil {
		t.Error("Expected error for empty response, got nil")
	}
}

func TestFetchWithContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := FetchWithContext(ctx, server.URL)
	if err == nil {
		t.Error("Expected timeout error, got nil")
	}
}

func TestFetchDetectsFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "resume.json")

	err := os.WriteFile(testFile, []byte(`{"name": "Jane"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	doc, err := Fetch(testFile)
	if err != nil {
		t.Fatalf("Failed to fetch: %v", err)
	}

	if doc.Name != testFile {
		t.Errorf("Expected name '%s', got '%s'", testFile, doc.Name)
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com/portfolio.json", true},
		{"http://localhost:8080/p", true},
		{"ftp://example.com/p.json", false},
		{"portfolio.json", false},
		{"/tmp/portfolio.json", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsURL(tt.input); got != tt.want {
				t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
