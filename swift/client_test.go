package swift

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequest(t *testing.T) {
	start := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 21, 12, 30, 0, 0, time.UTC)

	q := CreateRequest("043", start, end, FormatZip)
	assert.Contains(t, q, "buoy_name=microSWIFT+043")
	assert.Contains(t, q, "start=2024-07-20T00%3A00%3A00")
	assert.Contains(t, q, "end=2024-07-21T12%3A30%3A00")
	assert.Contains(t, q, "format=zip")
	assert.NotContains(t, q, "action")
}

// Zip bundles are served by the buoy-data endpoint; the rendered json and
// kml products come from the kml endpoint with its own action verb.
func TestProductRouting(t *testing.T) {
	c := &Client{BaseURL: "http://example.test"}
	start := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	zipURL := c.productURL("043", start, end, FormatZip)
	assert.Contains(t, zipURL, "http://example.test/services/buoy?action=get_data&")
	assert.Contains(t, zipURL, "format=zip")

	kmlURL := c.productURL("043", start, end, FormatKML)
	assert.Contains(t, kmlURL, "http://example.test/kml?action=kml&")
	assert.Contains(t, kmlURL, "format=kml")
	assert.NotContains(t, kmlURL, "get_data")

	jsonURL := c.productURL("043", start, end, FormatJSON)
	assert.Contains(t, jsonURL, "http://example.test/kml?action=kml&")
	assert.Contains(t, jsonURL, "format=json")
}

func TestPullHitsKMLEndpoint(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte("<kml/>"))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	product, err := c.Pull(context.Background(), "043",
		time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC), FormatKML)
	assert.NoError(t, err)
	assert.Equal(t, []byte("<kml/>"), product)
	assert.Equal(t, "/kml", gotPath)
	assert.Contains(t, gotQuery, "action=kml")
}

func TestPullMessages(t *testing.T) {
	bundle := zipBundle(t, map[string][]byte{
		"microSWIFT 043-a.sbd": {'7', 52, 1},
		"microSWIFT 043-b.sbd": []byte("diagnostic"),
	})

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write(bundle)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	files, err := c.PullMessages(context.Background(), []string{"043"},
		time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	assert.Contains(t, gotQuery, "buoy_name=microSWIFT+043")
	assert.Contains(t, gotQuery, "format=zip")
	assert.Len(t, files, 2)
	assert.Equal(t, []byte("diagnostic"), files["microSWIFT 043-b.sbd"])
}

func TestPullServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Pull(context.Background(), "043", time.Now(), time.Now(), FormatJSON)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestExtractZipRejectsGarbage(t *testing.T) {
	_, err := ExtractZip([]byte("not a zip"))
	assert.Error(t, err)
}

func zipBundle(t *testing.T, files map[string][]byte) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		assert.NoError(t, err)
		_, err = f.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return buf.Bytes()
}
