// Package swift queries the UW-APL SWIFT server for microSWIFT telemetry
// products. It builds the URL-encoded buoy query, fetches the zip bundle of
// SBD messages, and unpacks it into the filename-to-bytes map the sbd
// package consumes. No retries and no credentials; one query is one GET.
package swift

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultServer is the production SWIFT server root. The zip bundle of SBD
// messages is served by the buoy-data endpoint, while the rendered json and
// kml products come from the kml endpoint with its own action verb.
const DefaultServer = "http://swiftserver.apl.washington.edu"

const (
	dataPath   = "/services/buoy"
	dataAction = "get_data"
	kmlPath    = "/kml"
	kmlAction  = "kml"
)

const queryTimeLayout = "2006-01-02T15:04:05"

// Format selects the product the server renders for a query.
type Format string

const (
	FormatZip  Format = "zip"
	FormatJSON Format = "json"
	FormatKML  Format = "kml"
)

// Client talks to one SWIFT server. The zero value uses the production
// server and http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultServer
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// CreateRequest builds the URL-encoded query string for one buoy over a
// UTC date range. The endpoint's action verb is not part of the query; it
// belongs to the path the product is served from.
func CreateRequest(buoyID string, start, end time.Time, format Format) string {
	v := url.Values{}
	v.Set("buoy_name", "microSWIFT "+buoyID)
	v.Set("start", start.UTC().Format(queryTimeLayout))
	v.Set("end", end.UTC().Format(queryTimeLayout))
	v.Set("format", string(format))
	return v.Encode()
}

// productURL routes a query to the endpoint that renders the requested
// format: zip bundles come from the buoy-data endpoint, json and kml from
// the kml endpoint.
func (c *Client) productURL(buoyID string, start, end time.Time, format Format) string {
	path, action := dataPath, dataAction
	if format != FormatZip {
		path, action = kmlPath, kmlAction
	}
	return c.baseURL() + path + "?action=" + action + "&" + CreateRequest(buoyID, start, end, format)
}

// Pull fetches the raw product for one buoy: a zip bundle, JSON text, or a
// KML drift track, depending on format.
func (c *Client) Pull(ctx context.Context, buoyID string, start, end time.Time, format Format) ([]byte, error) {
	reqURL := c.productURL(buoyID, start, end, format)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("swift server returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// PullMessages fetches the zip bundle for each buoy and unpacks them all
// into one filename-to-content map. The zip files never touch disk.
func (c *Client) PullMessages(ctx context.Context, buoyIDs []string, start, end time.Time) (map[string][]byte, error) {
	files := make(map[string][]byte)
	for _, id := range buoyIDs {
		bundle, err := c.Pull(ctx, id, start, end, FormatZip)
		if err != nil {
			return nil, fmt.Errorf("buoy %s: %w", id, err)
		}
		unpacked, err := ExtractZip(bundle)
		if err != nil {
			return nil, fmt.Errorf("buoy %s: %w", id, err)
		}
		for name, content := range unpacked {
			files[name] = content
		}
	}
	return files, nil
}

// ExtractZip unpacks an in-memory zip bundle into a filename-to-content
// map, skipping directories.
func ExtractZip(bundle []byte) (map[string][]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(bundle), int64(len(bundle)))
	if err != nil {
		return nil, err
	}
	files := make(map[string][]byte, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		files[f.Name] = content
	}
	return files, nil
}
