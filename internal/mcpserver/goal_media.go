package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/lifetrack/internal/models"
)

const maxMediaSize = 10 << 20 // 10 MB

var allowedMedia = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
	"video/mp4":     true,
	"video/webm":    true,
}

func (s *Server) addGoalMedia(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireFloat("goal_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rawURL, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entry, err := mediaEntry(ctx, rawURL, req.GetBool("embed", false))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	g, err := s.svc.Goal(ctx, int64(id))
	if err != nil {
		return toolError(err)
	}
	media := append(append([]string{}, g.MotivationMedia...), entry)
	g, err = s.svc.UpdateGoal(ctx, g.ID, models.GoalPatch{MotivationMedia: &media})
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("goal %d now has %d media item(s)", g.ID, len(g.MotivationMedia))), nil
}

// mediaEntry turns the caller's reference into the string stored on the
// goal. Data URIs are checked and re-encoded; http(s) URLs are kept as links
// unless embed asks for the content to be downloaded and inlined.
func mediaEntry(ctx context.Context, rawURL string, embed bool) (string, error) {
	if strings.HasPrefix(rawURL, "data:") {
		data, mime, err := decodeDataURI(rawURL)
		if err != nil {
			return "", err
		}
		if err := checkMedia(data, mime); err != nil {
			return "", err
		}
		return encodeDataURI(mime, data), nil
	}

	parsed, err := parseRemoteURL(rawURL)
	if err != nil {
		return "", err
	}
	if !embed {
		return parsed.String(), nil
	}
	data, mime, err := fetchHTTP(ctx, parsed)
	if err != nil {
		return "", err
	}
	if err := checkMedia(data, mime); err != nil {
		return "", err
	}
	return encodeDataURI(mime, data), nil
}

// decodeDataURI parses a data:[<mediatype>][;base64],<data> URI.
func decodeDataURI(uri string) ([]byte, string, error) {
	meta, encoded, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, "", fmt.Errorf("invalid data URI: missing comma separator")
	}
	if !strings.Contains(meta, ";base64") {
		return nil, "", fmt.Errorf("only base64 data URIs are supported")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, "", fmt.Errorf("invalid base64 data: %w", err)
		}
	}

	mime := strings.Split(strings.TrimSuffix(meta, ";base64"), ";")[0]
	return data, mime, nil
}

func encodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func parseRemoteURL(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s (only http/https or data:)", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: missing host")
	}
	return parsed, nil
}

// fetchHTTP downloads a file from an HTTP/HTTPS URL with security checks.
func fetchHTTP(ctx context.Context, u *url.URL) ([]byte, string, error) {
	if err := checkBlockedHost(u.Hostname()); err != nil {
		return nil, "", err
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("too many redirects (max 5)")
			}
			return checkBlockedHost(req.URL.Hostname())
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body failed: %w", err)
	}
	if len(data) > maxMediaSize {
		return nil, "", fmt.Errorf("file too large: exceeds %d bytes", maxMediaSize)
	}

	mime := strings.TrimSpace(strings.Split(resp.Header.Get("Content-Type"), ";")[0])
	if mime == "" {
		mime = strings.Split(http.DetectContentType(data), ";")[0]
	}
	return data, mime, nil
}

// checkBlockedHost rejects loopback and cloud metadata addresses.
func checkBlockedHost(host string) error {
	if host == "metadata.google.internal" {
		return fmt.Errorf("blocked host: %s", host)
	}

	ip := net.ParseIP(host)
	if ip == nil {
		ips, lookupErr := net.LookupIP(host)
		if lookupErr != nil || len(ips) == 0 {
			return nil //nolint:nilerr // let http.Client handle DNS failures
		}
		ip = ips[0]
	}

	if ip.IsLoopback() {
		return fmt.Errorf("blocked host: loopback address %s", host)
	}
	// AWS/GCP/Azure metadata endpoint.
	if ip.Equal(net.ParseIP("169.254.169.254")) {
		return fmt.Errorf("blocked host: cloud metadata address %s", host)
	}
	return nil
}

// checkMedia enforces the size limit and verifies that the content matches
// the declared MIME type.
func checkMedia(data []byte, mime string) error {
	if !allowedMedia[mime] {
		return fmt.Errorf("unsupported media type: %s (images and mp4/webm video only)", mime)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty media")
	}
	if len(data) > maxMediaSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", len(data), maxMediaSize)
	}

	if mime == "image/svg+xml" {
		prefix := data
		if len(prefix) > 1024 {
			prefix = prefix[:1024]
		}
		if !bytes.Contains(prefix, []byte("<svg")) {
			return fmt.Errorf("content does not appear to be a valid SVG (missing <svg tag)")
		}
		return nil
	}

	detected := strings.Split(http.DetectContentType(data), ";")[0]
	if detected != mime {
		return fmt.Errorf("content does not match %s (detected: %s)", mime, detected)
	}
	return nil
}
