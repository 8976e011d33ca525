// Package source reads raw input documents from a file path or an http(s) URL.
package source

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "portfolio-render/1.0"
)

// Document is raw input together with a hint of its format.
type Document struct {
	// Name is the file path or URL the data came from.
	Name string

	// Ext is the lower-cased extension of Name, e.g. ".yaml". It may be
	// empty for URLs without one.
	Ext string

	// ContentType is the response content type for URLs.
	ContentType string

	Data []byte
}

// Fetch retrieves a document from file or URL.
func Fetch(input string) (doc Document, err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err = FetchWithContext(ctx, input)
	return doc, err
}

// FetchWithContext retrieves a document with context.
func FetchWithContext(ctx context.Context, input string) (doc Document, err error) {
	if IsURL(input) {
		doc, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch document from URL: %s", input)
			return doc, err
		}
		return doc, err
	}

	doc, err = fetchFromFile(input)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch document from file: %s", input)
		return doc, err
	}

	return doc, err
}

// IsURL reports whether input is an http or https URL.
func IsURL(input string) (isURL bool) {
	parsedURL, err := url.Parse(input)
	isURL = err == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") && parsedURL.Host != ""
	return isURL
}

// fetchFromFile reads a document from disk.
func fetchFromFile(filePath string) (doc Document, err error) {
	var data []byte
	data, err = os.ReadFile(filePath)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", filePath)
		return doc, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		err = errors.New("file is empty")
		return doc, err
	}

	doc = Document{
		Name: filePath,
		Ext:  strings.ToLower(filepath.Ext(filePath)),
		Data: data,
	}
	return doc, err
}

// fetchFromURL retrieves a document over HTTP.
func fetchFromURL(ctx context.Context, urlStr string) (doc Document, err error) {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	var resp *resty.Response
	resp, err = client.R().SetContext(ctx).Get(urlStr)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return doc, err
	}

	if resp.StatusCode() != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode())
		return doc, err
	}

	data := resp.Body()
	if len(bytes.TrimSpace(data)) == 0 {
		err = errors.New("fetched content is empty")
		return doc, err
	}

	doc = Document{
		Name:        urlStr,
		Ext:         urlExt(urlStr),
		ContentType: resp.Header().Get("Content-Type"),
		Data:        data,
	}
	return doc, err
}

func urlExt(urlStr string) (ext string) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return ext
	}
	ext = strings.ToLower(path.Ext(parsedURL.Path))
	return ext
}
