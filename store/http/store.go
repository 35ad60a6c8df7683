// Package http is an HTTP-backed content-addressed store, talking to a
// real store collaborator over REST: POST to store a blob and receive a
// content-id, GET by content-id to retrieve it.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
)

// Store implements store.Store over HTTP, POSTing blobs to
// {baseURL}/objects and GETting them from {baseURL}/objects/{id}.
type Store struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new HTTP-backed content store.
func New(baseURL string) *Store {
	return &Store{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithClient creates an HTTP-backed content store with a custom
// http.Client, for callers that need a different timeout or transport.
func NewWithClient(baseURL string, httpClient *http.Client) *Store {
	return &Store{baseURL: baseURL, httpClient: httpClient}
}

type putResponse struct {
	ContentID string `json:"content_id"`
}

func (s *Store) Put(ctx context.Context, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/objects", bytes.NewReader(data))
	if err != nil {
		return "", errs.Storage(errs.CodePutFailed, "build put request", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errs.Storage(errs.CodePutFailed, "put request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Storage(errs.CodePutFailed, "read put response", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errs.Storage(errs.CodePutFailed, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body)), nil)
	}

	var parsed putResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errs.Storage(errs.CodePutFailed, "parse put response", err)
	}
	if parsed.ContentID == "" {
		return "", errs.Storage(errs.CodePutFailed, "put response missing content_id", nil)
	}

	return parsed.ContentID, nil
}

func (s *Store) Get(ctx context.Context, contentID string) ([]byte, error) {
	url := s.baseURL + "/objects/" + contentID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Storage(errs.CodeGetFailed, "build get request", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errs.Storage(errs.CodeGetFailed, "get request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Storage(errs.CodeGetFailed, "read get response", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.Storage(errs.CodeGetFailed, "content not found: "+contentID, nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.Storage(errs.CodeGetFailed, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body)), nil)
	}

	return body, nil
}
