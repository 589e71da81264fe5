package uploads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Deleter is the slice of the upload service this server consumes:
// batch deletion of stored objects by storage key. Uploads themselves
// happen out-of-band between the client and the upload service.
type Deleter interface {
	DeleteFiles(keys []string) error
}

type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type deleteFilesRequest struct {
	FileKeys []string `json:"fileKeys"`
}

func (c *Client) DeleteFiles(keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	body, err := json.Marshal(deleteFilesRequest{FileKeys: keys})
	if err != nil {
		return fmt.Errorf("failed to encode delete request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL+"/deleteFiles", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call upload service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upload service delete returned status %d", resp.StatusCode)
	}

	return nil
}
