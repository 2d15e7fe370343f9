package printful

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"printbulk/internal/logger"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL, apiKey string, logger *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// RegisterFile asks Printful to ingest an image from the given URL and
// returns the resulting file id. It makes exactly one attempt; retry
// policy belongs to the caller.
func (c *Client) RegisterFile(sourceURL string) (int64, error) {
	body, err := json.Marshal(registerFileRequest{URL: sourceURL})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal file request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/files", bytes.NewBuffer(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(respBody))
	}

	var fileResp registerFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&fileResp); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if fileResp.Result.ID == 0 {
		return 0, fmt.Errorf("response contains no file id")
	}

	return fileResp.Result.ID, nil
}

// CreateProduct submits one product-creation call. It makes exactly one
// attempt; a failed creation carries the status and raw body in the error.
func (c *Client) CreateProduct(createReq *CreateProductRequest) (*CreateProductResponse, error) {
	body, err := json.Marshal(createReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/store/products", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(respBody))
	}

	var productResp CreateProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&productResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &productResp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
}
