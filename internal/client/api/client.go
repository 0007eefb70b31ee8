package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yorutsuke/ledgersync/internal/models"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

//go:generate moq -out ../sync/apiclient_mock.go -pkg sync . ClientAPI

// ClientAPI defines interface for the remote authoritative store.
// Both calls are idempotent: re-sending identical content is safe.
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// GetSalt получает public_salt пользователя
	GetSalt(ctx context.Context, email string) (*api.SaltResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// BulkUpsert sends one batch of locally modified transactions.
	// A failed call returns *TransportError; per-record rejections come
	// back in BulkUpsertResponse.FailedIDs.
	BulkUpsert(ctx context.Context, accessToken string, req api.BulkUpsertRequest) (*api.BulkUpsertResponse, error)

	// Query fetches the owner's transactions, optionally date-filtered
	Query(ctx context.Context, accessToken, owner string, dateRange *models.DateRange) ([]api.TransactionRecord, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// In-flight вызовы не отменяются на полпути: timeout —
			// ответственность транспорта.
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, email string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	path := "/api/v1/auth/salt/" + url.PathEscape(email)
	err := c.doRequest(ctx, "GET", path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// BulkUpsert отправляет пакет локально измененных транзакций на сервер
func (c *Client) BulkUpsert(ctx context.Context, accessToken string, req api.BulkUpsertRequest) (*api.BulkUpsertResponse, error) {
	var resp api.BulkUpsertResponse
	err := c.doRequest(ctx, "POST", "/api/v1/transactions/bulk-upsert", accessToken, req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Query запрашивает транзакции владельца, опционально фильтруя по датам
func (c *Client) Query(ctx context.Context, accessToken, owner string, dateRange *models.DateRange) ([]api.TransactionRecord, error) {
	params := url.Values{}
	params.Set("owner", owner)
	if dateRange != nil {
		if !dateRange.From.IsZero() {
			params.Set("from", dateRange.From.Format(time.RFC3339))
		}
		if !dateRange.To.IsZero() {
			params.Set("to", dateRange.To.Format(time.RFC3339))
		}
	}

	var resp api.QueryResponse
	path := "/api/v1/transactions?" + params.Encode()
	err := c.doRequest(ctx, "GET", path, accessToken, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// doRequest выполняет HTTP запрос. Любая транспортная ошибка (сеть,
// не-2xx статус) возвращается как *TransportError.
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	fullURL := c.baseURL + path
	op := method + " " + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		te := &TransportError{Op: op, StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			te.Message = errResp.Error
		} else {
			te.Message = string(respBody)
		}
		return te
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
