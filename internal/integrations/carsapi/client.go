package carsapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ResourcePath путь ресурса автомобилей
const ResourcePath = "/api/Cars"

// maxErrorBody сколько байт тела неожиданного ответа попадает в текст ошибки
const maxErrorBody = 512

// Client клиент для работы с Cars API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// Option настройка клиента
type Option func(*Client)

// WithTransport подменяет транспорт HTTP клиента (метрики, тесты)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// InsecureTransport транспорт без проверки TLS сертификата (dev сертификат на localhost)
func InsecureTransport() http.RoundTripper {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	return transport
}

// NewClient создает новый экземпляр клиента Cars API
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List получает список всех автомобилей
func (c *Client) List(ctx context.Context) ([]Car, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+ResourcePath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	cars := make([]Car, 0)
	if err := json.NewDecoder(resp.Body).Decode(&cars); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched %d cars", len(cars))
	return cars, nil
}

// Get получает автомобиль по ID
func (c *Client) Get(ctx context.Context, id string) (*Car, error) {
	resp, err := c.do(ctx, http.MethodGet, c.carURL(id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCarNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var car Car
	if err := json.NewDecoder(resp.Body).Decode(&car); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &car, nil
}

// Create создает автомобиль. ID назначает сервер, поле ID запроса игнорируется.
func (c *Client) Create(ctx context.Context, car Car) (*Car, error) {
	car.ID = ""

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+ResourcePath, car)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, decodeValidation(resp)
	default:
		return nil, unexpectedStatus(resp)
	}

	var created Car
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("%w: created car has no id", ErrInvalidResponse)
	}

	c.log.Info("Created car id=%s", created.ID)
	return &created, nil
}

// Update обновляет автомобиль с указанным ID
func (c *Client) Update(ctx context.Context, id string, car Car) error {
	car.ID = id

	resp, err := c.do(ctx, http.MethodPut, c.carURL(id), car)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.log.Info("Updated car id=%s", id)
		return nil
	case http.StatusBadRequest:
		return decodeValidation(resp)
	case http.StatusNotFound:
		return ErrCarNotFound
	default:
		return unexpectedStatus(resp)
	}
}

// Delete удаляет автомобиль с указанным ID
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, c.carURL(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.log.Info("Deleted car id=%s", id)
		return nil
	case http.StatusNotFound:
		return ErrCarNotFound
	default:
		return unexpectedStatus(resp)
	}
}

func (c *Client) carURL(id string) string {
	return c.baseURL + ResourcePath + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, target string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s %s failed: %v", method, target, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

// decodeValidation разбирает тело 400. Поддерживается {"errors": {...}} и голый объект поле -> сообщения.
func decodeValidation(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read validation response: %v", ErrInvalidResponse, err)
	}

	var problem ValidationProblem
	if err := json.Unmarshal(body, &problem); err == nil && len(problem.Errors) > 0 {
		return validationOrGeneric(problem.Errors, body)
	}

	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		return validationOrGeneric(fields, body)
	}

	return fmt.Errorf("%w: bad request without validation messages: %s", ErrInvalidResponse, truncate(body))
}

func validationOrGeneric(fields map[string][]string, body []byte) error {
	verr := &ValidationError{Fields: fields}
	if verr.Message() == "" {
		return fmt.Errorf("%w: bad request without validation messages: %s", ErrInvalidResponse, truncate(body))
	}
	return verr
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody])
	}
	return string(body)
}
