package pushprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/roversapp/event-services/bookinggateway/pkg/httpclient"
)

type Provider interface {
	Send(ctx context.Context, notification Notification) (Response, error)
}

type Config struct {
	Enable   bool          `mapstructure:"enable"`
	URL      string        `mapstructure:"url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxRetry int           `mapstructure:"max_retry"`
}

// Notification is a topic publish: every user device subscribes to its own
// topic, so To carries the topic filter rather than a device token.
type Notification struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type Response struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

type PushProvider struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewPushProvider(cfg Config, client httpclient.HTTPClient) Provider {
	return &PushProvider{cfg: cfg, client: client}
}

func (p *PushProvider) Send(ctx context.Context, notification Notification) (Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(notification); err != nil {
		return Response{}, errors.New(ErrorCodeInvalidPayload)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "key=" + p.cfg.APIKey,
	}

	resp, err := p.client.Post(ctx, p.cfg.URL, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Response{}, errors.New(ErrorCodeTimeout)
		}

		return Response{}, errors.New(ErrorCodeNetworkError)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case 400, 404:
			return Response{}, errors.New(ErrorCodeInvalidTopic)
		case 401, 403:
			return Response{}, errors.New(ErrorCodeUnauthorized)
		default:
			return Response{}, errors.New(ErrorCodeServerError)
		}
	}

	var res Response
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Response{}, errors.New(ErrorCodeServerError)
	}

	return res, nil
}
