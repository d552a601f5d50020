package pushprovider_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/roversapp/event-services/bookinggateway/pkg/mocks"
	"github.com/roversapp/event-services/bookinggateway/pkg/pushprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func matchNotificationBody(notification pushprovider.Notification) interface{} {
	return mock.MatchedBy(func(body interface{}) bool {
		buf, ok := body.(*bytes.Buffer)
		if !ok {
			return false
		}

		var n pushprovider.Notification
		if err := json.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(&n); err != nil {
			return false
		}

		return n.To == notification.To && n.Title == notification.Title && n.Body == notification.Body
	})
}

func TestPushProvider_Send(t *testing.T) {
	cfg := pushprovider.Config{
		Enable:   true,
		URL:      "https://push.provider.test/send",
		APIKey:   "test-key",
		Timeout:  5 * time.Second,
		MaxRetry: 3,
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "key=test-key",
	}

	notification := pushprovider.Notification{
		To:    "user-42-topic",
		Title: "Ticket Booked",
		Body:  "Your booking #9001 has been confirmed",
	}

	t.Run("successful send", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := pushprovider.NewPushProvider(cfg, mockClient)

		body := `{"message_id": "push-123", "status": "ok"}`
		successResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchNotificationBody(notification),
			headers).Return(successResponse, nil)

		response, err := provider.Send(context.Background(), notification)

		assert.NoError(t, err)
		assert.Equal(t, "push-123", response.MessageID)
		assert.Equal(t, "ok", response.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := pushprovider.NewPushProvider(cfg, mockClient)

		mockClient.On("Post", context.Background(), cfg.URL, matchNotificationBody(notification),
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := provider.Send(context.Background(), notification)

		assert.Error(t, err)
		assert.Equal(t, pushprovider.ErrorCodeTimeout, err.Error())
		mockClient.AssertExpectations(t)
	})

	t.Run("network error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := pushprovider.NewPushProvider(cfg, mockClient)

		mockClient.On("Post", context.Background(), cfg.URL, matchNotificationBody(notification),
			headers).Return((*http.Response)(nil), io.ErrUnexpectedEOF)

		_, err := provider.Send(context.Background(), notification)

		assert.Error(t, err)
		assert.Equal(t, pushprovider.ErrorCodeNetworkError, err.Error())
	})

	t.Run("invalid topic on 404", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := pushprovider.NewPushProvider(cfg, mockClient)

		notFound := &http.Response{
			StatusCode: 404,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchNotificationBody(notification),
			headers).Return(notFound, nil)

		_, err := provider.Send(context.Background(), notification)

		assert.Error(t, err)
		assert.Equal(t, pushprovider.ErrorCodeInvalidTopic, err.Error())
	})

	t.Run("unauthorized on 401", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := pushprovider.NewPushProvider(cfg, mockClient)

		unauthorized := &http.Response{
			StatusCode: 401,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchNotificationBody(notification),
			headers).Return(unauthorized, nil)

		_, err := provider.Send(context.Background(), notification)

		assert.Error(t, err)
		assert.Equal(t, pushprovider.ErrorCodeUnauthorized, err.Error())
	})

	t.Run("server error on 500", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := pushprovider.NewPushProvider(cfg, mockClient)

		serverError := &http.Response{
			StatusCode: 500,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchNotificationBody(notification),
			headers).Return(serverError, nil)

		_, err := provider.Send(context.Background(), notification)

		assert.Error(t, err)
		assert.Equal(t, pushprovider.ErrorCodeServerError, err.Error())
	})

	t.Run("malformed response body", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := pushprovider.NewPushProvider(cfg, mockClient)

		malformed := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{invalid json`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchNotificationBody(notification),
			headers).Return(malformed, nil)

		_, err := provider.Send(context.Background(), notification)

		assert.Error(t, err)
		assert.Equal(t, pushprovider.ErrorCodeServerError, err.Error())
	})
}
