package fetcher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/fetcher"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/httpx/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func chatTarget() fetcher.Target {
	return fetcher.Target{
		URL:     "https://llm.example.com/v1/chat",
		Headers: map[string]string{"Authorization": "Bearer k"},
		BodyTemplate: map[string]any{
			"model":    "{{model}}",
			"messages": []any{map[string]any{"role": "user", "content": "{{question}}"}},
		},
		Variables:    map[string]any{"model": "m-1", "question": `Is "this" ok?`},
		ResponsePath: "choices[0].message.content",
	}
}

func respond(status int, body string) func(*fasthttp.Request, *fasthttp.Response, time.Duration) error {
	return func(_ *fasthttp.Request, resp *fasthttp.Response, _ time.Duration) error {
		resp.SetStatusCode(status)
		resp.SetBodyString(body)
		return nil
	}
}

func TestFetcher_Fetch(t *testing.T) {
	doer := mocks.NewDoer(t)
	doer.EXPECT().
		DoTimeout(mock.MatchedBy(func(req *fasthttp.Request) bool {
			return string(req.Header.Method()) == fasthttp.MethodPost &&
				string(req.Header.Peek("Authorization")) == "Bearer k" &&
				string(req.Body()) == `{"messages":[{"content":"Is \"this\" ok?","role":"user"}],"model":"m-1"}`
		}), mock.Anything, mock.Anything).
		RunAndReturn(respond(200, `{"choices":[{"message":{"content":"yes"}}]}`)).Once()

	f := fetcher.New(newLogger(), doer, httpx.NewBreakerRegistry(time.Minute, 5), time.Second)
	got, err := f.Fetch(context.Background(), chatTarget())

	require.NoError(t, err)
	assert.Equal(t, "yes", got)
}

func TestFetcher_Fetch_Errors(t *testing.T) {
	t.Run("non 2xx status", func(t *testing.T) {
		doer := mocks.NewDoer(t)
		doer.EXPECT().DoTimeout(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(respond(429, `{"error":"slow down"}`)).Once()

		f := fetcher.New(newLogger(), doer, nil, time.Second)
		_, err := f.Fetch(context.Background(), chatTarget())

		var statusErr *fetcher.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 429, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "slow down")
	})

	t.Run("server error through breaker", func(t *testing.T) {
		doer := mocks.NewDoer(t)
		doer.EXPECT().DoTimeout(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(respond(503, "unavailable")).Once()

		f := fetcher.New(newLogger(), doer, httpx.NewBreakerRegistry(time.Minute, 1), time.Second)
		_, err := f.Fetch(context.Background(), chatTarget())

		var statusErr *fetcher.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 503, statusErr.StatusCode)

		_, err = f.Fetch(context.Background(), chatTarget())
		assert.ErrorContains(t, err, "breaker (llm.example.com)")
	})

	t.Run("missing path", func(t *testing.T) {
		doer := mocks.NewDoer(t)
		doer.EXPECT().DoTimeout(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(respond(200, `{"choices":[]}`)).Once()

		f := fetcher.New(newLogger(), doer, nil, time.Second)
		_, err := f.Fetch(context.Background(), chatTarget())

		assert.ErrorIs(t, err, fetcher.ErrPathNotFound)
	})

	t.Run("transport error", func(t *testing.T) {
		doer := mocks.NewDoer(t)
		doer.EXPECT().DoTimeout(mock.Anything, mock.Anything, mock.Anything).
			Return(fasthttp.ErrTimeout).Once()

		f := fetcher.New(newLogger(), doer, nil, time.Second)
		_, err := f.Fetch(context.Background(), chatTarget())

		assert.True(t, errors.Is(err, fasthttp.ErrTimeout))
	})

	t.Run("missing url", func(t *testing.T) {
		f := fetcher.New(newLogger(), mocks.NewDoer(t), nil, time.Second)
		_, err := f.Fetch(context.Background(), fetcher.Target{})
		assert.ErrorIs(t, err, fetcher.ErrInvalidURL)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f := fetcher.New(newLogger(), mocks.NewDoer(t), nil, time.Second)
		_, err := f.Fetch(ctx, chatTarget())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExtract(t *testing.T) {
	body := []byte(`{"choices":[{"message":{"content":"hi"}}],"usage":{"total":3},"data":[[1,2]]}`)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"nested string", "choices[0].message.content", "hi"},
		{"object leaf as json", "usage", `{"total":3}`},
		{"number leaf", "usage.total", "3"},
		{"double index", "data[0][1]", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fetcher.Extract(body, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := fetcher.Extract(body, "choices[3].message")
	assert.ErrorIs(t, err, fetcher.ErrPathNotFound)

	_, err = fetcher.Extract([]byte("not json"), "a")
	assert.Error(t, err)
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"choices", "0", "message", "content"}, fetcher.SplitPath("choices[0].message.content"))
	assert.Equal(t, []string{"0", "text"}, fetcher.SplitPath("[0].text"))
	assert.Empty(t, fetcher.SplitPath(""))
}

func TestRenderBody(t *testing.T) {
	got, err := fetcher.RenderBody(map[string]any{"n": "{{n}}", "q": "{{q}}"}, map[string]any{"n": 5, "q": "line\nbreak"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":"5","q":"line\nbreak"}`, string(got))
}
