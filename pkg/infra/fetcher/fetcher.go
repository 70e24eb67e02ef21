// Package fetcher calls a user-configured LLM endpoint and pulls the answer text out of its JSON reply.
package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout = 60 * time.Second
	errorBodyLimit = 512
)

// Target describes one upstream service under test.
type Target struct {
	URL          string            `json:"url"`
	Headers      map[string]string `json:"headers"`
	BodyTemplate map[string]any    `json:"body_template"`
	Variables    map[string]any    `json:"variables"`
	ResponsePath string            `json:"response_path"`
}

//go:generate mockery --name=Fetcher --dir=. --output=./mocks --filename=fetcher_mock.go --case=underscore --with-expecter

type Fetcher interface {
	Fetch(ctx context.Context, target Target) (string, error)
}

type fetcher struct {
	logger   *logrus.Logger
	client   httpx.Doer
	breakers *httpx.BreakerRegistry
	timeout  time.Duration
}

func New(logger *logrus.Logger, client httpx.Doer, breakers *httpx.BreakerRegistry, timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &fetcher{logger: logger, client: client, breakers: breakers, timeout: timeout}
}

func (f *fetcher) Fetch(ctx context.Context, target Target) (string, error) {
	if target.URL == "" {
		return "", ErrInvalidURL
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	body, err := RenderBody(target.BodyTemplate, target.Variables)
	if err != nil {
		return "", err
	}

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target.URL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip, br, zstd, deflate")
	for k, v := range target.Headers {
		req.Header.Set(k, v)
	}
	req.SetBodyRaw(body)

	call := func() error {
		if err := f.client.DoTimeout(req, resp, timeout); err != nil {
			return err
		}
		// only server-side failures count against the breaker
		if resp.StatusCode() >= fasthttp.StatusInternalServerError {
			return f.statusError(resp)
		}
		return nil
	}
	if f.breakers != nil {
		err = f.breakers.Get(breakerKey(target.URL)).Execute(call)
	} else {
		err = call()
	}
	if err != nil {
		f.logger.WithError(err).WithField("url", target.URL).Debug("upstream call failed")
		return "", err
	}
	if resp.StatusCode() < fasthttp.StatusOK || resp.StatusCode() >= fasthttp.StatusMultipleChoices {
		return "", f.statusError(resp)
	}

	decoded, err := httpx.DecodeResponse(resp)
	if err != nil {
		return "", fmt.Errorf("decode upstream response: %w", err)
	}
	return Extract(decoded, target.ResponsePath)
}

func (f *fetcher) statusError(resp *fasthttp.Response) *StatusError {
	body, err := httpx.DecodeResponse(resp)
	if err != nil {
		body = resp.Body()
	}
	if len(body) > errorBodyLimit {
		body = body[:errorBodyLimit]
	}
	return &StatusError{StatusCode: resp.StatusCode(), Body: string(body)}
}

func breakerKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
