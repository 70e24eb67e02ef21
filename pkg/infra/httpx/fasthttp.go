package httpx

import (
	"crypto/tls"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxConnsPerHost     = 512
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultReadBufferSize      = 4096
	DefaultWriteBufferSize     = 4096
	DefaultMaxResponseBodySize = 10 * 1024 * 1024 // 10MB
	DefaultUserAgent           = "TrustDrift/1.0"
)

//go:generate mockery --name=Doer --dir=. --output=./mocks --filename=doer_mock.go --case=underscore --with-expecter

// Doer is the subset of *fasthttp.Client the upstream callers rely on.
type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type ClientOptions struct {
	Timeout             time.Duration
	InsecureSkipVerify  bool
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	ReadBufferSize      int
	WriteBufferSize     int
	MaxResponseBodySize int
	UserAgent           string
}

type ClientOption func(*ClientOptions)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *ClientOptions) {
		o.Timeout = timeout
	}
}

// WithInsecureSkipVerify disables TLS certificate verification for upstream targets.
func WithInsecureSkipVerify(skip bool) ClientOption {
	return func(o *ClientOptions) {
		o.InsecureSkipVerify = skip
	}
}

func WithMaxConnsPerHost(n int) ClientOption {
	return func(o *ClientOptions) {
		o.MaxConnsPerHost = n
	}
}

func WithMaxResponseBodySize(size int) ClientOption {
	return func(o *ClientOptions) {
		o.MaxResponseBodySize = size
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(o *ClientOptions) {
		o.UserAgent = userAgent
	}
}

// NewFastHTTPClient builds a pooled client; zero options keep the defaults.
func NewFastHTTPClient(opts ...ClientOption) *fasthttp.Client {
	options := &ClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		ReadBufferSize:      DefaultReadBufferSize,
		WriteBufferSize:     DefaultWriteBufferSize,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
		UserAgent:           DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(options)
	}

	client := &fasthttp.Client{
		Name:                options.UserAgent,
		MaxConnsPerHost:     options.MaxConnsPerHost,
		MaxIdleConnDuration: options.MaxIdleConnDuration,
		ReadBufferSize:      options.ReadBufferSize,
		WriteBufferSize:     options.WriteBufferSize,
		MaxResponseBodySize: options.MaxResponseBodySize,
		ReadTimeout:         options.Timeout,
		WriteTimeout:        options.Timeout,
	}
	if options.InsecureSkipVerify {
		client.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // intentionally configurable
		}
	}
	return client
}
