package httpx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	defaultTimeout             = 30 * time.Second
	defaultMaxConnsPerHost     = 512
	defaultMaxIdleConnDuration = 10 * time.Second
	defaultMaxResponseBodySize = 100 * 1024 * 1024
)

type FastHTTPClient struct {
	client *fasthttp.Client
}

type FastHTTPClientConfig struct {
	Timeout         time.Duration
	MaxConnsPerHost int
}

// NewFastHTTPClient builds a Client backed by a tuned fasthttp.Client.
func NewFastHTTPClient(cfg FastHTTPClientConfig) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxConns := cfg.MaxConnsPerHost
	if maxConns <= 0 {
		maxConns = defaultMaxConnsPerHost
	}
	return &FastHTTPClient{
		client: &fasthttp.Client{
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxConnsPerHost:          maxConns,
			MaxIdleConnDuration:      defaultMaxIdleConnDuration,
			MaxResponseBodySize:      defaultMaxResponseBodySize,
			NoDefaultUserAgentHeader: true,
		},
	}
}

func (c *FastHTTPClient) Do(req *http.Request) (*http.Response, error) {
	fastReq := fasthttp.AcquireRequest()
	fastResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(fastReq)
	defer fasthttp.ReleaseResponse(fastResp)

	if req.URL != nil {
		fastReq.SetRequestURI(req.URL.String())
	}
	fastReq.Header.SetMethod(req.Method)
	for key, values := range req.Header {
		for _, value := range values {
			fastReq.Header.Add(key, value)
		}
	}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		_ = req.Body.Close()
		fastReq.SetBodyRaw(body)
	}

	if err := c.client.Do(fastReq, fastResp); err != nil {
		return nil, err
	}

	// fastResp buffers are reused after release; copy before building the
	// net/http response.
	body := append([]byte(nil), fastResp.Body()...)
	statusCode := fastResp.StatusCode()
	headers := make(http.Header)
	fastResp.Header.VisitAll(func(key, value []byte) {
		headers.Add(string(key), string(value))
	})

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        headers,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}
