package httpx

import "net/http"

// Client abstracts the HTTP exchange so provider clients can be tested
// against a mock while production traffic rides on fasthttp.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
