package mocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// MockHttpClient is an in-memory policy.Transporter. Tests register
// request predicates with When and pair them with canned responses;
// unmatched requests panic so a missing registration fails loudly.
type MockHttpClient struct {
	expressions []*HttpExpression
}

type RequestPredicate func(request *http.Request) bool

type RespondFn func(request *http.Request) (*http.Response, error)

type HttpExpression struct {
	client      *MockHttpClient
	predicateFn RequestPredicate
	responseFn  RespondFn
	err         error
}

var _ policy.Transporter = (*MockHttpClient)(nil)

func NewMockHttpClient() *MockHttpClient {
	return &MockHttpClient{
		expressions: []*HttpExpression{},
	}
}

func (c *MockHttpClient) Do(req *http.Request) (*http.Response, error) {
	var match *HttpExpression

	for _, expr := range c.expressions {
		if expr.predicateFn(req) {
			match = expr
			break
		}
	}

	if match == nil {
		panic(fmt.Sprintf("No mock found for request: '%s %s'", req.Method, req.URL))
	}

	if match.err != nil {
		return nil, match.err
	}

	return match.responseFn(req)
}

func (c *MockHttpClient) When(predicate RequestPredicate) *HttpExpression {
	expr := HttpExpression{
		client:      c,
		predicateFn: predicate,
	}

	c.expressions = append(c.expressions, &expr)
	return &expr
}

func (c *MockHttpClient) Reset() {
	c.expressions = []*HttpExpression{}
}

func (e *HttpExpression) RespondFn(responseFn RespondFn) *MockHttpClient {
	e.responseFn = responseFn
	return e.client
}

func (e *HttpExpression) SetError(err error) *MockHttpClient {
	e.err = err
	return e.client
}

// CreateHttpResponseWithBody fabricates a JSON response for the request.
func CreateHttpResponseWithBody(request *http.Request, statusCode int, body any) (*http.Response, error) {
	jsonBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling response body: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return &http.Response{
		Request:       request,
		StatusCode:    statusCode,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(jsonBytes)),
		ContentLength: int64(len(jsonBytes)),
	}, nil
}

// CreateEmptyHttpResponse fabricates a bodyless response for the request.
func CreateEmptyHttpResponse(request *http.Request, statusCode int) (*http.Response, error) {
	return &http.Response{
		Request:    request,
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       http.NoBody,
	}, nil
}
