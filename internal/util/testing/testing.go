package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type RequestOptions struct {
	Method         string
	URL            string
	Body           any
	AuthToken      string
	ApiKey         string
	ExpectedStatus int
}

type TestResponse struct {
	Code int
	Body []byte
}

func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) TestResponse {
	t.Helper()

	resp := MakeRawRequest(router, options)

	if options.ExpectedStatus != 0 {
		assert.Equal(t, options.ExpectedStatus, resp.Code, "unexpected status, body: %s", string(resp.Body))
	}

	return resp
}

// MakeRawRequest drives the router without a testing.T so fixture helpers
// can use it. It panics on malformed inputs instead of failing the test.
func MakeRawRequest(router *gin.Engine, options RequestOptions) TestResponse {
	var requestBody *bytes.Buffer
	hasBody := options.Body != nil

	switch body := options.Body.(type) {
	case nil:
		requestBody = bytes.NewBuffer(nil)
	case string:
		// Raw string bodies are sent as-is so tests can exercise malformed JSON.
		requestBody = bytes.NewBufferString(body)
	default:
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	}

	req, err := http.NewRequest(options.Method, options.URL, requestBody)
	if err != nil {
		panic(err)
	}

	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.AuthToken != "" {
		req.Header.Set("Authorization", options.AuthToken)
	}
	if options.ApiKey != "" {
		req.Header.Set("x-api-key", options.ApiKey)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return TestResponse{Code: w.Code, Body: w.Body.Bytes()}
}

func MakeGetRequest(t *testing.T, router *gin.Engine, url, authToken string, expectedStatus int) TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "GET",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "POST",
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "PUT",
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakeDeleteRequest(t *testing.T, router *gin.Engine, url, authToken string, expectedStatus int) TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "DELETE",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	target any,
) TestResponse {
	t.Helper()

	resp := MakeGetRequest(t, router, url, authToken, expectedStatus)
	unmarshalResponse(t, resp, target)
	return resp
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	target any,
) TestResponse {
	t.Helper()

	resp := MakePostRequest(t, router, url, authToken, body, expectedStatus)
	unmarshalResponse(t, resp, target)
	return resp
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	target any,
) TestResponse {
	t.Helper()

	resp := MakePutRequest(t, router, url, authToken, body, expectedStatus)
	unmarshalResponse(t, resp, target)
	return resp
}

func unmarshalResponse(t *testing.T, resp TestResponse, target any) {
	t.Helper()

	if err := json.Unmarshal(resp.Body, target); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", string(resp.Body), err)
	}
}
