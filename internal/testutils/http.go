package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite drives a gin router in-process
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns a bare router in test mode; callers register what they exercise
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

func (suite *HTTPTestSuite) do(method, url string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

func encodeBody(body interface{}) io.Reader {
	if body == nil {
		return nil
	}
	payload, _ := json.Marshal(body)
	return bytes.NewReader(payload)
}

// MakeRequest sends body, if any, as JSON
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.do(method, url, encodeBody(body), nil)
}

// MakeRequestWithHeaders is MakeRequest with extra request headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	return suite.do(method, url, encodeBody(body), headers)
}

// MakeRawRequest sends body verbatim, for malformed or partial JSON payloads
func (suite *HTTPTestSuite) MakeRawRequest(method, url, body string) *httptest.ResponseRecorder {
	return suite.do(method, url, strings.NewReader(body), nil)
}

// AssertJSONResponse checks the status and content type, then decodes the body into target
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse checks the status and that the "error" field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse))

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// MockHTTPRequest is the request half of an HTTPTestCase
type MockHTTPRequest struct {
	Method  string
	URL     string
	Body    interface{}
	Headers map[string]string
}

// MockHTTPResponse is the expected outcome of an HTTPTestCase. A nil Body is not compared.
type MockHTTPResponse struct {
	Status int
	Body   interface{}
}

// HTTPTestCase is one table row for RunHTTPTestCases
type HTTPTestCase struct {
	Name             string
	Request          MockHTTPRequest
	ExpectedResponse MockHTTPResponse
}

// RunHTTPTestCases runs each case as a subtest and compares bodies as JSON
func (suite *HTTPTestSuite) RunHTTPTestCases(t *testing.T, testCases []HTTPTestCase) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			recorder := suite.MakeRequestWithHeaders(tc.Request.Method, tc.Request.URL, tc.Request.Body, tc.Request.Headers)

			assert.Equal(t, tc.ExpectedResponse.Status, recorder.Code)
			if tc.ExpectedResponse.Body == nil {
				return
			}

			expected, err := json.Marshal(tc.ExpectedResponse.Body)
			require.NoError(t, err)
			assert.JSONEq(t, string(expected), recorder.Body.String())
		})
	}
}
