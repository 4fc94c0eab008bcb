package model

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/people-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request, id string) echo.Context {
	c := echo.New().NewContext(req, httptest.NewRecorder())
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c
}

func jsonRequest(method, body string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestUpdatePersonRequest_CollectsPathAndBody(t *testing.T) {
	req := &UpdatePersonRequest{}
	err := req.Validate(newContext(jsonRequest(http.MethodPut, `{"age": 200}`), "0"))

	var violations validation.Violations
	require.ErrorAs(t, err, &violations)

	assert.True(t, violations.Has("id"))
	assert.True(t, violations.Has("age"))
	assert.True(t, violations.Has("first_name"))
}

func TestUpdatePersonLocationRequest_PrefixesEmbeddedRecords(t *testing.T) {
	body := `{"person": {"first_name": "Ana", "last_name": "Paz", "age": 200, "email": "ana@example.com", "password": "12345678"}}`

	req := &UpdatePersonLocationRequest{}
	err := req.Validate(newContext(jsonRequest(http.MethodPut, body), "7"))

	var violations validation.Violations
	require.ErrorAs(t, err, &violations)

	assert.True(t, violations.Has("person.age"))
	assert.True(t, violations.Has("location.city"))
	assert.True(t, violations.Has("location.state"))
	assert.True(t, violations.Has("location.country"))
	assert.False(t, violations.Has("age"))
}

func TestUpdatePersonLocationRequest_Valid(t *testing.T) {
	body := `{
		"person": {"first_name": "Ana", "last_name": "Paz", "age": 40, "email": "ana@example.com", "password": "12345678"},
		"location": {"city": "Rosario", "state": "Santa Fe", "country": "Argentina"}
	}`

	req := &UpdatePersonLocationRequest{}
	require.NoError(t, req.Validate(newContext(jsonRequest(http.MethodPut, body), "7")))

	assert.Equal(t, 7, *req.Path.ID)
	assert.Equal(t, "Ana", *req.Person.FirstName)
	assert.Equal(t, "Rosario", *req.Location.City)
}

func TestContactRequest_ReadsHeaderAndCookie(t *testing.T) {
	form := url.Values{
		"first_name": {"Ana"},
		"last_name":  {"Paz"},
		"email":      {"ana@example.com"},
		"message":    {"Hello there, this is long enough."},
	}

	httpReq := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	httpReq.Header.Set("User-Agent", "agent/1.0")
	httpReq.AddCookie(&http.Cookie{Name: "ads", Value: "yes"})

	req := &ContactRequest{}
	require.NoError(t, req.Validate(newContext(httpReq, "")))

	require.NotNil(t, req.UserAgent)
	assert.Equal(t, "agent/1.0", *req.UserAgent)
	require.NotNil(t, req.Ads)
	assert.Equal(t, "yes", *req.Ads)
	assert.Equal(t, "Ana", *req.Form.FirstName)
}

func TestImageUploadRequest(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		require.NoError(t, w.WriteField("note", "no image here"))
		require.NoError(t, w.Close())

		httpReq := httptest.NewRequest(http.MethodPost, "/post-image", &body)
		httpReq.Header.Set(echo.HeaderContentType, w.FormDataContentType())

		err := (&ImageUploadRequest{}).Validate(newContext(httpReq, ""))

		var violations validation.Violations
		require.ErrorAs(t, err, &violations)
		assert.Equal(t, validation.Violations{{Field: "image", Kind: validation.KindMissing, Message: "is required"}}, violations)
	})

	t.Run("file present", func(t *testing.T) {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		part, err := w.CreateFormFile("image", "cat.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not really a png"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		httpReq := httptest.NewRequest(http.MethodPost, "/post-image", &body)
		httpReq.Header.Set(echo.HeaderContentType, w.FormDataContentType())

		req := &ImageUploadRequest{}
		require.NoError(t, req.Validate(newContext(httpReq, "")))
		assert.Equal(t, "cat.png", req.Image.Filename)
	})
}
