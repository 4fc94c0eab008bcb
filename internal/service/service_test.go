package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()

	log := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &log, nil)
	require.NoError(t, err)

	services, err := NewServices(s, repository.NewRepositories(s))
	require.NoError(t, err)
	return services
}

func ptr[T any](v T) *T { return &v }

func TestPersonService_Detail(t *testing.T) {
	ps := newTestServices(t).Person
	ctx := context.Background()

	out, err := ps.Detail(ctx, &model.PersonPath{ID: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"3": PersonFoundMessage}, out)

	_, err = ps.Detail(ctx, &model.PersonPath{ID: ptr(99)})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "This person doesn't exist!", httpErr.Message)
}

func TestPersonService_Lookup(t *testing.T) {
	ps := newTestServices(t).Person
	ctx := context.Background()

	assert.Equal(t, map[string]any{"Ana": 30}, ps.Lookup(ctx, &model.PersonQuery{Name: ptr("Ana"), Age: ptr(30)}))
	assert.Equal(t, map[string]any{"null": 30}, ps.Lookup(ctx, &model.PersonQuery{Age: ptr(30)}))
}

func TestPersonService_Update(t *testing.T) {
	ps := newTestServices(t).Person
	ctx := context.Background()

	person := &model.Person{
		FirstName: ptr("Ana"),
		LastName:  ptr("Paz"),
		Age:       ptr(40),
		Email:     ptr("ana@example.com"),
		Password:  ptr("12345678"),
	}

	merged, err := ps.Update(ctx, &model.PersonPath{ID: ptr(2)}, person)
	require.NoError(t, err)
	assert.Equal(t, 2, merged["id"])
	assert.Equal(t, "Ana", merged["first_name"])
	assert.NotContains(t, merged, "password")

	_, err = ps.Update(ctx, &model.PersonPath{ID: ptr(6)}, person)
	assert.Error(t, err)

	location := &model.Location{City: ptr("Rosario"), State: ptr("Santa Fe"), Country: ptr("Argentina")}
	merged = ps.UpdateWithLocation(ctx, &model.PersonPath{ID: ptr(6)}, person, location)
	assert.Equal(t, "Rosario", merged["city"])
	assert.Equal(t, 40, merged["age"])
	assert.NotContains(t, merged, "id")
}

func TestPersonService_KnownIDs(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, newTestServices(t).Person.KnownIDs())
}

func TestAuthService(t *testing.T) {
	as := newTestServices(t).Auth
	ctx := context.Background()

	out := as.Login(ctx, &model.LoginForm{Username: ptr("mcardozo"), Password: ptr("hunter22")})
	assert.Equal(t, &model.LoginOut{Username: "mcardozo"}, out)

	form := &model.ContactForm{
		FirstName: ptr("Ana"),
		LastName:  ptr("Paz"),
		Email:     ptr("ana@example.com"),
		Message:   ptr("Hello there, this is long enough."),
	}
	assert.Nil(t, as.Contact(ctx, form, nil, nil))
	assert.Equal(t, ptr("agent/1.0"), as.Contact(ctx, form, ptr("agent/1.0"), ptr("yes")))
}

// pngHeader is the eight-byte PNG signature followed by an IHDR chunk start.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}

	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["image"], 1)
	return form.File["image"][0]
}

func TestAuthService_LogsThroughRequestLogger(t *testing.T) {
	as := newTestServices(t).Auth

	var buf bytes.Buffer
	reqLog := zerolog.New(&buf).With().Str("request_id", "req-42").Logger()
	ctx := reqLog.WithContext(context.Background())

	as.Login(ctx, &model.LoginForm{Username: ptr("mcardozo"), Password: ptr("hunter22")})

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"username":"mcardozo"`)
	assert.NotContains(t, out, "hunter22")
}

func TestAuthService_FallsBackToServerLogger(t *testing.T) {
	as := newTestServices(t).Auth

	assert.NotPanics(t, func() {
		as.Login(context.Background(), &model.LoginForm{Username: ptr("ana"), Password: ptr("x")})
	})
}

func TestUploadService_Describe(t *testing.T) {
	us := newTestServices(t).Upload
	ctx := context.Background()

	t.Run("declared type", func(t *testing.T) {
		data := bytes.Repeat([]byte{1}, 2048)

		info, err := us.Describe(ctx, fileHeader(t, "photo.jpg", "image/jpeg", data))
		require.NoError(t, err)

		assert.Equal(t, &model.ImageInfo{Filename: "photo.jpg", Format: "image/jpeg", SizeKB: 2}, info)
	})

	t.Run("sniffed type", func(t *testing.T) {
		info, err := us.Describe(ctx, fileHeader(t, "cat.png", "", pngHeader))
		require.NoError(t, err)

		assert.Equal(t, "cat.png", info.Filename)
		assert.Equal(t, "image/png", info.Format)
	})
}

func TestSizeKB(t *testing.T) {
	assert.Equal(t, 0.0, SizeKB(0))
	assert.Equal(t, 1.0, SizeKB(1024))
	assert.Equal(t, 1.5, SizeKB(1536))
	assert.Equal(t, 0.01, SizeKB(10))
}
