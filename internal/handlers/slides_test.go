package handlers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/handlers"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/routes"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

type fakeUploader struct {
	uploads int
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, folder string) (string, error) {
	io.Copy(io.Discard, file)
	u.uploads++
	return "https://cdn.example/" + folder + "/image.png", nil
}

func newSlideEnv(t *testing.T) (*gin.Engine, *store.MemorySlideStore, *fakeUploader, string) {
	t.Helper()

	slides := store.NewMemorySlideStore()
	uploader := &fakeUploader{}
	tokens := utils.NewJWT("test-secret")

	r := gin.New()
	routes.SlideRoutes(r, handlers.NewSlideHandler(slides, uploader), tokens)

	token, err := tokens.Generate("admin", models.RoleAdmin)
	require.NoError(t, err)
	return r, slides, uploader, token
}

func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withImage {
		fw, err := mw.CreateFormFile("imageFile", "slide.png")
		require.NoError(t, err)
		fw.Write([]byte("not-a-real-png"))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCreateSlide(t *testing.T) {
	r, slides, uploader, token := newSlideEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"title": "Welcome", "order": "2",
	}, true)

	req := httptest.NewRequest("POST", "/api/slides", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 201, w.Code)
	assert.Equal(t, 1, uploader.uploads)

	all, err := slides.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Welcome", all[0].Title)
	assert.Equal(t, 2, all[0].Order)
	assert.True(t, all[0].IsActive)
	assert.Contains(t, all[0].ImageURL, "quran_slides")
}

func TestCreateSlideRequiresImage(t *testing.T) {
	r, _, _, token := newSlideEnv(t)

	body, contentType := multipartBody(t, map[string]string{"title": "X"}, false)
	req := httptest.NewRequest("POST", "/api/slides", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestActiveSlidesOrderedAndFiltered(t *testing.T) {
	r, slides, _, _ := newSlideEnv(t)
	ctx := context.Background()

	require.NoError(t, slides.Create(ctx, &models.Slide{Title: "B", ImageURL: "u", IsActive: true, Order: 2}))
	require.NoError(t, slides.Create(ctx, &models.Slide{Title: "A", ImageURL: "u", IsActive: true, Order: 1}))
	require.NoError(t, slides.Create(ctx, &models.Slide{Title: "Hidden", ImageURL: "u", IsActive: false, Order: 0}))

	req := httptest.NewRequest("GET", "/api/slides", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "Hidden")

	active, err := slides.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "A", active[0].Title)
	assert.Equal(t, "B", active[1].Title)
}

func TestUpdateSlideKeepsImageWithoutNewFile(t *testing.T) {
	r, slides, uploader, token := newSlideEnv(t)
	ctx := context.Background()

	slide := models.Slide{Title: "Old", ImageURL: "https://cdn.example/keep.png", IsActive: true}
	require.NoError(t, slides.Create(ctx, &slide))

	body, contentType := multipartBody(t, map[string]string{"title": "New"}, false)
	req := httptest.NewRequest("PUT", "/api/slides/"+slide.ID.Hex(), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Equal(t, 0, uploader.uploads)

	got, err := slides.GetByID(ctx, slide.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "https://cdn.example/keep.png", got.ImageURL)
}

func TestDeleteSlide(t *testing.T) {
	r, slides, _, token := newSlideEnv(t)
	ctx := context.Background()

	slide := models.Slide{Title: "Gone", ImageURL: "u", IsActive: true}
	require.NoError(t, slides.Create(ctx, &slide))

	req := httptest.NewRequest("DELETE", "/api/slides/"+slide.ID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	_, err := slides.GetByID(ctx, slide.ID)
	assert.Equal(t, store.ErrNotFound, err)
}
