package api

import (
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ripple-cli/types"

	shared "ripple-shared"
)

func TestAuthenticatedRequestsCarryBearerToken(t *testing.T) {
	resetOutage(t)

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]*shared.Blog{})
	}))
	defer server.Close()

	setupSession(t, server.URL)

	_, apiErr := Client.GetFeed()

	require.Nil(t, apiErr)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestGetFeedDecodesBlogs(t *testing.T) {
	resetOutage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed", r.URL.Path)
		json.NewEncoder(w).Encode([]*shared.Blog{
			{Id: 1, Title: "hello", LikeCount: 3, UserFirstName: "Ada", UserLastName: "Lovelace"},
			{Id: 2, Title: "again", User: &shared.User{UserId: 9, UserName: "grace"}},
		})
	}))
	defer server.Close()

	setupSession(t, server.URL)

	blogs, apiErr := Client.GetFeed()

	require.Nil(t, apiErr)
	require.Len(t, blogs, 2)
	assert.Equal(t, "Ada Lovelace", blogs[0].AuthorName())
	assert.Equal(t, "@grace", blogs[1].AuthorName())
	assert.Equal(t, int64(9), blogs[1].AuthorId())
}

func TestSignInDoesNotSendToken(t *testing.T) {
	resetOutage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req shared.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.EmailOrUsername)

		json.NewEncoder(w).Encode(shared.AuthResponse{
			Token: "new-token",
			User:  &shared.User{UserId: 1, UserName: "ada"},
		})
	}))
	defer server.Close()

	// signed in as someone else: login must still go out unauthenticated
	setupSession(t, server.URL)

	res, apiErr := Client.SignIn(shared.LoginRequest{EmailOrUsername: "ada@example.com", Password: "pw"})

	require.Nil(t, apiErr)
	assert.Equal(t, "new-token", res.Token)
	assert.Equal(t, "ada", res.User.UserName)
}

func TestCreateBlogWithMediaMultipart(t *testing.T) {
	resetOutage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blogs/with-media", r.URL.Path)

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		reader := multipart.NewReader(r.Body, params["boundary"])
		form, err := reader.ReadForm(32 << 20)
		require.NoError(t, err)

		assert.Equal(t, []string{"hi"}, form.Value["title"])
		assert.Equal(t, []string{"content here"}, form.Value["content"])
		require.Len(t, form.File["files"], 2)
		assert.Equal(t, "a.png", form.File["files"][0].Filename)

		json.NewEncoder(w).Encode(shared.Blog{Id: 42, Title: "hi"})
	}))
	defer server.Close()

	setupSession(t, server.URL)

	blog, apiErr := Client.CreateBlogWithMedia(
		shared.CreateBlogRequest{Title: "hi", Content: "content here"},
		[]types.MediaUpload{
			{Name: "a.png", MIME: "image/png", Data: []byte{1, 2, 3}},
			{Name: "b.jpg", MIME: "image/jpeg", Data: []byte{4, 5, 6}},
		},
	)

	require.Nil(t, apiErr)
	assert.Equal(t, int64(42), blog.Id)
}

func TestLikeStatusRoundTrip(t *testing.T) {
	resetOutage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/likes/status", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("blogId"))
		json.NewEncoder(w).Encode(shared.LikeStatus{Liked: true, LikeCount: 12})
	}))
	defer server.Close()

	setupSession(t, server.URL)

	status, apiErr := Client.GetLikeStatus(7)

	require.Nil(t, apiErr)
	assert.True(t, status.Liked)
	assert.Equal(t, 12, status.LikeCount)
}
