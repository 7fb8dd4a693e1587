package artworks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gallery-app/config"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/session"
	"gallery-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.SESSION_SECRET = "test-secret"
	os.Exit(m.Run())
}

type testEnv struct {
	router   *gin.Engine
	store    *storage.Memory
	sessions *session.MemoryStore
}

func newTestEnv() *testEnv {
	store := storage.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	h := NewHandler(store)

	r := gin.New()
	r.GET("/artworks", h.List)
	r.GET("/artworks/:id", h.GetByID)

	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(sessions, store))
	auth.POST("/artworks", h.Create)
	auth.PATCH("/artworks/:id", h.Update)
	auth.DELETE("/artworks/:id", h.Delete)
	auth.GET("/my-artworks", h.MyArtworks)

	return &testEnv{router: r, store: store, sessions: sessions}
}

// loginAs stores the user and returns a valid session cookie for it.
func (e *testEnv) loginAs(t *testing.T, u users.User) *http.Cookie {
	t.Helper()

	_, err := e.store.UpsertUser(context.Background(), u)
	require.NoError(t, err)

	sess, err := e.sessions.Create(context.Background(), u.ID)
	require.NoError(t, err)
	token, err := session.SignID(sess.ID, config.SESSION_SECRET, time.Hour)
	require.NoError(t, err)

	return &http.Cookie{Name: session.CookieName, Value: token}
}

func (e *testEnv) do(method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seed(t *testing.T, title, price string, artistID *string) uint {
	t.Helper()
	a, err := e.store.CreateArtwork(context.Background(), storage.CreateArtworkInput{
		Title: title, Price: price, ImageURL: "/" + title + ".webp", ArtistID: artistID,
	})
	require.NoError(t, err)
	return a.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListArtworks(t *testing.T) {
	e := newTestEnv()
	artist := "artist-1"
	e.seed(t, "one", "50.00", &artist)
	e.seed(t, "two", "150.00", nil)

	w := e.do(http.MethodGet, "/artworks", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "two", rows[0]["title"])
}

func TestListArtworksPriceFilter(t *testing.T) {
	e := newTestEnv()
	e.seed(t, "cheap", "50.00", nil)
	e.seed(t, "mid", "150.00", nil)
	e.seed(t, "dear", "900.00", nil)

	w := e.do(http.MethodGet, "/artworks?minPrice=100&maxPrice=200", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "mid", rows[0]["title"])
}

func TestListArtworksBadPrice(t *testing.T) {
	e := newTestEnv()

	w := e.do(http.MethodGet, "/artworks?minPrice=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListArtworksEmptyResultIsArray(t *testing.T) {
	e := newTestEnv()

	w := e.do(http.MethodGet, "/artworks", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetArtworkNotFound(t *testing.T) {
	e := newTestEnv()

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/artworks/999", nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/artworks/not-a-number", nil, nil).Code)
}

func TestCreateRequiresAuth(t *testing.T) {
	e := newTestEnv()

	w := e.do(http.MethodPost, "/artworks", gin.H{"title": "X", "price": "10.00", "imageUrl": "/x.webp"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAssignsOwner(t *testing.T) {
	e := newTestEnv()
	cookie := e.loginAs(t, users.User{ID: "artist-1", Email: "a@example.com", IsArtist: true})

	w := e.do(http.MethodPost, "/artworks", gin.H{
		"title":    "Sun",
		"price":    "150.00",
		"imageUrl": "/sun.webp",
		"year":     "1999", // string-typed numbers are accepted
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "artist-1", body["artistId"])
	assert.Equal(t, "150.00", body["price"])
	assert.Equal(t, float64(1999), body["year"])
	assert.Equal(t, true, body["isAvailable"])
}

func TestCreateValidationErrors(t *testing.T) {
	e := newTestEnv()
	cookie := e.loginAs(t, users.User{ID: "artist-1", Email: "a@example.com"})

	w := e.do(http.MethodPost, "/artworks", gin.H{"price": "abc"}, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	fields, ok := body["fields"].([]any)
	require.True(t, ok)
	assert.Len(t, fields, 3) // title, price, imageUrl
}

func TestUpdatePartialPatch(t *testing.T) {
	e := newTestEnv()
	cookie := e.loginAs(t, users.User{ID: "artist-1", Email: "a@example.com"})
	artist := "artist-1"
	id := e.seed(t, "Sun", "150.00", &artist)

	w := e.do(http.MethodPatch, fmt.Sprintf("/artworks/%d", id), gin.H{"price": "175.00"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "175.00", body["price"])
	assert.Equal(t, "Sun", body["title"])
}

func TestUpdateOwnership(t *testing.T) {
	e := newTestEnv()
	owner := "artist-1"
	id := e.seed(t, "Owned", "100.00", &owner)
	houseID := e.seed(t, "House", "200.00", nil)

	e.loginAs(t, users.User{ID: "artist-1", Email: "a@example.com"})
	intruder := e.loginAs(t, users.User{ID: "artist-2", Email: "b@example.com"})
	admin := e.loginAs(t, users.User{ID: "root", Email: "r@example.com", Role: users.RoleAdmin})

	// Another artist cannot touch the row.
	w := e.do(http.MethodPatch, fmt.Sprintf("/artworks/%d", id), gin.H{"title": "Stolen"}, intruder)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unowned rows are admin-only.
	w = e.do(http.MethodPatch, fmt.Sprintf("/artworks/%d", houseID), gin.H{"title": "Stolen"}, intruder)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(http.MethodPatch, fmt.Sprintf("/artworks/%d", houseID), gin.H{"title": "Curated"}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Curated", decodeBody(t, w)["title"])
}

func TestDeleteFlow(t *testing.T) {
	e := newTestEnv()
	owner := "artist-1"
	cookie := e.loginAs(t, users.User{ID: "artist-1", Email: "a@example.com"})
	id := e.seed(t, "Gone", "100.00", &owner)

	w := e.do(http.MethodDelete, fmt.Sprintf("/artworks/%d", id), nil, cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, fmt.Sprintf("/artworks/%d", id), nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, fmt.Sprintf("/artworks/%d", id), nil, cookie).Code)
}

func TestMyArtworks(t *testing.T) {
	e := newTestEnv()
	mine := "artist-1"
	other := "artist-2"
	e.seed(t, "Mine", "100.00", &mine)
	e.seed(t, "Theirs", "100.00", &other)

	cookie := e.loginAs(t, users.User{ID: "artist-1", Email: "a@example.com"})
	w := e.do(http.MethodGet, "/my-artworks", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Mine", rows[0]["title"])
}

func TestTamperedCookieRejected(t *testing.T) {
	e := newTestEnv()
	e.loginAs(t, users.User{ID: "artist-1", Email: "a@example.com"})

	forged, err := session.SignID("some-session", "wrong-secret", time.Hour)
	require.NoError(t, err)

	w := e.do(http.MethodGet, "/my-artworks", nil, &http.Cookie{Name: session.CookieName, Value: forged})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRevokedSessionRejected(t *testing.T) {
	e := newTestEnv()
	cookie := e.loginAs(t, users.User{ID: "artist-1", Email: "a@example.com"})

	// Valid at first.
	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/my-artworks", nil, cookie).Code)

	sid, err := session.ParseID(cookie.Value, config.SESSION_SECRET)
	require.NoError(t, err)
	require.NoError(t, e.sessions.Delete(context.Background(), sid))

	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/my-artworks", nil, cookie).Code)
}
