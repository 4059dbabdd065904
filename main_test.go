package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-marketplace/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SECRET_KEY", "test-secret-key")
	db := infra.SetupTestDB(t)
	server := httptest.NewServer(setupRouter(db))
	t.Cleanup(server.Close)
	return server
}

func request(t *testing.T, method string, url string, token string, body any) (int, any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func registerUser(t *testing.T, serverURL string, email string, password string, role string) (string, map[string]any) {
	t.Helper()
	body := map[string]string{"email": email, "password": password}
	if role != "" {
		body["role"] = role
	}
	status, decoded := request(t, http.MethodPost, serverURL+"/register", "", body)
	require.Equal(t, http.StatusCreated, status)

	resp := decoded.(map[string]any)
	token := resp["token"].(string)
	user := resp["user"].(map[string]any)
	require.NotEmpty(t, token)
	return token, user
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	status, decoded := request(t, http.MethodGet, server.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", decoded.(map[string]any)["status"])
}

func TestRegisterAndLogin(t *testing.T) {
	server := newTestServer(t)

	token, user := registerUser(t, server.URL, "alice@example.com", "pw123", "")
	assert.NotEmpty(t, token)
	assert.Len(t, user["id"].(string), 9)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	// ハッシュはレスポンスに含めない
	assert.NotContains(t, user, "passwordHash")

	status, decoded := request(t, http.MethodPost, server.URL+"/login", "",
		map[string]string{"email": "alice@example.com", "password": "pw123"})
	assert.Equal(t, http.StatusOK, status)
	loggedIn := decoded.(map[string]any)["user"].(map[string]any)
	assert.Equal(t, user["id"], loggedIn["id"])

	status, decoded = request(t, http.MethodPost, server.URL+"/login", "",
		map[string]string{"email": "alice@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, decoded.(map[string]any), "error")

	status, _ = request(t, http.MethodPost, server.URL+"/login", "",
		map[string]string{"email": "alice@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	server := newTestServer(t)

	registerUser(t, server.URL, "alice@example.com", "pw123", "")

	status, decoded := request(t, http.MethodPost, server.URL+"/register", "",
		map[string]string{"email": "alice@example.com", "password": "other"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, decoded.(map[string]any), "error")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	server := newTestServer(t)

	status, _ := request(t, http.MethodPost, server.URL+"/register", "",
		map[string]string{"email": "eve@example.com", "password": "pw", "role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, status)
}

// 登録→出品→カタログ掲載→管理者が削除、の一連の流れ
func TestAdminDeletesListing(t *testing.T) {
	server := newTestServer(t)

	aliceToken, _ := registerUser(t, server.URL, "alice@example.com", "pw123", "user")

	status, decoded := request(t, http.MethodPost, server.URL+"/items", aliceToken,
		map[string]any{"title": "Lamp", "price": 500})
	require.Equal(t, http.StatusCreated, status)
	itemID := decoded.(map[string]any)["id"].(string)
	assert.Len(t, itemID, 8)

	status, decoded = request(t, http.MethodGet, server.URL+"/items", "", nil)
	require.Equal(t, http.StatusOK, status)
	items := decoded.([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Lamp", item["title"])
	assert.Equal(t, float64(500), item["price"])

	bobToken, _ := registerUser(t, server.URL, "bob@example.com", "pw456", "admin")

	status, decoded = request(t, http.MethodDelete, server.URL+"/items/"+itemID, bobToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, decoded.(map[string]any)["ok"])

	status, decoded = request(t, http.MethodGet, server.URL+"/items", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decoded.([]any), 0)
}

func TestItemsRequireAuthAndTitle(t *testing.T) {
	server := newTestServer(t)

	status, decoded := request(t, http.MethodPost, server.URL+"/items", "",
		map[string]any{"title": "Lamp"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, decoded.(map[string]any), "error")

	token, _ := registerUser(t, server.URL, "alice@example.com", "pw123", "")

	status, _ = request(t, http.MethodPost, server.URL+"/items", token,
		map[string]any{"price": 100})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestNonAdminForbidden(t *testing.T) {
	server := newTestServer(t)

	token, _ := registerUser(t, server.URL, "alice@example.com", "pw123", "user")

	// 対象商品の有無にかかわらず403
	status, decoded := request(t, http.MethodPut, server.URL+"/items/notexist", token,
		map[string]any{"title": "x"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, decoded.(map[string]any), "error")

	status, _ = request(t, http.MethodDelete, server.URL+"/items/notexist", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAdminPartialUpdate(t *testing.T) {
	server := newTestServer(t)

	sellerToken, _ := registerUser(t, server.URL, "alice@example.com", "pw123", "")
	adminToken, _ := registerUser(t, server.URL, "bob@example.com", "pw456", "admin")

	status, decoded := request(t, http.MethodPost, server.URL+"/items", sellerToken,
		map[string]any{"title": "Lamp", "description": "desk lamp", "price": 500})
	require.Equal(t, http.StatusCreated, status)
	itemID := decoded.(map[string]any)["id"].(string)

	status, decoded = request(t, http.MethodPut, server.URL+"/items/"+itemID, adminToken,
		map[string]any{"price": 750})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, decoded.(map[string]any)["ok"])

	_, decoded = request(t, http.MethodGet, server.URL+"/items", "", nil)
	item := decoded.([]any)[0].(map[string]any)
	assert.Equal(t, float64(750), item["price"])
	// 省略したフィールドは変わらない
	assert.Equal(t, "Lamp", item["title"])
	assert.Equal(t, "desk lamp", item["description"])
}

func TestCartFlow(t *testing.T) {
	server := newTestServer(t)

	token, _ := registerUser(t, server.URL, "alice@example.com", "pw123", "")

	status, decoded := request(t, http.MethodPost, server.URL+"/items", token,
		map[string]any{"title": "Lamp", "price": 500})
	require.Equal(t, http.StatusCreated, status)
	itemID := decoded.(map[string]any)["id"].(string)

	// 同じ商品を二度追加してもカートの行は1つ
	for i := 0; i < 2; i++ {
		status, decoded = request(t, http.MethodPost, server.URL+"/cart", token,
			map[string]string{"itemId": itemID})
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, true, decoded.(map[string]any)["ok"])
	}

	status, decoded = request(t, http.MethodGet, server.URL+"/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	items := decoded.([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Lamp", items[0].(map[string]any)["title"])

	status, _ = request(t, http.MethodPost, server.URL+"/cart", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)

	// 削除は何度呼んでも成功する
	for i := 0; i < 2; i++ {
		status, decoded = request(t, http.MethodDelete, server.URL+"/cart/"+itemID, token, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, decoded.(map[string]any)["ok"])
	}

	status, decoded = request(t, http.MethodGet, server.URL+"/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decoded.([]any), 0)
}

func TestProfile(t *testing.T) {
	server := newTestServer(t)

	status, decoded := request(t, http.MethodGet, server.URL+"/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, decoded.(map[string]any), "error")

	token, user := registerUser(t, server.URL, "alice@example.com", "pw123", "")

	status, decoded = request(t, http.MethodPost, server.URL+"/items", token,
		map[string]any{"title": "Lamp"})
	require.Equal(t, http.StatusCreated, status)
	itemID := decoded.(map[string]any)["id"].(string)

	status, _ = request(t, http.MethodPost, server.URL+"/cart", token,
		map[string]string{"itemId": itemID})
	require.Equal(t, http.StatusCreated, status)

	status, decoded = request(t, http.MethodGet, server.URL+"/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	profile := decoded.(map[string]any)
	assert.Equal(t, user["id"], profile["user"].(map[string]any)["id"])
	assert.Len(t, profile["items"].([]any), 1)
	assert.Len(t, profile["cart"].([]any), 1)
}

func TestPriceCoercion(t *testing.T) {
	server := newTestServer(t)

	token, _ := registerUser(t, server.URL, "alice@example.com", "pw123", "")

	// 解釈できない価格と負の価格はどちらも0に正規化される
	for _, price := range []any{"abc", -5} {
		status, decoded := request(t, http.MethodPost, server.URL+"/items", token,
			map[string]any{"title": "Lamp", "price": price})
		require.Equal(t, http.StatusCreated, status)
		require.Contains(t, decoded.(map[string]any), "id")
	}

	_, decoded := request(t, http.MethodGet, server.URL+"/items", "", nil)
	for _, raw := range decoded.([]any) {
		assert.Equal(t, float64(0), raw.(map[string]any)["price"])
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	server := newTestServer(t)

	for _, token := range []string{"garbage", "Bearer-less"} {
		status, decoded := request(t, http.MethodGet, server.URL+"/profile", token, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Contains(t, decoded.(map[string]any), "error")
	}
}
