package route_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ExpenseAPI/repositories/memory"
	v1 "ExpenseAPI/routes/v1"
	"ExpenseAPI/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type expenseJSON struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	UserID   string  `json:"userId"`
}

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	db := memory.New()
	s.router = v1.NewRouter(v1.Options{
		Users:    db.Users(),
		Expenses: db.Expenses(),
		Tokens:   utils.NewTokenManager("test-secret"),
	})
}

func (s *APITestSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (s *APITestSuite) registerAndLogin(username, email string) string {
	w, _ := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username, "email": email, "password": "password123",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	w, env := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "password123",
	})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.T(), json.Unmarshal(env.Data, &data))
	require.NotEmpty(s.T(), data.Token)
	return data.Token
}

func (s *APITestSuite) createExpense(token string) expenseJSON {
	w, env := s.do(http.MethodPost, "/api/expenses", token, gin.H{
		"title": "Lunch", "amount": 12.5, "category": "food", "date": "2024-05-01",
	})
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var exp expenseJSON
	require.NoError(s.T(), json.Unmarshal(env.Data, &exp))
	return exp
}

func (s *APITestSuite) TestHealth() {
	w, _ := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *APITestSuite) TestRegister() {
	w, env := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "password123",
	})
	assert.Equal(s.T(), http.StatusCreated, w.Code)
	assert.False(s.T(), env.Error)
	assert.Equal(s.T(), utils.MsgRegistered, env.Message)
	assert.NotContains(s.T(), string(env.Data), "password")

	w, env = s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice2", "email": "alice@example.com", "password": "password123",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.True(s.T(), env.Error)
	assert.Equal(s.T(), utils.MsgAlreadyExists, env.Message)
}

func (s *APITestSuite) TestUserProfile() {
	token := s.registerAndLogin("alice", "Alice@Example.com")

	w, env := s.do(http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var user struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(s.T(), json.Unmarshal(env.Data, &user))
	assert.NotEmpty(s.T(), user.ID)
	assert.Equal(s.T(), "alice", user.Username)
	assert.Equal(s.T(), "alice@example.com", user.Email)
	assert.NotContains(s.T(), string(env.Data), "password")

	w, _ = s.do(http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestProfileOfDeletedAccount() {
	token, err := utils.NewTokenManager("test-secret").Generate("ghost")
	require.NoError(s.T(), err)

	w, env := s.do(http.MethodGet, "/api/users/profile", token, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), utils.MsgNotFound, env.Message)
}

func (s *APITestSuite) TestRegisterValidation() {
	bodies := []gin.H{
		{"email": "a@example.com", "password": "password123"},
		{"username": "a", "email": "not-an-email", "password": "password123"},
		{"username": "a", "email": "a@example.com", "password": "short"},
		{"username": "   ", "email": "a@example.com", "password": "password123"},
		{"username": "a", "email": "a@example.com", "password": strings.Repeat("x", 80)},
	}
	for _, body := range bodies {
		w, env := s.do(http.MethodPost, "/api/auth/register", "", body)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, body)
		assert.True(s.T(), env.Error)
		assert.NotContains(s.T(), env.Message, "bcrypt")
	}
}

func (s *APITestSuite) TestLoginFailures() {
	s.registerAndLogin("alice", "alice@example.com")

	w, env := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrongpassword",
	})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), utils.MsgUnauthorized, env.Message)

	w, _ = s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "nobody@example.com", "password": "password123",
	})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestExpensesRequireToken() {
	w, env := s.do(http.MethodGet, "/api/expenses", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), utils.MsgNoToken, env.Message)

	w, env = s.do(http.MethodGet, "/api/expenses", "not-a-token", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), utils.MsgInvalidToken, env.Message)
}

func (s *APITestSuite) TestExpenseLifecycle() {
	token := s.registerAndLogin("alice", "alice@example.com")
	created := s.createExpense(token)
	assert.Equal(s.T(), "Lunch", created.Title)
	assert.NotEmpty(s.T(), created.UserID)

	w, env := s.do(http.MethodGet, "/api/expenses", token, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var list []expenseJSON
	require.NoError(s.T(), json.Unmarshal(env.Data, &list))
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), created.ID, list[0].ID)

	w, env = s.do(http.MethodPut, "/api/expenses/"+created.ID, token, gin.H{"amount": 20})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	var updated expenseJSON
	require.NoError(s.T(), json.Unmarshal(env.Data, &updated))
	assert.Equal(s.T(), 20.0, updated.Amount)
	assert.Equal(s.T(), "Lunch", updated.Title)
	assert.Equal(s.T(), "food", updated.Category)
	assert.Equal(s.T(), "2024-05-01", updated.Date)

	w, env = s.do(http.MethodDelete, "/api/expenses/"+created.ID, token, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), utils.MsgDeleted, env.Message)

	w, _ = s.do(http.MethodGet, "/api/expenses/"+created.ID, token, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestCreateExpenseValidation() {
	token := s.registerAndLogin("alice", "alice@example.com")

	bodies := []gin.H{
		{"amount": 1, "category": "food", "date": "2024-05-01"},
		{"title": "Lunch", "amount": -3, "category": "food", "date": "2024-05-01"},
		{"title": "Lunch", "amount": 0, "category": "food", "date": "2024-05-01"},
		{"title": "Lunch", "amount": 1, "date": "2024-05-01"},
		{"title": "Lunch", "amount": 1, "category": "food", "date": "yesterday"},
		{"title": "   ", "amount": 1, "category": "food", "date": "2024-05-01"},
		{"title": "Lunch", "amount": 1, "category": " ", "date": "2024-05-01"},
	}
	for _, body := range bodies {
		w, _ := s.do(http.MethodPost, "/api/expenses", token, body)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, body)
	}
}

func (s *APITestSuite) TestOtherUsersExpense() {
	alice := s.registerAndLogin("alice", "alice@example.com")
	bob := s.registerAndLogin("bob", "bob@example.com")
	created := s.createExpense(alice)

	w, env := s.do(http.MethodPut, "/api/expenses/"+created.ID, bob, gin.H{"title": "Mine now"})
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
	assert.Equal(s.T(), utils.MsgUnauthorized, env.Message)

	w, _ = s.do(http.MethodDelete, "/api/expenses/"+created.ID, bob, nil)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodGet, "/api/expenses/"+created.ID, bob, nil)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w, env = s.do(http.MethodGet, "/api/expenses", bob, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var list []expenseJSON
	require.NoError(s.T(), json.Unmarshal(env.Data, &list))
	assert.Empty(s.T(), list)

	w, env = s.do(http.MethodGet, "/api/expenses/"+created.ID, alice, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var stored expenseJSON
	require.NoError(s.T(), json.Unmarshal(env.Data, &stored))
	assert.Equal(s.T(), "Lunch", stored.Title)
}

func (s *APITestSuite) TestUpdateMissingExpense() {
	token := s.registerAndLogin("alice", "alice@example.com")

	w, env := s.do(http.MethodPut, "/api/expenses/does-not-exist", token, gin.H{"title": "x"})
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), utils.MsgNotFound, env.Message)

	w, _ = s.do(http.MethodDelete, "/api/expenses/does-not-exist", token, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestUpdateValidation() {
	token := s.registerAndLogin("alice", "alice@example.com")
	created := s.createExpense(token)

	w, _ := s.do(http.MethodPut, "/api/expenses/"+created.ID, token, gin.H{"amount": -5})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPut, "/api/expenses/"+created.ID, token, gin.H{"date": "soon"})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestUpdateWithEmptyDateKeepsStoredDate() {
	token := s.registerAndLogin("alice", "alice@example.com")
	created := s.createExpense(token)

	w, env := s.do(http.MethodPut, "/api/expenses/"+created.ID, token, gin.H{"date": "", "title": "New"})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var updated expenseJSON
	require.NoError(s.T(), json.Unmarshal(env.Data, &updated))
	assert.Equal(s.T(), "New", updated.Title)
	assert.Equal(s.T(), created.Date, updated.Date)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
