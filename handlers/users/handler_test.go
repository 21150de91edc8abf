package users

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"caterclub-backend/models"
	"caterclub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const testUserID = "aa66e33e-7d38-4f3c-9b1a-111111111111"

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func authedRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})
	return r
}

func TestGetProfile_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WithArgs(testUserID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "email", "first_name", "last_name", "phone"}).
			AddRow(testUserID, "thandi@example.com", "Thandi", "Mbeki", "0821234567"))

	r := authedRouter()
	r.GET("/users/me", GetProfile)

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var user models.User
	json.Unmarshal(resp.Body.Bytes(), &user)
	assert.Equal(t, "thandi@example.com", user.Email)
	assert.Equal(t, "Thandi", user.FirstName)
}

func TestGetProfile_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WithArgs(testUserID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := authedRouter()
	r.GET("/users/me", GetProfile)

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WithArgs(testUserID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "email"}).
			AddRow(testUserID, "thandi@example.com"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+) WHERE "id" = \$(\d)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := authedRouter()
	r.PUT("/users/me", UpdateProfile)

	body, _ := json.Marshal(map[string]string{
		"firstName": "Thandi",
		"lastName":  "Mbeki",
		"phone":     "0821234567",
	})

	req, _ := http.NewRequest(http.MethodPut, "/users/me", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var user models.User
	json.Unmarshal(resp.Body.Bytes(), &user)
	assert.Equal(t, "Thandi", user.FirstName)
	assert.Equal(t, "0821234567", user.Phone)
}
