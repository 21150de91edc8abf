package memberships

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"caterclub-backend/models"
	"caterclub-backend/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const (
	testUserID = "aa66e33e-7d38-4f3c-9b1a-111111111111"
	testPlanID = "bb77f44f-8e49-4a4d-8c2b-222222222222"
)

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

func TestSelectPlan_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "membership_plans" WHERE id = \$1 ORDER BY "membership_plans"."id" LIMIT \$2`).
		WithArgs(testPlanID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "name", "price_cents", "duration_days"}).
			AddRow(testPlanID, "Premium Membership", 15000, 30))

	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE user_id = \$1 AND plan_id = \$2 AND status IN (.+) ORDER BY "memberships"."id" LIMIT (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "memberships" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("membership-uuid"))
	mock.ExpectCommit()

	r := authedRouter()
	r.POST("/memberships/:planId", SelectPlan)

	req, _ := http.NewRequest(http.MethodPost, "/memberships/"+testPlanID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var membership models.Membership
	json.Unmarshal(resp.Body.Bytes(), &membership)
	assert.Equal(t, testUserID, membership.UserID)
	assert.Equal(t, testPlanID, membership.PlanID)
	assert.Equal(t, models.MembershipInactive, membership.Status)
}

func TestSelectPlan_InvalidPlanID(t *testing.T) {
	r := authedRouter()
	r.POST("/memberships/:planId", SelectPlan)

	req, _ := http.NewRequest(http.MethodPost, "/memberships/not-a-uuid", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSelectPlan_AlreadyExists(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "membership_plans" WHERE id = \$1 ORDER BY "membership_plans"."id" LIMIT \$2`).
		WithArgs(testPlanID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow(testPlanID, "Premium Membership"))

	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE user_id = \$1 AND plan_id = \$2 AND status IN (.+) ORDER BY "memberships"."id" LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "status"}).AddRow("membership-uuid", "inactive"))

	r := authedRouter()
	r.POST("/memberships/:planId", SelectPlan)

	req, _ := http.NewRequest(http.MethodPost, "/memberships/"+testPlanID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestGetUserMemberships_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(testUserID).
		WillReturnRows(mock.NewRows([]string{"id", "user_id", "status"}).
			AddRow("membership-1", testUserID, "active").
			AddRow("membership-2", testUserID, "cancelled"))

	r := authedRouter()
	r.GET("/memberships", GetUserMemberships)

	req, _ := http.NewRequest(http.MethodGet, "/memberships", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var membershipList []models.Membership
	json.Unmarshal(resp.Body.Bytes(), &membershipList)
	assert.Len(t, membershipList, 2)
	assert.Equal(t, models.MembershipActive, membershipList[0].Status)
}

func TestGetMembershipDetail_Forbidden(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	membershipID := "cc88a55a-9f5a-4b5e-9d3c-333333333333"

	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE id = \$1 ORDER BY "memberships"."id" LIMIT \$2`).
		WithArgs(membershipID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "user_id"}).AddRow(membershipID, "someone-else"))

	r := authedRouter()
	r.GET("/memberships/:membershipId", GetMembershipDetail)

	req, _ := http.NewRequest(http.MethodGet, "/memberships/"+membershipID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}
