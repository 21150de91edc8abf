package plans

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

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestCreatePlan_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "membership_plans" WHERE name = \$1 ORDER BY "membership_plans"."id" LIMIT \$2`).
		WithArgs("Premium Membership", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "membership_plans" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("plan-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/plans", CreatePlan)

	planData := map[string]interface{}{
		"name":         "Premium Membership",
		"description":  "Monthly premium plan",
		"priceCents":   15000,
		"durationDays": 30,
	}
	jsonData, _ := json.Marshal(planData)

	req, _ := http.NewRequest(http.MethodPost, "/plans", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var plan models.MembershipPlan
	json.Unmarshal(resp.Body.Bytes(), &plan)
	assert.Equal(t, "Premium Membership", plan.Name)
	assert.Equal(t, int64(15000), plan.PriceCents)
	assert.Equal(t, 30, plan.DurationDays)
}

func TestCreatePlan_AlreadyExists(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "membership_plans" WHERE name = \$1 ORDER BY "membership_plans"."id" LIMIT \$2`).
		WithArgs("Premium Membership", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("plan-uuid", "Premium Membership"))

	r := testutils.SetupTestRouter()
	r.POST("/plans", CreatePlan)

	planData := map[string]interface{}{
		"name":         "Premium Membership",
		"priceCents":   15000,
		"durationDays": 30,
	}
	jsonData, _ := json.Marshal(planData)

	req, _ := http.NewRequest(http.MethodPost, "/plans", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Plan already exists", respBody["error"])
}

func TestCreatePlan_MissingPrice(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/plans", CreatePlan)

	planData := map[string]interface{}{
		"name":         "Premium Membership",
		"durationDays": 30,
	}
	jsonData, _ := json.Marshal(planData)

	req, _ := http.NewRequest(http.MethodPost, "/plans", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetAllPlans_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "membership_plans" ORDER BY price_cents ASC`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "price_cents", "duration_days"}).
			AddRow("plan-1", "Basic Membership", 5000, 30).
			AddRow("plan-2", "Premium Membership", 15000, 30))

	r := testutils.SetupTestRouter()
	r.GET("/plans", GetAllPlans)

	req, _ := http.NewRequest(http.MethodGet, "/plans", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var planList []models.MembershipPlan
	json.Unmarshal(resp.Body.Bytes(), &planList)
	assert.Len(t, planList, 2)
	assert.Equal(t, "Basic Membership", planList[0].Name)
}
