package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AmrIbrahim41/tfg-backend/internal/middleware"
	"github.com/AmrIbrahim41/tfg-backend/internal/models"
	"github.com/AmrIbrahim41/tfg-backend/internal/nutrition"
	"github.com/AmrIbrahim41/tfg-backend/internal/pdfdoc"
	"github.com/AmrIbrahim41/tfg-backend/internal/service"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

type testAPI struct {
	router *gin.Engine
	db     *gorm.DB
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Country{},
		&models.SubscriptionPlan{},
		&models.ClientSubscription{},
		&models.TrainingPlan{},
		&models.TrainingDaySplit{},
		&models.TrainingExercise{},
		&models.TrainingSet{},
		&models.TrainingSession{},
		&models.SessionExercise{},
		&models.SessionSet{},
		&models.NutritionPlan{},
		&models.Food{},
	))

	authService := service.NewAuthService(db, testJWTSecret)
	clientService := service.NewClientService(db)
	subscriptionService := service.NewSubscriptionService(db)
	trainingService := service.NewTrainingService(db)
	foodService := service.NewFoodService(db, nil)
	nutritionService := service.NewNutritionService(db, foodService)
	dashboardService := service.NewDashboardService(db)
	reportService := service.NewReportService(
		nutritionService, subscriptionService, trainingService,
		pdfdoc.NewRenderer(t.TempDir()))

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewClientHandler(clientService, service.NewPhotoService(nil), authService).RegisterRoutes(v1)
	NewSubscriptionHandler(subscriptionService, authService).RegisterRoutes(v1)
	NewTrainingHandler(trainingService, authService).RegisterRoutes(v1)
	NewNutritionHandler(nutritionService, reportService, authService,
		middleware.NewPDFGenerationRateLimiter(nil)).RegisterRoutes(v1)
	NewFoodHandler(foodService, authService).RegisterRoutes(v1)
	NewDashboardHandler(dashboardService, authService).RegisterRoutes(v1)

	_, err = authService.Register(&types.RegisterRequest{
		Name:     "Coach Amr",
		Username: "amr",
		Email:    "amr@example.com",
		Password: "supersecret",
		IsAdmin:  true,
	})
	require.NoError(t, err)
	token, _, err := authService.Login("amr", "supersecret")
	require.NoError(t, err)

	return &testAPI{router: router, db: db, token: token}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestAPI_LoginFlow(t *testing.T) {
	a := newTestAPI(t)

	body, _ := json.Marshal(types.LoginRequest{Username: "amr", Password: "supersecret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "token")

	// Wrong password is rejected.
	body, _ = json.Marshal(types.LoginRequest{Username: "amr", Password: "nope"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_RequiresAuth(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_ClientCRUD(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(t, http.MethodPost, "/api/v1/clients", types.CreateClientRequest{
		Name:      "Ahmed Hassan",
		ManualID:  "TFG-001",
		Phone:     "+201001234567",
		BirthDate: "1999-03-10",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created service.ClientWithAge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Greater(t, created.Age, 0)

	w = a.do(t, http.MethodGet, "/api/v1/clients?q=ahmed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TFG-001")

	w = a.do(t, http.MethodGet, "/api/v1/clients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodDelete, "/api/v1/clients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/clients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_NutritionCompute(t *testing.T) {
	a := newTestAPI(t)

	age, height, weight := 25, 175.0, 80.0
	deficit, meals := -500, 4
	w := a.do(t, http.MethodPost, "/api/v1/nutrition/compute", types.ComputeNutritionRequest{
		Input: nutrition.Input{
			Gender:         "male",
			Age:            &age,
			HeightCm:       &height,
			WeightKg:       &weight,
			ActivityLevel:  "moderate",
			DeficitSurplus: &deficit,
			MealsCount:     &meals,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res service.ComputeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2749, res.TDEE)
	assert.Equal(t, 2249, res.TargetCalories)
	assert.Equal(t, 176, res.Macros.Protein.Grams)
	assert.Nil(t, res.ExchangeList)
}

func TestAPI_SubscriptionAndPDFFlow(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(t, http.MethodPost, "/api/v1/clients", types.CreateClientRequest{
		Name: "Ahmed Hassan", ManualID: "TFG-001", Phone: "+201001234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var client service.ClientWithAge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))

	w = a.do(t, http.MethodPost, "/api/v1/plans", types.CreatePlanRequest{
		Name: "Gold", Units: 12, DurationDays: 30,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var plan models.SubscriptionPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))

	w = a.do(t, http.MethodPost, "/api/v1/subscriptions", types.CreateSubscriptionRequest{
		ClientID: client.ID.String(),
		PlanID:   plan.ID.String(),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var sub models.ClientSubscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))

	w = a.do(t, http.MethodPost, "/api/v1/nutrition/plans", types.SaveNutritionPlanRequest{
		SubscriptionID: sub.ID.String(),
		Name:           "Cut Phase 1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var nutritionPlan models.NutritionPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nutritionPlan))

	w = a.do(t, http.MethodGet, "/api/v1/nutrition/plans/"+nutritionPlan.ID.String()+"/pdf?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])

	w = a.do(t, http.MethodGet, "/api/v1/nutrition/plans/"+nutritionPlan.ID.String()+"/pdf?lang=fr", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_PDFQuota(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(t, http.MethodGet, "/api/v1/nutrition/pdf-quota", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var quota struct {
		Limit     int   `json:"limit"`
		Remaining int   `json:"remaining"`
		Reset     int64 `json:"reset"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quota))
	assert.Equal(t, 20, quota.Limit)
	// Without Redis the limiter never burns quota.
	assert.Equal(t, quota.Limit, quota.Remaining)
	assert.Greater(t, quota.Reset, int64(0))
}

func TestAPI_FoodValidation(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(t, http.MethodPost, "/api/v1/foods", types.CreateFoodRequest{
		Name: "Mystery Powder", Category: "supplements", CaloriesPer100g: 400,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/foods", types.CreateFoodRequest{
		Name: "Chicken Breast", Category: "Protein", CaloriesPer100g: 165,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"protein"`)
}

func TestAPI_Dashboard(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total_clients")
}
