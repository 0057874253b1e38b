package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dimitrije/intervue-api/internal/middleware"
	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/dimitrije/intervue-api/internal/services"
	"github.com/dimitrije/intervue-api/internal/testutil"
	"github.com/dimitrije/intervue-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newUserTestApp(t *testing.T, users *testutil.MockUserService) (*testutil.HTTPTestClient, *services.JWTService) {
	jwtSvc := newTestJWTService()
	handler := NewUserHandler(users, zap.NewNop())

	app := drift.New()
	group := app.Group("")
	group.Use(middleware.OptionalAuth(jwtSvc))
	group.Get("/me/role", handler.GetMyRole)
	group.Get("/users/:externalId", handler.GetByExternalID)

	return testutil.NewHTTPTestClient(t, app), jwtSvc
}

func TestUserHandler_GetByExternalID_Success(t *testing.T) {
	users := new(testutil.MockUserService)
	client, _ := newUserTestApp(t, users)

	image := "http://img"
	user := &models.User{ID: uuid.New(), ExternalID: "ext_1", Email: "a@x.com", Name: "Ann Lee", Image: &image}
	users.On("GetByExternalID", mock.Anything, "ext_1").Return(user, nil)

	rec := client.GET("/users/ext_1", nil)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp dto.UserResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "ext_1", resp.ExternalID)
	assert.Equal(t, "Ann Lee", resp.Name)
	assert.Equal(t, &image, resp.Image)
	assert.Nil(t, resp.Role)
}

func TestUserHandler_GetByExternalID_NotFound(t *testing.T) {
	users := new(testutil.MockUserService)
	client, _ := newUserTestApp(t, users)

	users.On("GetByExternalID", mock.Anything, "missing").Return(nil, services.ErrUserNotFound)

	rec := client.GET("/users/missing", nil)

	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestUserHandler_GetByExternalID_StoreError(t *testing.T) {
	users := new(testutil.MockUserService)
	client, _ := newUserTestApp(t, users)

	users.On("GetByExternalID", mock.Anything, "ext_1").Return(nil, errors.New("db down"))

	rec := client.GET("/users/ext_1", nil)

	testutil.AssertStatus(t, rec, http.StatusInternalServerError)
}

func TestUserHandler_GetMyRole(t *testing.T) {
	interviewer := models.RoleInterviewer
	candidate := models.RoleCandidate

	testCases := []struct {
		name string
		role *string
		want dto.RoleResponse
	}{
		{"interviewer", &interviewer, dto.RoleResponse{IsInterviewer: true}},
		{"candidate", &candidate, dto.RoleResponse{IsCandidate: true}},
		{"no role", nil, dto.RoleResponse{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := new(testutil.MockUserService)
			client, jwtSvc := newUserTestApp(t, users)

			users.On("GetByExternalID", mock.Anything, "user_1").Return(&models.User{ExternalID: "user_1", Role: tc.role}, nil)

			token := testutil.GenerateTestToken(t, jwtSvc, "user_1", "")
			rec := client.GET("/me/role", map[string]string{"Authorization": testutil.AuthHeader(token)})

			testutil.AssertStatus(t, rec, http.StatusOK)

			var resp dto.RoleResponse
			testutil.ParseJSON(t, rec, &resp)
			assert.Equal(t, tc.want, resp)
		})
	}
}

func TestUserHandler_GetMyRole_Anonymous(t *testing.T) {
	users := new(testutil.MockUserService)
	client, _ := newUserTestApp(t, users)

	rec := client.GET("/me/role", nil)

	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"is_loading":false,"is_interviewer":false,"is_candidate":false}`, rec.Body.String())
	users.AssertNotCalled(t, "GetByExternalID", mock.Anything, mock.Anything)
}

func TestUserHandler_GetMyRole_LookupError(t *testing.T) {
	users := new(testutil.MockUserService)
	client, jwtSvc := newUserTestApp(t, users)

	users.On("GetByExternalID", mock.Anything, "user_1").Return(nil, errors.New("db down"))

	token := testutil.GenerateTestToken(t, jwtSvc, "user_1", "")
	rec := client.GET("/me/role", map[string]string{"Authorization": testutil.AuthHeader(token)})

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp dto.RoleResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, dto.RoleResponse{}, resp)
}
