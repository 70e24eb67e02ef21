package http

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	caseMocks "github.com/NeuralTrust/TrustDrift/pkg/app/evalcase/mocks"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	domainCase "github.com/NeuralTrust/TrustDrift/pkg/domain/evalcase"
	domainVersion "github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCaseHandler(t *testing.T) {
	svc := caseMocks.NewService(t)
	svc.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(r *request.CreateCaseRequest) bool {
			return r.UserID == testUserID && r.Name == "Tax bot"
		})).
		Return(&domainCase.Case{ID: "case_1", UserID: testUserID, Name: "Tax bot"}, nil)

	app := newTestApp(false)
	app.Post("/api/v1/cases", NewCreateCaseHandler(testLogger(), svc).Handle)

	resp, body := doJSON(t, app, "POST", "/api/v1/cases", map[string]any{"name": "Tax bot"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "case_1", body["case_id"])
}

func TestListCasesHandler_EmptyIsArray(t *testing.T) {
	svc := caseMocks.NewService(t)
	svc.EXPECT().List(mock.Anything, testUserID).Return([]domainCase.Case{}, nil)

	app := newTestApp(false)
	app.Get("/api/v1/cases", NewListCasesHandler(testLogger(), svc).Handle)

	resp, body := doJSON(t, app, "GET", "/api/v1/cases", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{}, body["cases"])
}

func TestGetCaseHandler(t *testing.T) {
	tests := []struct {
		name       string
		detail     *evalcase.Detail
		err        error
		wantStatus int
	}{
		{
			name: "owner",
			detail: &evalcase.Detail{
				Case:     &domainCase.Case{ID: "case_1", Name: "Tax bot", VersionCount: 1},
				Versions: []domainVersion.Metadata{{ID: "v1", CaseID: "case_1", VersionNumber: 1}},
			},
			wantStatus: fiber.StatusOK,
		},
		{name: "not shared", err: domain.NewAccessDeniedError("case", "case_1"), wantStatus: fiber.StatusForbidden},
		{name: "missing", err: domain.NewNotFoundError("case", "case_1"), wantStatus: fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := caseMocks.NewService(t)
			svc.EXPECT().Get(mock.Anything, "case_1", testUserID).Return(tt.detail, tt.err)

			app := newTestApp(false)
			app.Get("/api/v1/cases/:case_id", NewGetCaseHandler(testLogger(), svc).Handle)

			resp, body := doJSON(t, app, "GET", "/api/v1/cases/case_1", nil)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.detail != nil {
				assert.Equal(t, "Tax bot", body["name"])
				require.Len(t, body["versions"], 1)
			}
		})
	}
}

func TestUpdateAndDeleteCaseHandlers(t *testing.T) {
	svc := caseMocks.NewService(t)
	svc.EXPECT().
		Update(mock.Anything, "case_1", testUserID, mock.MatchedBy(func(r *request.UpdateCaseRequest) bool {
			return r.Name != nil && *r.Name == "Renamed"
		})).
		Return(&domainCase.Case{ID: "case_1", Name: "Renamed"}, nil)
	svc.EXPECT().Delete(mock.Anything, "case_1", testUserID).Return(nil)
	svc.EXPECT().Delete(mock.Anything, "case_2", testUserID).Return(domain.NewAccessDeniedError("case", "case_2"))

	app := newTestApp(false)
	app.Put("/api/v1/cases/:case_id", NewUpdateCaseHandler(testLogger(), svc).Handle)
	app.Delete("/api/v1/cases/:case_id", NewDeleteCaseHandler(testLogger(), svc).Handle)

	resp, body := doJSON(t, app, "PUT", "/api/v1/cases/case_1", map[string]any{"name": "Renamed"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renamed", body["name"])

	resp, _ = doJSON(t, app, "DELETE", "/api/v1/cases/case_1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/v1/cases/case_2", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestMemberHandlers(t *testing.T) {
	svc := caseMocks.NewService(t)
	svc.EXPECT().
		AddMember(mock.Anything, "case_1", testUserID, mock.Anything).
		Return(&domainCase.Member{ID: "mem_1", CaseID: "case_1", UserID: "user_2", Role: domainCase.RoleViewer}, nil)
	svc.EXPECT().
		Members(mock.Anything, "case_1", testUserID).
		Return([]evalcase.MemberView{
			{Member: domainCase.Member{ID: "owner_" + testUserID, UserID: testUserID, Role: domainCase.RoleOwner}, IsOwner: true},
			{Member: domainCase.Member{ID: "mem_1", UserID: "user_2", Role: domainCase.RoleViewer}},
		}, nil)

	app := newTestApp(false)
	app.Post("/api/v1/cases/:case_id/members", NewAddMemberHandler(testLogger(), svc).Handle)
	app.Get("/api/v1/cases/:case_id/members", NewListMembersHandler(testLogger(), svc).Handle)

	resp, body := doJSON(t, app, "POST", "/api/v1/cases/case_1/members", map[string]any{
		"user_id": "user_2", "email": "b@b.io", "role": "viewer",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "mem_1", body["member_id"])

	resp, body = doJSON(t, app, "GET", "/api/v1/cases/case_1/members", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	members, ok := body["members"].([]any)
	require.True(t, ok)
	require.Len(t, members, 2)
	assert.Equal(t, true, members[0].(map[string]any)["is_owner"])
}
