package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fellowtravellers/apartments-api/internal/api/shared"
	"github.com/fellowtravellers/apartments-api/internal/domain"
)

// withPrincipal attaches a verified email to the request context, standing in
// for the identity middleware.
func withPrincipal(r *http.Request, email string) *http.Request {
	return r.WithContext(shared.SetPrincipalEmail(r.Context(), email))
}

func TestUserCreate(t *testing.T) {
	t.Parallel()

	users := &fakeUserStore{}
	handler := NewUserHandler(users)

	rec := httptest.NewRecorder()
	handler.Create(rec, httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"a@x.com","displayName":"Ada"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]interface{}
	decodeBody(t, rec, &result)
	assert.NotEmpty(t, result["insertedId"])
	assert.Equal(t, 1, users.countByEmail("a@x.com"))
}

func TestUserUpsertKeepsOneRecordPerEmail(t *testing.T) {
	t.Parallel()

	users := &fakeUserStore{}
	handler := NewUserHandler(users)

	// First PUT inserts.
	rec := httptest.NewRecorder()
	handler.Upsert(rec, httptest.NewRequest(http.MethodPut, "/users",
		strings.NewReader(`{"email":"a@x.com","displayName":"Ada"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	decodeBody(t, rec, &result)
	assert.NotEmpty(t, result["upsertedId"])

	// Second PUT with the same email updates in place.
	rec = httptest.NewRecorder()
	handler.Upsert(rec, httptest.NewRequest(http.MethodPut, "/users",
		strings.NewReader(`{"email":"a@x.com","displayName":"Ada L."}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	result = nil
	decodeBody(t, rec, &result)
	assert.Equal(t, float64(1), result["matchedCount"])
	assert.NotContains(t, result, "upsertedId")

	assert.Equal(t, 1, users.countByEmail("a@x.com"))
}

func TestUserAdminStatus(t *testing.T) {
	t.Parallel()

	users := &fakeUserStore{}
	_, err := users.Create(context.Background(), &domain.User{Email: "boss@x.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	_, err = users.Create(context.Background(), &domain.User{Email: "guest@x.com"})
	require.NoError(t, err)

	handler := NewUserHandler(users)

	tests := []struct {
		name      string
		email     string
		wantAdmin bool
	}{
		{name: "admin user", email: "boss@x.com", wantAdmin: true},
		{name: "regular user", email: "guest@x.com", wantAdmin: false},
		{name: "unknown user", email: "nobody@x.com", wantAdmin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+tt.email, nil), "email", tt.email)
			handler.AdminStatus(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp AdminStatusResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.wantAdmin, resp.Admin)
		})
	}
}

func TestUserPromoteAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		principal   string
		body        string
		wantStatus  int
		wantPromote bool
	}{
		{
			name:        "admin requester promotes target",
			principal:   "boss@x.com",
			body:        `{"email":"guest@x.com"}`,
			wantStatus:  http.StatusOK,
			wantPromote: true,
		},
		{
			name:       "no identity is rejected before the store",
			principal:  "",
			body:       `{"email":"guest@x.com"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-admin requester is forbidden",
			principal:  "guest@x.com",
			body:       `{"email":"guest@x.com"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "requester without a record is forbidden",
			principal:  "stranger@x.com",
			body:       `{"email":"guest@x.com"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing target email",
			principal:  "boss@x.com",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserStore{}
			_, err := users.Create(context.Background(), &domain.User{Email: "boss@x.com", Role: domain.RoleAdmin})
			require.NoError(t, err)
			_, err = users.Create(context.Background(), &domain.User{Email: "guest@x.com"})
			require.NoError(t, err)

			handler := NewUserHandler(users)

			req := httptest.NewRequest(http.MethodPut, "/users/admin", strings.NewReader(tt.body))
			if tt.principal != "" {
				req = withPrincipal(req, tt.principal)
			}
			rec := httptest.NewRecorder()
			handler.PromoteAdmin(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantPromote {
				assert.Equal(t, 1, users.promoteCalls)
				promoted, err := users.GetByEmail(context.Background(), "guest@x.com")
				require.NoError(t, err)
				assert.True(t, promoted.IsAdmin())
			} else {
				// Denied requests must not touch the target record.
				assert.Zero(t, users.promoteCalls)
				target, err := users.GetByEmail(context.Background(), "guest@x.com")
				require.NoError(t, err)
				assert.False(t, target.IsAdmin())
			}
		})
	}
}

func TestUserStoreFailureSurfacesAs500(t *testing.T) {
	t.Parallel()

	users := &fakeUserStore{forcedErr: errors.New("down")}
	handler := NewUserHandler(users)

	rec := httptest.NewRecorder()
	handler.Create(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"a@x.com"}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	req := withPrincipal(httptest.NewRequest(http.MethodPut, "/users/admin", strings.NewReader(`{"email":"a@x.com"}`)), "boss@x.com")
	handler.PromoteAdmin(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
