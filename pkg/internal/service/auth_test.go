package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/immovault/pkg/configs"
	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/types"
)

func testAuthConfig() *configs.AuthConfig {
	return &configs.AuthConfig{
		Enabled:       true,
		Secret:        "test-secret",
		TokenTTLHours: 1,
	}
}

func TestSignupAndLogin(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewAuthService(ctx, testAuthConfig())

	resp, err := svc.Signup(ctx, &types.SignupRequest{
		Email:    "agent@example.com",
		Password: "s3cret-pass",
		Name:     "Agent",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	// 公开注册一律协作者角色
	assert.Equal(t, model.RoleCollaborator, resp.User.Role)

	login, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "agent@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	claims, err := ParseToken(login.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, model.RoleCollaborator, claims.Role)
}

func TestSignupIgnoresRoleInBody(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewAuthService(ctx, testAuthConfig())

	// 请求体里声明 ADMIN 角色也不生效，注册结果仍是协作者
	body := `{"email":"sneaky@example.com","password":"password1","name":"Sneaky","role":"ADMIN"}`

	var req types.SignupRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	resp, err := svc.Signup(ctx, &req)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCollaborator, resp.User.Role)

	claims, err := ParseToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCollaborator, claims.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewAuthService(ctx, testAuthConfig())

	req := &types.SignupRequest{Email: "dup@example.com", Password: "password1", Name: "A"}

	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, req)
	require.Error(t, err)
	assert.Equal(t, 409, StatusOf(err))
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewAuthService(ctx, testAuthConfig())

	_, err := svc.Signup(ctx, &types.SignupRequest{Email: "u@example.com", Password: "password1", Name: "U"})
	require.NoError(t, err)

	// 密码错误与用户不存在返回同样的 401
	_, err = svc.Login(ctx, &types.LoginRequest{Email: "u@example.com", Password: "wrong-pass"})
	require.Error(t, err)
	assert.Equal(t, 401, StatusOf(err))

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "password1"})
	require.Error(t, err)
	assert.Equal(t, 401, StatusOf(err))
}

func TestParseTokenWrongSecret(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewAuthService(ctx, testAuthConfig())

	resp, err := svc.Signup(ctx, &types.SignupRequest{Email: "t@example.com", Password: "password1", Name: "T"})
	require.NoError(t, err)

	_, err = ParseToken(resp.Token, "other-secret")
	require.Error(t, err)
	assert.Equal(t, 401, StatusOf(err))
}

func TestCollaboratorCRUD(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewCollaboratorService(ctx)

	created, err := svc.Create(ctx, &types.CreateCollaboratorRequest{
		Email:    "c1@example.com",
		Password: "password1",
		Name:     "C1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCollaborator, created.Role)

	_, err = svc.Create(ctx, &types.CreateCollaboratorRequest{
		Email:    "c1@example.com",
		Password: "password1",
		Name:     "C1bis",
	})
	require.Error(t, err)
	assert.Equal(t, 409, StatusOf(err))

	updated, err := svc.Update(ctx, created.ID, &types.UpdateCollaboratorRequest{
		Name: strPtr("C1 renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "C1 renamed", updated.Name)
	assert.Equal(t, "c1@example.com", updated.Email)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
}
