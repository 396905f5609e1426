package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/configs"
	"github.com/yeisme/immovault/pkg/internal/service"
	"github.com/yeisme/immovault/pkg/internal/types"
	"github.com/yeisme/immovault/pkg/rule"
)

// Signup 用户注册.
func Signup(c *gin.Context) {
	var req types.SignupRequest
	if !bindAndValidate(c, &req) {
		return
	}

	svc := service.NewAuthService(c.Request.Context(), &configs.GetConfig().Auth)

	resp, err := svc.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login 用户登录.
func Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	svc := service.NewAuthService(c.Request.Context(), &configs.GetConfig().Auth)

	resp, err := svc.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bindAndValidate 绑定 JSON body 并执行 rule 校验.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}

	if err := rule.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}

	return true
}
