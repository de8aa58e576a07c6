package controller

import (
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary ログイン
// @Description ユーザー名とパスワードで認証し JWT を発行する
// @Tags 認証
// @Accept json
// @Produce json
// @Param body body loginRequest true "資格情報"
// @Success 200 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// @Summary プロフィール取得
// @Description 認証済みユーザー自身の情報を返す
// @Tags 認証
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetUser(caller, caller.UserID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, user)
}
