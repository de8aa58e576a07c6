package controller

import (
	"strconv"

	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary ユーザー一覧
// @Description MASTER は全社、それ以外は自社のユーザーを返す
// @Tags ユーザー管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	users, err := c.UserService.GetUsers(caller)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, users)
}

// @Summary ユーザー作成
// @Description ロールは大文字へ正規化される。MASTER 以外は自社にのみ作成可能
// @Tags ユーザー管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.UserInput true "ユーザー"
// @Success 201 {object} util.Response
// @Router /api/admin/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var input service.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.CreateUser(caller, input)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// @Summary ユーザー更新
// @Tags ユーザー管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ユーザーID"
// @Param body body service.UserPatch true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var patch service.UserPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, svcErr := c.UserService.UpdateUser(caller, uint(id), patch)
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}

	util.Success(ctx, user)
}

// @Summary ユーザー利用停止
// @Tags ユーザー管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ユーザーID"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) Deactivate(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if svcErr := c.UserService.DeactivateUser(caller, uint(id)); svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}

	util.Success(ctx, nil)
}
