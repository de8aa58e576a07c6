package controller

import (
	"strconv"

	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DiagnosisController struct {
	DiagnosisService *service.DiagnosisService
	UserService      *service.UserService
}

func NewDiagnosisController(diagnosisService *service.DiagnosisService, userService *service.UserService) *DiagnosisController {
	return &DiagnosisController{
		DiagnosisService: diagnosisService,
		UserService:      userService,
	}
}

// targetUserID 自分以外を指定した場合は会社スコープの参照権限を確認する。
func (c *DiagnosisController) targetUserID(ctx *gin.Context) (uint, bool) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return 0, false
	}

	targetID := caller.UserID
	if raw := ctx.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid user id")
			return 0, false
		}
		targetID = uint(parsed)
	}

	if targetID != caller.UserID {
		if !caller.IsAdmin() {
			util.Forbidden(ctx)
			return 0, false
		}
		if _, err := c.UserService.GetUser(caller, targetID); err != nil {
			util.FromError(ctx, err)
			return 0, false
		}
	}
	return targetID, true
}

// @Summary 学習パターン診断
// @Description 履歴から 5 類型のいずれかに分類し、要約をユーザー行へキャッシュする
// @Tags 診断
// @Produce json
// @Security ApiKeyAuth
// @Param userId query int false "対象ユーザーID（省略時は自分）"
// @Success 200 {object} util.Response
// @Router /api/diagnosis [get]
func (c *DiagnosisController) Diagnose(ctx *gin.Context) {
	targetID, ok := c.targetUserID(ctx)
	if !ok {
		return
	}

	result, err := c.DiagnosisService.Diagnose(targetID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 診断キャッシュの要約
// @Description 前回診断の要約を返す。推奨文は類型から再生成される
// @Tags 診断
// @Produce json
// @Security ApiKeyAuth
// @Param userId query int false "対象ユーザーID（省略時は自分）"
// @Success 200 {object} util.Response
// @Router /api/diagnosis/cached [get]
func (c *DiagnosisController) GetCached(ctx *gin.Context) {
	targetID, ok := c.targetUserID(ctx)
	if !ok {
		return
	}

	summary, err := c.DiagnosisService.CachedSummary(targetID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}
