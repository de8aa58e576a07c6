package controller

import (
	"strconv"

	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// @Summary 問題一覧
// @Description MASTER は全問題、それ以外は自社＋共通の問題を返す
// @Tags 問題バンク
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) ListAll(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.QuestionService.ListAll(caller)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary 共通問題一覧
// @Description 共通ライブラリ（会社に属さない問題）のみを返す
// @Tags 問題バンク
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/questions/common [get]
func (c *QuestionController) ListCommon(ctx *gin.Context) {
	questions, err := c.QuestionService.ListCommon()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary 問題作成
// @Description 自社所有の問題を作成する。共通問題を作れるのは MASTER のみ
// @Tags 問題バンク
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionInput true "問題"
// @Success 201 {object} util.Response
// @Router /api/admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var input service.QuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(caller, input)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// @Summary 問題更新
// @Description 部分更新。id と所有会社はパッチでは変更できない
// @Tags 問題バンク
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "問題ID"
// @Param body body service.QuestionPatch true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var patch service.QuestionPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, svcErr := c.QuestionService.Update(uint(id), patch, caller)
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}

	util.Success(ctx, question)
}

// @Summary 問題の自社コピー
// @Description 問題を自社所有の新しい行として複製する。元の行は変更されない
// @Tags 問題バンク
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "問題ID"
// @Success 201 {object} util.Response
// @Router /api/admin/questions/{id}/copy [post]
func (c *QuestionController) CopyToCompany(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	question, svcErr := c.QuestionService.CopyToCompany(uint(id), caller)
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}

	util.Created(ctx, question)
}

// @Summary 問題削除
// @Tags 問題バンク
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "問題ID"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *QuestionController) Remove(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if svcErr := c.QuestionService.Remove(uint(id), caller); svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}

	util.Success(ctx, nil)
}
