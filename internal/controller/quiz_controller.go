package controller

import (
	"strconv"

	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuestionService *service.QuestionService
	QuizService     *service.QuizService
}

func NewQuizController(questionService *service.QuestionService, quizService *service.QuizService) *QuizController {
	return &QuizController{
		QuestionService: questionService,
		QuizService:     quizService,
	}
}

// @Summary ジャンル一覧
// @Description 出題可能なジャンル（自社＋共通、空文字除外）を返す
// @Tags クイズ
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quiz/genres [get]
func (c *QuizController) GetGenres(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	genres, err := c.QuestionService.ListGenres(caller)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, genres)
}

// @Summary 出題取得
// @Description 指定ジャンルから最大 count 件の問題を返す。正解は含まない
// @Tags クイズ
// @Produce json
// @Security ApiKeyAuth
// @Param genre query string true "ジャンル"
// @Param count query int false "出題数" default(10)
// @Success 200 {object} util.Response
// @Router /api/quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	genre := ctx.Query("genre")
	if genre == "" {
		util.BadRequest(ctx, "genre is required")
		return
	}
	count, _ := strconv.Atoi(ctx.DefaultQuery("count", strconv.Itoa(util.DefaultQuizCount)))

	questions, err := c.QuestionService.ListQuizQuestions(caller, genre, count)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	// 出題時は正解を渡さない
	type quizQuestion struct {
		ID      uint     `json:"id"`
		Type    string   `json:"type"`
		Genre   string   `json:"genre"`
		Title   string   `json:"title"`
		Choices []string `json:"choices"`
	}
	out := make([]quizQuestion, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		out = append(out, quizQuestion{
			ID:      q.ID,
			Type:    string(q.Type),
			Genre:   q.Genre,
			Title:   q.Title,
			Choices: q.ChoiceList(),
		})
	}

	util.Success(ctx, out)
}

type quizSubmitRequest struct {
	Answers []service.AnswerSubmission `json:"answers" binding:"required"`
}

// @Summary クイズ提出
// @Description 回答を採点し、1 問 1 行で学習履歴に追記する
// @Tags クイズ
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body quizSubmitRequest true "回答"
// @Success 200 {object} util.Response
// @Router /api/quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req quizSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(caller, req.Answers)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 学習履歴
// @Description 自分（または同じ会社のメンバー、管理者のみ）の履歴を時刻昇順で返す
// @Tags クイズ
// @Produce json
// @Security ApiKeyAuth
// @Param userId query int false "対象ユーザーID（省略時は自分）"
// @Success 200 {object} util.Response
// @Router /api/learning-logs [get]
func (c *QuizController) GetHistory(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	targetID := caller.UserID
	if raw := ctx.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid user id")
			return
		}
		targetID = uint(parsed)
	}

	logs, err := c.QuizService.History(caller, targetID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, logs)
}
