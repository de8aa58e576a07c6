package controller

import (
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary コース一覧
// @Tags コース
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.ListCourses(caller)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary コース作成
// @Tags コース
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseInput true "コース"
// @Success 201 {object} util.Response
// @Router /api/admin/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var input service.CourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(caller, input)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// @Summary コース更新
// @Tags コース
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "コースID"
// @Param body body service.CourseInput true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var input service.CourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(caller, id, input)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

type publishRequest struct {
	Published bool `json:"published"`
}

// @Summary コース公開切替
// @Tags コース
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "コースID"
// @Param body body publishRequest true "公開フラグ"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id}/publish [patch]
func (c *CourseController) Publish(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req publishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.PublishCourse(caller, id, req.Published)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary コース削除
// @Tags コース
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "コースID"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.CourseService.DeleteCourse(caller, id); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
