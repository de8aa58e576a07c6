package controller

import (
	"strconv"

	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type OrgController struct {
	OrgService *service.OrgService
}

func NewOrgController(orgService *service.OrgService) *OrgController {
	return &OrgController{OrgService: orgService}
}

type companyRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

type departmentRequest struct {
	Name      string `json:"name" binding:"required"`
	CompanyID uint   `json:"companyId"`
}

type sectionRequest struct {
	Name         string `json:"name" binding:"required"`
	DepartmentID uint   `json:"departmentId"`
}

func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// @Summary 会社一覧
// @Tags 組織
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/companies [get]
func (c *OrgController) ListCompanies(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	companies, err := c.OrgService.ListCompanies(caller)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, companies)
}

// @Summary 会社作成
// @Tags 組織
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body companyRequest true "会社"
// @Success 201 {object} util.Response
// @Router /api/admin/companies [post]
func (c *OrgController) CreateCompany(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req companyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	company, err := c.OrgService.CreateCompany(caller, req.Name)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, company)
}

// @Summary 会社更新
// @Tags 組織
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "会社ID"
// @Param body body companyRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/admin/companies/{id} [put]
func (c *OrgController) UpdateCompany(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req companyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	company, err := c.OrgService.UpdateCompany(caller, id, &req.Name, req.Active)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, company)
}

// @Summary 会社削除
// @Tags 組織
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "会社ID"
// @Success 200 {object} util.Response
// @Router /api/admin/companies/{id} [delete]
func (c *OrgController) DeleteCompany(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.OrgService.DeleteCompany(caller, id); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 部署一覧
// @Tags 組織
// @Produce json
// @Security ApiKeyAuth
// @Param companyId query int false "会社ID（MASTER のみ指定可）"
// @Success 200 {object} util.Response
// @Router /api/admin/departments [get]
func (c *OrgController) ListDepartments(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	companyID, _ := strconv.ParseUint(ctx.DefaultQuery("companyId", "0"), 10, 32)

	depts, err := c.OrgService.ListDepartments(caller, uint(companyID))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, depts)
}

// @Summary 部署作成
// @Tags 組織
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body departmentRequest true "部署"
// @Success 201 {object} util.Response
// @Router /api/admin/departments [post]
func (c *OrgController) CreateDepartment(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req departmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dept, err := c.OrgService.CreateDepartment(caller, req.Name, req.CompanyID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, dept)
}

// @Summary 部署更新
// @Tags 組織
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "部署ID"
// @Param body body departmentRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/admin/departments/{id} [put]
func (c *OrgController) UpdateDepartment(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req departmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dept, err := c.OrgService.UpdateDepartment(caller, id, req.Name)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, dept)
}

// @Summary 部署削除
// @Tags 組織
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "部署ID"
// @Success 200 {object} util.Response
// @Router /api/admin/departments/{id} [delete]
func (c *OrgController) DeleteDepartment(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.OrgService.DeleteDepartment(caller, id); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 課一覧
// @Tags 組織
// @Produce json
// @Security ApiKeyAuth
// @Param departmentId query int true "部署ID"
// @Success 200 {object} util.Response
// @Router /api/admin/sections [get]
func (c *OrgController) ListSections(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	departmentID, err := strconv.ParseUint(ctx.Query("departmentId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "departmentId is required")
		return
	}

	sections, svcErr := c.OrgService.ListSections(caller, uint(departmentID))
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}

	util.Success(ctx, sections)
}

// @Summary 課作成
// @Tags 組織
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body sectionRequest true "課"
// @Success 201 {object} util.Response
// @Router /api/admin/sections [post]
func (c *OrgController) CreateSection(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req sectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.OrgService.CreateSection(caller, req.Name, req.DepartmentID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, section)
}

// @Summary 課更新
// @Tags 組織
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "課ID"
// @Param body body sectionRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/admin/sections/{id} [put]
func (c *OrgController) UpdateSection(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req sectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.OrgService.UpdateSection(caller, id, req.Name)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, section)
}

// @Summary 課削除
// @Tags 組織
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "課ID"
// @Success 200 {object} util.Response
// @Router /api/admin/sections/{id} [delete]
func (c *OrgController) DeleteSection(ctx *gin.Context) {
	caller, ok := util.CallerFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.OrgService.DeleteSection(caller, id); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
