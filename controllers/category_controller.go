package controllers

import (
	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: svc}
}

type categoryReq struct {
	ID   uint   `json:"id"`
	Type int    `json:"type" binding:"required,oneof=1 2"`
	Name string `json:"name" binding:"required"`
	Sort int    `json:"sort"`
}

func (r *categoryReq) toEntity() *entity.Category {
	cat := &entity.Category{Type: r.Type, Name: r.Name, Sort: r.Sort}
	cat.ID = r.ID
	return cat
}

func (cc *CategoryController) Create(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := req.toEntity()
	if err := cc.Svc.Create(cat); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": cat.ID})
}

func (cc *CategoryController) Page(c *gin.Context) {
	page := queryIntDefault(c, "page", 1)
	pageSize := queryIntDefault(c, "pageSize", 10)

	out, err := cc.Svc.PageQuery(c.Query("name"), queryInt(c, "type"), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (cc *CategoryController) Update(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := cc.Svc.Update(req.toEntity()); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (cc *CategoryController) StartOrStop(c *gin.Context) {
	status := paramUint(c, "status")
	id := queryUint(c, "id")
	if id == nil {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := cc.Svc.StartOrStop(*id, int(status)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (cc *CategoryController) Delete(c *gin.Context) {
	id := queryUint(c, "id")
	if id == nil {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := cc.Svc.Delete(*id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (cc *CategoryController) List(c *gin.Context) {
	rows, err := cc.Svc.ListByType(queryInt(c, "type"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}
