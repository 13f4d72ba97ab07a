package controllers

import (
	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SetmealController struct{ Svc *services.SetmealService }

func NewSetmealController(svc *services.SetmealService) *SetmealController {
	return &SetmealController{Svc: svc}
}

type setmealDishIn struct {
	DishID uint            `json:"dishId" binding:"required"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Copies int             `json:"copies"`
}

type setmealReq struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name" binding:"required"`
	CategoryID    uint            `json:"categoryId" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	Description   string          `json:"description"`
	SetmealDishes []setmealDishIn `json:"setmealDishes"`
}

func (r *setmealReq) toEntity() *entity.Setmeal {
	s := &entity.Setmeal{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
	}
	s.ID = r.ID
	for _, d := range r.SetmealDishes {
		s.SetmealDishes = append(s.SetmealDishes, entity.SetmealDish{
			DishID: d.DishID,
			Name:   d.Name,
			Price:  d.Price,
			Copies: d.Copies,
		})
	}
	return s
}

func (sc *SetmealController) Save(c *gin.Context) {
	var req setmealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	setmeal := req.toEntity()
	if err := sc.Svc.SaveWithDish(setmeal); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": setmeal.ID})
}

func (sc *SetmealController) Page(c *gin.Context) {
	out, err := sc.Svc.PageQuery(repository.SetmealQuery{
		Name:       c.Query("name"),
		CategoryID: queryUint(c, "categoryId"),
		Status:     queryInt(c, "status"),
		Page:       queryIntDefault(c, "page", 1),
		PageSize:   queryIntDefault(c, "pageSize", 10),
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (sc *SetmealController) Delete(c *gin.Context) {
	ids := parseIDs(c.Query("ids"))
	if len(ids) == 0 {
		resp.BadRequest(c, "ids is required")
		return
	}
	if err := sc.Svc.DeleteBatch(ids); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (sc *SetmealController) GetByID(c *gin.Context) {
	setmeal, err := sc.Svc.GetByIDWithDish(paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, setmeal)
}

func (sc *SetmealController) Update(c *gin.Context) {
	var req setmealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := sc.Svc.UpdateWithDish(req.toEntity()); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (sc *SetmealController) StartOrStop(c *gin.Context) {
	status := paramUint(c, "status")
	id := queryUint(c, "id")
	if id == nil {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := sc.Svc.StartOrStop(*id, int(status)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// ListForUser is the consumer menu: enabled set-meals in a category.
func (sc *SetmealController) ListForUser(c *gin.Context) {
	categoryID := queryUint(c, "categoryId")
	if categoryID == nil {
		resp.BadRequest(c, "categoryId is required")
		return
	}
	setmeals, err := sc.Svc.List(*categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, setmeals)
}

// DishItems lists the composition of one set-meal for the consumer detail page.
func (sc *SetmealController) DishItems(c *gin.Context) {
	items, err := sc.Svc.DishItems(paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}
