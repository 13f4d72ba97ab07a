package controllers

import (
	"strconv"
	"strings"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DishController struct{ Svc *services.DishService }

func NewDishController(svc *services.DishService) *DishController { return &DishController{Svc: svc} }

type dishFlavorIn struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type dishReq struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name" binding:"required"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Flavors     []dishFlavorIn  `json:"flavors"`
}

func (r *dishReq) toEntity() *entity.Dish {
	d := &entity.Dish{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
	}
	d.ID = r.ID
	for _, f := range r.Flavors {
		d.Flavors = append(d.Flavors, entity.DishFlavor{Name: f.Name, Value: f.Value})
	}
	return d
}

// parseIDs splits "1,2,3" into ids.
func parseIDs(s string) []uint {
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		if v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64); err == nil {
			ids = append(ids, uint(v))
		}
	}
	return ids
}

func (dc *DishController) Save(c *gin.Context) {
	var req dishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish := req.toEntity()
	if err := dc.Svc.SaveWithFlavor(dish); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": dish.ID})
}

func (dc *DishController) Page(c *gin.Context) {
	out, err := dc.Svc.PageQuery(repository.DishQuery{
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

func (dc *DishController) Delete(c *gin.Context) {
	ids := parseIDs(c.Query("ids"))
	if len(ids) == 0 {
		resp.BadRequest(c, "ids is required")
		return
	}
	if err := dc.Svc.DeleteBatch(ids); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (dc *DishController) GetByID(c *gin.Context) {
	dish, err := dc.Svc.GetByIDWithFlavor(paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dish)
}

func (dc *DishController) Update(c *gin.Context) {
	var req dishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := dc.Svc.UpdateWithFlavor(req.toEntity()); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (dc *DishController) StartOrStop(c *gin.Context) {
	status := paramUint(c, "status")
	id := queryUint(c, "id")
	if id == nil {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := dc.Svc.StartOrStop(*id, int(status)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// List is the admin picker: every dish in a category.
func (dc *DishController) List(c *gin.Context) {
	categoryID := queryUint(c, "categoryId")
	if categoryID == nil {
		resp.BadRequest(c, "categoryId is required")
		return
	}
	dishes, err := dc.Svc.ListByCategory(*categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dishes)
}

// ListForUser is the consumer menu: enabled dishes with flavors.
func (dc *DishController) ListForUser(c *gin.Context) {
	categoryID := queryUint(c, "categoryId")
	if categoryID == nil {
		resp.BadRequest(c, "categoryId is required")
		return
	}
	dishes, err := dc.Svc.ListWithFlavor(*categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dishes)
}
