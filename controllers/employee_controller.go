package controllers

import (
	"strings"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/pkg/resp"
	"github.com/2605335342/sky-take-out/services"
	"github.com/gin-gonic/gin"
)

type EmployeeController struct{ Svc *services.EmployeeService }

func NewEmployeeController(svc *services.EmployeeService) *EmployeeController {
	return &EmployeeController{Svc: svc}
}

type employeeLoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ec *EmployeeController) Login(c *gin.Context) {
	var req employeeLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, e, err := ec.Svc.Login(strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": e.ID, "name": e.Name, "username": e.Username, "token": token})
}

type employeeReq struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Phone    string `json:"phone"`
	Sex      string `json:"sex"`
	IDNumber string `json:"idNumber"`
}

func (r *employeeReq) toEntity() *entity.Employee {
	e := &entity.Employee{
		Name:     r.Name,
		Username: r.Username,
		Phone:    r.Phone,
		Sex:      r.Sex,
		IDNumber: r.IDNumber,
	}
	e.ID = r.ID
	return e
}

func (ec *EmployeeController) Create(c *gin.Context) {
	var req employeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	e := req.toEntity()
	if err := ec.Svc.Create(e); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": e.ID})
}

func (ec *EmployeeController) Page(c *gin.Context) {
	page := queryIntDefault(c, "page", 1)
	pageSize := queryIntDefault(c, "pageSize", 10)

	out, err := ec.Svc.PageQuery(c.Query("name"), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (ec *EmployeeController) StartOrStop(c *gin.Context) {
	status := paramUint(c, "status")
	id := queryUint(c, "id")
	if id == nil {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := ec.Svc.StartOrStop(*id, int(status)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

func (ec *EmployeeController) GetByID(c *gin.Context) {
	e, err := ec.Svc.GetByID(paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, e)
}

func (ec *EmployeeController) Update(c *gin.Context) {
	var req employeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := ec.Svc.Update(req.toEntity()); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}
