package routes

import (
	"net/http"

	"github.com/2605335342/sky-take-out/configs"
	"github.com/2605335342/sky-take-out/controllers"
	"github.com/2605335342/sky-take-out/middlewares"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/2605335342/sky-take-out/services"
	"github.com/2605335342/sky-take-out/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. The admin group carries the merchant console, the user group the
// consumer app; each has its own login outside the auth middleware.
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, db *gorm.DB, hub *ws.NotifyHub) {
	employeeRepo := repository.NewEmployeeRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	dishRepo := repository.NewDishRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	cartRepo := repository.NewCartRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	employeeSvc := services.NewEmployeeService(employeeRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.DefaultPassword)
	categorySvc := services.NewCategoryService(categoryRepo, dishRepo, setmealRepo)
	dishSvc := services.NewDishService(db, dishRepo, setmealRepo)
	setmealSvc := services.NewSetmealService(db, setmealRepo)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo, setmealRepo)
	addressSvc := services.NewAddressService(db, addressRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, addressRepo, hub)
	userSvc := services.NewUserService(userRepo, cfg.WechatAppID, cfg.WechatSecret, cfg.JWTSecret, cfg.JWTTTL)
	workspaceSvc := services.NewWorkspaceService(orderRepo, userRepo, dishRepo, setmealRepo)
	reportSvc := services.NewReportService(orderRepo, userRepo, workspaceSvc)

	employeeCtl := controllers.NewEmployeeController(employeeSvc)
	categoryCtl := controllers.NewCategoryController(categorySvc)
	dishCtl := controllers.NewDishController(dishSvc)
	setmealCtl := controllers.NewSetmealController(setmealSvc)
	cartCtl := controllers.NewCartController(cartSvc)
	addressCtl := controllers.NewAddressController(addressSvc)
	orderAdminCtl := controllers.NewOrderAdminController(orderSvc)
	orderUserCtl := controllers.NewOrderUserController(orderSvc)
	userCtl := controllers.NewUserController(userSvc)
	workspaceCtl := controllers.NewWorkspaceController(workspaceSvc)
	reportCtl := controllers.NewReportController(reportSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admin := r.Group("/admin")
	admin.POST("/employee/login", employeeCtl.Login)
	{
		auth := admin.Group("", middlewares.AuthMiddleware(cfg, "admin"))

		auth.POST("/employee", employeeCtl.Create)
		auth.GET("/employee/page", employeeCtl.Page)
		auth.POST("/employee/status/:status", employeeCtl.StartOrStop)
		auth.GET("/employee/:id", employeeCtl.GetByID)
		auth.PUT("/employee", employeeCtl.Update)

		auth.POST("/category", categoryCtl.Create)
		auth.GET("/category/page", categoryCtl.Page)
		auth.PUT("/category", categoryCtl.Update)
		auth.POST("/category/status/:status", categoryCtl.StartOrStop)
		auth.DELETE("/category", categoryCtl.Delete)
		auth.GET("/category/list", categoryCtl.List)

		auth.POST("/dish", dishCtl.Save)
		auth.GET("/dish/page", dishCtl.Page)
		auth.DELETE("/dish", dishCtl.Delete)
		auth.GET("/dish/list", dishCtl.List)
		auth.GET("/dish/:id", dishCtl.GetByID)
		auth.PUT("/dish", dishCtl.Update)
		auth.POST("/dish/status/:status", dishCtl.StartOrStop)

		auth.POST("/setmeal", setmealCtl.Save)
		auth.GET("/setmeal/page", setmealCtl.Page)
		auth.DELETE("/setmeal", setmealCtl.Delete)
		auth.GET("/setmeal/:id", setmealCtl.GetByID)
		auth.PUT("/setmeal", setmealCtl.Update)
		auth.POST("/setmeal/status/:status", setmealCtl.StartOrStop)

		auth.GET("/order/conditionSearch", orderAdminCtl.ConditionSearch)
		auth.GET("/order/statistics", orderAdminCtl.Statistics)
		auth.GET("/order/details/:id", orderAdminCtl.Details)
		auth.PUT("/order/confirm", orderAdminCtl.Confirm)
		auth.PUT("/order/rejection", orderAdminCtl.Rejection)
		auth.PUT("/order/cancel", orderAdminCtl.Cancel)
		auth.PUT("/order/delivery/:id", orderAdminCtl.Delivery)
		auth.PUT("/order/complete/:id", orderAdminCtl.Complete)

		auth.GET("/workspace/businessData", workspaceCtl.BusinessData)
		auth.GET("/workspace/overviewOrders", workspaceCtl.OverviewOrders)
		auth.GET("/workspace/overviewDishes", workspaceCtl.OverviewDishes)
		auth.GET("/workspace/overviewSetmeals", workspaceCtl.OverviewSetmeals)

		auth.GET("/report/turnoverStatistics", reportCtl.TurnoverStatistics)
		auth.GET("/report/userStatistics", reportCtl.UserStatistics)
		auth.GET("/report/ordersStatistics", reportCtl.OrdersStatistics)
		auth.GET("/report/top10", reportCtl.Top10)
		auth.GET("/report/export", reportCtl.Export)
	}

	user := r.Group("/user")
	user.POST("/user/login", userCtl.Login)
	{
		auth := user.Group("", middlewares.AuthMiddleware(cfg, "user"))

		auth.GET("/category/list", categoryCtl.List)
		auth.GET("/dish/list", dishCtl.ListForUser)
		auth.GET("/setmeal/list", setmealCtl.ListForUser)
		auth.GET("/setmeal/dish/:id", setmealCtl.DishItems)

		auth.POST("/shoppingCart/add", cartCtl.Add)
		auth.POST("/shoppingCart/sub", cartCtl.Sub)
		auth.GET("/shoppingCart/list", cartCtl.List)
		auth.DELETE("/shoppingCart/clean", cartCtl.Clean)

		auth.POST("/addressBook", addressCtl.Add)
		auth.GET("/addressBook/list", addressCtl.List)
		auth.GET("/addressBook/default", addressCtl.GetDefault)
		auth.GET("/addressBook/:id", addressCtl.GetByID)
		auth.PUT("/addressBook", addressCtl.Update)
		auth.DELETE("/addressBook", addressCtl.Delete)
		auth.PUT("/addressBook/default", addressCtl.SetDefault)

		auth.POST("/order/submit", orderUserCtl.Submit)
		auth.PUT("/order/payment", orderUserCtl.Payment)
		auth.GET("/order/historyOrders", orderUserCtl.HistoryOrders)
		auth.GET("/order/orderDetail/:id", orderUserCtl.Details)
		auth.PUT("/order/cancel/:id", orderUserCtl.Cancel)
		auth.POST("/order/repetition/:id", orderUserCtl.Repetition)
		auth.GET("/order/reminder/:id", orderUserCtl.Reminder)
	}

	r.GET("/ws/notify", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleWebSocket)
}
