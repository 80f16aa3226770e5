package router

import (
	"susuhub/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupGroupRoutes(e *echo.Echo, handler *rest.GroupHandler) {
	groups := e.Group("/groups")

	groups.GET("", handler.GetAllGroups)
	groups.POST("", handler.CreateGroup)
	groups.PUT("/:id", handler.UpdateGroup)
}

func SetupUserRoutes(e *echo.Echo, userHandler *rest.UserHandler, groupHandler *rest.GroupHandler) {
	users := e.Group("/users")

	users.GET("", userHandler.GetAllUsers)
	users.POST("", userHandler.CreateUser)
	users.GET("/:email", userHandler.GetUserByEmail)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)
	users.GET("/:userId/groups", groupHandler.GetGroupsByUser)
}

func SetupTransactionRoutes(e *echo.Echo, handler *rest.TransactionHandler) {
	e.POST("/transactions", handler.CreateTransaction)
	e.GET("/transactions/:userId", handler.GetTransactionsByUser)
	e.GET("/groups/:groupId/transactions/contributions", handler.GetGroupContributions)
}

func SetupMessageRoutes(e *echo.Echo, handler *rest.MessageHandler) {
	e.POST("/group-messages", handler.PostMessage)
	e.GET("/group-messages/:groupId", handler.GetMessagesByGroup)
}

func SetupMembershipRoutes(e *echo.Echo, handler *rest.MembershipHandler) {
	membership := e.Group("/group-membership")

	membership.GET("/status/:userId/:groupId", handler.GetStatus)
	membership.POST("/join", handler.Join)
	membership.POST("/block", handler.Block)
	membership.POST("/reactivate", handler.Reactivate)
	membership.POST("/delete", handler.Delete)

	e.GET("/group-memberships", handler.GetAll)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/check-health", handler.CheckHealth)
}
