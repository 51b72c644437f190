package routes

import (
	"hotel_procurement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users", adminHandler.CreateUser)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)

		admin.GET("/roles", adminHandler.ListRoles)
		admin.POST("/roles", adminHandler.PutRole)
		admin.PUT("/roles/:name", adminHandler.PutRole)
		admin.DELETE("/roles/:name", adminHandler.DeleteRole)

		admin.GET("/branches", adminHandler.ListBranches)
		admin.POST("/branches", adminHandler.PutBranch)
		admin.PUT("/branches/:id", adminHandler.PutBranch)
		admin.DELETE("/branches/:id", adminHandler.DeleteBranch)
	}
}
