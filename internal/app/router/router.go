package router

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/Shuvro-Biswas/profile-app/internal/feature/auth/transport/handler"
	userhandler "github.com/Shuvro-Biswas/profile-app/internal/feature/users/transport/handler"
	platformhandler "github.com/Shuvro-Biswas/profile-app/internal/platform/http/handler"
)

// NewRouter builds the route table. The authentication gates are composed
// here, ahead of the handlers they protect.
func NewRouter(authH *authhandler.AuthHandler, userH *userhandler.UserHandler,
	authRequired, authOptional gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// No authentication
	r.GET("/healthz", platformhandler.Health)
	// Account creation (issues the first session token)
	r.POST("/register", authH.Register)
	// Login (issues a fresh session token)
	r.POST("/login", authH.Login)
	// Public directory with search and pagination
	r.GET("/users", userH.List)

	// Owner view for the profile owner, public view for everyone else
	r.GET("/users/:id", authOptional, userH.Get)

	// Routes requiring a valid session token
	auth := r.Group("/")
	auth.Use(authRequired)
	{
		auth.GET("/verify", authH.Verify)
		auth.GET("/profile", userH.Profile)
		auth.PUT("/users/:id", userH.Update)
		auth.DELETE("/users/:id", userH.Delete)
	}

	return r
}
