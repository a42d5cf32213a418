package main

import (
	"net/http"
	"os"
	"runtime/debug"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// newRouter attaches the error responders and route table to a gin engine.
func newRouter(r *gin.Engine) *gin.Engine {
	r.Use(recoveryMiddleware())
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found - " + c.Request.URL.Path})
	})
	setupRoutes(r)
	return r
}

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("/register", registerHandler)
	users.POST("/login", loginHandler)
	usersAuth := users.Group("")
	usersAuth.Use(jwtAuthMiddleware())
	usersAuth.GET("/profile", profileHandler)
	usersAuth.PUT("/baseCurrency", setBaseCurrencyHandler)
	usersAuth.POST("/scheduleBillReminder", scheduleBillReminderHandler)
	usersAuth.GET("/:id", getUserHandler)
	usersAuth.PUT("/:id", updateUserHandler)
	usersAdmin := usersAuth.Group("")
	usersAdmin.Use(adminRequired())
	usersAdmin.GET("", listUsersHandler)
	usersAdmin.DELETE("/:id", deleteUserHandler)
	usersAdmin.POST("/notifyUnusualSpending", notifyUnusualSpendingHandler)

	transactions := api.Group("/transactions")
	transactions.Use(jwtAuthMiddleware())
	transactions.POST("", createTransactionHandler)
	transactions.GET("", listTransactionsHandler)
	transactions.GET("/:id", getTransactionHandler)
	transactions.PUT("/:id", updateTransactionHandler)
	transactions.DELETE("/:id", deleteTransactionHandler)

	budgets := api.Group("/budgets")
	budgets.Use(jwtAuthMiddleware())
	budgets.POST("", setBudgetHandler)
	budgets.GET("", listBudgetsHandler)
	budgets.GET("/notifications", budgetNotificationsHandler)
	budgets.GET("/recommendations", budgetRecommendationsHandler)
	budgets.PUT("/:id", updateBudgetHandler)
	budgets.DELETE("/:id", deleteBudgetHandler)

	goals := api.Group("/goals")
	goals.Use(jwtAuthMiddleware())
	goals.POST("", createGoalHandler)
	goals.GET("", listGoalsHandler)
	goals.GET("/:id", getGoalHandler)
	goals.PUT("/:id", updateGoalHandler)
	goals.DELETE("/:id", deleteGoalHandler)
	goals.PUT("/:id/add-savings", addSavingsHandler)

	reports := api.Group("/reports")
	reports.Use(jwtAuthMiddleware())
	reports.GET("/spending-trends", spendingTrendsHandler)
	reports.GET("/income-vs-expenses", incomeVsExpensesHandler)
	reports.GET("/budget-summary", budgetSummaryHandler)

	dashboard := api.Group("/dashboard")
	dashboard.Use(jwtAuthMiddleware())
	dashboard.GET("/admin", adminRequired(), adminDashboardHandler)
	dashboard.GET("/user", userDashboardHandler)
}

// jwtAuthMiddleware verifies the bearer token and loads the subject user into
// the request context. Missing and invalid tokens both map to 401.
func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		sub, ok := claims["sub"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		var user models.User
		if err := db.First(&user, uint(sub)).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		c.Set("user", &user)
		c.Next()
	}
}

// adminRequired rejects non-admin identities with 403.
func adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized as an admin"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated user attached by jwtAuthMiddleware.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// owns is the single ownership predicate applied to every id-scoped record
// operation. Records that fail it are reported as not found, never as
// forbidden, so their existence is not leaked.
func owns(ownerID uint, user *models.User) bool {
	return user != nil && ownerID == user.ID
}

// recoveryMiddleware maps panics to a 500 {message, stack?} body. The stack
// is only included in development.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		body := gin.H{"message": "Internal Server Error"}
		if os.Getenv("APP_ENV") == "development" {
			body["stack"] = string(debug.Stack())
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
