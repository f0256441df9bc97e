package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfare/cmd/fx/account_fx"
	"wayfare/cmd/fx/db_fx"
	"wayfare/cmd/fx/memcache_fx"
	"wayfare/cmd/fx/planner_fx"
	"wayfare/cmd/fx/trip_fx"
	"wayfare/internal/api/controllers"
	"wayfare/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		planner_fx.Module,
		trip_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	spendingController *controllers.SpendingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, spendingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	spendingController *controllers.SpendingController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
	accounts.POST("/logout", middleware.JWTAuthMiddleware(), accountController.Logout)

	trips := r.Group("/trips", middleware.JWTAuthMiddleware())
	trips.POST("", tripController.CreateTrip)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)

	trips.POST("/:tripId/days/:dayId/activities", tripController.AddActivity)
	trips.PUT("/:tripId/days/:dayId/activities/:activityId", tripController.UpdateActivity)
	trips.DELETE("/:tripId/days/:dayId/activities/:activityId", tripController.DeleteActivity)
	trips.PUT("/:tripId/days/:dayId/notes", tripController.UpdateDayNotes)

	trips.GET("/:tripId/days/:dayId/activities/:activityId/map", tripController.GetActivityMapLink)
	trips.POST("/:tripId/days/:dayId/activities/:activityId/suggest", tripController.SuggestAlternative)
	trips.POST("/:tripId/days/:dayId/activities/:activityId/undo", tripController.UndoSuggestion)

	trips.GET("/:tripId/spending", spendingController.GetSpending)
	trips.POST("/:tripId/share", tripController.ShareTrip)

	// Anyone holding a valid share link can view, no auth.
	r.GET("/shared/:token", tripController.GetShared)
}
