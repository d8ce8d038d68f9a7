package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pizzalab/pizzalab-api/app/catalog"
	"github.com/pizzalab/pizzalab-api/app/categories"
	"github.com/pizzalab/pizzalab-api/app/ingredients"
	"github.com/pizzalab/pizzalab-api/app/likes"
	"github.com/pizzalab/pizzalab-api/app/orders"
	"github.com/pizzalab/pizzalab-api/app/reviews"
	"github.com/pizzalab/pizzalab-api/models"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		env("DB_HOST", "localhost"),
		env("DB_PORT", "5432"),
		env("DB_USER", "pizzalab"),
		env("DB_PASSWORD", "pizzalab"),
		env("DB_NAME", "pizzalab"),
		env("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Ingredient{},
		&models.Product{},
		&models.ProductIngredient{},
		&models.Like{},
		&models.Review{},
		&models.Order{},
		&models.OrderProduct{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	productsRepo := models.NewProductsRepository(db)
	categoriesRepo := models.NewCategoriesRepository(db)
	ingredientsRepo := models.NewIngredientsRepository(db)
	linksRepo := models.NewProductIngredientsRepository(db)
	likesRepo := models.NewLikesRepository(db)
	reviewsRepo := models.NewReviewsRepository(db)
	ordersRepo := models.NewOrdersRepository(db)

	catalogService := catalog.NewService(
		productsRepo, categoriesRepo, ingredientsRepo,
		linksRepo, likesRepo, reviewsRepo,
	)
	ordersService := orders.NewService(ordersRepo)

	catalogHandler := catalog.NewHandler(catalogService)
	ordersHandler := orders.NewHandler(ordersService)
	categoryHandler := categories.NewCategoryHandler(categoriesRepo)
	ingredientHandler := ingredients.NewIngredientHandler(ingredientsRepo)
	likeHandler := likes.NewLikeHandler(likesRepo)
	reviewHandler := reviews.NewReviewHandler(reviewsRepo)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/products", catalogHandler.HandleGetAll)
	mux.HandleFunc("GET /api/products/{productId}", catalogHandler.HandleGet)
	mux.HandleFunc("GET /api/categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /api/ingredients", ingredientHandler.HandleGetAll)

	mux.HandleFunc("POST /api/products/{productId}/likes", likeHandler.HandleCreate)
	mux.HandleFunc("DELETE /api/products/{productId}/likes", likeHandler.HandleDelete)
	mux.HandleFunc("GET /api/products/{productId}/likes", likeHandler.HandleCount)
	mux.HandleFunc("GET /api/products/{productId}/reviews", reviewHandler.HandleGetByProduct)
	mux.HandleFunc("POST /api/products/{productId}/reviews", reviewHandler.HandleCreate)

	mux.HandleFunc("POST /api/orders", ordersHandler.HandleCreate)
	mux.HandleFunc("GET /api/orders/mine", ordersHandler.HandleListMine)

	// Admin routes. Role enforcement is the gateway's job; these handlers
	// assume the caller is already authorized.
	mux.HandleFunc("POST /api/admin/products", catalogHandler.HandleCreate)
	mux.HandleFunc("PUT /api/admin/products/{productId}", catalogHandler.HandleEdit)
	mux.HandleFunc("DELETE /api/admin/products/{productId}", catalogHandler.HandleDelete)
	mux.HandleFunc("POST /api/admin/categories", categoryHandler.HandleCreate)
	mux.HandleFunc("POST /api/admin/ingredients", ingredientHandler.HandleCreate)
	mux.HandleFunc("GET /api/admin/orders/pending", ordersHandler.HandleListPending)
	mux.HandleFunc("GET /api/admin/orders/approved", ordersHandler.HandleListApproved)
	mux.HandleFunc("POST /api/admin/orders/{orderId}/approve", ordersHandler.HandleApprove)

	addr := ":" + env("PORT", "8080")
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
