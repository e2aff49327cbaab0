package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dpetersen/larder/internal/handler"
	"github.com/dpetersen/larder/internal/middleware"
	"github.com/dpetersen/larder/internal/store"
)

type Server struct {
	db          *sql.DB
	fridgeH     *handler.ItemHandler
	pantryH     *handler.ItemHandler
	userH       *handler.UserHandler
	sharedListH *handler.SharedListHandler
	logger      *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	fridgeStore := store.NewFridgeStore(db)
	pantryStore := store.NewPantryStore(db)
	userStore := store.NewUserStore(db)
	sharedListStore := store.NewSharedListStore(db)

	return &Server{
		db:          db,
		fridgeH:     handler.NewItemHandler(fridgeStore, "Food", logger.With("component", "fridge")),
		pantryH:     handler.NewItemHandler(pantryStore, "Pantry", logger.With("component", "pantry")),
		userH:       handler.NewUserHandler(userStore, logger.With("component", "user")),
		sharedListH: handler.NewSharedListHandler(sharedListStore, logger.With("component", "shared_list")),
		logger:      logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Fridge items
	mux.HandleFunc("GET /food_items/{user_id}", s.fridgeH.List)
	mux.HandleFunc("POST /food_items", s.fridgeH.Create)
	mux.HandleFunc("PATCH /food_items/{item_id}/{user_id}", s.fridgeH.Update)
	mux.HandleFunc("DELETE /food_items/{name}", s.fridgeH.Delete)

	// Pantry items
	mux.HandleFunc("GET /pantry_items/{user_id}", s.pantryH.List)
	mux.HandleFunc("POST /pantry_items", s.pantryH.Create)
	mux.HandleFunc("PATCH /pantry_items/{item_id}/{user_id}", s.pantryH.Update)
	mux.HandleFunc("DELETE /pantry_items/{name}", s.pantryH.Delete)

	// Users
	mux.HandleFunc("POST /users", s.userH.Create)
	mux.HandleFunc("POST /verify_user_exists", s.userH.VerifyExists)
	mux.HandleFunc("GET /users/{identifier}", s.userH.Get)
	mux.HandleFunc("GET /get_user_id", s.userH.GetID)

	// Shared list
	mux.HandleFunc("GET /shared_list_items", s.sharedListH.List)
	mux.HandleFunc("POST /shared_list_items", s.sharedListH.Create)
	mux.HandleFunc("DELETE /shared_list_items/{item_id}", s.sharedListH.Delete)

	mux.HandleFunc("GET /health", s.healthHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
