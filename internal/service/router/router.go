package router

import (
	"net/http"

	auth "github.com/Fin1704/3KingAuto-server/internal/auth/controller"
	game "github.com/Fin1704/3KingAuto-server/internal/game/controller"
	"github.com/Fin1704/3KingAuto-server/internal/service/response"
	"github.com/gorilla/mux"
)

type welcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SetUpRoutes wires every endpoint. guard wraps the game actions; pass nil to skip it.
func SetUpRoutes(authHandler *auth.AuthHandler, gameHandler *game.GameHandler, guard mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()
	api := "/api"

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, welcome{Success: true, Message: "Welcome to the 3KingAuto game server"})
	}).Methods("GET")

	router.HandleFunc(api+"/auth/register", authHandler.Register).Methods("POST") // Create player with starter hero
	router.HandleFunc(api+"/auth/login", authHandler.Login).Methods("POST")       // Issue token
	router.HandleFunc(api+"/auth/profile", authHandler.Profile).Methods("GET")    // Player, heroes and runes

	gameRoute := func(path string, h http.HandlerFunc) *mux.Route {
		var handler http.Handler = h
		if guard != nil {
			handler = guard(handler)
		}
		return router.Handle(api+"/game"+path, handler)
	}
	gameRoute("/kill-monster", gameHandler.KillMonster).Methods("POST")
	gameRoute("/summon-boss", gameHandler.SummonBoss).Methods("GET", "POST")
	gameRoute("/kill-boss", gameHandler.KillBoss).Methods("POST")
	gameRoute("/equip-rune", gameHandler.EquipRune).Methods("POST")
	gameRoute("/unequip-rune", gameHandler.UnequipRune).Methods("POST")
	gameRoute("/buy-hero", gameHandler.BuyHero).Methods("POST")
	gameRoute("/mine-minerals", gameHandler.MineMinerals).Methods("POST")
	gameRoute("/top", gameHandler.GetTopByGems).Methods("GET") // Leaderboard, ?limit=N
	return router
}
