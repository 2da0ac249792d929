package router

import (
	"net/http"

	"github.com/MUCCHU/imf-gadgets-api/app/controllers"
	"github.com/MUCCHU/imf-gadgets-api/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, gadgetCtrl *controllers.GadgetController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /auth/register", authCtrl.Register)
	mux.HandleFunc("POST /auth/login", authCtrl.Login)

	// gadgets, token required
	mux.Handle("GET /gadgets", mw.RequireAuth(http.HandlerFunc(gadgetCtrl.List)))
	mux.Handle("POST /gadgets", mw.RequireAuth(http.HandlerFunc(gadgetCtrl.Create)))
	mux.Handle("PATCH /gadgets/{id}", mw.RequireAuth(http.HandlerFunc(gadgetCtrl.Update)))
	mux.Handle("DELETE /gadgets/{id}", mw.RequireAuth(http.HandlerFunc(gadgetCtrl.Decommission)))
	mux.Handle("POST /gadgets/{id}/self-destruct", mw.RequireAuth(http.HandlerFunc(gadgetCtrl.SelfDestruct)))

	return mux
}
