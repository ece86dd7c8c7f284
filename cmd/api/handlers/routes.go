package handlers

import (
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func NewRouter(p *Payment) *httprouter.Router {
	router := httprouter.New()
	router.POST("/pay/one-time", p.OneTime)
	router.POST("/pay/recurring", p.Recurring)
	router.POST("/pay/capture/:token", p.Capture)
	router.GET("/health", p.Health)
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		log.Printf("layer=handler component=router method=%s path=%s panic=%v", r.Method, r.URL.Path, v)
		writeJSON(w, http.StatusInternalServerError, errorResp{Detail: "internal error"})
	}
	return router
}
