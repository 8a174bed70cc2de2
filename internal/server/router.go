package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	framescontroller "artistic-unity/internal/frames"
	ordercontroller "artistic-unity/internal/order/controller"
	uploadcontroller "artistic-unity/internal/upload"
)

func NewRouter(
	framesCtrl *framescontroller.Controller,
	uploadCtrl *uploadcontroller.Controller,
	orderCtrl *ordercontroller.SubmitOrderController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)

		r.Route("/frames", func(r chi.Router) {
			r.Get("/", framesCtrl.HandleListFrames)
			r.Get("/{frameId}", framesCtrl.HandleGetFrame)
			r.Get("/{frameId}/sizes", framesCtrl.HandleListSizes)
			r.Get("/{frameId}/customizations", framesCtrl.HandleResolveCustomizations)
		})

		r.Get("/collages", framesCtrl.HandleResolveCollages)
		r.Post("/uploads", uploadCtrl.HandleUpload)
		r.Post("/orders", orderCtrl.SubmitOrder)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","message":"Server is running"}`))
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
			)
		})
	}
}
