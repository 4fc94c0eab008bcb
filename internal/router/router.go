// Package router builds the echo instance.
//
// It installs the global middleware chain and the error handler, then maps
// every path onto its handler.
package router

import (
	"net/http"

	"github.com/deppfellow/people-api/internal/handler"
	"github.com/deppfellow/people-api/internal/middleware"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the application's HTTP handler.
//
// Middleware order matters: RequestID feeds the New Relic and logging
// layers, the New Relic transaction must exist before EnhanceTracing and
// EnhanceContext read it, the rate limiter runs inside RequestLogger so
// denials carry the request logger and get an "API" line, and Recover sits
// innermost so a panic is rendered by the global error handler like any
// other error.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.BodyLimit(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	router.GET("/", h.Home.Home)

	person := router.Group("/person")
	person.POST("/new", handler.Handle(h.Person.Handler, h.Person.CreatePerson, http.StatusCreated))
	person.GET("/detail", handler.Handle(h.Person.Handler, h.Person.ShowPerson, http.StatusOK))
	person.GET("/detail/:id", handler.Handle(h.Person.Handler, h.Person.GetPerson, http.StatusOK))
	person.PUT("/:id", handler.Handle(h.Person.Handler, h.Person.UpdatePerson, http.StatusOK))

	router.PUT("/person-location/:id", handler.Handle(h.Person.Handler, h.Person.UpdatePersonLocation, http.StatusAccepted))
	router.PUT("/location/:id", handler.Handle(h.Location.Handler, h.Location.UpdateLocation, http.StatusOK))

	router.POST("/login", handler.Handle(h.Form.Handler, h.Form.Login, http.StatusOK))
	router.POST("/contact", handler.Handle(h.Form.Handler, h.Form.Contact, http.StatusOK))
	router.POST("/post-image", handler.Handle(h.Upload.Handler, h.Upload.PostImage, http.StatusOK))

	return router
}
