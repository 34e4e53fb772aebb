// Package auth provides a bearer token middleware for the web application.
//
// Read requests always pass. Requests that change state must carry
// "Authorization: Bearer <token>" when a token is configured.
//
// Usage:
//
//	app.Use(handler.RootPath+"profiles", auth.New(cfg.Webserver.APIToken))
package auth
