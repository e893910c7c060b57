// Package devserver serves a routed app to real browsers during
// development.
//
// Each page load gets a shell document holding the app pre-rendered for the
// requested location. The embedded client then opens a WebSocket to
// /_vroute/ws, where a bridge session mirrors the browser window on the
// server and streams renders back.
//
//	srv := devserver.New(devserver.Options{
//	    Addr:    "localhost:3000",
//	    Mode:    location.ModeHistory,
//	    Factory: factory,
//	})
//	go srv.ListenAndServe()
//	defer srv.Shutdown(ctx)
//
// Routes:
//
//	GET /_vroute/ws         bridge session
//	GET /_vroute/client.js  thin client
//	GET /metrics            Prometheus metrics, when enabled
//	GET /assets/*           static assets, when a source is configured
//	GET /*                  shell page
package devserver
