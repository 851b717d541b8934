// Package auth provides the editor authentication middleware of the API.
//
// Routes that change form or lifecycle state require the editor token:
//
//	Authorization: Bearer <token>
//
// The token is checked against the argon2id hash configured as
// Webserver.EditorTokenHash. Generate one with the hash-token command.
// Without a configured hash every editor route answers 403.
//
// Usage:
//
//	router.Put("/settings", auth.Editor(cfg.Webserver.EditorTokenHash), s.Put)
package auth
