// Package settings discovers, merges, and validates the layered JSON
// settings files used by claudio and Claude Code.
//
// The hierarchy mirrors Claude Code's settings precedence:
//
//  1. Local project settings  (.claude/settings.local.json)  — highest
//  2. Shared project settings (.claude/settings.json)
//  3. User settings           (~/.claude/settings.json)      — lowest
//
// claudio's own config uses the same hierarchy with the filenames
// claudio.settings.json / claudio.settings.local.json.
//
// Missing or unparseable files are treated as absent layers, never as
// errors. Only ValidateProjects reports problems, and only when a caller
// explicitly asks for a validated project list.
package settings
