// Package mcp implements the Model Context Protocol server for grazer.
//
// It exposes discovery, health checks and image generation as tools so that
// agents can use grazer over stdio.
package mcp
