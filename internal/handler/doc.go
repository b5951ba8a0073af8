// Package handler exposes the remap engine over HTTP. Requests are
// self-contained: the scene text and the mapping travel in the body, the
// rewritten scene and its warnings travel back, and nothing is kept
// between calls.
package handler
