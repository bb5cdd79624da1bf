// Package api implements the HTTP handlers, request/response models and
// error mapping for the excuse email service.
package api
