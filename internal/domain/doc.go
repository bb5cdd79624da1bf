// Package domain defines the core business entities and errors for the
// excuse email service.
package domain
