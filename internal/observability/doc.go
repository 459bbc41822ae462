// Package observability groups logging and metrics support for the service.
package observability
