// Package api contains the HTTP gateways to the two third-party services the
// client talks to: the authentication endpoint and the exercise catalog.
//
// Gateways are transport only. They issue the request, validate the response
// against an explicit schema, and normalize it into model types; retry,
// fallback, and caching policy belong to the services layer.
package api
