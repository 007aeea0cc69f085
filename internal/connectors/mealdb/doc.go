// Package mealdb implements the recipe catalog gateway for TheMealDB
// JSON API.
//
// # Architecture
//
// The gateway follows the driven port pattern defined in
// [driven.RecipeCatalog]. It comprises the following pieces:
//
//   - Client: builds catalog URLs, drives the injected Transport and
//     decodes the response envelope
//   - Record normalisation: delegated to internal/normalisers/mealdb,
//     which owns the flat wire shape
//   - Errors: a small taxonomy separating connectivity failures from
//     bad statuses and malformed bodies
//
// # Endpoints
//
// Three read-only endpoints are used, all returning the same envelope
// (an object whose "meals" field is null or a list of records):
//
//   - search.php?s=<term>  free-text search by recipe name
//   - lookup.php?i=<id>    fetch one recipe by identifier
//   - random.php           fetch one catalog-chosen recipe
//
// # Rate Limiting
//
// The free tier has no quota headers, so the client throttles
// proactively with a token bucket: short bursts pass through, and a
// sustained stream of requests is paced below the documented limit.
//
// # Error Handling
//
// Every failure is typed so callers can branch without string
// matching:
//
//   - [TransportError]: the exchange never completed
//   - [HTTPError]: the server answered with a non-2xx status
//   - [MalformedResponseError]: the body did not match the envelope
//
// A "meals": null body is zero matches, never an error.
package mealdb
