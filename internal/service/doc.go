// Package service contains the application use case: fetch a dad joke,
// personalize it through the language model and optionally illustrate it.
//
// The service coordinates the joke source, the fallback pool, the
// personalizer and the image pipeline. Every dependency is received through
// the constructor so each external system can be replaced by a test double.
//
// Error handling:
//   - Joke lookup failures are absorbed by substituting a fallback joke
//   - Personalization failures end the request without a partial result
//   - Image generation and storage failures are logged and never surfaced
//
// The API layer maps the returned errors to HTTP status codes.
package service
