// Package domain contains the core value types of the application: the joke
// obtained from the lookup service, the request sent to the language model,
// the personalized result and the optional illustration. It is independent of
// any specific infrastructure or delivery mechanism.
package domain
