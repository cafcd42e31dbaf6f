// Package generation provides interfaces for interacting with external AI/LLM
// services for content generation. It abstracts the details of the Gemini
// text and Imagen image APIs, allowing the application to personalize dad
// jokes and illustrate them without coupling to specific external services.
package generation
