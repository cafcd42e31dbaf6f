// Package gemini provides implementations of the generation.Personalizer and
// generation.ImageGenerator interfaces that use Google's Gemini API for
// rewriting dad jokes and Imagen for illustrating them.
//
// This package is an infrastructure adapter: it translates between the
// application's domain values and the google.golang.org/genai client without
// exposing the details of the external service to the core application.
//
// Key components:
//
// 1. Personalizer:
//   - Implements the generation.Personalizer interface
//   - Sends the personalization instruction with a fixed system persona
//   - Requests structured JSON output constrained by a response schema
//   - Validates the two required fields once, at this boundary
//
// 2. ImageGenerator:
//   - Implements the generation.ImageGenerator interface
//   - Requests exactly one square JPEG image
//
// 3. Error Handling:
//   - Categorizes API failures, safety blocks and malformed output into the
//     sentinel errors of the generation package
//   - Performs no retries; failures are reported to the caller immediately
//
// Both generators depend on the small ModelsAPI interface rather than on the
// concrete client, so tests can substitute the remote service.
package gemini
