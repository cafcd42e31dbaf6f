package api

import "github.com/rosymaple/dadjoke/internal/service"

// JokeRequest defines the payload for the joke endpoints.
type JokeRequest struct {
	// Keyword is the optional search term; blank selects a random joke
	Keyword string `json:"keyword"         validate:"max=100"`
	// Personalization is the requested style; blank selects the default style
	Personalization string `json:"personalization" validate:"max=500"`
	// Image requests an illustration of the personalized joke
	Image bool `json:"image"`
}

// JokeResponse defines the successful response of the joke endpoints.
type JokeResponse struct {
	Success          bool   `json:"success"`
	OriginalJoke     string `json:"original_joke"`
	PersonalizedJoke string `json:"personalized_joke"`
	// Source is the matched keyword, "random" or "fallback"
	Source string `json:"source"`
	// ImageSaved is only present when an image was requested
	ImageSaved *bool `json:"image_saved,omitempty"`
}

// toTellRequest converts the payload to the service input.
func (r JokeRequest) toTellRequest() service.TellRequest {
	return service.TellRequest{
		Keyword:   r.Keyword,
		Style:     r.Personalization,
		WithImage: r.Image,
	}
}

// newJokeResponse builds the response for a successful service result.
func newJokeResponse(result *service.TellResult, imageRequested bool) JokeResponse {
	resp := JokeResponse{
		Success:          true,
		OriginalJoke:     result.OriginalJoke,
		PersonalizedJoke: result.PersonalizedJoke,
		Source:           result.SourceLabel,
	}

	if imageRequested {
		saved := result.ImageSaved
		resp.ImageSaved = &saved
	}

	return resp
}
