// Package prompt builds the text sent to the generative services: the
// personalization instruction for the language model, its fixed system
// persona, and the illustration prompt for the image model.
package prompt
