package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rosymaple/dadjoke/internal/domain"
	"github.com/rosymaple/dadjoke/internal/service"
)

// Console prompts
const (
	keywordPrompt      = "Enter search term for dad jokes (leave blank for random): "
	retryKeywordPrompt = "Enter a different search term for dad jokes: "
	stylePrompt        = "What style of joke would you like? (silly, punny, nerdy, sarcastic, cheesy, one-liner, long story, cringe, etc): "
	separator          = "--------------------------------------------------"
)

// jokeSearcher checks whether a search term has matches.
type jokeSearcher interface {
	Search(ctx context.Context, term string) ([]string, error)
}

// consoleInput carries the flag values; unset values are prompted for.
type consoleInput struct {
	keyword    string
	keywordSet bool
	style      string
	styleSet   bool
	withImage  bool
}

// console runs the prompt and print flow.
type console struct {
	in       *bufio.Reader
	out      io.Writer
	searcher jokeSearcher
	jokes    service.JokeService
}

func newConsole(in io.Reader, out io.Writer, searcher jokeSearcher, jokes service.JokeService) *console {
	return &console{
		in:       bufio.NewReader(in),
		out:      out,
		searcher: searcher,
		jokes:    jokes,
	}
}

// run asks for missing input, offers one retry when the search term has no
// matches, and prints the result.
func (c *console) run(ctx context.Context, input consoleInput) error {
	keyword := input.keyword
	if !input.keywordSet {
		var err error
		if keyword, err = c.ask(keywordPrompt); err != nil {
			return err
		}
	}

	style := input.style
	if !input.styleSet {
		var err error
		if style, err = c.ask(stylePrompt); err != nil {
			return err
		}
	}

	var retried bool
	if !input.keywordSet {
		keyword, retried = c.retryWithoutMatches(ctx, keyword)
	}

	result, err := c.jokes.Tell(ctx, service.TellRequest{
		Keyword:   keyword,
		Style:     style,
		WithImage: input.withImage,
	})
	if err != nil {
		return fmt.Errorf("could not personalize a joke: %w", err)
	}

	retryTerm := ""
	if retried {
		retryTerm = strings.TrimSpace(keyword)
	}
	c.print(result, input.withImage, retryTerm)
	return nil
}

// retryWithoutMatches asks once for another term when keyword finds nothing
// and reports whether it did. Lookup errors are left to the service, which
// falls back on its own.
func (c *console) retryWithoutMatches(ctx context.Context, keyword string) (string, bool) {
	term := strings.TrimSpace(keyword)
	if term == "" || c.searcher == nil {
		return keyword, false
	}

	matches, err := c.searcher.Search(ctx, term)
	if err != nil || len(matches) > 0 {
		return keyword, false
	}

	fmt.Fprintf(c.out, "No jokes found for '%s'. Let's try a different word.\n", term)
	retry, err := c.ask(retryKeywordPrompt)
	if err != nil {
		return "", true
	}
	return retry, true
}

// ask prints prompt and reads one line. End of input counts as a blank answer.
func (c *console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// print writes the result. retryTerm is the second search term, if one was
// asked for; a random joke after it means that term had no matches either.
func (c *console) print(result *service.TellResult, withImage bool, retryTerm string) {
	switch result.Source {
	case domain.SourceKeyword:
		fmt.Fprintf(c.out, "Found a joke about '%s'!\n", result.SourceLabel)
	case domain.SourceRandom:
		if retryTerm != "" {
			fmt.Fprintf(c.out, "Still no jokes found for '%s'. Getting a random joke.\n", retryTerm)
		} else {
			fmt.Fprintln(c.out, "Getting a random joke!")
		}
	case domain.SourceFallback:
		fmt.Fprintln(c.out, "Using a fallback joke!")
	}

	fmt.Fprintln(c.out, separator)
	fmt.Fprintf(c.out, "Original Dad Joke:\n-> %s\n", result.OriginalJoke)
	fmt.Fprintf(c.out, "\nGemini AI Personalized Joke (%s Style):\n-> %s\n",
		strings.ToUpper(result.Style), result.PersonalizedJoke)
	fmt.Fprintln(c.out, separator)

	if !withImage {
		return
	}
	if result.ImageSaved {
		fmt.Fprintf(c.out, "Image successfully saved to: %s\n", result.ImagePath)
	} else {
		fmt.Fprintln(c.out, "The image could not be generated this time.")
	}
}
