// Package agent implements an interactive AI assistant over the account book.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used by the advisor.
const DefaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a bookkeeping assistant for a brokerage account.
You answer questions about the account's fund transactions, realized trade
gains, dividends and money-weighted return, strictly from the briefing below.
When the briefing does not contain the answer, say so. Never invent figures.

Account briefing:

`

// Advisor is the AI assistant that handles the chat session. It is seeded
// with a markdown briefing of the book so it can answer questions about the
// account without tools.
type Advisor struct {
	w     io.Writer
	r     *bufio.Reader
	Model string
	chat  *genai.Chat
}

// New creates an Advisor writing its output to w and reading user input
// from r.
func New(w io.Writer, r io.Reader) *Advisor {
	return &Advisor{
		w:     w,
		r:     bufio.NewReader(r),
		Model: DefaultModel,
	}
}

// Start creates the Gemini chat. briefing is the markdown rendition of the
// book the advisor will answer from.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, briefing string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt+briefing, genai.RoleUser),
	}
	chat, err := client.Chats.Create(ctx, a.Model, config, nil)
	if err != nil {
		return fmt.Errorf("cannot create chat: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the advisor's answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session. prompts are flushed as user input
// before reading from the terminal.
func (a *Advisor) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to fb assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
