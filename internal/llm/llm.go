// Package llm produces companion replies for chat mode, backed by a local
// Ollama or an OpenAI-compatible endpoint.
package llm

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultOllamaModel = "llama3.2:latest"
	defaultOllamaHost  = "http://localhost:11434"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultOpenAIBase  = "https://api.openai.com/v1"

	// maxHistoryChars bounds how much of the running conversation is
	// replayed into each prompt; maxMessageChars bounds a single turn.
	maxHistoryChars = 6_000
	maxMessageChars = 2_000
)

// Companion replies are short; generation still dominates the round trip on
// small local models.
const defaultLLMHTTPTimeout = 60 * time.Second

// Exchange is one completed turn of the conversation.
type Exchange struct {
	You   string
	Reply string
}

// Config describes how to build an LLM client.
type Config struct {
	Model      string
	Endpoint   string
	HTTPClient *http.Client
}

// Client answers chat messages with the running history as context.
type Client interface {
	Reply(ctx context.Context, history []Exchange, message string) (string, error)
	Name() string
}

// NewFromEnv builds a client from explicit config and environment
// variables. An OPENAI_API_KEY selects the hosted backend; otherwise a
// local Ollama is assumed.
func NewFromEnv(cfg Config) (Client, error) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		base := cfg.Endpoint
		if base == "" {
			if env := os.Getenv("OPENAI_BASE_URL"); env != "" {
				base = strings.TrimRight(env, "/")
			} else {
				base = defaultOpenAIBase
			}
		}
		model := cfg.Model
		if model == "" {
			if env := os.Getenv("OPENAI_MODEL"); env != "" {
				model = env
			} else {
				model = defaultOpenAIModel
			}
		}
		return &openAIClient{
			apiKey: key,
			model:  model,
			base:   ensureScheme(base),
			client: pickHTTPClient(cfg.HTTPClient),
		}, nil
	}

	host := cfg.Endpoint
	if host == "" {
		if env := os.Getenv("OLLAMA_HOST"); env != "" {
			host = strings.TrimRight(env, "/")
		} else {
			host = defaultOllamaHost
		}
	}
	model := cfg.Model
	if model == "" {
		if env := os.Getenv("OLLAMA_MODEL"); env != "" {
			model = env
		} else {
			model = defaultOllamaModel
		}
	}
	return &ollamaClient{
		host:   ensureScheme(host),
		model:  model,
		client: pickHTTPClient(cfg.HTTPClient),
	}, nil
}

// ensureScheme accepts the bare "host:port" form OLLAMA_HOST is often set
// to.
func ensureScheme(endpoint string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	if strings.Contains(endpoint, "://") {
		return endpoint
	}
	return "http://" + endpoint
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	return &http.Client{Timeout: defaultLLMHTTPTimeout}
}
