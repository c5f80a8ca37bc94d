package config

import (
	"encoding/json"
	"errors"
	"os"

	_ "github.com/expki/go-constructsim/env"
)

// CreateSample creates a sample configuration file.
func CreateSample(path string) error {
	sample := Config{
		Ollama: AI{
			Embed: &Provider{
				Model:   "nomic-embed-text",
				ApiBase: SingleOrSlice[string]{"http://localhost:11434"},
				NumCtx:  8192,
			},
			Generate: &Provider{
				Model:   "llama3.2",
				ApiBase: SingleOrSlice[string]{"http://localhost:11434"},
				NumCtx:  128_000,
			},
		},
		OpenAI: AI{},
		Database: Database{
			Sqlite: "./constructsim.db",
		},
		Pipeline: Pipeline{
			BatchSize:   EMBED_BATCH_SIZE,
			Concurrency: EMBED_CONCURRENCY,
			EmbedCache:  true,
		},
		LogLevel: LogLevelInfo,
	}
	raw, err := json.MarshalIndent(sample, "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}
	return nil
}
