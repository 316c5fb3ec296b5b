package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	if err := c.Prompts.validate(); err != nil {
		return fmt.Errorf("prompts: %w", err)
	}
	return nil
}

func (p *PromptsConfig) validate() error {
	if p.MaxPrompts <= 0 {
		return fmt.Errorf("max_prompts must be > 0 (got %d)", p.MaxPrompts)
	}
	if p.ImportChunkSize <= 0 {
		return fmt.Errorf("import_chunk_size must be > 0 (got %d)", p.ImportChunkSize)
	}
	if p.ImportMaxBatch < p.ImportChunkSize {
		return fmt.Errorf("import_max_batch (%d) must be >= import_chunk_size (%d)",
			p.ImportMaxBatch, p.ImportChunkSize)
	}
	return nil
}
