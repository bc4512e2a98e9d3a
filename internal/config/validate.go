package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.AI.APIKey != "" {
		if c.AI.Model == "" {
			return fmt.Errorf("ai.model must be set when ai.api_key is present")
		}
		if c.AI.MaxTokens <= 0 {
			return fmt.Errorf("ai.max_tokens must be > 0 (got %d)", c.AI.MaxTokens)
		}
		if c.AI.Timeout <= 0 {
			return fmt.Errorf("ai.timeout must be > 0 (got %v)", c.AI.Timeout)
		}
	}

	if c.Bookmarks.MaxPerOwner <= 0 {
		return fmt.Errorf("bookmarks.max_per_owner must be > 0 (got %d)", c.Bookmarks.MaxPerOwner)
	}
	if c.Bookmarks.MaxTagsPerRequest <= 0 {
		return fmt.Errorf("bookmarks.max_tags_per_request must be > 0 (got %d)", c.Bookmarks.MaxTagsPerRequest)
	}

	return nil
}
