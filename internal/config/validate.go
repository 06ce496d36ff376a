package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Catalog.DefaultPageSize < 1 {
		return fmt.Errorf("catalog.default_page_size must be >= 1 (got %d)", c.Catalog.DefaultPageSize)
	}
	if c.Catalog.MaxPageSize < c.Catalog.DefaultPageSize {
		return fmt.Errorf("catalog.max_page_size (%d) must not be below default_page_size (%d)",
			c.Catalog.MaxPageSize, c.Catalog.DefaultPageSize)
	}
	if c.Catalog.DiscoverTimeout <= 0 {
		return fmt.Errorf("catalog.discover_timeout must be > 0 (got %v)", c.Catalog.DiscoverTimeout)
	}

	return nil
}
