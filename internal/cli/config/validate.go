package config

import (
	"fmt"
	"regexp"
)

var stateCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// ValidStateCode reports whether s is a two-letter upper-case state code.
func ValidStateCode(s string) bool {
	return stateCodeRe.MatchString(s)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DBName == "" {
		return fmt.Errorf("db_name is required")
	}
	if !ValidStateCode(c.State) {
		return fmt.Errorf("state must be a two-letter US state code, got %q", c.State)
	}
	return nil
}

// ValidateConnection checks the fields needed to open a database connection.
// Commands that never connect (version, help) skip this.
func (c *Config) ValidateConnection() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DBUser == "" {
		return fmt.Errorf("db_user is required\nHint: set HOUSEKEEP_DB_USER or db_user in housekeep.yaml")
	}
	return nil
}
