package reminder

// Config locates the persisted reminder store. Reminder commands refuse
// to run until this is present in the configuration.
type Config struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Location string `mapstructure:"location,omitempty" yaml:"location,omitempty"`
}

// IsEnabled reports whether reminders are configured and switched on.
func (c *Config) IsEnabled() bool {
	return c != nil && c.Enabled
}
