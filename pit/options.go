package pit

// Config holds the decoder configuration.
type Config struct {
	// Lenient accepts buffers that hold fewer entries than the header
	// declares, keeping the complete entries that are present
	Lenient bool
}

// defaultConfig returns the default configuration: strict decoding.
func defaultConfig() Config {
	return Config{
		Lenient: false,
	}
}

// Option is a functional option for configuring Decode, Parse and ParseReader.
type Option func(*Config)

// WithLenient enables or disables lenient decoding of truncated files.
// Default is false.
//
// In lenient mode a short entry area is not an error: the returned Table
// holds only the complete entries present and Table.Truncated reports true.
// Header().EntryCount still carries the value stored in the file.
//
// Example:
//
//	t, err := pit.Decode(buf, pit.WithLenient(true))
func WithLenient(lenient bool) Option {
	return func(c *Config) {
		c.Lenient = lenient
	}
}
