package ingest

// sourceConfig holds settings shared by all sources.
type sourceConfig struct {
	defaultAlt uint8
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{defaultAlt: 0}
}

// SourceOption is a functional option for source constructors.
type SourceOption func(*sourceConfig)

// WithDefaultAlt sets the alternate setting assigned to segments whose
// input carries no alternate setting of its own: S-record and Intel HEX
// segments always, binary descriptors without an @alt part. Defaults to 0.
//
// Example:
//
//	src := ingest.NewBinarySource(descs, ingest.WithDefaultAlt(1))
func WithDefaultAlt(alt uint8) SourceOption {
	return func(c *sourceConfig) {
		c.defaultAlt = alt
	}
}
