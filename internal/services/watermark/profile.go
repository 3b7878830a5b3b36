package watermark

const (
	ProfileBig   = "big"
	ProfileSmall = "small"
)

// SizeProfile bundles the font and padding used for one class of image sizes.
// An empty FontPath selects the bundled Go Regular face.
type SizeProfile struct {
	Name     string
	FontPath string
	FontSize float64
	PaddingX float64
	PaddingY float64
}

// Config selects a SizeProfile from the width of the image being stamped.
type Config struct {
	Cutoff int
	Big    SizeProfile
	Small  SizeProfile
}

// Select returns Small for images narrower than Cutoff and Big otherwise.
func (c Config) Select(width int) SizeProfile {
	if width < c.Cutoff {
		return c.Small
	}
	return c.Big
}

func (c Config) profiles() []SizeProfile {
	return []SizeProfile{c.Big, c.Small}
}

func (c *Config) setNames() {
	if c.Big.Name == "" {
		c.Big.Name = ProfileBig
	}
	if c.Small.Name == "" {
		c.Small.Name = ProfileSmall
	}
}
