package sparse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfiguration reads a YAML file over DefaultConfiguration. Keys absent
// from the file keep their defaults.
func LoadConfiguration(path string) (*Configuration, error) {
	config := DefaultConfiguration()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &config, nil
}

func (c *Configuration) Validate() error {
	if c.PrinterWidth < 10 {
		return fmt.Errorf("printer_width %d < 10: %w", c.PrinterWidth, ErrInvalidConfig)
	}
	if c.PrintLevel < PRINT_NONE || c.PrintLevel > PRINT_ALL {
		return fmt.Errorf("print_level %d not in [%d,%d]: %w", c.PrintLevel, PRINT_NONE, PRINT_ALL, ErrInvalidConfig)
	}
	if c.Annotate < 0 || c.Annotate > 2 {
		return fmt.Errorf("annotate %d not in [0,2]: %w", c.Annotate, ErrInvalidConfig)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %g not in [0,1]: %w", c.Density, ErrInvalidConfig)
	}
	return nil
}
