package country

import "fmt"

// Country is a nation leagues and teams belong to.
type Country struct {
	ID        int64
	Name      string
	ISO2      string
	ISO3      string
	ImagePath string
}

func (c Country) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("country id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("country name is required")
	}

	return nil
}
