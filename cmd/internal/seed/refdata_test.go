package seed

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateNamesFailingTable(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(*Tables)
	}{
		{"schemes", func(tb *Tables) {
			for i := range tb.Schemes {
				tb.Schemes[i].Weight = 0
			}
		}},
		{"counties", func(tb *Tables) {
			for i := range tb.Counties {
				tb.Counties[i].Weight = -1
			}
		}},
		{"statuses", func(tb *Tables) {
			tb.StatusWeights = make([]int, len(tb.Statuses))
		}},
	}

	for _, tc := range cases {
		tables := DefaultTables()
		tc.corrupt(tables)

		err := tables.Validate()
		if !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("%s: error %v does not wrap ErrInvalidWeight", tc.name, err)
			continue
		}
		if !strings.Contains(err.Error(), tc.name) {
			t.Errorf("%s: error %q does not name the failing table", tc.name, err)
		}
	}
}

func TestValidateStatusLengthMismatch(t *testing.T) {
	tables := DefaultTables()
	tables.StatusWeights = tables.StatusWeights[:len(tables.StatusWeights)-1]

	err := tables.Validate()
	if !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("mismatched status weights: error = %v, want ErrInvalidWeight", err)
	}
}

func TestCountyLookup(t *testing.T) {
	tables := DefaultTables()

	c, ok := tables.County("Fresno")
	if !ok || c.Name != "Fresno" {
		t.Errorf("County(Fresno) = %+v, %v", c, ok)
	}
	if _, ok := tables.County("San Quentin"); ok {
		t.Error("San Quentin is not a county and should not resolve")
	}
}
