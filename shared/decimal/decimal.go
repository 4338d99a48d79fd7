// Package decimal holds the lenient numeric type used for backend money and
// odometer fields, which arrive either as JSON numbers or as numeric strings.
package decimal

import (
	"bytes"
	"strconv"

	"rentacar/shared/failure"
)

type Decimal float64

func (d Decimal) Float64() float64 {
	return float64(d)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(d), 'f', -1, 64)), nil
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*d = 0

		return nil
	}

	if len(data) >= 2 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return failure.BadRequestFromString("invalid numeric value: " + string(data)) //nolint:wrapcheck
		}

		if unquoted == "" {
			*d = 0

			return nil
		}

		parsed, err := strconv.ParseFloat(unquoted, 64)
		if err != nil {
			return failure.BadRequestFromString("invalid numeric value: " + unquoted) //nolint:wrapcheck
		}

		*d = Decimal(parsed)

		return nil
	}

	parsed, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return failure.BadRequestFromString("invalid numeric value: " + string(data)) //nolint:wrapcheck
	}

	*d = Decimal(parsed)

	return nil
}
