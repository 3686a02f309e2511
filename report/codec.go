package report

import (
	"encoding/json"
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libfanperf/standards"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

func DecodeA1ReportYAML(data []byte) (r *standards.A1Report, err error) {
	r = &standards.A1Report{}

	err = yaml.Unmarshal(data, r)
	if err != nil {
		r = nil

		return
	}

	err = ValidateA1Report(r)
	if err != nil {
		r = nil
	}

	return
}

func DecodeA2ReportYAML(data []byte) (r *standards.A2Report, err error) {
	r = &standards.A2Report{}

	err = yaml.Unmarshal(data, r)
	if err != nil {
		r = nil

		return
	}

	err = ValidateA2Report(r)
	if err != nil {
		r = nil
	}

	return
}

func EncodeYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// rowMaps accepts determination rows as stored in a JSON column: raw JSON text or already decoded
// slices of objects.
func rowMaps(rows interface{}) (maps []map[string]interface{}, err error) {
	switch v := rows.(type) {
	case []byte:
		var decoded []interface{}

		if err = json.Unmarshal(v, &decoded); err != nil {
			err = fmt.Errorf("%w: %s", commerr.ErrInvalidArgument, err.Error())

			return
		}

		rows = decoded
	case string:
		return rowMaps([]byte(v))
	}

	items, err := cast.ToSliceE(rows)
	if err != nil {
		err = fmt.Errorf("%w: %s", commerr.ErrInvalidArgument, err.Error())

		return
	}

	maps = make([]map[string]interface{}, 0, len(items))

	for idx, item := range items {
		m, e := cast.ToStringMapE(item)
		if e != nil {
			err = fmt.Errorf("%w: row %d: %s", commerr.ErrInvalidArgument, idx, e.Error())

			return
		}

		maps = append(maps, m)
	}

	return
}

func rowFloat(m map[string]interface{}, idx int, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: row %d: missing %s", commerr.ErrInvalidArgument, idx, key)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d: %s: %s", commerr.ErrInvalidArgument, idx, key, err.Error())
	}

	return f, nil
}

func A1DeterminationsFromRows(rows interface{}) (determinations []standards.A1Determination, err error) {
	maps, err := rowMaps(rows)
	if err != nil {
		return
	}

	determinations = make([]standards.A1Determination, 0, len(maps))

	for idx, m := range maps {
		var d standards.A1Determination

		if d.CFM, err = rowFloat(m, idx, "cfm"); err != nil {
			return nil, err
		}

		if d.StaticPressure, err = rowFloat(m, idx, "static_pressure"); err != nil {
			return nil, err
		}

		if d.BrakeHorsepower, err = rowFloat(m, idx, "brake_horsepower"); err != nil {
			return nil, err
		}

		determinations = append(determinations, d)
	}

	return
}

func A2DeterminationsFromRows(rows interface{}) (determinations []standards.A2Determination, err error) {
	maps, err := rowMaps(rows)
	if err != nil {
		return
	}

	determinations = make([]standards.A2Determination, 0, len(maps))

	for idx, m := range maps {
		var d standards.A2Determination

		if d.CFM, err = rowFloat(m, idx, "cfm"); err != nil {
			return nil, err
		}

		if d.StaticPressure, err = rowFloat(m, idx, "static_pressure"); err != nil {
			return nil, err
		}

		determinations = append(determinations, d)
	}

	return
}
