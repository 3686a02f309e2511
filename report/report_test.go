package report

import (
	"errors"
	"math"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libfanperf/standards"
	"github.com/stretchr/testify/assert"
)

func utA1Report() *standards.A1Report {
	return &standards.A1Report{
		ID:         "a1",
		FanSize:    standards.FanSize{Diameter: 27},
		Parameters: standards.A1Parameters{RPM: 1750},
		Determinations: []standards.A1Determination{
			{CFM: 8884, StaticPressure: 2.593, BrakeHorsepower: 7.243},
			{CFM: 0, StaticPressure: 6.839, BrakeHorsepower: 7.204},
		},
	}
}

func TestValidateA1Report(t *testing.T) {
	assert.Nil(t, ValidateA1Report(utA1Report()))
	assert.True(t, errors.Is(ValidateA1Report(nil), commerr.ErrInvalidArgument))

	r := utA1Report()
	r.FanSize.Diameter = 0
	assert.True(t, errors.Is(ValidateA1Report(r), commerr.ErrInvalidArgument))

	r = utA1Report()
	r.Parameters.RPM = math.Inf(1)
	assert.True(t, errors.Is(ValidateA1Report(r), commerr.ErrInvalidArgument))

	r = utA1Report()
	r.Determinations[0].StaticPressure = math.NaN()
	assert.True(t, errors.Is(ValidateA1Report(r), commerr.ErrInvalidArgument))
}

func TestValidateA2Report(t *testing.T) {
	r := &standards.A2Report{
		ID:             "a2",
		A1Report:       utA1Report(),
		FanSize:        standards.FanSize{Diameter: 27},
		Parameters:     standards.A2Parameters{RPM: 1750},
		Determinations: []standards.A2Determination{{CFM: 12386, StaticPressure: 2.537}},
	}
	assert.Nil(t, ValidateA2Report(r))

	r.Determinations[0].CFM = -1
	assert.True(t, errors.Is(ValidateA2Report(r), commerr.ErrInvalidArgument))

	r.Determinations[0].CFM = 1
	r.A1Report.Determinations = nil
	assert.True(t, errors.Is(ValidateA2Report(r), commerr.ErrInvalidArgument))
}

func TestCloneA2Report(t *testing.T) {
	r := &standards.A2Report{
		ID:             "a2",
		A1Report:       utA1Report(),
		Determinations: []standards.A2Determination{{CFM: 12386, StaticPressure: 2.537}},
	}

	c := CloneA2Report(r)
	assert.Equal(t, r, c)

	c.Determinations[0].CFM = 1
	c.A1Report.Determinations[0].CFM = 1
	assert.Equal(t, 12386.0, r.Determinations[0].CFM)
	assert.Equal(t, 8884.0, r.A1Report.Determinations[0].CFM)

	assert.Nil(t, CloneA2Report(nil))
	assert.NotEmpty(t, NewReportID())
}
