package selection

import (
	"time"

	"gopkg.in/yaml.v3"
)

const defaultReportCacheExpiration = 5 * time.Minute

type Config struct {
	ReportCacheExpiration time.Duration `yaml:"reportCacheExpiration" json:"reportCacheExpiration"`
	StrictInducedRange    bool          `yaml:"strictInducedRange" json:"strictInducedRange"`
}

func ParseConfig(d []byte) (cfg *Config, err error) {
	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil
	}

	return
}
