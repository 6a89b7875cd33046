package config

// Lineagefile represents the structure of the lineage.yaml configuration file.
type Lineagefile struct {
	Classpath  []string `yaml:"classpath"`
	Extensions []string `yaml:"extensions"`
	Workers    int      `yaml:"workers"`
	Log        string   `yaml:"log"`
}
