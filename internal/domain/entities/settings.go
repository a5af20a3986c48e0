package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultParallelism bounds concurrent update-candidate lookups per run.
const DefaultParallelism = 8

// Settings is the top-level configuration for depwatch.
type Settings struct {
	StateDir     string             `yaml:"state_dir"`    // Snapshot storage root
	AdvisoryDB   string             `yaml:"advisory_db"`  // Advisory feed export
	Parallelism  int                `yaml:"parallelism"`  // Candidate lookup fan-out
	Repositories []RepositoryConfig `yaml:"repositories"` // Tracked repositories
}

// RepositoryConfig describes one tracked repository and the exported data
// feeds its collaborators produce for it.
type RepositoryConfig struct {
	URL     string `yaml:"url"`     // Full repository link (e.g. https://github.com/diem/diem.git)
	Mirror  string `yaml:"mirror"`  // Local clone used to resolve HEAD; optional
	Graph   string `yaml:"graph"`   // Dependency graph export
	Updates string `yaml:"updates"` // Update feed export
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment
// variables and applying defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	var settings Settings
	if unmarshalErr := yaml.Unmarshal([]byte(expanded), &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.applyDefaults()

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depwatch.yaml",
		".depwatch.yml",
		"depwatch.yaml",
		"depwatch.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func (s *Settings) applyDefaults() {
	if s.Parallelism <= 0 {
		s.Parallelism = DefaultParallelism
	}
	if s.StateDir == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			s.StateDir = filepath.Join(homeDir, ".depwatch", "state")
		} else {
			s.StateDir = ".depwatch-state"
		}
	}
}

// validate checks for required configuration values.
func (s *Settings) validate() error {
	if s.AdvisoryDB == "" {
		return errors.New("advisory_db is required (silently skipping advisories could mask a vulnerability)")
	}

	for i, repo := range s.Repositories {
		if repo.URL == "" {
			return fmt.Errorf("repositories[%d].url is required", i)
		}
		if repo.Graph == "" {
			return fmt.Errorf("repositories[%d].graph is required", i)
		}
		if repo.Updates == "" {
			return fmt.Errorf("repositories[%d].updates is required", i)
		}
	}

	return nil
}

// FindRepository returns the configured repository with the given URL, or
// nil when it is not tracked.
func (s *Settings) FindRepository(url string) *RepositoryConfig {
	for i := range s.Repositories {
		if s.Repositories[i].URL == url {
			return &s.Repositories[i]
		}
	}
	return nil
}
