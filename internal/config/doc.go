// Package config manages user-level settings stored at ~/.setup-project/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// default Python version and the git/conda binary names used by scaffold runs.
package config
