package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProfile reads the shop profile from a YAML file. An empty path keeps
// the defaults; empty fields in the file fall back to the defaults too.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read shop profile: %w", err)
	}

	var loaded Profile
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return profile, fmt.Errorf("parse shop profile: %w", err)
	}

	if loaded.ShopName != "" {
		profile.ShopName = loaded.ShopName
	}
	if loaded.BillerName != "" {
		profile.BillerName = loaded.BillerName
	}
	if loaded.BillerTitle != "" {
		profile.BillerTitle = loaded.BillerTitle
	}
	if loaded.Currency != "" {
		profile.Currency = loaded.Currency
	}
	return profile, nil
}
