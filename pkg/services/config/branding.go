package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/clientlens/reportgen/pkg/models/domain"
)

// Registry reads branding profiles from an ini file. Each section is
// one client profile:
//
//	[acme]
//	company_name = Acme Digital
//	primary_color = #1E3A5F
//	contact_info = hello@acmedigital.example
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetBranding(ctx context.Context, profile string) (domain.Branding, error)
}

type brandingRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	// hex colors start with '#', which ini would otherwise treat as an
	// inline comment and strip
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, err
	}
	return &brandingRegistry{cfg: cfg}, nil
}

func (br *brandingRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range br.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (br *brandingRegistry) GetBranding(_ context.Context, profile string) (domain.Branding, error) {
	section, err := br.cfg.GetSection(profile)
	if err != nil {
		return domain.Branding{}, fmt.Errorf("profile %s not found", profile)
	}

	return domain.Branding{
		CompanyName:  section.Key("company_name").String(),
		PrimaryColor: section.Key("primary_color").String(),
		ContactInfo:  section.Key("contact_info").String(),
	}, nil
}
