// Package icons resolves which icon a node is drawn with.
package icons

import (
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultExternal is the icon used for external nodes of unknown type.
const DefaultExternal = "default"

type serviceRule struct {
	re       *regexp.Regexp
	filename string
}

// ServiceMatcher picks the icon of an internal node by matching its ID against
// an ordered list of patterns. The first matching pattern wins.
type ServiceMatcher struct {
	rules []serviceRule
}

// NewServiceMatcher compiles the patterns once. A malformed pattern is logged
// and kept in place as a rule that never matches.
func NewServiceMatcher(icons []domain.ServiceIcon, logger ports.Logger) *ServiceMatcher {
	m := &ServiceMatcher{rules: make([]serviceRule, 0, len(icons))}
	for _, icon := range icons {
		re, err := regexp.Compile(icon.Pattern)
		if err != nil {
			logger.Error(zerr.With(zerr.Wrap(err, "invalid service icon pattern"), "pattern", icon.Pattern))
			re = nil
		}
		m.rules = append(m.rules, serviceRule{re: re, filename: icon.Filename})
	}
	return m
}

// Match returns the icon filename for a node ID.
func (m *ServiceMatcher) Match(nodeID string) (string, bool) {
	for _, r := range m.rules {
		if r.re != nil && r.re.MatchString(nodeID) {
			return r.filename, true
		}
	}
	return "", false
}

// ExternalTable maps external node types to icon filenames, ignoring case.
type ExternalTable struct {
	byName map[string]string
}

// NewExternalTable builds the lookup table. Earlier entries win on duplicates.
func NewExternalTable(icons []domain.ExternalIcon) *ExternalTable {
	t := &ExternalTable{byName: make(map[string]string, len(icons))}
	for _, icon := range icons {
		key := strings.ToLower(icon.Name)
		if _, ok := t.byName[key]; !ok {
			t.byName[key] = icon.Filename
		}
	}
	return t
}

// Filename returns the icon for an external type, falling back to DefaultExternal.
func (t *ExternalTable) Filename(externalType string) string {
	if externalType == "" {
		return DefaultExternal
	}
	if f, ok := t.byName[strings.ToLower(externalType)]; ok {
		return f
	}
	return DefaultExternal
}

// Icon identifies an image: Name keys the asset cache, Asset is the path
// handed to the icon resolver.
type Icon struct {
	Name  string
	Asset string
}

// Catalog answers icon lookups for both node kinds.
type Catalog struct {
	services  *ServiceMatcher
	externals *ExternalTable
}

// NewCatalog builds a catalog from the icon mappings in settings.
func NewCatalog(s domain.Settings, logger ports.Logger) *Catalog {
	return &Catalog{
		services:  NewServiceMatcher(s.ServiceIcons, logger),
		externals: NewExternalTable(s.ExternalIcons),
	}
}

// Service returns the icon of an internal node, if any pattern matches its ID.
func (c *Catalog) Service(nodeID string) (Icon, bool) {
	f, ok := c.services.Match(nodeID)
	if !ok {
		return Icon{}, false
	}
	return Icon{Name: "service/" + f, Asset: "service_icons/" + f + ".png"}, true
}

// External returns the icon of an external node.
func (c *Catalog) External(externalType string) Icon {
	f := c.externals.Filename(externalType)
	return Icon{Name: "external/" + f, Asset: f + ".png"}
}

// RequiredAssets lists every asset the icon mappings in s can refer to,
// sorted and without duplicates. The default external icon is always included.
func RequiredAssets(s domain.Settings) []string {
	assets := []string{DefaultExternal + ".png"}
	for _, icon := range s.ServiceIcons {
		assets = append(assets, "service_icons/"+icon.Filename+".png")
	}
	for _, icon := range s.ExternalIcons {
		assets = append(assets, icon.Filename+".png")
	}
	slices.Sort(assets)
	return slices.Compact(assets)
}
