package icons_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports/mocks"
	"go.trai.ch/trafficlens/internal/engine/icons"
	"go.uber.org/mock/gomock"
)

func TestServiceMatcher_FirstMatchWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	m := icons.NewServiceMatcher([]domain.ServiceIcon{
		{Pattern: "^db-", Filename: "database"},
		{Pattern: "java", Filename: "java"},
		{Pattern: "db", Filename: "never"},
	}, mockLogger)

	f, ok := m.Match("db-primary")
	assert.True(t, ok)
	assert.Equal(t, "database", f)

	f, ok = m.Match("payments-java-7")
	assert.True(t, ok)
	assert.Equal(t, "java", f)

	_, ok = m.Match("frontend")
	assert.False(t, ok)
}

func TestServiceMatcher_MalformedPatternIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	m := icons.NewServiceMatcher([]domain.ServiceIcon{
		{Pattern: "([unclosed", Filename: "broken"},
		{Pattern: "java", Filename: "java"},
	}, mockLogger)

	f, ok := m.Match("([unclosed-java")
	assert.True(t, ok)
	assert.Equal(t, "java", f)

	// Matching again does not log again.
	_, ok = m.Match("nothing")
	assert.False(t, ok)
}

func TestExternalTable(t *testing.T) {
	table := icons.NewExternalTable(domain.DefaultSettings().ExternalIcons)

	assert.Equal(t, "message", table.Filename("JMS"))
	assert.Equal(t, "database", table.Filename("jdbc"))
	assert.Equal(t, icons.DefaultExternal, table.Filename("ftp"))
	assert.Equal(t, icons.DefaultExternal, table.Filename(""))
}

func TestCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := icons.NewCatalog(domain.DefaultSettings(), mocks.NewMockLogger(ctrl))

	icon, ok := c.Service("order-java-service")
	assert.True(t, ok)
	assert.Equal(t, icons.Icon{Name: "service/java", Asset: "service_icons/java.png"}, icon)

	icon, ok = c.Service("spok-1")
	assert.True(t, ok)
	assert.Equal(t, "service_icons/star_trek.png", icon.Asset)

	assert.Equal(t, icons.Icon{Name: "external/http", Asset: "http.png"}, c.External("HTTP"))
	assert.Equal(t, icons.Icon{Name: "external/default", Asset: "default.png"}, c.External("smtp"))
}

func TestRequiredAssets(t *testing.T) {
	s := domain.Settings{
		ServiceIcons: []domain.ServiceIcon{
			{Pattern: "java", Filename: "java"},
			{Pattern: "jvm", Filename: "java"},
		},
		ExternalIcons: []domain.ExternalIcon{
			{Name: "jdbc", Filename: "database"},
			{Name: "other", Filename: "default"},
		},
	}

	assert.Equal(t, []string{"database.png", "default.png", "service_icons/java.png"}, icons.RequiredAssets(s))
	assert.Equal(t, []string{"default.png"}, icons.RequiredAssets(domain.Settings{}))
}
