package mcp_test

import (
	"testing"

	mcpadapter "github.com/brandguard/brandguard/internal/adapters/inbound/mcp"
	"github.com/brandguard/brandguard/internal/adapters/outbound/fixture"
	"github.com/brandguard/brandguard/internal/application"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/brandguard/brandguard/internal/domain/engine"
	"github.com/brandguard/brandguard/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func services(withGolden bool) mcpadapter.Services {
	eng := engine.New(nil)
	svc := mcpadapter.Services{
		Validator: application.NewValidateService(eng, fixture.New(), nil, nil),
		Rules:     eng.Rules(),
		Config:    domain.DefaultConfig().Golden,
	}
	if withGolden {
		svc.Golden = application.NewGoldenService(fixture.New(), eng, nil, nil, nil)
	}
	return svc
}

func TestNewBrandGuardMCPServer(t *testing.T) {
	s := mcpadapter.NewBrandGuardMCPServer("test", services(true))
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewBrandGuardMCPServer("test", services(true))

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"brandguard_evaluate",
		"brandguard_rules",
		"brandguard_golden",
	}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools))
}

func TestMCPServerWithoutGolden(t *testing.T) {
	s := mcpadapter.NewBrandGuardMCPServer("test", services(false))
	tools := s.ListTools()
	_, exists := tools["brandguard_golden"]
	assert.False(t, exists)
	assert.Len(t, tools, 2)
}

func TestRulesHaveStableJSONShape(t *testing.T) {
	svc := services(false)
	require.NotEmpty(t, svc.Rules)
	assert.Equal(t, rules.BrandColorCheck, svc.Rules[0].ID)
}
