package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-incantato/internal/skill"
)

func TestBuildDefaults(t *testing.T) {
	lib, err := Build(defaultCatalog)
	require.NoError(t, err)
	require.Equal(t, len(defaultCatalog), lib.Len())

	def, ok := lib.Get("Arc Lash")
	require.True(t, ok)
	require.Equal(t, skill.TypeChain, def.Type)
	require.Equal(t, 4, def.MaxTargets)

	// every variant is represented in the shipped catalog
	seen := map[skill.Type]bool{}
	for _, d := range lib.All() {
		seen[d.Type] = true
	}
	require.Len(t, seen, 6)
}

func TestBuildRejectsUnknownType(t *testing.T) {
	_, err := Build([]SkillDefinition{{Name: "Broken", Element: "FIRE", Type: "BEAM", Cooldown: 1}})
	require.Error(t, err)
}

func TestBuildRejectsDuplicates(t *testing.T) {
	_, err := Build([]SkillDefinition{
		{Name: "Twin", Element: "FIRE", Type: "PROJECTILE", Cooldown: 1},
		{Name: "Twin", Element: "WATER", Type: "PROJECTILE", Cooldown: 1},
	})
	require.Error(t, err)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	lib, err := LoadSkillDefinitions(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, len(defaultCatalog), lib.Len())
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := LoadSkillDefinitions(path, zap.NewNop())
	require.Error(t, err)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Test Bolt", "element": "FIRE", "type": "PROJECTILE", "damage": 5, "speed": 100, "duration": 1, "cooldown": 0.5}
	]`), 0o644))

	lib, err := LoadSkillDefinitions(path, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 1, lib.Len())
	def, ok := lib.Get("Test Bolt")
	require.True(t, ok)
	require.Equal(t, skill.TypeProjectile, def.Type)
}
