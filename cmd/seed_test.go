package cmd

import (
	"testing"

	"wandshop/internal/adapters/out/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog_IsRepeatable(t *testing.T) {
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, nil)

	added, err := SeedCatalog(t.Context(), factory)
	require.NoError(t, err)
	assert.Equal(t, len(catalogue), added)

	added, err = SeedCatalog(t.Context(), factory)
	require.NoError(t, err)
	assert.Zero(t, added)

	n, err := factory.Create().WandRepository().CountAllocatable(t.Context())
	require.NoError(t, err)
	assert.Equal(t, len(catalogue), n)

	_, err = factory.Create().WizardRepository().Get(t.Context(), DemoWizardID)
	assert.NoError(t, err)
}
