package council

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEldersCatalog(t *testing.T) {
	all := Elders()

	assert.Len(t, all, 29)
	assert.Equal(t, "The Gambler", all[0].Name)
	assert.Equal(t, "The Sage", all[28].Name)

	// Definition order is the contract, ids follow it.
	for i, e := range all {
		assert.Equal(t, i+1, e.ID)
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Description)
	}
}

func TestEldersReturnsCopy(t *testing.T) {
	first := Elders()
	first[0].Name = "mutated"

	assert.Equal(t, "The Gambler", Elders()[0].Name)
}

func TestElderLookups(t *testing.T) {
	byID := ElderByID(12)
	require.NotNil(t, byID)
	assert.Equal(t, "The Analyst", byID.Name)

	byName := ElderByName("The Skeptic")
	require.NotNil(t, byName)
	assert.Equal(t, 21, byName.ID)

	assert.Nil(t, ElderByID(999))
	assert.Nil(t, ElderByName("The Nobody"))
}

func TestSelectCouncil(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	selected := SelectCouncil(rng, CouncilSize)

	require.Len(t, selected, CouncilSize)

	seen := make(map[int]bool)
	for _, e := range selected {
		assert.False(t, seen[e.ID], "elder %s selected twice", e.Name)
		seen[e.ID] = true
	}
}

func TestSelectCouncilDeterministicWithPinnedSource(t *testing.T) {
	a := SelectCouncil(rand.New(rand.NewSource(7)), CouncilSize)
	b := SelectCouncil(rand.New(rand.NewSource(7)), CouncilSize)

	assert.Equal(t, a, b)
}

func TestSelectCouncilCapsAtCatalogSize(t *testing.T) {
	selected := SelectCouncil(rand.New(rand.NewSource(1)), 100)
	assert.Len(t, selected, 29)
}

func TestSpeakingOrderIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	participants := SelectCouncil(rng, 5)

	order := SpeakingOrder(rng, participants)
	require.Len(t, order, len(participants))

	ids := make(map[int]bool)
	for _, e := range order {
		ids[e.ID] = true
	}
	for _, e := range participants {
		assert.True(t, ids[e.ID], "elder %s missing from speaking order", e.Name)
	}
}
