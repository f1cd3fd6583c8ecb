package anacrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{MinWordLen: 2, MaxWordLen: 10, TargetLen: 8, MaxWords: 4}
	require.NoError(t, valid.Validate())

	cases := []Config{
		{MinWordLen: 0, MaxWordLen: 10, TargetLen: 8, MaxWords: 4},
		{MinWordLen: 5, MaxWordLen: 3, TargetLen: 8, MaxWords: 4},
		{MinWordLen: 2, MaxWordLen: 10, TargetLen: 1, MaxWords: 4},
		{MinWordLen: 2, MaxWordLen: 10, TargetLen: 8, MaxWords: 0},
	}
	for _, c := range cases {
		require.Error(t, c.Validate())
	}
}

func TestCampaignValidateDedupesDigests(t *testing.T) {
	campaign := Campaign{
		Config:     Config{MinWordLen: 2, MaxWordLen: 10, TargetLen: 8, MaxWords: 4},
		MaxWorkers: 0,
		Comparator: "poultry outwits ants",
		Digests: []string{
			"e4820b45d2277f3844eac66c903e84be",
			"e4820b45d2277f3844eac66c903e84be",
			"23170acc097c24edb98fc5488ab033fe",
		},
	}
	require.NoError(t, campaign.Validate())
	require.Len(t, campaign.Digests, 2)
	require.Equal(t, 1, campaign.MaxWorkers) // clamped up from 0
}

func TestCampaignValidateRejectsEmptyDigests(t *testing.T) {
	campaign := Campaign{
		Config: Config{MinWordLen: 2, MaxWordLen: 10, TargetLen: 8, MaxWords: 4},
	}
	require.Error(t, campaign.Validate())
}

func TestDefaultCampaignIsValid(t *testing.T) {
	campaign := DefaultCampaign
	require.NoError(t, campaign.Validate())
}

func TestNewCampaignRoundTripsThroughYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "campaign.yaml")
	require.NoError(t, GenerateSampleCampaign(path))

	loaded, err := NewCampaign(path)
	require.NoError(t, err)
	require.Equal(t, DefaultCampaign.Digests, loaded.Digests)
	require.Equal(t, DefaultCampaign.Comparator, loaded.Comparator)
	require.Equal(t, DefaultCampaign.Config, loaded.Config)
}

func TestGenerateSampleCampaignCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "dir", "campaign.yaml")
	require.NoError(t, GenerateSampleCampaign(path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestComparatorLettersMatchesSourcePhrase(t *testing.T) {
	campaign := Campaign{Comparator: "poultry outwits ants"}
	require.Equal(t, NewComparator("poultry outwits ants"), campaign.ComparatorLetters())
}
