package runner

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/blackvault-sec/anacrack"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

// defaultCampaignPath is where --gen-config writes to, and where
// LoadDefaultCampaign looks, when the user does not pass --campaign.
func defaultCampaignPath() string {
	return filepath.Join(getUserHomeDir(), ".config", "anacrack", "campaign.yaml")
}

// LoadDefaultCampaign loads the campaign at defaultCampaignPath if one
// exists, using goccy/go-yaml (the decoding layer the driver uses, distinct
// from the gopkg.in/yaml.v3 NewCampaign uses for an explicit --campaign
// path). Returns ok=false, no error, when no default file is present - this
// is an optional convenience layered on top of the compile-time
// anacrack.DefaultCampaign, never a requirement.
func LoadDefaultCampaign() (cfg *anacrack.Campaign, ok bool, err error) {
	path := defaultCampaignPath()
	if !fileutil.FileExists(path) {
		return nil, false, nil
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	var campaign anacrack.Campaign
	if uerr := yaml.Unmarshal(bin, &campaign); uerr != nil {
		gologger.Error().Msgf("anacrack yaml configuration syntax error.\n %v\n.", yaml.FormatError(uerr, true, true))
		return nil, false, uerr
	}
	return &campaign, true, nil
}
