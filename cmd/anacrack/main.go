package main

import (
	"context"
	"os"

	"github.com/blackvault-sec/anacrack"
	"github.com/blackvault-sec/anacrack/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	cliOpts := runner.ParseFlags()

	if cliOpts.GenConfig {
		path := cliOpts.Campaign
		if path == "" {
			path = runner.DefaultCampaignPath()
		}
		if err := anacrack.GenerateSampleCampaign(path); err != nil {
			gologger.Fatal().Msgf("failed to write sample campaign to %v got: %v", path, err)
		}
		gologger.Info().Msgf("wrote sample campaign to %v", path)
		return
	}

	campaign := anacrack.DefaultCampaign
	if cliOpts.Campaign != "" {
		loaded, err := anacrack.NewCampaign(cliOpts.Campaign)
		if err != nil {
			gologger.Fatal().Msgf("failed to read campaign %v got: %v", cliOpts.Campaign, err)
		}
		campaign = *loaded
	} else if loaded, ok, err := runner.LoadDefaultCampaign(); err != nil {
		gologger.Fatal().Msgf("failed to read default campaign: %v", err)
	} else if ok {
		campaign = *loaded
	}
	if cliOpts.Workers > 0 {
		campaign.MaxWorkers = cliOpts.Workers
	}
	if err := campaign.Validate(); err != nil {
		gologger.Fatal().Msgf("invalid campaign: %v", err)
	}

	comparator := campaign.ComparatorLetters()

	var dict *anacrack.Dictionary
	var err error
	if cliOpts.Wordlist != "" {
		dict, err = anacrack.NewDictionary(cliOpts.Wordlist, campaign.MinWordLen, campaign.MaxWordLen, comparator)
	} else {
		dict, err = anacrack.NewDictionaryFromReader(os.Stdin, campaign.MinWordLen, campaign.MaxWordLen, comparator, 0)
	}
	if err != nil {
		gologger.Fatal().Msgf("failed to load wordlist: %v", err)
	}

	table, err := anacrack.NewPasswordTable(campaign.Digests)
	if err != nil {
		gologger.Fatal().Msgf("invalid campaign digests: %v", err)
	}

	composer := anacrack.NewLengthComposer(campaign.Config)
	orchestrator := anacrack.NewOrchestrator(dict, composer, table, comparator, campaign.MaxWorkers)

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	phraseCh := make(chan string, 100)
	writer := anacrack.NewPhraseWriter(output)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		if err := writer.Run(phraseCh); err != nil {
			gologger.Error().Msgf("failed to write recovered phrase: %v", err)
		}
	}()

	gologger.Info().Msgf("searching %d target(s) with %d worker(s)", table.Len(), campaign.MaxWorkers)
	stats := orchestrator.Run(context.Background(), phraseCh)
	close(phraseCh)
	<-writerDone

	gologger.Info().Msgf("composed %d length tuples, checked %d phrases, recovered %d/%d targets in %s",
		stats.TuplesComposed, stats.PhrasesChecked, stats.PhrasesRecovered, table.Len(), stats.Elapsed)

	if !table.AllFound() {
		for _, target := range table.Unfound() {
			gologger.Warning().Msgf("digest %v not recovered", target.Digest)
		}
	}
}

func getOutputWriter(path string) *os.File {
	if path == "" {
		return os.Stdout
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		gologger.Fatal().Msgf("failed to open output file %v got %v", path, err)
	}
	return f
}

func closeOutput(f *os.File, path string) {
	if path != "" {
		f.Close()
	}
}
