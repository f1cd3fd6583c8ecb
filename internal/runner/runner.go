package runner

import (
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Options holds the parsed CLI configuration for one anacrack run.
type Options struct {
	Wordlist  string
	Campaign  string
	Output    string
	GenConfig bool
	Workers   int
	Verbose   bool
	Silent    bool
	HasStdin  bool
}

func ParseFlags() *Options {
	opts := &Options{}

	wordlist, rest := extractWordlist(os.Args[1:])
	opts.Wordlist = wordlist
	origArgs := os.Args
	os.Args = append([]string{origArgs[0]}, rest...)
	defer func() { os.Args = origArgs }()

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Concurrent anagram-based MD5 password recovery over a wordlist.
The wordlist path is a single positional argument (reads stdin if omitted).`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Campaign, "campaign", "c", "", "campaign yaml file describing targets, comparator and search bounds (defaults baked in if omitted)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "file to append every recovered phrase to (stdout if omitted)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display recovered phrases only"),
		flagSet.CallbackVar(printVersion, "version", "display anacrack version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.BoolVar(&opts.GenConfig, "gen-config", false, "write a sample campaign yaml (to --campaign, or the default config dir) and exit"),
		flagSet.IntVarP(&opts.Workers, "workers", "t", 0, "worker pool size (default: campaign's max_workers)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	} else if lvl, ok := levelFromEnv(); ok {
		gologger.DefaultLogger.SetMaxLevel(lvl)
	}

	if opts.GenConfig {
		return opts
	}

	showBanner()

	opts.HasStdin = fileutil.HasStdin()
	if opts.Wordlist == "" && !opts.HasStdin {
		gologger.Fatal().Msgf("anacrack: no wordlist given and no stdin input found")
	}

	return opts
}

// extractWordlist pulls the spec's single positional argument (the wordlist
// path) out of a raw argument slice, wherever it falls among the named
// flags, leaving every flag token (and its value, for the ones that take
// one) untouched for goflags to parse normally afterward.
func extractWordlist(args []string) (wordlist string, rest []string) {
	valueFlags := map[string]bool{
		"-c": true, "--campaign": true,
		"-o": true, "--output": true,
		"-t": true, "--workers": true,
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if wordlist == "" && !strings.HasPrefix(arg, "-") {
			wordlist = arg
			continue
		}
		rest = append(rest, arg)
		if valueFlags[arg] && !strings.Contains(arg, "=") && i+1 < len(args) {
			i++
			rest = append(rest, args[i])
		}
	}
	return wordlist, rest
}

// levelFromEnv reads ANACRACK_LOG_LEVEL (debug|verbose|info|warning|error|
// fatal|silent) for non-interactive/CI invocations that cannot pass -v/-silent.
func levelFromEnv() (levels.Level, bool) {
	switch os.Getenv("ANACRACK_LOG_LEVEL") {
	case "debug":
		return levels.LevelDebug, true
	case "verbose":
		return levels.LevelVerbose, true
	case "info":
		return levels.LevelInfo, true
	case "warning":
		return levels.LevelWarning, true
	case "error":
		return levels.LevelError, true
	case "fatal":
		return levels.LevelFatal, true
	case "silent":
		return levels.LevelSilent, true
	default:
		return 0, false
	}
}

func printVersion() {
	gologger.Info().Msgf("current version: %s", version)
	os.Exit(0)
}

// DefaultCampaignPath returns where --gen-config writes when --campaign is
// not also given.
func DefaultCampaignPath() string {
	return defaultCampaignPath()
}
